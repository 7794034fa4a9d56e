// Package appident resolves user supplied app references (canonical id,
// owner/name, or bare name) to an app registered on the platform.
package appident

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vesselhq/vessel/pkg/api"
)

const idPrefix = "app_"

func Resolve(ctx context.Context, client *api.Client, ident string) (*api.App, error) {
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return nil, errors.New("app identifier is empty")
	}

	if strings.HasPrefix(ident, idPrefix) {
		app, err := client.GetApp(ctx, ident)
		if err == nil {
			return app, nil
		}
		if !errors.Is(err, api.ErrNotFound) {
			return nil, err
		}
		// Fall through, the token may be an app named "app_...".
	}

	app, err := client.GetAppByName(ctx, ident)
	if errors.Is(err, api.ErrNotFound) {
		return nil, fmt.Errorf("could not resolve app %q: %w", ident, err)
	} else if err != nil {
		return nil, err
	}
	return app, nil
}
