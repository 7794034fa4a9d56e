package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vesselhq/vessel/pkg/api"
	"github.com/vesselhq/vessel/pkg/appconfig"
	"github.com/vesselhq/vessel/pkg/appident"
	"github.com/vesselhq/vessel/pkg/prompt"
)

var (
	errNoApp        = errors.New("no app given, pass an app id or run inside an app directory")
	errNoSecretName = errors.New("no secret name given, pass a name argument")
)

type appQuery struct {
	ident          string
	dir            string
	nonInteractive bool
}

// resolveAppID turns an app reference into a canonical app id. Priority:
// an explicit identifier, then the project config in the app directory
// (or cwd), then an interactive prompt when allowed.
func resolveAppID(ctx context.Context, client *api.Client, q appQuery) (string, error) {
	if q.ident != "" {
		app, err := appident.Resolve(ctx, client, q.ident)
		if err != nil {
			return "", err
		}
		return app.ID, nil
	}

	dir := q.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		dir = wd
	}

	if id, err := appconfig.AppID(dir); err == nil && id != "" {
		return id, nil
	} else if err != nil {
		log.Debugf("no app config in %s: %v", dir, err)
	}

	if q.nonInteractive {
		return "", errNoApp
	}

	ident, err := prompt.Input("Enter the name of the app")
	if err != nil {
		return "", err
	}
	app, err := appident.Resolve(ctx, client, ident)
	if err != nil {
		return "", err
	}
	return app.ID, nil
}
