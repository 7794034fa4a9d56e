package api

import (
	"context"
	"fmt"
	"net/url"
)

type App struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner,omitempty"`
}

func (a App) String() string {
	if a.Owner != "" {
		return fmt.Sprintf("%s/%s", a.Owner, a.Name)
	}
	return a.Name
}

func (c *Client) GetApp(ctx context.Context, id string) (*App, error) {
	var app App
	if err := c.get(ctx, "/v1/apps/"+url.PathEscape(id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetAppByName looks an app up by name or owner/name. The server answers
// 404 for unknown names and 409 when a bare name is ambiguous across
// owners.
func (c *Client) GetAppByName(ctx context.Context, name string) (*App, error) {
	var app App
	if err := c.get(ctx, "/v1/apps/by-name/"+url.PathEscape(name), &app); err != nil {
		return nil, err
	}
	return &app, nil
}
