package api

import (
	"context"
	"net/url"
	"time"
)

type Secret struct {
	Name      string     `json:"name" yaml:"name"`
	Value     string     `json:"value,omitempty" yaml:"value,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// ListAppSecrets returns secret metadata (names, timestamps) without
// values, in the order the server stores them.
func (c *Client) ListAppSecrets(ctx context.Context, appID string) ([]Secret, error) {
	var secrets []Secret
	if err := c.get(ctx, "/v1/apps/"+url.PathEscape(appID)+"/secrets", &secrets); err != nil {
		return nil, err
	}
	return secrets, nil
}

// RevealAppSecrets returns every secret of the app with its plaintext
// value. Order is the server's, nothing is filtered client side.
func (c *Client) RevealAppSecrets(ctx context.Context, appID string) ([]Secret, error) {
	var secrets []Secret
	if err := c.get(ctx, "/v1/apps/"+url.PathEscape(appID)+"/secrets/reveal", &secrets); err != nil {
		return nil, err
	}
	return secrets, nil
}

// GetAppSecret reveals a single secret. The error wraps ErrNotFound when
// no secret with that name exists for the app.
func (c *Client) GetAppSecret(ctx context.Context, appID, name string) (*Secret, error) {
	var secret Secret
	err := c.get(ctx, "/v1/apps/"+url.PathEscape(appID)+"/secrets/"+url.PathEscape(name)+"/reveal", &secret)
	if err != nil {
		return nil, err
	}
	return &secret, nil
}
