package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/vesselhq/vessel/pkg/mvl"
	"github.com/vesselhq/vessel/pkg/version"
)

var log = mvl.Package()

const DefaultEndpoint = "https://api.vessel.sh"

type Options struct {
	Endpoint string `usage:"Platform API endpoint (default: https://api.vessel.sh)"`
	Token    string `usage:"API token used to authenticate requests"`
}

func FromEnv() Options {
	return Options{
		Endpoint: os.Getenv("VESSEL_ENDPOINT"),
		Token:    os.Getenv("VESSEL_TOKEN"),
	}
}

func Complete(opts ...Options) (result Options) {
	for _, opt := range opts {
		result.Endpoint = firstSet(opt.Endpoint, result.Endpoint)
		result.Token = firstSet(opt.Token, result.Token)
	}
	if result.Endpoint == "" {
		result.Endpoint = DefaultEndpoint
	}
	return
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

func NewClient(opts ...Options) (*Client, error) {
	opt := Complete(opts...)
	u, err := url.Parse(opt.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &APIError{Message: "invalid API endpoint " + opt.Endpoint, Err: err}
	}
	return &Client{
		endpoint: strings.TrimSuffix(opt.Endpoint, "/"),
		token:    opt.Token,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path, nil)
	if err != nil {
		return &APIError{Message: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.ProgramName+"/"+version.Get())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log.Debugf("GET %s", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body), Err: ErrNotFound}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "failed to decode response", Err: err}
	}
	return nil
}
