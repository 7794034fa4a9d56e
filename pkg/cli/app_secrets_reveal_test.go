package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vesselhq/vessel/pkg/api"
	"github.com/vesselhq/vessel/pkg/appconfig"
	"github.com/vesselhq/vessel/pkg/render"
)

type countingServer struct {
	requests atomic.Int64
	handler  http.HandlerFunc
}

func newCountingClient(t *testing.T, handler http.HandlerFunc) (*api.Client, *countingServer) {
	t.Helper()
	cs := &countingServer{handler: handler}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.requests.Add(1)
		if cs.handler == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		cs.handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := api.NewClient(api.Options{Endpoint: server.URL})
	require.NoError(t, err)
	return client, cs
}

func writeAppConfig(t *testing.T, appID string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.ConfigFile),
		[]byte("app_id: "+appID+"\n"), 0644))
	return dir
}

func TestResolveAppIDExplicitWins(t *testing.T) {
	client, _ := newCountingClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/apps/app_999", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"app_999","name":"other"}`))
	})

	// The config in the directory must lose against the explicit ident.
	dir := writeAppConfig(t, "app_from_config")

	id, err := resolveAppID(context.Background(), client, appQuery{
		ident:          "app_999",
		dir:            dir,
		nonInteractive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "app_999", id)
}

func TestResolveAppIDFromConfig(t *testing.T) {
	client, cs := newCountingClient(t, nil)
	dir := writeAppConfig(t, "app_from_config")

	id, err := resolveAppID(context.Background(), client, appQuery{
		dir:            dir,
		nonInteractive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "app_from_config", id)
	assert.Zero(t, cs.requests.Load(), "config resolution must not hit the API")
}

func TestResolveAppIDNonInteractiveFails(t *testing.T) {
	client, cs := newCountingClient(t, nil)

	_, err := resolveAppID(context.Background(), client, appQuery{
		dir:            t.TempDir(),
		nonInteractive: true,
	})
	require.ErrorIs(t, err, errNoApp)
	assert.Zero(t, cs.requests.Load(), "failing fast must not hit the API")
}

func TestRevealMutuallyExclusiveFlags(t *testing.T) {
	cmd := &cobra.Command{}

	reveal := &RevealSecret{All: true}
	err := reveal.Run(cmd, []string{"API_KEY"})
	require.ErrorContains(t, err, "mutually exclusive")

	reveal = &RevealSecret{AppDir: "/tmp/app"}
	err = reveal.Run(cmd, []string{"API_KEY", "app_123"})
	require.ErrorContains(t, err, "mutually exclusive")
}

func TestRenderSingle(t *testing.T) {
	secret := api.Secret{Name: "DB_PASSWORD", Value: "s3cr3t"}

	out, err := renderSingle(secret, "")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", out)

	out, err = renderSingle(secret, render.ListFormatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"value": "s3cr3t"`)
	assert.True(t, out[len(out)-1] == '\n')
}

func TestRenderSingleItemTableRejected(t *testing.T) {
	_, err := renderSingle(api.Secret{Name: "X", Value: "y"}, render.ListFormatItemTable)
	require.ErrorIs(t, err, render.ErrItemTableUnsupported)
}

func TestRenderAllPlain(t *testing.T) {
	out, err := renderAll([]api.Secret{
		{Name: "API_KEY", Value: `a"b`},
		{Name: "TOKEN", Value: "xyz"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "API_KEY=\"a\\\"b\"\nTOKEN=\"xyz\"\n", out)
}

func TestRenderAllEmpty(t *testing.T) {
	out, err := renderAll(nil, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderAllTable(t *testing.T) {
	out, err := renderAll([]api.Secret{{Name: "TOKEN", Value: "xyz"}}, render.ListFormatTable)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "TOKEN")
}
