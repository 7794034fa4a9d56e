package cli

import (
	"fmt"

	"github.com/gptscript-ai/cmd"
	"github.com/spf13/cobra"
	"github.com/vesselhq/vessel/pkg/api"
	"github.com/vesselhq/vessel/pkg/config"
	"github.com/vesselhq/vessel/pkg/mvl"
	"github.com/vesselhq/vessel/pkg/version"
)

var log = mvl.Package()

type Vessel struct {
	api.Options
	Debug      bool   `usage:"Enable debug logging"`
	Quiet      bool   `usage:"No output logging" short:"q"`
	ConfigFile string `usage:"Path to the CLI config file (default: $XDG_CONFIG_HOME/vessel/config.json)"`
}

func New() *cobra.Command {
	return cmd.Command(&Vessel{})
}

func (v *Vessel) Customize(c *cobra.Command) {
	c.Use = version.ProgramName
	c.Version = version.Get()
	c.Short = "Deploy and manage apps on the Vessel platform"
	c.AddCommand(cmd.Command(&App{root: v}))
}

func (v *Vessel) Pre(*cobra.Command, []string) error {
	if v.Debug {
		mvl.SetDebug()
	} else {
		mvl.SetSimpleFormat()
	}
	if v.Quiet {
		mvl.SetError()
	}
	return nil
}

func (v *Vessel) Run(c *cobra.Command, _ []string) error {
	return c.Help()
}

// Client builds the API client from, in ascending precedence, the stored
// CLI config, VESSEL_* environment variables, and flags.
func (v *Vessel) Client() (*api.Client, error) {
	cfg, err := config.ReadCLIConfig(v.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CLI config: %w", err)
	}
	log.Debugf("using CLI config at %s", cfg.Location())

	return api.NewClient(api.Options{
		Endpoint: cfg.Endpoint,
		Token:    cfg.Token,
	}, api.FromEnv(), v.Options)
}
