package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vesselhq/vessel/pkg/render"
)

type ListSecrets struct {
	root           *Vessel
	AppDir         string `usage:"Directory the app config is read from instead of an app argument" local:"true"`
	NonInteractive bool   `usage:"Do not prompt for missing values"`
	render.Options
}

func (c *ListSecrets) Customize(cmd *cobra.Command) {
	cmd.Use = "list [APP]"
	cmd.Aliases = []string{"ls"}
	cmd.SilenceUsage = true
	cmd.Short = "List the names of the secrets attached to an app"
	cmd.Args = cobra.MaximumNArgs(1)
}

func (c *ListSecrets) Run(cmd *cobra.Command, args []string) error {
	var ident string
	if len(args) > 0 {
		ident = args[0]
	}
	if ident != "" && c.AppDir != "" {
		return fmt.Errorf("an app argument and --app-dir are mutually exclusive")
	}

	format, err := c.ListFormat()
	if err != nil {
		return err
	}
	if format == "" {
		format = render.ListFormatTable
	}

	client, err := c.root.Client()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	appID, err := resolveAppID(ctx, client, appQuery{
		ident:          ident,
		dir:            c.AppDir,
		nonInteractive: c.NonInteractive,
	})
	if err != nil {
		return err
	}

	secrets, err := client.ListAppSecrets(ctx, appID)
	if err != nil {
		return err
	}

	out, err := render.SecretNames(secrets, format)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
