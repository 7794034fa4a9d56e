package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vesselhq/vessel/pkg/api"
	"github.com/vesselhq/vessel/pkg/prompt"
	"github.com/vesselhq/vessel/pkg/render"
)

type RevealSecret struct {
	root           *Vessel
	AppDir         string `usage:"Directory the app config is read from instead of an app argument" local:"true"`
	All            bool   `usage:"Reveal every secret attached to the app" local:"true"`
	NonInteractive bool   `usage:"Do not prompt for missing values"`
	render.Options
}

func (c *RevealSecret) Customize(cmd *cobra.Command) {
	cmd.Use = "reveal [NAME] [APP]"
	cmd.SilenceUsage = true
	cmd.Short = "Reveal the plaintext value of a secret attached to an app"
	cmd.Args = cobra.MaximumNArgs(2)
}

func (c *RevealSecret) Run(cmd *cobra.Command, args []string) error {
	var name, ident string
	if len(args) > 0 {
		name = args[0]
	}
	if len(args) > 1 {
		ident = args[1]
	}

	if c.All && name != "" {
		return fmt.Errorf("a secret name and --all are mutually exclusive")
	}
	if ident != "" && c.AppDir != "" {
		return fmt.Errorf("an app argument and --app-dir are mutually exclusive")
	}

	format, err := c.ListFormat()
	if err != nil {
		return err
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

	if c.All {
		secrets, err := client.RevealAppSecrets(ctx, appID)
		if err != nil {
			return err
		}
		if len(secrets) == 0 && !c.root.Quiet {
			_, _ = fmt.Fprintln(os.Stderr, color.YellowString("app %s has no secrets", appID))
		}
		out, err := renderAll(secrets, format)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	if name == "" {
		if c.NonInteractive {
			return errNoSecretName
		}
		name, err = prompt.Input("Enter the name of the secret")
		if err != nil {
			return err
		}
	}

	secret, err := client.GetAppSecret(ctx, appID, name)
	if err != nil {
		return err
	}

	out, err := renderSingle(*secret, format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// renderSingle yields exactly what goes to stdout for one secret. With no
// format requested that is the raw value, without a trailing newline, so
// the output can be substituted directly into shell commands.
func renderSingle(secret api.Secret, format render.ListFormat) (string, error) {
	if format == "" {
		return secret.Value, nil
	}

	itemFormat, err := format.ItemFormat()
	if err != nil {
		return "", err
	}
	out, err := render.Secret(secret, itemFormat)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

// renderAll yields what goes to stdout for a secret listing. With no
// format requested each secret becomes one NAME="VALUE" line with the
// value sanitized for shell consumption.
func renderAll(secrets []api.Secret, format render.ListFormat) (string, error) {
	if format == "" {
		var b strings.Builder
		for _, secret := range secrets {
			fmt.Fprintf(&b, "%s=\"%s\"\n", secret.Name, render.SanitizeValue(secret.Value))
		}
		return b.String(), nil
	}

	out, err := render.Secrets(secrets, format)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}
