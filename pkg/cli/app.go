package cli

import (
	cmd2 "github.com/gptscript-ai/cmd"
	"github.com/spf13/cobra"
)

type App struct {
	root *Vessel
}

func (a *App) Customize(cmd *cobra.Command) {
	cmd.Use = "app"
	cmd.Aliases = []string{"apps"}
	cmd.Short = "Manage apps deployed on the platform"
	cmd.Args = cobra.NoArgs
	cmd.AddCommand(cmd2.Command(&Secrets{root: a.root}))
}

func (a *App) Run(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
