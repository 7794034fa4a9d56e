package cli

import (
	"os"

	cmd2 "github.com/gptscript-ai/cmd"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Secrets struct {
	root *Vessel
}

func (s *Secrets) Customize(cmd *cobra.Command) {
	cmd.Use = "secrets"
	cmd.Aliases = []string{"secret"}
	cmd.Short = "Manage the secrets attached to an app"
	cmd.Args = cobra.NoArgs

	// Prompting defaults off whenever stdin is not a terminal so scripts
	// fail fast instead of hanging on a prompt.
	nonInteractive := !term.IsTerminal(int(os.Stdin.Fd()))
	cmd.AddCommand(cmd2.Command(&RevealSecret{root: s.root, NonInteractive: nonInteractive}))
	cmd.AddCommand(cmd2.Command(&ListSecrets{root: s.root, NonInteractive: nonInteractive}))
}

func (s *Secrets) Run(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
