package generate

import (
	"passguard/cmd/passguard/generate/passphrase"
	"passguard/cmd/passguard/generate/password"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(passphrase.Command)
	Command.AddCommand(password.Command)
}

var Command = &cobra.Command{
	Use:   "generate",
	Short: "Generates strong credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
