package check

import (
	"passguard/cmd/passguard/check/password"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(password.Command)
}

var Command = &cobra.Command{
	Use:   "check",
	Short: "Runs strength checks on credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
