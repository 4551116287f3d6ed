package start

import (
	"passguard/cmd/passguard/start/server"

	"github.com/spf13/cobra"
)

func init() {
	Command.AddCommand(server.Command)
}

var Command = &cobra.Command{
	Use:   "start",
	Short: "Starts passguard services",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
