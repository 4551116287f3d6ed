package verify

import (
	"errors"
	"fmt"

	"passguard/internal/auth"
	"passguard/internal/cli"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "hash",
		DefaultValue: "",
		Usage:        "The encoded argon2id hash to verify the password against",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "The password to verify (you will be prompted when this is left out)",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "verify",
	Short: "Verifies a password against an argon2id hash",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded := viper.GetString("hash")
		if encoded == "" {
			return errors.New("failed to receive a hash, specify one via --hash")
		}

		model := cli.CreatePasswordPrompt(cli.PasswordPromptOpts{
			Title:       "Enter the password to verify:",
			Placeholder: "Your password",
			Value:       viper.GetString("password"),
		})
		prompt := tea.NewProgram(model)
		if _, err := prompt.Run(); err != nil {
			return fmt.Errorf("failed to get user input: %s", err)
		}
		if model.GetExitCode() == cli.PromptCancelled {
			return errors.New("user cancelled action")
		}

		ok, err := auth.VerifyPassword(model.GetValue(), encoded)
		if err != nil {
			return fmt.Errorf("failed to verify password: %s", err)
		}
		if !ok {
			fmt.Println("⛔️ The password does not match the hash")
			return errors.New("password mismatch")
		}
		fmt.Println("✅ The password matches the hash")
		return nil
	},
}
