package hash

import (
	"errors"
	"fmt"

	"passguard/internal/auth"
	"passguard/internal/cli"
	"passguard/internal/config"
	"passguard/internal/strength"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "password",
		DefaultValue: "",
		Usage:        "The password to hash (you will be prompted when this is left out)",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "force",
		Short:        'f',
		DefaultValue: false,
		Usage:        "When this flag is specified, weak passwords are hashed anyway",
		Type:         cli.FlagTypeBool,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:   "hash",
	Short: "Hashes a password with argon2id",
	Long:  "Evaluates the password against the strength policy then derives an argon2id hash in the standard encoded form. Weak passwords are refused unless --force is specified",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := config.ResolvePolicy(viper.GetString("policy"))
		if err != nil {
			return err
		}

		model := cli.CreatePasswordPrompt(cli.PasswordPromptOpts{
			Title:       "Enter the password to hash:",
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
		password := model.GetValue()

		assessment := policy.Evaluate(password)
		if assessment.Rating == strength.RatingWeak && !viper.GetBool("force") {
			fmt.Println("⛔️ This password rates weak, hash it with --force if you must:")
			for _, feedback := range assessment.Feedback {
				fmt.Printf("  > %s\n", feedback)
			}
			return errors.New("password rated weak")
		}

		logrus.Debugf("deriving argon2id hash...")
		encoded, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %s", err)
		}
		fmt.Println(encoded)
		return nil
	},
}
