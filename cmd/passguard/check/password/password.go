package password

import (
	"encoding/json"
	"errors"
	"fmt"

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
		Usage:        "The password to evaluate (you will be prompted when this is left out, which is also the safer way to pass it in)",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "permissive",
		DefaultValue: false,
		Usage:        "When this flag is specified, a weak rating does not cause a non-zero exit code",
		Type:         cli.FlagTypeBool,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "password",
	Aliases: []string{"pw"},
	Short:   "Evaluates a password against the strength policy",
	Long:    "Evaluates a password against the strength policy and prints a rating (weak/moderate/strong) with feedback on what drags it down. Exits non-zero on a weak rating so this slots into scripts and hooks",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := config.ResolvePolicy(viper.GetString("policy"))
		if err != nil {
			return err
		}

		inputPassword := viper.GetString("password")
		if inputPassword != "" {
			fmt.Println(
				"⚠️ !!! WARNING !!! ⚠️\n" +
					"Using a password directly on the command line isn't generally recommended\n" +
					"since anyone can see it using the `history` command. Run `history -c` to\n" +
					"remove this from this shell if this is a shared shell")
			fmt.Println("")
		}

		model := cli.CreatePasswordPrompt(cli.PasswordPromptOpts{
			Title:       "Enter a password/passphrase to test:",
			Placeholder: "Your candidate password",
			Value:       inputPassword,
		})
		prompt := tea.NewProgram(model)
		if _, err := prompt.Run(); err != nil {
			return fmt.Errorf("failed to get user input: %s", err)
		}
		if model.GetExitCode() == cli.PromptCancelled {
			return errors.New("user cancelled action")
		}

		logrus.Debugf("evaluating password against policy with %v denylist entries...", len(policy.Denylist))
		assessment := policy.Evaluate(model.GetValue())

		switch viper.GetString("output") {
		case "json":
			output, err := json.MarshalIndent(assessment, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal assessment: %s", err)
			}
			fmt.Println(string(output))
		default:
			fmt.Print(cli.RenderAssessment(assessment))
		}

		if assessment.Rating == strength.RatingWeak && !viper.GetBool("permissive") {
			return errors.New("password rated weak")
		}
		return nil
	},
}
