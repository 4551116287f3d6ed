package passphrase

import (
	"encoding/json"
	"fmt"

	"passguard/internal/cli"
	"passguard/internal/config"
	"passguard/internal/generate"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "words",
		Short:        'w',
		DefaultValue: 4,
		Usage:        "Defines the number of words in the generated passphrase",
		Type:         cli.FlagTypeInteger,
	},
	{
		Name:         "separator",
		Short:        's',
		DefaultValue: " ",
		Usage:        "Defines the separator between words",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

type output struct {
	Passphrase string `json:"passphrase"`
	Rating     string `json:"rating"`
	Score      int    `json:"score"`
}

var Command = &cobra.Command{
	Use:     "passphrase",
	Aliases: []string{"pp"},
	Short:   "Generates a random passphrase",
	Long:    "Generates a random passphrase from a built-in wordlist; passphrases are easier to memorise than an equivalent-length random character soup",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := config.ResolvePolicy(viper.GetString("policy"))
		if err != nil {
			return err
		}

		generated, err := generate.Passphrase(viper.GetInt("words"), viper.GetString("separator"))
		if err != nil {
			return fmt.Errorf("failed to generate passphrase: %s", err)
		}
		assessment := policy.Evaluate(generated)
		logrus.Debugf("generated passphrase rates %s with score %v", assessment.Rating, assessment.Score)

		switch viper.GetString("output") {
		case "json":
			marshalled, err := json.MarshalIndent(output{
				Passphrase: generated,
				Rating:     string(assessment.Rating),
				Score:      assessment.Score,
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal output: %s", err)
			}
			fmt.Println(string(marshalled))
		default:
			fmt.Println(generated)
		}
		return nil
	},
}
