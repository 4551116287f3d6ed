package password

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
		Name:         "length",
		Short:        'n',
		DefaultValue: 20,
		Usage:        "Defines the number of characters in the generated password",
		Type:         cli.FlagTypeInteger,
	},
}

func init() {
	flags.AddToCommand(Command)
}

type output struct {
	Password string `json:"password"`
	Rating   string `json:"rating"`
	Score    int    `json:"score"`
}

var Command = &cobra.Command{
	Use:     "password",
	Aliases: []string{"pw"},
	Short:   "Generates a random password",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := config.ResolvePolicy(viper.GetString("policy"))
		if err != nil {
			return err
		}

		generated, err := generate.Password(viper.GetInt("length"))
		if err != nil {
			return fmt.Errorf("failed to generate password: %s", err)
		}
		assessment := policy.Evaluate(generated)
		logrus.Debugf("generated password rates %s with score %v", assessment.Rating, assessment.Score)

		switch viper.GetString("output") {
		case "json":
			marshalled, err := json.MarshalIndent(output{
				Password: generated,
				Rating:   string(assessment.Rating),
				Score:    assessment.Score,
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
