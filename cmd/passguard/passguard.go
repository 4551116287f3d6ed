package passguard

import (
	"fmt"
	"os"
	"strings"

	"passguard/cmd/passguard/check"
	"passguard/cmd/passguard/generate"
	"passguard/cmd/passguard/hash"
	"passguard/cmd/passguard/start"
	"passguard/cmd/passguard/verify"
	"passguard/internal/cli"
	"passguard/internal/common"
	"passguard/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var availableOutputs = []string{
	"text",
	"json",
}

var availableLogLevels = []string{
	string(common.LogLevelTrace),
	string(common.LogLevelDebug),
	string(common.LogLevelInfo),
	string(common.LogLevelWarn),
	string(common.LogLevelError),
}

var persistentFlags cli.Flags = cli.Flags{
	{
		Name:         "config",
		Short:        'C',
		DefaultValue: "~/.passguard/config",
		Usage:        "Defines the location of the global configuration used",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "log-level",
		Short:        'l',
		DefaultValue: "info",
		Usage:        fmt.Sprintf("Sets the log level (one of [%s])", strings.Join(availableLogLevels, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "output",
		Short:        'o',
		DefaultValue: "text",
		Usage:        fmt.Sprintf("Sets the output format where applicable (one of [%s])", strings.Join(availableOutputs, ", ")),
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "policy",
		Short:        'p',
		DefaultValue: "",
		Usage:        "Defines the location of a yaml file overriding the default strength policy",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	cobra.AddTemplateFunc("prependText", func() string {
		return cli.Logo + "\n"
	})
	Command.SetHelpTemplate(`{{ prependText }}` + Command.HelpTemplate())
	Command.SetVersionTemplate(cli.Logo + "\n" + `{{with .DisplayName}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}`)

	Command.AddCommand(check.Command)
	Command.AddCommand(generate.Command)
	Command.AddCommand(hash.Command)
	Command.AddCommand(start.Command)
	Command.AddCommand(verify.Command)
	Command.SilenceErrors = true
	Command.SilenceUsage = true

	persistentFlags.AddToCommand(Command, true)

	logrus.SetOutput(os.Stderr)
	cobra.OnInitialize(func() {
		persistentFlags.BindViper(Command, true)
		cli.InitLogging(viper.GetString("log-level"))
		configPath := viper.GetString("config")
		logrus.Debugf("using configuration at path[%s]", configPath)
		if err := config.LoadGlobal(configPath); err != nil {
			logrus.Warnf("failed to load global configuration: %s", err)
		}
	})

	cli.InitConfig()
}

var Command = &cobra.Command{
	Use:     "passguard",
	Short:   "Password strength checks for people who should know better",
	Version: config.GetVersion(),
	Long:    "Evaluates candidate passwords against a heuristic strength policy, suggests stronger replacements, and hashes what passes muster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
