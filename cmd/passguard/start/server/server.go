package server

import (
	"fmt"

	"passguard/internal/cli"
	"passguard/internal/common"
	"passguard/internal/config"
	"passguard/internal/server"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "listen-addr",
		DefaultValue: "0.0.0.0:54321",
		Usage:        "Defines the interface and port the server listens on",
		Type:         cli.FlagTypeString,
	},
	{
		Name:         "auth-token",
		DefaultValue: "",
		Usage:        "When specified, requests require this value as a bearer token",
		Type:         cli.FlagTypeString,
	},
}

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "server",
	Aliases: []string{"s"},
	Short:   "Starts the password assessment server",
	Long:    "Starts an http server exposing the strength policy at POST /v1/assessments so other services can evaluate candidate passwords without shipping the denylists themselves",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := config.ResolvePolicy(viper.GetString("policy"))
		if err != nil {
			return err
		}

		serviceLogs := make(chan common.ServiceLog, 64)
		common.StartServiceLogLoop(serviceLogs)

		serverOpts := server.StartHttpServerOpts{
			Addr:        viper.GetString("listen-addr"),
			Done:        make(chan common.Done),
			Policy:      policy,
			ServiceLogs: serviceLogs,
		}
		if authToken := viper.GetString("auth-token"); authToken != "" {
			serverOpts.BearerAuth = &server.StartHttpServerBearerAuthOpts{
				Token: authToken,
			}
		}

		logrus.Infof("starting assessment server with %v denylist entries in the policy", len(policy.Denylist))
		if err := server.StartHttpServer(serverOpts); err != nil {
			return fmt.Errorf("failed to start server: %s", err)
		}
		return nil
	},
}
