package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/redhat-data-and-ai/fivetran-console/internal/config"
	"github.com/redhat-data-and-ai/fivetran-console/internal/server"
)

var cfgFile string
var cfg config.C

func loadConfig() error {
	if cfgFile == "" {
		cfgFile = os.Getenv("FIVETRAN_CONSOLE_CONFIG")
	}

	if cfgFile == "" {
		// Run with defaults: local listener, interactive sessions only.
		cfg = config.FromRoot(nil)
		return nil
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	return errors.Wrapf(err, "failed to load configuration from '%s'", cfgFile)
}

func main() {
	var cmdServe = &cobra.Command{
		Use:   "serve",
		Short: "Start the console API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.BuildLogger(cfg)

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "fivetran-console",
		Short: "Administrative console for Fivetran connectors",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file; may also be specified in FIVETRAN_CONSOLE_CONFIG")

	rootCmd.AddCommand(cmdServe)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
