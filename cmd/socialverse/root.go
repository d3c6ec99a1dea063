package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialverse/socialverse"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootFlags struct {
	configPath string
	logLevel   string
	dev        bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "socialverse",
		Short:         "Persistent social graph, feed and activity log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file (defaults apply when empty)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override log_level from the config")
	root.PersistentFlags().BoolVar(&flags.dev, "dev", false, "human-readable development logging")

	root.AddCommand(newReplayCmd(flags), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "socialverse", version)
		},
	}
}

// loadConfig resolves the config file and the --log-level override.
func (f *rootFlags) loadConfig() (socialverse.Config, error) {
	cfg := socialverse.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = socialverse.LoadConfig(f.configPath); err != nil {
			return cfg, err
		}
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}

	return cfg, cfg.Validate()
}

// newLogger builds a production (JSON) or development (console) logger at cfg's level.
func (f *rootFlags) newLogger(cfg socialverse.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if f.dev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = cfg.Level()

	return zc.Build()
}
