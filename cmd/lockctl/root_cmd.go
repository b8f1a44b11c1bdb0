package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/document-lock/internal/app"
	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/config"
)

// opener wires the coordinator for one command invocation
type opener func(ctx context.Context, flags *globalFlags) (*app.App, error)

type globalFlags struct {
	configFile string
	logLevel   string
	migrate    bool
}

func newRootCommand(open opener) *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "lockctl",
		Short:         "Inspect and administer document locks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file (defaults to configs/<environment>.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&flags.migrate, "migrate", false, "apply schema migrations before running the command")

	cmd.AddCommand(
		newListCommand(open, flags),
		newShowCommand(open, flags),
		newAcquireCommand(open, flags),
		newReleaseCommand(open, flags),
		newConflictsCommand(open, flags),
	)
	return cmd
}

func openFromConfig(ctx context.Context, flags *globalFlags) (*app.App, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configFile != "" {
		cfg, err = config.LoadConfigFile(flags.configFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewZapLogger(logger.Options{
		Production:  false,
		Level:       coreport.ParseLogLevel(flags.logLevel),
		ServiceName: "lockctl",
	})
	return app.New(ctx, cfg, log, app.Options{Migrate: flags.migrate})
}

// withApp opens the application, runs fn and closes it again
func withApp(cmd *cobra.Command, open opener, flags *globalFlags, fn func(a *app.App) error) error {
	ctx := cmd.Context()
	a, err := open(ctx, flags)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close(context.WithoutCancel(ctx)) }()
	return fn(a)
}
