package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-contact-keeper/internal/adapter"
	"github.com/MKhiriev/go-contact-keeper/internal/client"
	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/models"
)

const appRole = "contact-keeper"

// runFunc is a command body that receives a ready client.
type runFunc func(ctx context.Context, app client.Client, args []string) error

type cli struct {
	overrides config.StructuredConfig
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "contact-keeper",
		Short:        "Offline-first contact book synchronized with a contacts service",
		Version:      info.BuildVersion(),
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Version}} (built %s, commit %s)\n", info.BuildDate(), info.BuildCommit()))

	flags := root.PersistentFlags()
	flags.StringVarP(&c.overrides.JSONFilePath, "config", "c", "", "JSON config file path")
	flags.StringVar(&c.overrides.Adapter.HTTPAddress, "server", "", "contacts service base URL")
	flags.DurationVar(&c.overrides.Adapter.RequestTimeout, "request-timeout", 0, "timeout of a single request to the service")
	flags.StringVar(&c.overrides.Storage.DB.DSN, "db", "", "local SQLite database file")
	flags.StringVar(&c.overrides.App.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&c.overrides.App.LogFile, "log-file", "", "log file path")
	flags.DurationVar(&c.overrides.Workers.SyncInterval, "sync-interval", 0, "period of the background sync used by watch")

	root.AddCommand(
		c.enrollCmd(),
		c.listCmd(),
		c.showCmd(),
		c.addCmd(),
		c.editCmd(),
		c.removeCmd(),
		c.syncCmd(),
		c.watchCmd(),
	)

	return root
}

// run wires the client for a single command and releases the local store
// afterwards.
func (c *cli) run(fn runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.GetClientConfig(&c.overrides)
		if err != nil {
			return err
		}

		log := logger.NewClientLogger(appRole, cfg.App.LogFile)
		if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
			return err
		}
		log.Debug().Str("command", cmd.Name()).Msg("starting command")

		storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
		if err != nil {
			return fmt.Errorf("open local store: %w", err)
		}
		defer storages.Close()

		contactsAdapter, err := adapter.NewHTTPContactsAdapter(cfg.Adapter, log)
		if err != nil {
			return fmt.Errorf("create contacts adapter: %w", err)
		}

		services := service.NewClientServices(storages, contactsAdapter, cfg.Workers, log)
		app := client.NewApp(services, cmd.OutOrStdout(), log)

		if err = fn(ctx, app, args); err != nil {
			log.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
			return err
		}
		return nil
	}
}

func parseLocalID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid contact id %q", arg)
	}
	return id, nil
}
