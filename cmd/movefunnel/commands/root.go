package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"movefunnel/internal/app"
)

var (
	configPath string
	logLevel   string
	addr       string
	driver     string
	passphrase string

	cfg app.Config
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "movefunnel",
		Short:         "Moving-quote funnel server and tools",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd.Flags(), &loaded)
			if err := loaded.Validate(); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./movefunnel.yaml or ~/.movefunnel/movefunnel.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&addr, "addr", "", "listen address, e.g. :8080")
	root.PersistentFlags().StringVar(&driver, "storage", "", "snapshot storage driver (file, sqlite, memory)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to encrypt snapshots at rest")

	root.AddCommand(serveCmd(), estimateCmd(), catalogCmd(), snapshotCmd(), configCmd())
	return root
}

// applyFlags overlays the persistent flags the user actually set.
func applyFlags(fs *pflag.FlagSet, c *app.Config) {
	if fs.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if fs.Changed("addr") {
		c.Server.Addr = addr
	}
	if fs.Changed("storage") {
		c.Storage.Driver = driver
	}
	if fs.Changed("passphrase") {
		c.Storage.Passphrase = passphrase
	}
}
