package main

import (
	"context"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"github.com/willbeason/boom/pkg/config"
	"github.com/willbeason/boom/pkg/logging"
	"log/slog"
	"os"
	"os/signal"
)

// settings are shared by every subcommand.
type settings struct {
	cfg        config.Config
	configPath string
	verbose    bool
	log        *slog.Logger
}

func mainCmd() *cobra.Command {
	s := &settings{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "boom",
		Short: "A living, recursively generated 3D tree",
		Args:  cobra.ExactArgs(0),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			s.log = logging.New(cmd.ErrOrStderr(), s.verbose)
			gg.SetLogger(s.log)

			return s.cfg.Resolve(s.configPath, cmd.Flags())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&s.configPath, "config", "c", "", "TOML file of settings; flags take precedence")
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "log per-frame statistics")
	s.cfg.BindFlags(flags)

	cmd.AddCommand(
		windowCmd(s),
		termCmd(s),
		snapshotCmd(s),
		recordCmd(s),
		statsCmd(s),
	)

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
