package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(app.Run).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(ctx context.Context, opts app.Options) error

func newRootCmd(runApp runFunc) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "roster",
		Short: "Browse the employee directory in the terminal",
		Long: `roster pages through a remote employee directory, with sorting, search,
table and card views, and simulated edit, flag and delete actions.

Logs are written to ~/.local/state/roster/roster.log by default.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (optional)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (optional)")
	flags.StringVar(&opts.Endpoint, "endpoint", "", "directory API endpoint override")
	flags.BoolVar(&opts.Debug, "debug", false, "log at debug level")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the roster version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "roster %s\n", version)
		},
	})

	return root
}
