package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/streamtabs/internal/app"
)

const maxFilters = 9

var errUsage = errors.New("usage")

// runner starts a session; replaced in tests.
type runner func(ctx context.Context, opts app.Options) error

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(term.IsTerminal, app.Run)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(root.ErrOrStderr())
			return 2
		}
		fmt.Fprintf(root.ErrOrStderr(), "streamtabs: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(isTerminal func(fd int) bool, start runner) *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "streamtabs <filter>...",
		Short: "Split piped lines into tabs, one per substring filter",
		Long: `streamtabs reads lines from standard input and shows them in tabs:
tab 0 holds every line and tabs 1-9 hold the lines containing each filter.

  tail -f app.log | streamtabs error warn info`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := nonEmpty(args)
			if len(filters) == 0 || len(filters) > maxFilters {
				return errUsage
			}
			if !isTerminal(int(os.Stdout.Fd())) {
				return errors.New("stdout is not a terminal")
			}
			if opts.FollowPath == "" && isTerminal(int(os.Stdin.Fd())) {
				return errors.New("stdin is a terminal; pipe lines in or use --follow")
			}
			opts.Filters = filters
			return start(cmd.Context(), opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/streamtabs/config.toml)")
	flags.IntVar(&opts.Capacity, "capacity", 0, "lines kept per tab (overrides config)")
	flags.StringVar(&opts.Theme, "theme", "", "color theme: Nightfox, Kanagawa or Slate")
	flags.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.FollowPath, "follow", "", "follow a file instead of reading stdin")
	flags.IntVar(&opts.Backfill, "backfill", 10, "existing lines to show when following a file")
	return cmd
}

func nonEmpty(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func printUsage(w io.Writer) {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "Usage: %s <filter1> <filter2> ...\n\nExample:\n  tail -f app.log | %s error warn info\n", name, name)
}
