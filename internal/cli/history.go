package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/roach88/yrpconv/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversions",
		Long: `List the conversions recorded with convert --db, oldest first.

Examples:
  yrpconv history --db ./history.db
  yrpconv history --db ./history.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (default from config)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	database := opts.Database
	if database == "" {
		database = opts.Config.Database
	}
	if database == "" {
		return NewExitError(ExitCommandError, "no database: pass --db or set database in the config")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	conversions, err := st.ListConversions(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list conversions", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return formatter.Success(conversions)
	}

	w := cmd.OutOrStdout()
	if len(conversions) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}
	p := newPrinter()
	for _, c := range conversions {
		p.Fprintf(w, "%d  %s  %s  %d blocks  %s\n", c.Seq, c.ID, c.Source, c.Stats.Blocks, humanize.Bytes(uint64(c.OutputBytes)))
	}
	return nil
}
