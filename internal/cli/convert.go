package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/roach88/yrpconv/internal/codec/ocgcore"
	"github.com/roach88/yrpconv/internal/config"
	"github.com/roach88/yrpconv/internal/store"
	"github.com/roach88/yrpconv/internal/transcode"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Output   string
	Database string

	// IDGenerator allows overriding conversion IDs (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator store.IDGenerator
}

// ConvertResult is the payload reported after a successful convert.
type ConvertResult struct {
	ID     string          `json:"id,omitempty"`
	Input  string          `json:"input"`
	Output string          `json:"output"`
	Bytes  int             `json:"bytes"`
	Stats  transcode.Stats `json:"stats"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Transcode a legacy message stream into a replay log",
		Long: `Transcode a legacy core message stream into a replay log.

The input is the raw message stream of a replay: each message is a type
byte, a little-endian payload size and the payload. Conversion stops early,
keeping what was decoded, at the old replay format marker (type 231).

Exit codes:
  0 - Converted
  2 - Command error (unreadable input, unwritable output, database error)
  6 - Truncated stream
  7 - Special message could not be resolved
  8 - Unknown core message type
  9 - Encoder consumed a different size than declared

Examples:
  yrpconv convert duel.bin
  yrpconv convert duel.bin -o duel.yrpb --db ./history.db
  yrpconv convert duel.bin --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default <input><output_suffix>)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the conversion in this SQLite database")

	return cmd
}

func runConvert(opts *ConvertOptions, input string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	formatter.VerboseLog("Read %d bytes from %s", len(data), input)

	res, err := transcode.Transcode(data, ocgcore.New())
	if err != nil {
		slog.Error("transcode failed", "input", input, "error", err)
		if opts.Format == "json" {
			class, _ := transcode.ClassOf(err)
			_ = formatter.Error(string(class), err.Error(), nil)
		}
		return WrapExitError(TranscodeExitCode(err), "failed to convert "+input, err)
	}

	output := opts.Output
	if output == "" {
		suffix := opts.Config.OutputSuffix
		if suffix == "" {
			suffix = config.Default().OutputSuffix
		}
		output = input + suffix
	}
	if err := os.WriteFile(output, res.Data, 0o644); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	slog.Info("replay written",
		"output", output,
		"blocks", res.Stats.Blocks,
		"size", humanize.Bytes(uint64(len(res.Data))),
	)

	result := ConvertResult{
		Input:  input,
		Output: output,
		Bytes:  len(res.Data),
		Stats:  res.Stats,
	}

	database := opts.Database
	if database == "" {
		database = opts.Config.Database
	}
	if database != "" {
		id, err := recordConversion(cmd.Context(), database, opts.IDGenerator, input, data, res)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to record conversion", err)
		}
		result.ID = id
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return outputConvertText(formatter, result)
}

// recordConversion appends the run to the history database.
func recordConversion(ctx context.Context, path string, gen store.IDGenerator, input string, data []byte, res *transcode.Result) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}

	st, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	conv := store.NewConversion(gen.Generate(), input, data, res)
	earlier, err := st.FindByInput(ctx, conv.InputSHA256)
	if err != nil {
		return "", err
	}
	if len(earlier) > 0 {
		slog.Info("input converted before", "previous_id", earlier[len(earlier)-1].ID, "times", len(earlier))
	}

	seq, err := st.RecordConversion(ctx, conv)
	if err != nil {
		return "", err
	}
	slog.Debug("conversion recorded", "id", conv.ID, "seq", seq)
	return conv.ID, nil
}

func outputConvertText(f *OutputFormatter, r ConvertResult) error {
	p := newPrinter()
	p.Fprintf(f.Writer, "Converted %s -> %s\n", r.Input, r.Output)
	p.Fprintf(f.Writer, "  Blocks: %d (%d messages, %d swallowed)\n", r.Stats.Blocks, r.Stats.Messages, r.Stats.Swallowed)
	p.Fprintf(f.Writer, "  Queries dropped: %d, fields cleared: %d\n", r.Stats.DroppedQueries, r.Stats.ClearedFields)
	p.Fprintf(f.Writer, "  Output: %s\n", humanize.Bytes(uint64(r.Bytes)))
	if r.Stats.StoppedAtSentinel {
		fmt.Fprintln(f.Writer, "  Stopped at old replay format marker")
	}
	if r.ID != "" {
		fmt.Fprintf(f.Writer, "  Recorded as %s\n", r.ID)
	}
	return nil
}
