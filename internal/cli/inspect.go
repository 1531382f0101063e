package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/yrpconv/internal/replay"
)

// InspectSummary counts the contents of a replay log.
type InspectSummary struct {
	Blocks  int            `json:"blocks"`
	Events  map[string]int `json:"events"`
	Queries int            `json:"queries"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "inspect <replay>",
		Short: "Summarize or dump a converted replay log",
		Long: `Decode a replay log written by convert and print a summary.

With --dump the whole log is written as indented JSON.

Examples:
  yrpconv inspect duel.yrpb
  yrpconv inspect duel.yrpb --dump`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], dump, cmd)
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "write every block as JSON")

	return cmd
}

func runInspect(opts *RootOptions, path string, dump bool, cmd *cobra.Command) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read replay", err)
	}
	log, err := replay.Decode(data)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to decode replay", err)
	}

	if dump {
		return replay.Dump(cmd.OutOrStdout(), log)
	}

	summary := summarize(log)
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return formatter.Success(summary)
	}

	p := newPrinter()
	w := cmd.OutOrStdout()
	p.Fprintf(w, "Replay: %s\n", path)
	p.Fprintf(w, "  Blocks: %d\n", summary.Blocks)
	p.Fprintf(w, "  Queries: %d\n", summary.Queries)
	for _, kind := range sortedKeys(summary.Events) {
		p.Fprintf(w, "  %s: %d\n", kind, summary.Events[kind])
	}
	if opts.Verbose {
		for i, blk := range log.Blocks() {
			if blk.Msg == nil {
				fmt.Fprintf(w, "  #%d empty\n", i)
				continue
			}
			kind := "queries"
			if blk.Msg.IsEvent() {
				kind = string(blk.Msg.Event.Kind())
			}
			fmt.Fprintf(w, "  #%d %s (%d queries)\n", i, kind, len(blk.Msg.Queries))
		}
	}
	return nil
}

func summarize(log *replay.Log) InspectSummary {
	s := InspectSummary{Blocks: log.Len(), Events: map[string]int{}}
	for _, blk := range log.Blocks() {
		if blk.Msg == nil {
			continue
		}
		if blk.Msg.IsEvent() {
			s.Events[string(blk.Msg.Event.Kind())]++
		}
		s.Queries += len(blk.Msg.Queries)
	}
	return s
}
