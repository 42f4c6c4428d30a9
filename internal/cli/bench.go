package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/randomuser"
	"github.com/wesleyorama2/randomuser/internal/config"
	"github.com/wesleyorama2/randomuser/internal/metrics"
	"github.com/wesleyorama2/randomuser/internal/output"
)

type benchOptions struct {
	filterOptions
	requests int
	batch    int
}

func newBenchCmd(global *globalOptions) *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure API latency with sequential requests",
		Long: `bench issues requests one after another and reports latency
percentiles and failures grouped by error kind. Failed requests do not
stop the run; an interrupt does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.requests < 1 {
				return fmt.Errorf("invalid --requests %d: must be at least 1", opts.requests)
			}
			if opts.batch < 0 || opts.batch > config.MaxCount {
				return fmt.Errorf("invalid --batch %d: must be between 0 and %d", opts.batch, config.MaxCount)
			}

			b, err := opts.apply(cmd, global, global.generator().Get())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rec := metrics.NewRecorder()
			for i := 0; i < opts.requests; i++ {
				start := time.Now()
				_, err := b.Fetch(ctx, opts.batch)
				elapsed := time.Since(start)
				if ctx.Err() != nil {
					break
				}
				rec.Record(elapsed, err == nil, failureCategory(err))
				if err != nil {
					slog.Debug("bench request failed", "request", i+1, "error", err)
				}
			}

			w := cmd.OutOrStdout()
			_, err = io.WriteString(w, output.FormatSummary(rec.Summary(), global.colorless(w)))
			return err
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.requests, "requests", "n", 10, "number of requests")
	cmd.Flags().IntVar(&opts.batch, "batch", 1, "users per request")

	return cmd
}

func failureCategory(err error) string {
	if err == nil {
		return ""
	}
	if kind := randomuser.KindOf(err); kind != 0 {
		return kind.String()
	}
	return "other"
}
