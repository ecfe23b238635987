// Command rwbench drives the reader-writer mutex variants in this module
// under configurable load and reports throughput as CSV.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/synctbench/urwmutex/internal/bench"
	"github.com/synctbench/urwmutex/internal/rwlog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		readers  int
		writers  int
		duration time.Duration
		all      bool
		verbose  bool
		variant  string
	)

	cmd := &cobra.Command{
		Use:   "rwbench",
		Short: "Benchmark the reader-writer mutex variants in this module",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.InfoLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			log, err := rwlog.New(level)
			if err != nil {
				return fmt.Errorf("rwbench: building logger: %w", err)
			}
			defer log.Sync()

			variants := []bench.Variant{bench.Variant(variant)}
			if all {
				variants = bench.AllVariants()
			}

			ctx := cmd.Context()
			var results []bench.Result
			for _, v := range variants {
				cfg := bench.Config{Variant: v, Readers: readers, Writers: writers, Duration: duration}
				res, err := bench.Run(ctx, cfg, log)
				if err != nil {
					return fmt.Errorf("rwbench: running %s: %w", v, err)
				}
				results = append(results, res)
			}

			return bench.WriteCSV(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", string(bench.VariantSpin), "variant to benchmark (ignored with --all)")
	cmd.Flags().BoolVar(&all, "all", false, "benchmark every registered variant")
	cmd.Flags().IntVarP(&readers, "readers", "r", 8, "number of reader goroutines")
	cmd.Flags().IntVarP(&writers, "writers", "w", 1, "number of writer goroutines")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 2*time.Second, "measured run duration")

	cmd.SetContext(context.Background())
	return cmd
}
