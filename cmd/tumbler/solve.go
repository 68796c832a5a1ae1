package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tumblersat/tumbler"
)

// logTracer forwards solver transitions to the debug log.
type logTracer struct{}

func (logTracer) Decide(dial int, value bool, depth int) {
	log.WithFields(logrus.Fields{"dial": dial, "value": value, "depth": depth}).Debug("decide")
}

func (logTracer) Backtrack(dial int, value bool, depth int) {
	log.WithFields(logrus.Fields{"dial": dial, "value": value, "depth": depth}).Debug("backtrack")
}

func newSolveCmd() *cobra.Command {
	var (
		timeout time.Duration
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "solve <instance.json>",
		Short: "Decide satisfiability of a lock instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := tumbler.ReadInstanceFile(args[0])
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"dials":   in.NumDials,
				"links":   len(in.Links),
				"clauses": len(in.Clauses),
			}).Info("loaded instance")

			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			out, err := tumbler.Solve(ctx, in, tumbler.WithTracer(logTracer{}))
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"decisions":    out.Stats.Decisions,
				"backtracks":   out.Stats.Backtracks,
				"propagations": out.Stats.Propagations,
				"elapsed":      out.Stats.Elapsed,
			}).Info("search finished")

			switch out.Status {
			case tumbler.Satisfiable:
				fmt.Println("SAT")
				if outPath != "" {
					return tumbler.WriteSolutionFile(outPath, out.Config)
				}
				return tumbler.WriteSolution(os.Stdout, out.Config)
			case tumbler.Timeout:
				return fmt.Errorf("search timed out after %s; satisfiability is undetermined", timeout)
			default:
				fmt.Println("UNSAT")
				return nil
			}
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "give up after this long (0 means no limit)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the solution to this file instead of stdout")
	return cmd
}
