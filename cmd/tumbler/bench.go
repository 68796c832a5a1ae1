package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/tumblersat/tumbler"
)

// benchResult aggregates one difficulty's trials.
type benchResult struct {
	difficulty tumbler.Difficulty
	satRate    float64
	mean       time.Duration
	median     time.Duration
}

// newBenchCmd measures SAT rate and solve time per difficulty. Use it
// to re-tune the presets: the phase-transition preset is calibrated
// when its SAT rate sits near 50%.
func newBenchCmd() *cobra.Command {
	var (
		dials  int
		trials int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the difficulty presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			difficulties := []tumbler.Difficulty{
				tumbler.Trivial, tumbler.Easy, tumbler.Medium, tumbler.Hard, tumbler.PhaseTransition,
			}
			var results []benchResult
			for _, difficulty := range difficulties {
				res, err := benchDifficulty(difficulty, dials, trials, seed)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			fmt.Printf("%-18s %8s %12s %12s\n", "difficulty", "sat", "mean", "median")
			for _, r := range results {
				fmt.Printf("%-18s %7.1f%% %12s %12s\n",
					r.difficulty, r.satRate*100, r.mean.Round(time.Microsecond), r.median.Round(time.Microsecond))
			}

			pt := results[len(results)-1]
			switch {
			case pt.satRate < 0.4:
				fmt.Println("\nphase-transition SAT rate is below 40%: lower its negation_fraction or clause_ratio")
			case pt.satRate > 0.6:
				fmt.Println("\nphase-transition SAT rate is above 60%: raise its negation_fraction or clause_ratio")
			default:
				fmt.Println("\nphase-transition preset is calibrated (SAT rate within 40-60%)")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&dials, "dials", "n", 30, "number of dials per instance")
	cmd.Flags().IntVarP(&trials, "trials", "t", 20, "trials per difficulty")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base PRNG seed")
	return cmd
}

func benchDifficulty(difficulty tumbler.Difficulty, dials, trials int, seed int64) (benchResult, error) {
	times := make([]time.Duration, 0, trials)
	sat := 0
	for trial := 0; trial < trials; trial++ {
		in, _, err := tumbler.Generate(tumbler.Params{
			NumDials:   dials,
			Difficulty: difficulty,
			Seed:       seed + int64(trial),
		})
		if err != nil {
			return benchResult{}, fmt.Errorf("%s trial %d: %w", difficulty, trial, err)
		}
		out, err := tumbler.Solve(context.Background(), in)
		if err != nil {
			return benchResult{}, fmt.Errorf("%s trial %d: %w", difficulty, trial, err)
		}
		times = append(times, out.Stats.Elapsed)
		if out.Status == tumbler.Satisfiable {
			sat++
		}
		log.WithField("trial", trial).WithField("status", out.Status.String()).Debug("bench trial")
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	var total time.Duration
	for _, t := range times {
		total += t
	}
	return benchResult{
		difficulty: difficulty,
		satRate:    float64(sat) / float64(trials),
		mean:       total / time.Duration(trials),
		median:     times[trials/2],
	}, nil
}
