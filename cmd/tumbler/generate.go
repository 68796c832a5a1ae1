package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tumblersat/tumbler"
)

func newGenerateCmd() *cobra.Command {
	var (
		dials       int
		difficulty  string
		seed        int64
		presetsPath string
		outPath     string
		solnPath    string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a lock instance of a given difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := tumbler.Params{
				NumDials:   dials,
				Difficulty: tumbler.Difficulty(difficulty),
				Seed:       seed,
			}
			if params.Seed == 0 {
				params.Seed = time.Now().UnixNano()
			}
			if presetsPath != "" {
				f, err := os.Open(presetsPath)
				if err != nil {
					return err
				}
				params.Presets, err = tumbler.LoadPresets(f)
				f.Close()
				if err != nil {
					return err
				}
			}

			in, witness, err := tumbler.Generate(params)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"dials":      in.NumDials,
				"links":      len(in.Links),
				"clauses":    len(in.Clauses),
				"difficulty": difficulty,
				"seed":       params.Seed,
			}).Info("generated instance")

			if witness != nil && solnPath != "" {
				if err := tumbler.WriteSolutionFile(solnPath, witness); err != nil {
					return err
				}
			}
			if outPath != "" {
				return tumbler.WriteInstanceFile(outPath, in)
			}
			return tumbler.WriteInstance(os.Stdout, in)
		},
	}
	cmd.Flags().IntVarP(&dials, "dials", "n", 20, "number of dials")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(tumbler.Medium), "difficulty preset")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (0 means time-based)")
	cmd.Flags().StringVar(&presetsPath, "presets", "", "YAML file overriding the difficulty presets")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the instance to this file instead of stdout")
	cmd.Flags().StringVar(&solnPath, "solution", "", "also write the seed solution to this file (not available for phase-transition)")
	return cmd
}
