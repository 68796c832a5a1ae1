package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tumblersat/tumbler"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <instance.json> <solution.json>",
		Short: "Check whether a configuration opens a lock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := tumbler.ReadInstanceFile(args[0])
			if err != nil {
				return err
			}
			cfg, err := tumbler.ReadSolutionFile(args[1])
			if err != nil {
				return err
			}
			ok, violations := tumbler.Verify(in, cfg)
			if ok {
				fmt.Println("VALID: all constraints are satisfied")
				return nil
			}
			for _, v := range violations {
				fmt.Println(v)
			}
			return fmt.Errorf("configuration does not open the lock: %d violations", len(violations))
		},
	}
}
