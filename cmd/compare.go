package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/disk-sched-sim/sim"
	"github.com/inference-sim/disk-sched-sim/sim/trace"
)

// comparison is one row of the compare table.
type comparison struct {
	Policy  sim.Policy
	Summary *trace.Summary
	Err     error // set when the policy rejects the inputs
}

// compareAll runs every policy on the same inputs. Rows are ordered by total
// seek, ties by declaration order; rejected policies come last.
func compareAll(engine *sim.Engine, p sim.Params) ([]comparison, error) {
	rows := make([]comparison, 0, len(sim.AllPolicies()))
	for _, policy := range sim.AllPolicies() {
		result, err := engine.Run(policy, p)
		switch {
		case err == nil:
			rows = append(rows, comparison{Policy: policy, Summary: trace.Summarize(result.Steps)})
		case errors.Is(err, sim.ErrUnsupportedDirection):
			rows = append(rows, comparison{Policy: policy, Err: err})
		default:
			return nil, fmt.Errorf("%s: %w", policy, err)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if (rows[i].Err == nil) != (rows[j].Err == nil) {
			return rows[i].Err == nil
		}
		if rows[i].Err != nil {
			return rows[i].Policy < rows[j].Policy
		}
		if rows[i].Summary.TotalSeek != rows[j].Summary.TotalSeek {
			return rows[i].Summary.TotalSeek < rows[j].Summary.TotalSeek
		}
		return rows[i].Policy < rows[j].Policy
	})
	return rows, nil
}

func printComparison(w io.Writer, rows []comparison) {
	fmt.Fprintln(w, "=== Policy Comparison ===")
	fmt.Fprintf(w, "%-12s %10s %6s %10s %8s\n", "POLICY", "TOTAL", "MOVES", "AVG SEEK", "MAX")
	for _, r := range rows {
		if r.Err != nil {
			fmt.Fprintf(w, "%-12s %10s\n", r.Policy, "unsupported")
			continue
		}
		s := r.Summary
		fmt.Fprintf(w, "%-12s %10d %6d %10.2f %8d\n", r.Policy, s.TotalSeek, s.Moves, s.MeanSeek, s.MaxSeek)
	}
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every policy on the same requests and rank them by total seek",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := resolveInputs(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		rows, err := compareAll(in.engine, in.params)
		if err != nil {
			logrus.Fatalf("Compare failed: %v", err)
		}
		printComparison(cmd.OutOrStdout(), rows)
	},
}

func init() {
	addScheduleFlags(compareCmd, false)
	rootCmd.AddCommand(compareCmd)
}
