package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/disk-sched-sim/sim/workload"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the scenarios defined in the defaults file",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadDefaultsConfig(defaultsFilePath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		out := cmd.OutOrStdout()
		for _, name := range cfg.ScenarioNames() {
			sc := cfg.Scenarios[name]
			fmt.Fprintf(out, "%-16s %-11s %s\n", name, sc.Policy, sc.Description)
			fmt.Fprintf(out, "%-16s requests: %s\n", "", workload.FormatRequests(sc.Requests))
		}
	},
}

func init() {
	scenariosCmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
	rootCmd.AddCommand(scenariosCmd)
}
