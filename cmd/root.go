package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/disk-sched-sim/sim"
	"github.com/inference-sim/disk-sched-sim/sim/workload"
)

var (
	// CLI flags shared by run and compare
	policyName       string // Scheduling policy name
	head             int    // Head position before scheduling
	requestList      string // Comma-separated pending track requests
	directionName    string // First sweep direction (left, right)
	diskSize         int    // Number of tracks on the disk
	stepSize         int    // N-Step-SCAN batch size
	maxRequests      int    // Largest accepted request set
	scenarioName     string // Named scenario from the defaults file
	defaultsFilePath string // Path to defaults.yaml

	// CLI flags for run output
	outputFormat string // text or json
	showSteps    bool   // Include the annotated step log

	logLevel string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disk-sched-sim",
	Short: "Disk head-scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd schedules one request set with one policy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy and report seek distance and visit order",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := resolveInputs(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		warnUnusedFlags(cmd, in.policy)

		logrus.Infof("Running %s: head=%d, %d requests", in.policy, in.params.Head, len(in.params.Requests))
		result, err := in.engine.Run(in.policy, in.params)
		if err != nil {
			logrus.Fatalf("%s failed: %v", in.policy, err)
		}

		m := sim.NewMetrics(in.policy, in.params, result)
		if showSteps {
			m.WithSteps(result.Steps)
		}
		if err := writeMetrics(cmd, m); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// inputs is a fully resolved scheduling request.
type inputs struct {
	policy sim.Policy
	params sim.Params
	engine *sim.Engine
}

// resolveInputs merges, lowest precedence first: built-in flag defaults,
// the defaults section of the defaults file, the selected scenario, and
// flags set explicitly on the command line.
func resolveInputs(cmd *cobra.Command) (*inputs, error) {
	flags := cmd.Flags()
	policy, h, reqs, dir, disk, step, maxReqs := policyName, head, requestList, directionName, diskSize, stepSize, maxRequests

	cfg, err := loadDefaultsForCommand(cmd)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		d := cfg.Defaults
		if d.Head != nil && !flags.Changed("head") {
			h = *d.Head
		}
		if d.DiskSize != 0 && !flags.Changed("disk-size") {
			disk = d.DiskSize
		}
		if d.Direction != "" && !flags.Changed("direction") {
			dir = d.Direction
		}
		if d.StepSize != 0 && !flags.Changed("step-size") {
			step = d.StepSize
		}
		if d.MaxRequests != 0 && !flags.Changed("max-requests") {
			maxReqs = d.MaxRequests
		}
	}

	var scenarioRequests []int
	if scenarioName != "" {
		sc, err := cfg.GetScenario(scenarioName)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Using scenario %q: %s", scenarioName, sc.Description)
		if sc.Policy != "" && flags.Lookup("policy") != nil && !flags.Changed("policy") {
			policy = sc.Policy
		}
		if sc.Head != nil && !flags.Changed("head") {
			h = *sc.Head
		}
		if !flags.Changed("requests") {
			scenarioRequests = sc.Requests
		}
		if sc.Direction != "" && !flags.Changed("direction") {
			dir = sc.Direction
		}
		if sc.DiskSize != 0 && !flags.Changed("disk-size") {
			disk = sc.DiskSize
		}
		if sc.StepSize != 0 && !flags.Changed("step-size") {
			step = sc.StepSize
		}
	}

	in := &inputs{engine: sim.NewEngine(maxReqs)}
	if in.policy, err = sim.ParsePolicy(policy); err != nil {
		return nil, err
	}
	direction, err := sim.ParseDirection(dir)
	if err != nil {
		return nil, err
	}
	if scenarioRequests == nil {
		if scenarioRequests, err = workload.ParseRequests(reqs); err != nil {
			return nil, fmt.Errorf("invalid --requests: %w", err)
		}
	}
	in.params = sim.Params{
		Head:      h,
		Requests:  scenarioRequests,
		Direction: direction,
		DiskSize:  disk,
		StepSize:  step,
	}
	return in, nil
}

// loadDefaultsForCommand reads the defaults file. A missing file is only an
// error when the user pointed at it explicitly or asked for a scenario.
func loadDefaultsForCommand(cmd *cobra.Command) (*Config, error) {
	required := cmd.Flags().Changed("defaults-filepath") || scenarioName != ""
	if _, err := os.Stat(defaultsFilePath); os.IsNotExist(err) && !required {
		logrus.Debugf("defaults file %s not found, using flag defaults", defaultsFilePath)
		return nil, nil
	}
	return loadDefaultsConfig(defaultsFilePath)
}

// warnUnusedFlags reports flags the chosen policy does not read.
func warnUnusedFlags(cmd *cobra.Command, policy sim.Policy) {
	flags := cmd.Flags()
	if flags.Changed("direction") && !policy.UsesDirection() {
		logrus.Warnf("--direction is ignored by %s", policy)
	}
	if flags.Changed("disk-size") && !policy.UsesDiskSize() {
		logrus.Warnf("--disk-size is ignored by %s", policy)
	}
	if flags.Changed("step-size") && !policy.UsesStepSize() {
		logrus.Warnf("--step-size is ignored by %s", policy)
	}
}

func writeMetrics(cmd *cobra.Command, m *sim.Metrics) error {
	switch outputFormat {
	case "text":
		m.Print(cmd.OutOrStdout())
		return nil
	case "json":
		return m.SaveResults(cmd.OutOrStdout())
	}
	return fmt.Errorf("unknown output format %q; valid: text, json", outputFormat)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addScheduleFlags registers the scheduling input flags on c.
// withPolicy is false for commands that run every policy.
func addScheduleFlags(c *cobra.Command, withPolicy bool) {
	if withPolicy {
		c.Flags().StringVar(&policyName, "policy", "fcfs", "Scheduling policy ("+policyList()+")")
	}
	c.Flags().IntVar(&head, "head", 53, "Head position before scheduling")
	c.Flags().StringVar(&requestList, "requests", "", "Comma-separated track requests (e.g. 98,183,37,122)")
	c.Flags().StringVar(&directionName, "direction", "right", "First sweep direction for the SCAN family (left, right)")
	c.Flags().IntVar(&diskSize, "disk-size", 200, "Number of tracks; the extent is [0, disk-size-1]")
	c.Flags().IntVar(&stepSize, "step-size", 4, "N-Step-SCAN batch size (<= 0 means one batch)")
	c.Flags().IntVar(&maxRequests, "max-requests", sim.DefaultMaxRequests, "Largest accepted request set")
	c.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario from the defaults file")
	c.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
}

func policyList() string {
	return strings.Join(sim.PolicyNames(), ", ")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addScheduleFlags(runCmd, true)
	runCmd.Flags().StringVar(&outputFormat, "output", "text", "Output format (text, json)")
	runCmd.Flags().BoolVar(&showSteps, "steps", false, "Include the annotated step log")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
