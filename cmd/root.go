package cmd

import (
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/crossing-sim/crossing-sim/sim"
	"github.com/crossing-sim/crossing-sim/sim/chart"
)

var (
	// CLI flags for the run plan
	seed         int64    // Master seed for every scenario
	attempts     int      // Walks per policy
	policies     []string // Step policies to run, in order
	firstStep    bool     // Take the fixed first step straight across
	taxonomy     string   // Outcome taxonomy (basic, extended)
	exampleWalk  int      // Index of the walk charted per policy
	planPath     string   // Optional YAML run plan
	logLevel     string   // Log verbosity level
	chartsPath   string   // HTML output for charts; empty disables
	showOutcomes bool     // Print every outcome, not just the tallies
	noColor      bool     // Disable ANSI colours in the report
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "crossing-sim",
	Short: "Monte-Carlo simulator of a random walk across a dangerous street",
}

// runCmd executes the simulation using parameters from the plan and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the crossing simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		plan, err := resolvePlan(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := plan.Validate(); err != nil {
			logrus.Fatalf("Invalid run plan: %v", err)
		}

		logrus.Infof("Starting simulation: policies=%v attempts=%d seed=%d taxonomy=%s firstStep=%v",
			plan.Policies, plan.Attempts, plan.Seed, plan.Taxonomy, plan.FirstStep)
		startTime := time.Now()

		results, err := RunScenarios(plan)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		PrintReport(os.Stdout, results, showOutcomes, !noColor)

		if chartsPath != "" {
			if err := renderCharts(chartsPath, plan, results); err != nil {
				logrus.Fatalf("Failed to write charts: %v", err)
			}
			logrus.Infof("Charts written to %s", chartsPath)
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// resolvePlan starts from the YAML plan (or defaults) and applies every flag
// the user set explicitly on the command line.
func resolvePlan(cmd *cobra.Command) (RunPlan, error) {
	plan := DefaultRunPlan()
	if planPath != "" {
		loaded, err := LoadRunPlan(planPath)
		if err != nil {
			return plan, err
		}
		plan = loaded
	}
	flags := cmd.Flags()
	if planPath == "" || flags.Changed("seed") {
		plan.Seed = seed
	}
	if planPath == "" || flags.Changed("attempts") {
		plan.Attempts = attempts
	}
	if planPath == "" || flags.Changed("policies") {
		plan.Policies = policies
	}
	if planPath == "" || flags.Changed("first-step") {
		plan.FirstStep = firstStep
	}
	if planPath == "" || flags.Changed("taxonomy") {
		plan.Taxonomy = taxonomy
	}
	if planPath == "" || flags.Changed("example-walk") {
		plan.ExampleWalk = exampleWalk
	}
	return plan, nil
}

// renderCharts writes one example walk per policy and the rate comparison.
func renderCharts(path string, plan RunPlan, results []PolicyResult) error {
	items := make([]components.Charter, 0, len(results)+1)
	metrics := make([]*sim.OutcomeMetrics, 0, len(results))
	street := sim.NewStreet()
	for _, r := range results {
		if walk, ok := r.Traces.At(plan.ExampleWalk); ok {
			items = append(items, chart.Walk(walk, street))
		}
		metrics = append(metrics, r.Metrics)
	}
	items = append(items, chart.Rates(metrics))
	return chart.RenderFile(path, items...)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// bindRunFlags registers the run flags on c.
func bindRunFlags(c *cobra.Command) {
	defaults := DefaultRunPlan()

	c.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for the walk random stream")
	c.Flags().IntVar(&attempts, "attempts", defaults.Attempts, "Number of walks per policy")
	c.Flags().StringSliceVar(&policies, "policies", defaults.Policies, "Comma-separated step policies to run (A, B, C)")
	c.Flags().BoolVar(&firstStep, "first-step", defaults.FirstStep, "Take one step straight across before the random walk starts")
	c.Flags().StringVar(&taxonomy, "taxonomy", defaults.Taxonomy, "Outcome taxonomy (basic, extended)")
	c.Flags().IntVar(&exampleWalk, "example-walk", defaults.ExampleWalk, "Index of the walk charted for each policy")
	c.Flags().StringVar(&planPath, "plan", "", "Path to a YAML run plan; explicit flags override its values")
	c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&chartsPath, "charts", "", "Write charts to this HTML file")
	c.Flags().BoolVar(&showOutcomes, "show-outcomes", false, "Print the outcome of every walk")
	c.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
}

// init sets up CLI flags and subcommands
func init() {
	bindRunFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
