package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sched-sim/sim"
	"github.com/inference-sim/sched-sim/sim/observe"
	"github.com/inference-sim/sched-sim/sim/report"
	"github.com/inference-sim/sched-sim/sim/workload"
)

var (
	// Input selection (exactly one)
	legacyInputPath  string // legacy line-oriented input file
	workloadSpecPath string // YAML workload spec
	presetName       string // named preset from defaults.yaml
	defaultsFilePath string // path to defaults.yaml

	// Overrides applied on top of the selected input
	operation       string // trace or stats
	algorithmList   string // comma-separated id[-quantum] list
	horizonOverride int    // last instant; 0 keeps the input's value
	printSummary    bool   // append dispatch summary to each run
	metricsTextfile string // Prometheus textfile output path
	logLevel        string // log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Discrete-time CPU scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates every requested algorithm using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Long: "Simulate each requested algorithm on the selected workload and print an occupancy grid (trace) " +
		"or per-process statistics (stats) for every run.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := executeRun(cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// executeRun resolves the workload from flags, runs the orchestrator, and
// writes reports to out.
func executeRun(out io.Writer) error {
	spec, err := selectWorkloadSpec()
	if err != nil {
		return err
	}
	if err := applyOverrides(spec); err != nil {
		return err
	}
	w, err := spec.Build()
	if err != nil {
		return err
	}

	logrus.Infof("Starting simulation: %d processes, horizon=%d, algorithms=%v",
		w.ProcessCount(), w.LastInstant, w.Algorithms)

	var observers []sim.RunObserver
	var collector *observe.Collector
	if metricsTextfile != "" {
		collector = observe.NewCollector()
		observers = append(observers, collector)
	}
	orch := sim.NewOrchestrator(report.NewWriter(out, w.Operation, printSummary), observers...)
	if _, err := orch.Run(w); err != nil {
		return err
	}
	if collector != nil {
		if err := collector.WriteTextfile(metricsTextfile); err != nil {
			return fmt.Errorf("writing metrics textfile: %w", err)
		}
		logrus.Infof("Metrics written to %s", metricsTextfile)
	}
	return nil
}

// selectWorkloadSpec loads the spec from whichever of --input, --workload or
// --preset was given. Exactly one is required.
func selectWorkloadSpec() (*workload.WorkloadSpec, error) {
	var given []string
	for flag, v := range map[string]string{"--input": legacyInputPath, "--workload": workloadSpecPath, "--preset": presetName} {
		if v != "" {
			given = append(given, flag)
		}
	}
	switch {
	case len(given) == 0:
		return nil, fmt.Errorf("no workload given; use one of --input, --workload, --preset")
	case len(given) > 1:
		return nil, fmt.Errorf("only one of --input, --workload, --preset may be given, got %d", len(given))
	}

	switch {
	case legacyInputPath != "":
		return workload.LoadLegacy(legacyInputPath)
	case workloadSpecPath != "":
		return workload.LoadWorkloadSpec(workloadSpecPath)
	default:
		return loadPreset(defaultsFilePath, presetName)
	}
}

// applyOverrides replaces spec fields with any flags set on the command line.
func applyOverrides(spec *workload.WorkloadSpec) error {
	if operation != "" {
		spec.Operation = strings.ToLower(operation)
	}
	if algorithmList != "" {
		algos, err := workload.ParseAlgorithmList(algorithmList)
		if err != nil {
			return fmt.Errorf("--algorithms: %w", err)
		}
		spec.Algorithms = algos
	}
	if horizonOverride < 0 {
		return fmt.Errorf("--horizon must be positive, got %d", horizonOverride)
	}
	if horizonOverride > 0 {
		spec.Horizon = horizonOverride
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&legacyInputPath, "input", "", "Path to a legacy input file (operation, algorithms, last instant, processes)")
	runCmd.Flags().StringVar(&workloadSpecPath, "workload", "", "Path to a YAML workload spec")
	runCmd.Flags().StringVar(&presetName, "preset", "", "Name of a workload preset in defaults.yaml")
	runCmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")

	runCmd.Flags().StringVar(&operation, "operation", "", "Override the operation (trace, stats)")
	runCmd.Flags().StringVar(&algorithmList, "algorithms", "", "Override the algorithms, e.g. \"1,2-4,fb-2i,aging-2\"")
	runCmd.Flags().IntVar(&horizonOverride, "horizon", 0, "Override the last instant (0 = keep input value)")
	runCmd.Flags().BoolVar(&printSummary, "summary", false, "Print a dispatch summary (context switches, idle instants, utilization) per run")
	runCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics for all runs to this file")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
