package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sched-sim/sim/workload"
)

var (
	generatorSpecPath string
	generatorSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic YAML workload spec",
	Long: "Draw processes from the arrival, service and priority distributions in a generator spec. " +
		"Output is written to stdout and can be passed to `run --workload`.",
	Run: func(cmd *cobra.Command, args []string) {
		g, err := workload.LoadGeneratorSpec(generatorSpecPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		// CLI --seed overrides the spec's seed only when given explicitly
		if cmd.Flags().Changed("seed") {
			g.Seed = generatorSeed
		}
		logrus.Infof("Generating %d processes with seed %d", g.Count, g.Seed)
		spec, err := workload.Generate(g)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}
		writeSpec(cmd, spec)
	},
}

func init() {
	generateCmd.Flags().StringVar(&generatorSpecPath, "spec", "", "Path to a generator spec YAML file")
	generateCmd.Flags().Int64Var(&generatorSeed, "seed", 42, "Override the generator seed")
	_ = generateCmd.MarkFlagRequired("spec")

	rootCmd.AddCommand(generateCmd)
}
