package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/sched-sim/sim/workload"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert external workload formats to YAML workload specs",
	Long:  "Convert legacy input files and presets to WorkloadSpec YAML. Output is written to stdout for piping.",
}

// --- sched-sim convert legacy ---

var legacyConvertPath string

var convertLegacyCmd = &cobra.Command{
	Use:   "legacy",
	Short: "Convert a legacy line-oriented input file to a YAML spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := workload.ConvertLegacy(legacyConvertPath)
		if err != nil {
			logrus.Fatalf("Legacy conversion failed: %v", err)
		}
		writeSpec(cmd, spec)
	},
}

// --- sched-sim convert preset ---

var (
	convertPresetName         string
	convertPresetDefaultsPath string
)

var convertPresetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Export a named preset from defaults.yaml as a standalone YAML spec",
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := loadPreset(convertPresetDefaultsPath, convertPresetName)
		if err != nil {
			logrus.Fatalf("Preset conversion failed: %v", err)
		}
		writeSpec(cmd, spec)
	},
}

// writeSpec marshals a WorkloadSpec to YAML and writes it to the command's output.
func writeSpec(cmd *cobra.Command, spec *workload.WorkloadSpec) {
	data, err := workload.MarshalSpec(spec)
	if err != nil {
		logrus.Fatalf("YAML marshal failed: %v", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
}

func init() {
	convertLegacyCmd.Flags().StringVar(&legacyConvertPath, "file", "", "Path to legacy input file")
	_ = convertLegacyCmd.MarkFlagRequired("file")

	convertPresetCmd.Flags().StringVar(&convertPresetName, "name", "", "Preset name (see `sched-sim presets`)")
	convertPresetCmd.Flags().StringVar(&convertPresetDefaultsPath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
	_ = convertPresetCmd.MarkFlagRequired("name")

	convertCmd.AddCommand(convertLegacyCmd)
	convertCmd.AddCommand(convertPresetCmd)

	rootCmd.AddCommand(convertCmd)
}
