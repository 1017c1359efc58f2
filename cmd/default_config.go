package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/sched-sim/sim/workload"
)

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version string                           `yaml:"version"`
	Presets map[string]workload.WorkloadSpec `yaml:"presets"`
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
// Uses strict field checking: typos must cause errors.
func loadDefaultsConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing defaults YAML %s: %w", path, err)
	}
	return &cfg, nil
}

// loadPreset returns a copy of the named preset from defaults.yaml.
func loadPreset(defaultsPath, name string) (*workload.WorkloadSpec, error) {
	cfg, err := loadDefaultsConfig(defaultsPath)
	if err != nil {
		return nil, err
	}
	spec, ok := cfg.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q; available: %v", name, cfg.presetNames())
	}
	logrus.Infof("Using preset workload %q", name)
	if spec.Version == "" {
		spec.Version = workload.SpecVersion
	}
	return &spec, nil
}

// presetNames returns preset names in sorted order.
func (c *Config) presetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writePresetList prints one line per preset: name, process count, horizon, algorithms.
func writePresetList(out io.Writer, cfg *Config) {
	for _, name := range cfg.presetNames() {
		p := cfg.Presets[name]
		ids := make([]string, len(p.Algorithms))
		for i, a := range p.Algorithms {
			ids[i] = a.ID
			if a.Quantum > 0 {
				ids[i] = fmt.Sprintf("%s-%d", a.ID, a.Quantum)
			}
		}
		fmt.Fprintf(out, "%-16s %-5s processes=%d horizon=%d algorithms=%v\n",
			name, p.Operation, len(p.Processes), p.Horizon, ids)
	}
}

var presetsDefaultsPath string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the workload presets in defaults.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadDefaultsConfig(presetsDefaultsPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		writePresetList(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	presetsCmd.Flags().StringVar(&presetsDefaultsPath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")
	rootCmd.AddCommand(presetsCmd)
}
