package workload

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ConvertLegacy converts a legacy input file into a WorkloadSpec.
// The result is validated so a converted spec always loads back.
func ConvertLegacy(path string) (*WorkloadSpec, error) {
	if path == "" {
		return nil, fmt.Errorf("legacy input path must not be empty")
	}
	spec, err := LoadLegacy(path)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("converted spec from %s is invalid: %w", path, err)
	}
	return spec, nil
}

// MarshalSpec renders a WorkloadSpec as YAML.
func MarshalSpec(spec *WorkloadSpec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshalling workload spec: %w", err)
	}
	return data, nil
}
