package results

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PredictorConfig represents predictor.yml. It is read once and never validated:
// missing sections or fields decode to zero values and consumers apply per-field fallbacks.
type PredictorConfig struct {
	Predictor    PredictorInfo    `yaml:"predictor" json:"predictor"`
	Reproduction ReproductionInfo `yaml:"reproduction" json:"reproduction"`
}

// PredictorInfo identifies the simulated predictor.
type PredictorInfo struct {
	Name       string `yaml:"name" json:"name"`
	Version    string `yaml:"version" json:"version"`
	CBPVersion string `yaml:"CBP_ver" json:"CBP_ver"`
}

// ReproductionInfo describes the simulation run that produced the results.
type ReproductionInfo struct {
	DateOfRun string   `yaml:"date_of_run" json:"date_of_run"`
	MPKI      *float64 `yaml:"MPKI" json:"MPKI"`             // nil when absent
	NumTraces *int     `yaml:"num_traces" json:"num_traces"` // nil when absent
}

// LoadConfig parses the predictor configuration YAML at path.
func LoadConfig(path string) (*PredictorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading predictor config: %w", err)
	}
	var cfg PredictorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing predictor config %s: %w", path, err)
	}
	return &cfg, nil
}
