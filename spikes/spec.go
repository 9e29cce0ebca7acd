package spikes

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunSpec is the configuration for one ensemble generation run.
// Loaded from YAML via LoadRunSpec(path).
type RunSpec struct {
	Seed      int64   `yaml:"seed"`
	N         int     `yaml:"n"`                  // number of spike trains
	Rate      float64 `yaml:"rate"`               // spikes per second
	Synchrony float64 `yaml:"synchrony"`          // fraction of trains sharing the template, [0, 1]
	Jitter    float64 `yaml:"jitter"`             // jitter standard deviation in seconds
	Duration  float64 `yaml:"duration"`           // train duration in seconds
	DT        float64 `yaml:"dt,omitempty"`       // grid step in seconds (default 0.0001)
}

// ApplyDefaults fills unset optional fields.
func (s *RunSpec) ApplyDefaults() {
	if s.DT == 0 {
		s.DT = DefaultDT
	}
}

// Validate fails fast on parameters no generator can correct. An out-of-range
// synchrony fraction is deliberately not rejected here: the composers correct
// it to a boundary value with a warning.
func (s *RunSpec) Validate() error {
	if s.N <= 0 {
		return fmt.Errorf("run spec: n must be positive, got %d", s.N)
	}
	if s.Rate <= 0 {
		return fmt.Errorf("run spec: rate must be positive, got %g", s.Rate)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("run spec: duration must be positive, got %g", s.Duration)
	}
	if s.DT <= 0 {
		return fmt.Errorf("run spec: dt must be positive, got %g", s.DT)
	}
	if s.Jitter < 0 {
		return fmt.Errorf("run spec: jitter must be non-negative, got %g", s.Jitter)
	}
	return nil
}

// LoadRunSpec reads, defaults and validates a RunSpec from a YAML file.
func LoadRunSpec(path string) (*RunSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run spec: %w", err)
	}

	var spec RunSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing run spec %s: %w", path, err)
	}

	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Generate builds the ensemble described by the spec, deterministic for a
// fixed seed.
func (s *RunSpec) Generate() Ensemble {
	rng := NewPartitionedRNG(s.Seed)
	return SyncEnsemble(rng, s.N, s.Rate, s.Synchrony, s.Jitter, s.Duration, s.DT)
}
