package spikes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRunSpec_FieldEquivalence(t *testing.T) {
	path := writeSpecFile(t, `
seed: 7
n: 10
rate: 50
synchrony: 0.5
jitter: 0.0005
duration: 2.5
dt: 0.0001
`)
	spec, err := LoadRunSpec(path)
	require.NoError(t, err)

	want := &RunSpec{
		Seed:      7,
		N:         10,
		Rate:      50,
		Synchrony: 0.5,
		Jitter:    0.0005,
		Duration:  2.5,
		DT:        0.0001,
	}
	assert.Equal(t, want, spec)
}

func TestLoadRunSpec_DefaultsDT(t *testing.T) {
	path := writeSpecFile(t, `
n: 2
rate: 20
duration: 1.0
`)
	spec, err := LoadRunSpec(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDT, spec.DT)
}

func TestLoadRunSpec_RejectsUnknownFields(t *testing.T) {
	path := writeSpecFile(t, `
n: 2
rate: 20
duration: 1.0
frequency: 20
`)
	_, err := LoadRunSpec(path)
	assert.Error(t, err)
}

func TestLoadRunSpec_MissingFile(t *testing.T) {
	_, err := LoadRunSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRunSpec_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunSpec)
		wantErr bool
	}{
		{"valid", func(s *RunSpec) {}, false},
		{"zero trains", func(s *RunSpec) { s.N = 0 }, true},
		{"negative rate", func(s *RunSpec) { s.Rate = -1 }, true},
		{"zero duration", func(s *RunSpec) { s.Duration = 0 }, true},
		{"negative dt", func(s *RunSpec) { s.DT = -0.0001 }, true},
		{"negative jitter", func(s *RunSpec) { s.Jitter = -0.001 }, true},
		{"out-of-range synchrony is corrected later, not rejected", func(s *RunSpec) { s.Synchrony = 2 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := RunSpec{N: 4, Rate: 20, Synchrony: 0.5, Duration: 1.0, DT: 0.0001}
			tt.mutate(&spec)
			err := spec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRunSpec_GenerateDeterministic(t *testing.T) {
	spec := RunSpec{Seed: 42, N: 4, Rate: 20, Synchrony: 0.5, Jitter: 0.001, Duration: 1.0, DT: 0.0001}
	assert.Equal(t, spec.Generate(), spec.Generate())
}
