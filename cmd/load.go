package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// loadSeries reads a plain-text numeric sequence: one or more lines of
// whitespace or comma separated floats, with #-prefixed comment lines
// ignored. This is the file surface towards external simulations and
// loaders; the core only ever sees the resulting []float64.
func loadSeries(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var values []float64
	for lineno, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		}) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %q is not a number", path, lineno+1, field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}
