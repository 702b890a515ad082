package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse reads a manifest file. JSON is a subset of YAML, so the YAML decoder
// handles it and tolerates the trailing commas some editors leave behind.
func Parse(path string) (*Plugin, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var p Plugin
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &p, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return data, nil
}
