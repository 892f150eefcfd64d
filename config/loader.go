package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadWorkbookConfig loads a workbook description from a YAML file.
func LoadWorkbookConfig(path string) (*WorkbookConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook config file: %w", err)
	}
	defer f.Close()
	return ParseWorkbookConfig(f)
}

// ParseWorkbookConfig decodes and validates a workbook description.
// Unknown keys are rejected so typos do not silently drop content.
func ParseWorkbookConfig(r io.Reader) (*WorkbookConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg WorkbookConfig
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("workbook config is empty")
		}
		return nil, fmt.Errorf("failed to parse workbook config: %w", err)
	}
	if err := ValidateWorkbook(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
