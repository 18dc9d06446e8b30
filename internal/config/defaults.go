package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultsFile is the optional per-project defaults file, looked up in the
// source folder first and then in the current directory.
const DefaultsFile = ".imagegrid.yml"

// Defaults holds settings read from a defaults file. Padding and Quality are
// pointers so an explicit 0 can be told apart from "not set".
type Defaults struct {
	Output     string `yaml:"output"`
	Cols       int    `yaml:"cols"`
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
	Padding    *int   `yaml:"padding"`
	Background string `yaml:"background"`
	Quality    *int   `yaml:"quality"`
}

// LoadDefaults reads the first defaults file found. A missing file is not an
// error; a malformed one is.
func LoadDefaults(folder string) (Defaults, error) {
	var d Defaults

	for _, path := range []string{filepath.Join(folder, DefaultsFile), DefaultsFile} {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Defaults{}, fmt.Errorf("failed to read defaults file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &d); err != nil {
			return Defaults{}, fmt.Errorf("failed to parse defaults file %s: %w", path, err)
		}
		return d, nil
	}

	return d, nil
}
