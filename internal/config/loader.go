package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	".sortattributes.yml",
	".sortattributes.yaml",
	"sortattributes.yml",
	"sortattributes.yaml",
}

// Discover returns the path of the first config file found in dir or one of
// its parents. It returns an empty string if no config file is found.
func Discover(dir string) string {
	for {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load reads the config at configPath. With an empty path it discovers a
// file starting from the working directory; without one an empty Config is
// returned, which resolves to the defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "getting working directory")
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", configPath)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", configPath)
	}
	return cfg, nil
}

// Parse decodes a YAML config, rejecting unknown top-level and option keys
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return cfg, nil
}
