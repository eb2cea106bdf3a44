package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads a run config from path and fills unset fields with defaults.
// An empty path yields the defaults alone.
func Load(path string) (*RunConfig, error) {
	var rc RunConfig
	if path != "" {
		if err := loadYAML(path, &rc); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	rc.applyDefaults()
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &rc, nil
}

func (rc *RunConfig) applyDefaults() {
	if rc.Search.Workers == 0 {
		rc.Search.Workers = runtime.GOMAXPROCS(0)
	}
	if rc.Log.Level == "" {
		rc.Log.Level = "info"
	}
	if rc.Log.Format == "" {
		rc.Log.Format = "text"
	}
	if rc.Gen.Rows == 0 {
		rc.Gen.Rows = 10
	}
	if rc.Gen.Cols == 0 {
		rc.Gen.Cols = 10
	}
	if rc.Gen.Density == 0 {
		rc.Gen.Density = 0.1
	}
}

func (rc *RunConfig) Validate() error {
	var errs []error
	if rc.Search.Workers < 0 {
		errs = append(errs, fmt.Errorf("search.workers must be >= 0, got %d", rc.Search.Workers))
	}
	switch rc.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", rc.Log.Format))
	}
	if rc.Gen.Rows < 1 || rc.Gen.Cols < 1 {
		errs = append(errs, fmt.Errorf("gen grid must be at least 1x1, got %dx%d", rc.Gen.Rows, rc.Gen.Cols))
	}
	if rc.Gen.Density < 0 || rc.Gen.Density >= 1 {
		errs = append(errs, fmt.Errorf("gen.density must be in [0,1), got %v", rc.Gen.Density))
	}
	return errors.Join(errs...)
}
