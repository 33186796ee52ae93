package publish

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/bgraf/mdship/filesystem"
)

// Report summarizes a run.
type Report struct {
	RunID     string   `yaml:"run_id"`
	Timestamp int64    `yaml:"timestamp"`
	Targets   []Target `yaml:"targets"`
}

func (r Report) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}

	return data, nil
}

// WriteReport stores the report as YAML at path.
func WriteReport(fsys filesystem.FS, path string, r Report) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}

	if err := fsys.WriteFile(path, data); err != nil {
		return fmt.Errorf("write report '%s': %w", path, err)
	}

	return nil
}
