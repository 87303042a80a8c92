package style

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-fold/fold/pkg/errors"
)

// tokensFile is the on-disk YAML shape of a design-tokens file.
type tokensFile struct {
	Transitions []tokenRule `yaml:"transitions"`
}

type tokenRule struct {
	Class      string   `yaml:"class"`
	Properties []string `yaml:"properties"`
	Duration   string   `yaml:"duration,omitempty"`
}

// Load reads a tokens YAML file into a Sheet.
//
// File shape:
//
//	transitions:
//	  - class: accordion__content
//	    properties: [height, opacity]
//	    duration: 300ms
//
// A missing duration falls back to DefaultDuration.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tokens file: %w", err)
	}
	sheet, err := Parse(data)
	if err != nil {
		return nil, &errors.ParseError{Source: path, Detail: "invalid tokens file", Err: err}
	}
	return sheet, nil
}

// Parse decodes tokens YAML into a Sheet.
func Parse(data []byte) (*Sheet, error) {
	var file tokensFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	sheet := &Sheet{}
	for i, tr := range file.Transitions {
		if tr.Class == "" {
			return nil, fmt.Errorf("transitions[%d]: missing class", i)
		}
		if len(tr.Properties) == 0 {
			return nil, fmt.Errorf("transitions[%d]: missing properties", i)
		}
		duration := DefaultDuration
		if tr.Duration != "" {
			d, err := time.ParseDuration(tr.Duration)
			if err != nil {
				return nil, fmt.Errorf("transitions[%d]: %w", i, err)
			}
			duration = d
		}
		sheet.Rules = append(sheet.Rules, Rule{
			Class:      tr.Class,
			Properties: tr.Properties,
			Duration:   duration,
		})
	}
	return sheet, nil
}
