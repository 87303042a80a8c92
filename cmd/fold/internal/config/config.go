// Package config loads the optional fold.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-fold/fold/pkg/collapse"
	"github.com/go-fold/fold/pkg/style"
)

// Config represents the optional fold.yaml configuration.
type Config struct {
	// Tokens is the path to a transition tokens file, relative to the
	// config file's directory.
	Tokens string `yaml:"tokens,omitempty"`
	// Behaviors lists the widget families to initialize. Empty means all
	// known families.
	Behaviors []string `yaml:"behaviors,omitempty"`
}

// Resolved contains resolved configuration values ready for use.
type Resolved struct {
	Sheet     *style.Sheet
	Behaviors []collapse.Behavior
}

// LoadOptional reads fold.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "fold.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read fold.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse fold.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads fold.yaml (if present) and resolves defaults. tokensOverride,
// when non-empty, wins over the fold.yaml tokens path.
func Resolve(dir, tokensOverride string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	tokens := cfg.Tokens
	if tokens != "" {
		tokens = filepath.Join(dir, tokens)
	}
	if tokensOverride != "" {
		tokens = tokensOverride
	}

	sheet := style.Default()
	if tokens != "" {
		sheet, err = style.Load(tokens)
		if err != nil {
			return nil, err
		}
	}

	behaviors, err := resolveBehaviors(cfg.Behaviors)
	if err != nil {
		return nil, err
	}

	return &Resolved{Sheet: sheet, Behaviors: behaviors}, nil
}

func resolveBehaviors(names []string) ([]collapse.Behavior, error) {
	if len(names) == 0 {
		return []collapse.Behavior{collapse.Accordion(), collapse.Disclosure()}, nil
	}
	var out []collapse.Behavior
	for _, name := range names {
		switch name {
		case "accordion":
			out = append(out, collapse.Accordion())
		case "disclosure":
			out = append(out, collapse.Disclosure())
		default:
			return nil, fmt.Errorf("fold.yaml: unknown behavior %q (use accordion or disclosure)", name)
		}
	}
	return out, nil
}
