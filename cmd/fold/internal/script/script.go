// Package script runs YAML interaction scripts against a live page: a
// sequence of open/close/key/click steps the run and watch commands apply
// to the widgets they initialized, so transitions can be exercised without
// a browser.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-fold/fold/pkg/collapse"
	"github.com/go-fold/fold/pkg/dom"
)

// Script is the on-disk shape of an interaction script.
//
//	steps:
//	  - action: open
//	    widget: 0
//	    item: 1
//	  - action: key
//	    widget: 0
//	    item: 1
//	    key: ArrowDown
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one scripted interaction.
type Step struct {
	// Action is one of open, close, toggle, click, key, enable, disable,
	// destroy, settle.
	Action string `yaml:"action"`
	// Widget selects the target widget by initialization order.
	Widget int `yaml:"widget"`
	// Item selects the target item within the widget.
	Item int `yaml:"item"`
	// Key is the key name for the key action.
	Key string `yaml:"key,omitempty"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return &s, nil
}

// Apply runs the script's steps in order against widgets. settle is called
// after each step to let transitions complete before the next one.
func Apply(s *Script, widgets []*collapse.Widget, settle func()) error {
	for i, step := range s.Steps {
		if err := applyStep(step, widgets); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Action, err)
		}
		settle()
	}
	return nil
}

func applyStep(step Step, widgets []*collapse.Widget) error {
	if step.Action == "settle" {
		return nil
	}
	if step.Widget < 0 || step.Widget >= len(widgets) {
		return fmt.Errorf("widget %d out of range (%d initialized)", step.Widget, len(widgets))
	}
	w := widgets[step.Widget]

	switch step.Action {
	case "open":
		w.Open(step.Item)
	case "close":
		w.Close(step.Item)
	case "toggle":
		w.Toggle(step.Item)
	case "enable":
		w.Enable()
	case "disable":
		w.Disable()
	case "destroy":
		w.Destroy()
	case "click":
		it := w.ItemAt(step.Item)
		if it == nil {
			return fmt.Errorf("item %d out of range", step.Item)
		}
		it.Trigger().DispatchEvent(dom.NewEvent("click"))
	case "key":
		if step.Key == "" {
			return fmt.Errorf("key action needs a key name")
		}
		it := w.ItemAt(step.Item)
		if it == nil {
			return fmt.Errorf("item %d out of range", step.Item)
		}
		it.Trigger().DispatchEvent(dom.NewKeyEvent(step.Key))
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
	return nil
}
