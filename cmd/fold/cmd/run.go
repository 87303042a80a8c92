package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-fold/fold/cmd/fold/internal/config"
	"github.com/go-fold/fold/cmd/fold/internal/script"
	"github.com/go-fold/fold/pkg/collapse"
	"github.com/go-fold/fold/pkg/dom"
	"github.com/go-fold/fold/pkg/motion"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Load a page, initialize widgets, and print their state",
		Long: `Parse a markup file into a live page, auto-initialize every widget
root found in it, optionally drive a YAML interaction script against the
result, and print the final widget state.

The interaction script is a list of steps:

  steps:
    - action: open      # open|close|toggle|click|key|enable|disable|destroy|settle
      widget: 0
      item: 1
    - action: key
      widget: 0
      item: 1
      key: ArrowDown

Transitions are driven to completion between steps, so the printed state is
always terminal.

Flags:
  --script FILE   Interaction script to apply after initialization`,
		Usage: "fold run <page.html> [--script FILE]",
		Run:   runRun,
	})
}

// frameInterval is the pump cadence when driving real-time transitions.
const frameInterval = 16 * time.Millisecond

// settleBudget bounds how long one settle loop may spin.
const settleBudget = 5 * time.Second

func runRun(args []string) error {
	var page, scriptPath string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--script":
			if i+1 >= len(args) {
				return fmt.Errorf("--script requires a file path")
			}
			scriptPath = args[i+1]
			i++
		default:
			if page != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			page = args[i]
		}
	}
	if page == "" {
		return fmt.Errorf("a markup file is required\n\nUsage: fold run <page.html> [--script FILE]")
	}

	widgets, err := loadPage(page)
	if err != nil {
		return err
	}
	defer teardown(widgets)

	if scriptPath != "" {
		s, err := script.Load(scriptPath)
		if err != nil {
			return err
		}
		if err := script.Apply(s, widgets, settle); err != nil {
			return err
		}
	}
	settle()

	printState(page, widgets)
	return nil
}

// loadPage parses the markup file and auto-initializes every configured
// behavior against it.
func loadPage(page string) ([]*collapse.Widget, error) {
	resolved, err := config.Resolve(filepath.Dir(page), tokensPath)
	if err != nil {
		return nil, err
	}

	doc, err := dom.ParseFile(page, resolved.Sheet)
	if err != nil {
		return nil, err
	}

	var widgets []*collapse.Widget
	for _, b := range resolved.Behaviors {
		widgets = append(widgets, collapse.AutoInit(doc, b, nil)...)
	}
	settle()
	return widgets, nil
}

// settle pumps the cooperative loop at frame cadence until no dispatches,
// frame callbacks, or timers remain.
func settle() {
	deadline := motion.Now().Add(settleBudget)
	for {
		motion.DrainDispatch()
		motion.StepFrame()
		motion.StepTimers()
		if !motion.HasPendingWork() {
			return
		}
		if motion.Now().After(deadline) {
			return
		}
		time.Sleep(frameInterval)
	}
}

// teardown destroys widgets and removes standing watches so a rerun starts
// from a clean slate.
func teardown(widgets []*collapse.Widget) {
	for _, w := range widgets {
		w.Destroy()
	}
	collapse.ResetWatches()
	motion.Reset()
}

func printState(page string, widgets []*collapse.Widget) {
	fmt.Printf("%s: %d widget(s)\n", page, len(widgets))
	for i, w := range widgets {
		state := "enabled"
		if w.Disabled() {
			state = "disabled"
		}
		fmt.Printf("  [%d] %s (%s, %d item(s))\n", i, w.Behavior().Name, state, w.Len())
		for j := 0; j < w.Len(); j++ {
			it := w.ItemAt(j)
			expanded, _ := it.Trigger().Attribute("aria-expanded")
			fmt.Printf("      item %d: %-7s aria-expanded=%-5s hidden=%v\n",
				j, it.State(), expanded, it.Content().Hidden())
		}
	}
}
