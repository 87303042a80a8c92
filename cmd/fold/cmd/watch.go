package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-fold/fold/cmd/fold/internal/script"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-run a page every time its markup changes",
		Long: `Run the page once, then watch it (and the interaction script, if
given) for changes and re-run on every write. Press Ctrl-C to stop.

Flags:
  --script FILE   Interaction script to apply on each run`,
		Usage: "fold watch <page.html> [--script FILE]",
		Run:   runWatch,
	})
}

// rerunDelay coalesces the bursts of write events editors produce for one
// save.
const rerunDelay = 100 * time.Millisecond

func runWatch(args []string) error {
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
		return fmt.Errorf("a markup file is required\n\nUsage: fold watch <page.html> [--script FILE]")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the containing directories: editors replace files on save, and
	// a watch on the old inode would go quiet after the first write.
	dirs := map[string]bool{filepath.Dir(page): true}
	if scriptPath != "" {
		dirs[filepath.Dir(scriptPath)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	interesting := map[string]bool{filepath.Clean(page): true}
	if scriptPath != "" {
		interesting[filepath.Clean(scriptPath)] = true
	}

	rerun := func() {
		if err := renderOnce(page, scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	rerun()
	fmt.Printf("Watching %s for changes (Ctrl-C to stop)...\n", page)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	var pending *time.Timer
	refire := make(chan struct{}, 1)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !interesting[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(rerunDelay, func() {
				select {
				case refire <- struct{}{}:
				default:
				}
			})
		case <-refire:
			rerun()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-sig:
			fmt.Println("\nStopped.")
			return nil
		}
	}
}

func renderOnce(page, scriptPath string) error {
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
