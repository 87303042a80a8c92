package cmd

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Dump widget state for markup files matching glob patterns",
		Long: `Select markup files with doublestar glob patterns, initialize the
widgets in each, and print the resulting state. Useful for checking the
initial open/closed state a set of pages declares in markup.

Patterns support ** for recursive matching:

  fold inspect 'pages/**/*.html'
  fold inspect 'docs/*.html' 'examples/**/page.html'

Quote patterns so the shell does not expand them first.`,
		Usage: "fold inspect <pattern>...",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one glob pattern is required\n\nUsage: fold inspect <pattern>...")
	}

	seen := make(map[string]bool)
	var pages []string
	for _, pattern := range args {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				pages = append(pages, m)
			}
		}
	}
	if len(pages) == 0 {
		return fmt.Errorf("no files matched")
	}
	sort.Strings(pages)

	for _, page := range pages {
		widgets, err := loadPage(page)
		if err != nil {
			fmt.Printf("%s: %v\n", page, err)
			continue
		}
		printState(page, widgets)
		teardown(widgets)
	}
	return nil
}
