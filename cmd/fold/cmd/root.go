// Package cmd implements the Fold CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, inspect, watch).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-fold/fold/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "fold",
	Short: "Fold - collapsible-panel widgets for markup, in Go",
	Long: `Fold attaches collapsible-panel behavior (accordions and their
single-panel cousins) to declarative markup: it parses a page into a
retained element tree, initializes every widget root it finds, and drives
open/close transitions with accessibility state kept consistent throughout.

Use "fold <command> --help" for more information about a command.`,
	Usage: "fold <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// tokensPath is the global --tokens override; empty means the fold.yaml
// setting (or the built-in defaults) apply.
var tokensPath string

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --tokens / --verbose.
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("Fold CLI version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		case "--tokens":
			if i+1 < len(args) {
				tokensPath = args[i+1]
				i++
			} else {
				return fmt.Errorf("--tokens requires a file path")
			}
		default:
			if strings.HasPrefix(arg, "--tokens=") {
				tokensPath = strings.TrimPrefix(arg, "--tokens=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --tokens FILE        Transition tokens file (overrides fold.yaml)")
	fmt.Println("  --verbose            Log absorbed ignored-operation reports")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  fold run page.html                 Initialize widgets and print state")
	fmt.Println("  fold run page.html --script s.yaml Drive an interaction script")
	fmt.Println("  fold inspect 'pages/**/*.html'     Dump widget state across files")
	fmt.Println("  fold watch page.html               Re-run on markup changes")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
