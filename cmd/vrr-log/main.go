// Command vrr-log is a tool for viewing and analyzing arbitration log files.
//
// Log files are created by the event-capture infrastructure when running
// vrr-sim with the -event-log flag, or by any integration that installs a
// FileLogger on its director.
//
// Usage:
//
//	vrr-log <command> [flags] <file.vlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	vrr-log view arbitration.vlog
//
//	# View only resolution outcomes
//	vrr-log view -category resolved arbitration.vlog
//
//	# View a single display
//	vrr-log view -display 0 arbitration.vlog
//
//	# Show statistics
//	vrr-log stats arbitration.vlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vrr-project/vrr-go/cmd/vrr-log/commands"
)

const usage = `vrr-log - Arbitration Log Analyzer

Usage:
  vrr-log <command> [flags] <file.vlog>

Commands:
  view     View log file in human-readable format
  stats    Show statistics about the log file

Use "vrr-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `vrr-log view - View log file in human-readable format

Usage:
  vrr-log view [flags] <file.vlog>

Flags:
`)
		fs.PrintDefaults()
	}

	category := fs.String("category", "", "Filter by category (vote-set, vote-cleared, catalog, removed, resolved)")
	displayID := fs.Int("display", -1, "Filter by display ID (-1 for all)")
	cycleID := fs.String("cycle", "", "Filter by arbitration cycle ID")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	var filter commands.ViewFilter
	filter.CycleID = *cycleID
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Category = &c
	}
	if *displayID >= 0 {
		id := int32(*displayID)
		filter.DisplayID = &id
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `vrr-log stats - Show statistics about the log file

Usage:
  vrr-log stats <file.vlog>
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
