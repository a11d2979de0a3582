package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/vrr-project/vrr-go/pkg/director"
	"github.com/vrr-project/vrr-go/pkg/display"
	"github.com/vrr-project/vrr-go/pkg/rate"
	"github.com/vrr-project/vrr-go/pkg/vote"
)

// Sim handles the interactive command loop for vrr-sim.
type Sim struct {
	dir *director.Director
	rl  *readline.Instance
}

// NewSim creates a new interactive session over the given director.
func NewSim(dir *director.Director) (*Sim, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vrr> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Sim{dir: dir, rl: rl}, nil
}

// Stdout returns a writer that properly coordinates with the readline
// input. Use this for output to avoid interfering with the prompt.
func (s *Sim) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Run starts the interactive command loop.
func (s *Sim) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "displays", "d":
			s.cmdDisplays()

		case "modes", "m":
			s.cmdModes(args)

		case "votes", "v":
			s.cmdVotes(args)

		case "vote":
			s.cmdVote(args)

		case "clear", "c":
			s.cmdClear(args)

		case "spec", "s":
			s.cmdSpec(args)

		case "tiers", "t":
			s.cmdTiers()

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Sim) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
vrr-sim Commands:
  Inspection:
    displays                     - List managed displays and their desired specs
    modes <display>              - List a display's supported modes
    votes <display>              - List a display's current votes
    spec <display>               - Show a display's desired spec
    tiers                        - List priority tiers

  Voting:
    vote <display> <tier> <min> [max] - Set a vote (tier by number or name;
                                        max defaults to min)
    clear <display> [tier]            - Clear one vote, or all votes

  Other:
    help               - Show this help
    quit               - Exit`)
}

func (s *Sim) cmdDisplays() {
	ids := s.dir.Displays()
	if len(ids) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "No displays configured")
		return
	}
	for _, id := range ids {
		spec, ok := s.dir.DesiredSpec(id)
		if !ok {
			fmt.Fprintf(s.rl.Stdout(), "display %d: (unresolved)\n", id)
			continue
		}
		fmt.Fprintf(s.rl.Stdout(), "display %d: %s, %d votes\n", id, spec, s.dir.Votes(id).Len())
	}
}

func (s *Sim) cmdModes(args []string) {
	id, ok := s.parseDisplay(args, 1)
	if !ok {
		return
	}
	catalog := s.dir.Catalog(id)
	if catalog == nil {
		fmt.Fprintf(s.rl.Stdout(), "display %d has no catalog\n", id)
		return
	}
	for _, m := range catalog.ByAscendingRate() {
		marker := " "
		if m.ID == catalog.DefaultModeID() {
			marker = "*"
		}
		fmt.Fprintf(s.rl.Stdout(), "%s %s\n", marker, m)
	}
}

func (s *Sim) cmdVotes(args []string) {
	id, ok := s.parseDisplay(args, 1)
	if !ok {
		return
	}
	snap := s.dir.Votes(id)
	if snap.Len() == 0 {
		fmt.Fprintf(s.rl.Stdout(), "display %d has no votes\n", id)
		return
	}
	snap.Descending(func(v vote.Vote) bool {
		fmt.Fprintf(s.rl.Stdout(), "%-30s (%g, %g) Hz\n", v.Priority, v.Range.Min, v.Range.Max)
		return true
	})
}

func (s *Sim) cmdVote(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: vote <display> <tier> <min> [max]")
		return
	}
	id, ok := s.parseDisplay(args, 3)
	if !ok {
		return
	}
	p, ok := parseTier(args[1])
	if !ok {
		fmt.Fprintf(s.rl.Stdout(), "Unknown tier: %s (type 'tiers' to list them)\n", args[1])
		return
	}
	r, err := parseVoteRange(args[2:])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Bad range: %v\n", err)
		return
	}
	s.dir.SetVote(id, p, r)
	fmt.Fprintf(s.rl.Stdout(), "Vote set: display %d %s (%g, %g) Hz\n", id, p, r.Min, r.Max)
}

func (s *Sim) cmdClear(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: clear <display> [tier]")
		return
	}
	id, ok := s.parseDisplay(args, 1)
	if !ok {
		return
	}
	if len(args) == 1 {
		for p := vote.MinPriority; p <= vote.MaxPriority; p++ {
			s.dir.ClearVote(id, p)
		}
		fmt.Fprintf(s.rl.Stdout(), "All votes cleared for display %d\n", id)
		return
	}
	p, ok := parseTier(args[1])
	if !ok {
		fmt.Fprintf(s.rl.Stdout(), "Unknown tier: %s\n", args[1])
		return
	}
	s.dir.ClearVote(id, p)
	fmt.Fprintf(s.rl.Stdout(), "Vote cleared: display %d %s\n", id, p)
}

func (s *Sim) cmdSpec(args []string) {
	id, ok := s.parseDisplay(args, 1)
	if !ok {
		return
	}
	spec, resolved := s.dir.DesiredSpec(id)
	if !resolved {
		fmt.Fprintf(s.rl.Stdout(), "display %d is unresolved\n", id)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "display %d: %s\n", id, spec)
}

func (s *Sim) cmdTiers() {
	for p := vote.MaxPriority; p >= vote.MinPriority; p-- {
		fmt.Fprintf(s.rl.Stdout(), "%d  %s\n", int(p), p)
	}
}

// parseDisplay reads args[0] as a display ID, requiring at least minArgs
// arguments to be present.
func (s *Sim) parseDisplay(args []string, minArgs int) (display.ID, bool) {
	if len(args) < minArgs {
		fmt.Fprintln(s.rl.Stdout(), "Missing display ID")
		return 0, false
	}
	n, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Bad display ID: %s\n", args[0])
		return 0, false
	}
	return display.ID(n), true
}

// parseTier resolves a tier given either its numeric value or its
// symbolic name (case-insensitive, dashes allowed for underscores).
func parseTier(arg string) (vote.Priority, bool) {
	if n, err := strconv.Atoi(arg); err == nil {
		p := vote.Priority(n)
		return p, p.IsValid()
	}
	name := strings.ToUpper(strings.ReplaceAll(arg, "-", "_"))
	return vote.ParsePriority(name)
}

// parseVoteRange reads one or two rate values as a vote range; a single
// value is a degenerate single-rate range.
func parseVoteRange(args []string) (rate.Range, error) {
	min, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return rate.Range{}, fmt.Errorf("parsing %q: %w", args[0], err)
	}
	max := min
	if len(args) > 1 {
		max, err = strconv.ParseFloat(args[1], 32)
		if err != nil {
			return rate.Range{}, fmt.Errorf("parsing %q: %w", args[1], err)
		}
	}
	return rate.New(float32(min), float32(max)), nil
}
