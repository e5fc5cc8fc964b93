package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"twee/internal/config"
	"twee/internal/critical"
	proverrors "twee/internal/errors"
	"twee/internal/kbo"
	"twee/internal/loader"
	"twee/internal/rule"
	"twee/internal/saturate"
	"twee/internal/saturatelog"
)

var report = proverrors.NewErrorReporter()

// printErr renders a *proverrors.ProverError with the reporter's
// kind-coloured, coded format, and falls back to plain red text for
// the I/O and parse-error paths that never got wrapped into one (disk
// reads, participle's own lexer/parser errors).
func printErr(err error) {
	var pe *proverrors.ProverError
	if errors.As(err, &pe) {
		fmt.Print(report.FormatError(pe))
		return
	}
	color.Red("%s", err)
}

// main is cmd/twee's entrypoint: read a problem file, run completion
// to a halt, and report every message the loop emitted plus whether
// any goal was proved. Pretty-printing a full human-readable proof
// derivation is out of scope (spec.md §1); this prints the message
// stream and, on success, the proved equation.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: twee <problem-file> [-v]")
		os.Exit(1)
	}
	verbose := len(os.Args) > 2 && os.Args[2] == "-v"
	saturatelog.Configure(0)

	path := os.Args[1]
	prob, err := loader.Load(path)
	if err != nil {
		printErr(err)
		os.Exit(1)
	}

	order := kbo.New(prob.Sig)
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		color.Red("invalid configuration: %s", err)
		os.Exit(1)
	}

	st := saturate.New(cfg, prob.Sig, order, prob.Axioms)
	for i, g := range prob.Goals {
		st.AddGoal(g.Name, i, g.Eq)
	}

	messages, runErr := saturate.Run(cfg, st)
	active := 0
	for _, m := range messages {
		switch m.(type) {
		case saturate.NewActiveMsg:
			active++
		case saturate.DeleteActiveMsg:
			active--
		}
		printMessage(prob, m, verbose)
	}
	if runErr != nil {
		printErr(runErr)
		os.Exit(1)
	}

	solved := 0
	for _, g := range st.Goals {
		if g.Solved {
			solved++
		}
	}
	if solved == len(st.Goals) && len(st.Goals) > 0 {
		color.Green("✅ all %d goal(s) proved", solved)
		return
	}
	if solved > 0 {
		color.Yellow("%d/%d goal(s) proved", solved, len(st.Goals))
		return
	}
	if len(st.Goals) == 0 {
		color.Green("✅ completion finished (no goals given): %d active rule(s)", active)
		return
	}
	color.Red("no goal proved (halted after %d critical pair(s) considered)", st.Considered)
}

func printMessage(prob *loader.Problem, m saturate.Message, verbose bool) {
	switch v := m.(type) {
	case saturate.NewActiveMsg:
		if verbose {
			printActive(prob, v.Active)
		}
	case saturate.NewEquationMsg:
		if verbose {
			fmt.Printf("  joinable: %s = %s\n", v.Equation.LHS.String(prob.Sig), v.Equation.RHS.String(prob.Sig))
		}
	case saturate.DeleteActiveMsg:
		if verbose {
			fmt.Printf("  retired rule active#%d\n", v.Active.ActiveID)
		}
	case saturate.SimplifyQueueMsg:
		// maintenance marker, silent by default
	case saturate.InterreduceMsg:
		// maintenance marker, silent by default
	case saturate.ProvedGoalMsg:
		color.Cyan("proved %s: %s = %s", v.Goal.Name,
			v.Proof.Equation.LHS.String(prob.Sig), v.Proof.Equation.RHS.String(prob.Sig))
	}
}

func printActive(prob *loader.Problem, a *critical.Active) {
	orientArrow := "="
	switch a.Rule.Orientation.(type) {
	case rule.Oriented, rule.WeaklyOriented:
		orientArrow = "->"
	}
	fmt.Printf("  [%d] %s %s %s  (%s)\n", a.ActiveID,
		a.Rule.LHS.String(prob.Sig), orientArrow, a.Rule.RHS.String(prob.Sig),
		a.Rule.Orientation.String())
}
