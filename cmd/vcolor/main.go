// Command vcolor runs one of the concurrent greedy vertex-coloring
// disciplines over a graph loaded from disk and reports whether the
// result is conflict-free and first-fit minimal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/vcolor/assess"
	"github.com/katalvlaran/vcolor/coloring"
	"github.com/katalvlaran/vcolor/colorstore"
	"github.com/katalvlaran/vcolor/graph"
	"github.com/katalvlaran/vcolor/graphio"
	"github.com/katalvlaran/vcolor/vclog"
)

const (
	exitSuccess     = 0
	exitFatal       = 1
	exitNotUndirect = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vcolor", flag.ContinueOnError)
	fs.SetOutput(stderr)

	mode := fs.String("mode", "", "coloring discipline: naive|cas|lock|lock-rc|push|push-prune|partitioned")
	symmetricHint := fs.Bool("s", false, "input is symmetric (hint; the engine verifies regardless)")
	binaryFormat := fs.Bool("b", false, "read the input in the fixed binary format instead of text")
	rounds := fs.Int("r", 1, "repeat count (rounds of coloring; diagnostic)")

	if err := fs.Parse(args); err != nil {
		return exitFatal
	}
	_ = symmetricHint // accepted for CLI symmetry with the spec; EnsureUndirected always runs regardless.

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: vcolor -mode=<discipline> [-s] [-b] [-r N] <path>")

		return exitFatal
	}
	path := fs.Arg(0)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "vcolor: %v\n", err)

		return exitFatal
	}
	defer f.Close()

	var g *graph.Graph
	if *binaryFormat {
		g, err = graphio.ReadBinary(f)
	} else {
		g, err = graphio.ReadText(f)
	}
	if err != nil {
		fmt.Fprintf(stderr, "vcolor: %v\n", err)

		return exitFatal
	}

	if err := assess.EnsureUndirected(g); err != nil {
		fmt.Fprintf(stderr, "vcolor: %v\n", err)

		return exitNotUndirect
	}

	if *rounds < 1 {
		*rounds = 1
	}

	logger := vclog.NewWriter(stdout)
	overallSuccess := true

	for round := 0; round < *rounds; round++ {
		runFn, colorsFn, err := buildEngine(*mode, g, int64(round), []coloring.Option{coloring.WithLogger(logger)})
		if err != nil {
			fmt.Fprintf(stderr, "vcolor: %v\n", err)

			return exitFatal
		}

		roundStart := time.Now()
		if _, err := runFn(context.Background()); err != nil {
			fmt.Fprintf(stderr, "vcolor: %v\n", err)

			return exitFatal
		}

		report := assess.Assess(g, colorsFn())
		logger.Verdict(vclog.Verdict{
			Success:       report.Success(),
			Conflicts:     report.Conflicts,
			NonMinimal:    report.NonMinimal,
			MaxColorUsed:  report.MaxColorUsed,
			MaxDegree:     report.MaxDegree,
			TotalElapsed:  time.Since(roundStart),
			DisciplineTag: *mode,
		})
		if !report.Success() {
			overallSuccess = false
		}
	}

	if !overallSuccess {
		fmt.Fprintln(stdout, "coloring did not converge to a valid result")
	}

	return exitSuccess
}

// buildEngine constructs the requested discipline and returns a uniform
// (run, colors) pair so the round loop above never has to know which
// concrete color-store type backs a given discipline.
func buildEngine(mode string, g graph.View, seed int64, opts []coloring.Option) (
	func(ctx context.Context) (coloring.Result, error),
	func() colorstore.Reader,
	error,
) {
	switch mode {
	case "naive":
		e, err := coloring.NewNaive(g, nil, opts...)
		if err != nil {
			return nil, nil, err
		}

		return e.Run, func() colorstore.Reader { return e.Colors() }, nil
	case "cas":
		e, err := coloring.NewOptimistic(g, nil, opts...)
		if err != nil {
			return nil, nil, err
		}

		return e.Run, func() colorstore.Reader { return e.Colors() }, nil
	case "lock":
		e, err := coloring.NewLocking(g, nil, seed, opts...)
		if err != nil {
			return nil, nil, err
		}

		return e.Run, func() colorstore.Reader { return e.Colors() }, nil
	case "lock-rc":
		e, err := coloring.NewLockingRC(g, nil, seed, opts...)
		if err != nil {
			return nil, nil, err
		}

		return e.Run, func() colorstore.Reader { return e.Colors() }, nil
	case "push":
		e, err := coloring.NewPassivePush(g, opts...)
		if err != nil {
			return nil, nil, err
		}

		return e.Run, func() colorstore.Reader { return e.Colors() }, nil
	case "push-prune":
		e, err := coloring.NewPassivePushPrune(g, opts...)
		if err != nil {
			return nil, nil, err
		}

		return e.Run, func() colorstore.Reader { return e.Colors() }, nil
	case "partitioned":
		e, err := coloring.NewPartitioned(g, opts...)
		if err != nil {
			return nil, nil, err
		}

		return e.Run, func() colorstore.Reader { return e.Colors() }, nil
	default:
		return nil, nil, fmt.Errorf("vcolor: unknown -mode %q", mode)
	}
}
