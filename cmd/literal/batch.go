package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/sync/errgroup"
)

// result is the outcome of one batch line.
type result struct {
	Line   int
	Input  string
	Output string
	Err    error
}

func (r result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%d: %s => error: %v", r.Line, r.Input, r.Err)
	}
	return fmt.Sprintf("%d: %s => %s", r.Line, r.Input, r.Output)
}

func cmdBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	jobs := jobsFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := runFile(ctx, fs.Arg(0), *jobs, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// runFile reduces every expression of path and writes the results in
// input order. It returns how many lines failed.
func runFile(ctx context.Context, path string, jobs int, w io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	lines, err := readExpressions(f)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	results, err := reduceAll(ctx, lines, jobs)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		fmt.Fprintln(w, r)
	}
	return failed, nil
}

type sourceLine struct {
	number int
	text   string
}

// readExpressions skips blank lines and lines starting with '#'.
func readExpressions(r io.Reader) ([]sourceLine, error) {
	var out []sourceLine
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out = append(out, sourceLine{number: n, text: text})
	}
	return out, sc.Err()
}

// reduceAll runs each line through the pipeline with at most jobs
// goroutines in flight. Expression errors are recorded per line; only a
// cancelled context fails the whole batch.
func reduceAll(ctx context.Context, lines []sourceLine, jobs int) ([]result, error) {
	if jobs < 1 {
		jobs = 1
	}
	out := make([]result, len(lines))
	sem := make(chan struct{}, jobs)
	g, gctx := errgroup.WithContext(ctx)

	for i, l := range lines {
		i, l := i, l

		g.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}

			defer func() { <-sem }()

			reduced, err := reduceLine(l.text)
			out[i] = result{Line: l.number, Input: l.text, Output: reduced, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
