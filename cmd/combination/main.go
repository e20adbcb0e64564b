package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/misanthropique/combination"
	"github.com/misanthropique/combination/pkg/trace"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  combination enumerate <N> <K> [-limit M] [-sep STR] [-verbose]
  combination count <N> <K> [-verbose]

Commands:
  enumerate         Print every K-element subset of [0, N), one per line,
                    as offsets in lexicographic order
  count             Print the number of K-element subsets of [0, N)

Options:
  -limit M          Stop after printing M subsets (default: no limit)
  -sep STR          Separator between offsets on a line (default: " ")
  -verbose          Enable detailed (debug/trace) output
`)
	os.Exit(1)
}

// parsePair reads the N and K arguments. Any non-negative pair is accepted;
// pairs that admit no subsets simply enumerate nothing.
func parsePair(nArg, kArg string) (int, int, error) {
	n, err := strconv.Atoi(nArg)
	if err != nil {
		return 0, 0, fmt.Errorf("N must be an integer, got %q", nArg)
	}
	k, err := strconv.Atoi(kArg)
	if err != nil {
		return 0, 0, fmt.Errorf("K must be an integer, got %q", kArg)
	}
	if n < 0 || k < 0 {
		return 0, 0, fmt.Errorf("N and K must be non-negative, got N=%d K=%d", n, k)
	}
	return n, k, nil
}

func newContext(verbose bool) context.Context {
	level := trace.LevelNormal
	if verbose {
		level = trace.LevelVerbose
	}
	return trace.WithContext(context.Background(), trace.New("COMBINATION", level))
}

func formatOffsets(offsets []int, sep string) string {
	parts := make([]string, len(offsets))
	for i, offset := range offsets {
		parts[i] = strconv.Itoa(offset)
	}
	return strings.Join(parts, sep)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cmd := os.Args[1]

	switch cmd {
	case "enumerate":
		if len(os.Args) < 4 {
			usage()
		}

		fs := flag.NewFlagSet("enumerate", flag.ExitOnError)
		limitVal := fs.Int("limit", 0, "stop after printing this many subsets (0 means no limit)")
		sepVal := fs.String("sep", " ", "separator between offsets on a line")
		verboseVal := fs.Bool("verbose", false, "enable detailed (debug/trace) output")
		fs.Parse(os.Args[4:])

		n, k, err := parsePair(os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		if *limitVal < 0 {
			log.Fatalf("Error: -limit must be non-negative, got %d", *limitVal)
		}

		ctx := newContext(*verboseVal)
		tracer := trace.FromContext(ctx)

		enum := combination.New(n, k)
		tracer.Debugf("Enumerating %d-element subsets of [0, %d), %d total", k, n, enum.Count())

		printed := 0
		for offsets := range enum.All() {
			fmt.Println(formatOffsets(offsets, *sepVal))
			printed++
			if *limitVal > 0 && printed == *limitVal {
				tracer.Debugf("Stopping at -limit %d", *limitVal)
				break
			}
		}
		tracer.Debugf("Printed %d subsets", printed)

	case "count":
		if len(os.Args) < 4 {
			usage()
		}

		fs := flag.NewFlagSet("count", flag.ExitOnError)
		verboseVal := fs.Bool("verbose", false, "enable detailed (debug/trace) output")
		fs.Parse(os.Args[4:])

		n, k, err := parsePair(os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		ctx := newContext(*verboseVal)
		tracer := trace.FromContext(ctx)
		tracer.Debugf("Counting %d-element subsets of [0, %d)", k, n)

		fmt.Println(combination.New(n, k).Count())

	default:
		usage()
	}
}
