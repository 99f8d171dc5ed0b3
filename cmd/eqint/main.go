// Command eqint solves a bounded equitable integer allocation from the
// command line, for manual inspection of a bound set. It takes flags only:
// it does not read bound sets from a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/austerj/equitable-integers"
)

func main() {
	var (
		budget    = flag.Int("budget", 0, "integer budget to allocate")
		boundsArg = flag.String("bounds", "", "comma-separated lower:upper pairs, either side may be empty, e.g. 5:10,:20,5:")
		cont      = flag.Bool("continuous", false, "print the raw continuous solution instead of rounding to integers")
	)
	flag.Parse()

	bounds, err := parseBounds(*boundsArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	allocator, err := eqint.New(bounds)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *cont {
		allocations, err := allocator.SolveContinuous(*budget)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(allocations)
		return
	}

	allocations, err := allocator.Solve(*budget)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(allocations)
}

// parseBounds turns "5:10,:20,5:" into three Bounds, each optional side
// parsed independently; an empty side means absent.
func parseBounds(arg string) (eqint.Bounds, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, fmt.Errorf("eqint: -bounds must not be empty")
	}

	parts := strings.Split(arg, ",")
	bounds := make(eqint.Bounds, 0, len(parts))
	for i, p := range parts {
		lowerStr, upperStr, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("eqint: bound %d (%q) is missing a ':' separator", i, p)
		}

		lower, err := parseOptionalInt(lowerStr)
		if err != nil {
			return nil, fmt.Errorf("eqint: bound %d: lower side: %w", i, err)
		}
		upper, err := parseOptionalInt(upperStr)
		if err != nil {
			return nil, fmt.Errorf("eqint: bound %d: upper side: %w", i, err)
		}

		bounds = append(bounds, eqint.Bound{Lower: lower, Upper: upper})
	}
	return bounds, nil
}

func parseOptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
