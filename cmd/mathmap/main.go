// This is the main-driver for the mathmap compiler and evaluator.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/skx/mathmap/internal/log"
	"github.com/skx/mathmap/internal/mathmap"
)

// stringList collects repeated occurrences of a flag into a slice, the way
// a "-fwd" / "-inv" flag is expected to be given once per function.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(val string) error {
	*s = append(*s, val)
	return nil
}

func main() {
	var fwd, inv, opts stringList

	flag.Var(&fwd, "fwd", "A forward function, e.g. 'y = x*2'. Repeat once per output coordinate.")
	flag.Var(&inv, "inv", "An inverse function, e.g. 'x = y/2'. Repeat once per input coordinate.")
	flag.Var(&opts, "opt", "A key=value construction option, e.g. 'simpfi=1'. May be repeated.")
	invert := flag.Bool("invert", false, "Evaluate the inverse direction instead of the forward one.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	flag.Parse()

	if *debug {
		log.SetDebug(true)
	}

	if len(fwd) == 0 && len(inv) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: mathmap -fwd 'y = x' -inv 'x = y' [-invert] [-debug]\n")
		os.Exit(1)
	}

	options, err := mathmap.ParseOptions(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing options: %s\n", err)
		os.Exit(1)
	}

	mm, err := mathmap.New(len(inv), len(fwd), fwd, inv, options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error compiling: %s\n", err)
		os.Exit(1)
	}
	log.Default().Debug("compiled mathmap", "nin", mm.NIn(), "nout", mm.NOut())

	forward := !*invert
	nin := mm.NIn()
	if !forward {
		nin = mm.NOut()
	}

	inputs, err := readColumns(os.Stdin, nin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %s\n", err)
		os.Exit(1)
	}

	npoints := 0
	if len(inputs) > 0 {
		npoints = len(inputs[0])
	}

	out, err := mm.Transform(forward, npoints, inputs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error transforming: %s\n", err)
		os.Exit(1)
	}

	for p := 0; p < npoints; p++ {
		fields := make([]string, len(out))
		for c := range out {
			fields[c] = strconv.FormatFloat(out[c][p], 'g', -1, 64)
		}
		fmt.Println(strings.Join(fields, " "))
	}
}

// readColumns reads whitespace-separated numeric columns from r, one row
// per line, and returns them transposed into ncoord vectors.
func readColumns(r *os.File, ncoord int) ([][]float64, error) {
	columns := make([][]float64, ncoord)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != ncoord {
			return nil, fmt.Errorf("expected %d coordinate(s), got %d in line %q", ncoord, len(fields), line)
		}
		for c, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", f, err)
			}
			columns[c] = append(columns[c], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return columns, nil
}
