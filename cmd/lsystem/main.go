package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/fatih/color"

	lsystem "github.com/Bunny83/LSystem"
	"github.com/Bunny83/LSystem/expr"
	"github.com/Bunny83/LSystem/interchange/lsif"
)

var (
	inputPath  = flag.String("f", "", "input file (default stdin)")
	iterations = flag.Int("n", 0, "extra generations to run after any count: directive")
	useLSIF    = flag.Bool("lsif", false, "read a YAML lsif stream instead of grammar text")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	in := io.Reader(os.Stdin)
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("Couldn't open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	parser := lsystem.NewParser(expr.New())
	if err := run(os.Stdout, in, parser, *useLSIF, *iterations); err != nil {
		color.Red("lsystem: %v", err)
		os.Exit(1)
	}
}

// run parses every system on r and prints its final sequence to w, one
// line each. In lsif mode r is a YAML document stream; otherwise the
// whole input is one textual system description.
func run(w io.Writer, r io.Reader, parser *lsystem.Parser, useLSIF bool, iterations int) error {
	if useLSIF {
		dec := lsif.NewDecoder(r)
		for {
			format, err := dec.Decode()
			if err == io.EOF {
				return nil
			} else if err != nil {
				return err
			}

			sys, err := format.Import(parser)
			if err != nil {
				return err
			}
			if err := sys.Advance(iterations); err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\n", sys)
		}
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	sys, err := parser.System(string(text))
	if err != nil {
		return err
	}
	if err := sys.Advance(iterations); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", sys)
	return nil
}
