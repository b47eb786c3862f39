// Command simdcsv scans a CSV file and reports its structural index.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/simdcsv/simdcsv"
)

func main() {
	verbose := flag.Bool("v", false, "verbose output")
	dump := flag.Bool("d", false, "dump parsed field positions")
	iterations := flag.Int("i", 100, "number of iterations for benchmarking")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: simdcsv [-v] [-d] [-i N] <FILE>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	if *verbose {
		fmt.Printf("[verbose] loading %s\n", path)
	}

	buf, err := simdcsv.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load the file %s: %v\n", path, err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("[verbose] loaded %s (%d bytes)\n", path, buf.Len())
		fmt.Printf("[verbose] scanner variant: %s\n", simdcsv.Variant())
	}

	// Warmup run
	pcsv, err := simdcsv.FindIndexes(buf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("number of indexes found    : %d\n", pcsv.Len())
		if pcsv.Len() > 0 {
			fmt.Printf("number of bytes per index  : %.2f\n", float64(buf.Len())/float64(pcsv.Len()))
		}
	}

	// Benchmark runs
	var total time.Duration
	for n := 0; n < *iterations; n++ {
		start := time.Now()
		if _, err := simdcsv.FindIndexes(buf); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		total += time.Since(start)
	}

	if *iterations > 0 && total > 0 {
		scanned := float64(buf.Len()) * float64(*iterations)
		mbPerSec := scanned / (1024 * 1024) / total.Seconds()
		fmt.Printf("%d iterations in %v: %.2f MB/s\n", *iterations, total, mbPerSec)
	}

	if *dump {
		data := buf.Data()
		offs := pcsv.Offsets()
		for i, off := range offs {
			fmt.Printf("%d: ", off)
			end := len(data)
			if i+1 < len(offs) {
				end = int(offs[i+1])
			}
			if int(off)+1 <= end {
				fmt.Printf("%s", data[off+1:end])
			}
			fmt.Println()
		}
	}
}
