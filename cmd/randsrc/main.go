package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/randsrc/randsrc"
	"github.com/randsrc/randsrc/source"
)

// failureMessage matches the historical output of the reference tools.
const failureMessage = "Failed to generate random number"

func main() {
	var (
		srcName     = flag.String("source", "system", "Entropy source (system, rdrand, rdseed, insecure)")
		numBytes    = flag.Int("bytes", 8, "Number of random bytes to acquire")
		list        = flag.Bool("list", false, "List sources with availability and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			source.SetLogger(logger)
			defer logger.Sync() //nolint:errcheck
		}
	}

	if *list {
		listSources(os.Stdout)
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	src := source.ByName(*srcName)
	if src == nil {
		fmt.Fprintf(os.Stderr, "Unknown source %q; use -list to see sources\n", *srcName)
		os.Exit(1)
	}
	if *numBytes <= 0 || *numBytes > source.MaxFillBytes {
		fmt.Fprintf(os.Stderr, "Invalid -bytes %d (want 1..%d)\n", *numBytes, source.MaxFillBytes)
		os.Exit(1)
	}

	if err := acquire(os.Stdout, os.Stderr, src, *numBytes); err != nil {
		os.Exit(1)
	}
}

// acquire performs one fill and prints one line. The reference tools
// exited 0 even on failure; that is deliberately not preserved here, the
// error return lets main signal failure through the exit code.
func acquire(stdout, stderr io.Writer, src source.Source, n int) error {
	buf := make([]byte, n)
	if err := src.Fill(context.Background(), buf); err != nil {
		fmt.Fprintln(stderr, failureMessage)
		return err
	}
	fmt.Fprintln(stdout, successLine(buf))
	return nil
}

// successLine renders "Random N-bit number: <hex>" for an N-bit sample.
func successLine(buf []byte) string {
	return fmt.Sprintf("Random %d-bit number: %s", len(buf)*8, randsrc.HexString(buf))
}

func listSources(w io.Writer) {
	fmt.Fprintf(w, "%-10s %s\n", "SOURCE", "AVAILABLE")
	for _, s := range source.All() {
		fmt.Fprintf(w, "%-10s %v\n", s.Name(), s.Available())
	}
}
