// Command monadoc parses a single Markdown-like document and prints
// either a round-trip reconstruction or a structural tree dump. It
// exists to exercise package markdown from the command line; all of
// the actual parsing lives in the library.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/colbyn/monado/ast"
	"github.com/colbyn/monado/markdown"
)

var dumpTokens = flag.Bool("dump-tokens", false, "print a structural tree dump instead of a round-trip reconstruction")
var logpath = flag.String("log", "", "log to file")

func main() {
	flag.Usage = printUsage
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if *logpath != "" {
		logFile, err := os.Create(*logpath)
		if err != nil {
			exitWithError(errors.Wrap(err, "opening log file"))
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	src, err := readSource(flag.Arg(0))
	if err != nil {
		exitWithError(err)
	}

	if err := run(src, *dumpTokens, os.Stdout); err != nil {
		exitWithError(err)
	}
}

func readSource(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(b), nil
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %q", path)
	}
	return string(b), nil
}

func run(src string, dump bool, out io.Writer) error {
	doc, state := markdown.Parse(src)
	log.Printf("trailing unparsed tape: %d chars\n", state.Tape.Len())

	if dump {
		_, err := fmt.Fprint(out, ast.Dump(*doc))
		return errors.Wrap(err, "writing dump")
	}
	_, err := fmt.Fprint(out, ast.Reconstruct(*doc))
	return errors.Wrap(err, "writing reconstruction")
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [options...] [path]\n", os.Args[0])
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
