package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/gamache/jsonxf"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const usage = `Jsonxf is a JSON transformer.  It provides fast pretty-printing
and minimizing of JSON-encoded UTF-8 data.

Pretty-print example:

    jsonxf <foo.json >foo-pretty.json

Minimize example:

    jsonxf -m <foo.json >foo-min.json

Options:
`

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at
	// the bottom of main).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
		}
	}()

	err := run()
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or
			// 'less').  In this case we don't want to complain.
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var inputFile string
	var outputFile string
	var indent string
	var minimize bool
	var colorizer *jsonxf.Colorizer

	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &defaultColorizer
	}

	flag.BoolFunc("colors", "force using colors", func(s string) error {
		colorizer = &defaultColorizer
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(s string) error {
		colorizer = nil
		return nil
	})

	flag.StringVar(&inputFile, "i", "", `read input from the given file ("-" or omitted means stdin)`)
	flag.StringVar(&outputFile, "o", "", `write output to the given file ("-" or omitted means stdout)`)
	flag.StringVar(&indent, "t", "  ", "indent pretty-printed output with the given string")
	flag.BoolVar(&minimize, "m", false, "minimize JSON instead of pretty-printing it")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := jsonxf.PrettyPrinter()
	opts.Indent = indent
	if minimize {
		opts = jsonxf.Minimizer()
	}

	// Open input file
	var input io.Reader = os.Stdin
	if inputFile != "" && inputFile != "-" {
		in, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("%s: %w", inputFile, err)
		}
		defer in.Close()
		input = in
	}

	if outputFile != "" && outputFile != "-" {
		// Colors are for terminals only.
		return formatToFile(outputFile, input, opts)
	}

	// Set up stdout for handling colors
	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}
	return format(stdout, input, opts, colorizer)
}

func format(dst io.Writer, src io.Reader, opts jsonxf.Options, colorizer *jsonxf.Colorizer) error {
	out := bufio.NewWriter(dst)
	f := jsonxf.NewFormatter(out, opts)
	f.Colorizer = colorizer
	if _, err := io.Copy(f, src); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return out.Flush()
}

// formatToFile writes the output to a temporary file next to path and
// renames it into place on success.  This means the output file is only
// ever replaced whole, so formatting a file onto itself does not truncate
// the input while it is still being read.
func formatToFile(path string, src io.Reader, opts jsonxf.Options) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if err := format(tmp, src, opts, nil); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}

// Some color ANSI codes
var (
	reset = []byte("\033[0m")

	yellow = []byte("\033[33m")
	white  = []byte("\033[37m")
	green  = []byte("\033[32m")

	dimWhite   = []byte("\033[37;2m")
	brightBlue = []byte("\033[34;1m")
)

// The colors I chose :)
var defaultColorizer = jsonxf.Colorizer{
	ScalarColorCodes: [4][]byte{dimWhite, yellow, white, green},
	KeyColorCode:     brightBlue,
	ResetCode:        reset,
}
