package jsonxf

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by the string entry points when the formatted
// output is not valid UTF-8.  Since the Formatter preserves content bytes,
// this only happens when the input itself contains invalid UTF-8.
var ErrInvalidUTF8 = errors.New("output is not valid UTF-8")

const copyBufferSize = 32 * 1024

// Format reads JSON-encoded data from src until EOF and writes the
// reformatted bytes to dst according to opts.  Both sides are buffered, so
// no external buffering is necessary.  Read errors are returned wrapped
// with their cause; write errors are returned as a *PrinterError.
func Format(dst io.Writer, src io.Reader, opts Options) error {
	w := bufio.NewWriter(dst)
	f := NewFormatter(w, opts)
	buf := make([]byte, copyBufferSize)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, err := f.Write(buf[:n]); err != nil {
				return err
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("reading input: %w", rerr)
		}
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return &PrinterError{Err: err}
	}
	return nil
}

// FormatString reformats a whole string of JSON-encoded data according to
// opts.  The result is checked to be valid UTF-8; if it is not,
// ErrInvalidUTF8 is returned.
func FormatString(s string, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Format(&buf, strings.NewReader(s), opts); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", ErrInvalidUTF8
	}
	return buf.String(), nil
}

// PrettyPrint pretty-prints a string of JSON-encoded data with the
// PrettyPrinter preset:
//
//	out, _ := jsonxf.PrettyPrint(`{"a":1,"b":2}`)
//	// out == "{\n  \"a\": 1,\n  \"b\": 2\n}\n"
func PrettyPrint(s string) (string, error) {
	return FormatString(s, PrettyPrinter())
}

// Minimize strips all insignificant whitespace from a string of
// JSON-encoded data:
//
//	out, _ := jsonxf.Minimize("{ \"a\": \"b\", \"c\": 0 } ")
//	// out == `{"a":"b","c":0}`
func Minimize(s string) (string, error) {
	return FormatString(s, Minimizer())
}

// PrettyPrintStream pretty-prints a stream of JSON-encoded data with the
// PrettyPrinter preset.
func PrettyPrintStream(dst io.Writer, src io.Reader) error {
	return Format(dst, src, PrettyPrinter())
}

// MinimizeStream strips all insignificant whitespace from a stream of
// JSON-encoded data.
func MinimizeStream(dst io.Writer, src io.Reader) error {
	return Format(dst, src, Minimizer())
}
