package jsonxf

import "io"

// A Formatter reformats a stream of JSON-encoded bytes according to its
// Options, either inserting indentation and line breaks or stripping all
// insignificant whitespace.  It is a single-pass byte state machine: it
// never parses the input into a tree and never validates the grammar, so
// invalid input is transformed on a best-effort basis rather than
// rejected.  Bytes inside string literals, including escape sequences and
// multi-byte UTF-8 characters, are passed through untouched.
//
// A Formatter implements io.Writer.  Chunk boundaries carry no meaning:
// the output is the same however the input is split across Write calls,
// including in the middle of an escape sequence.  After the last chunk,
// call Close to emit the configured trailing output.
//
// A Formatter holds the cursor state of one run (nesting depth, string
// and escape tracking, record position), so it must not be shared between
// goroutines or reused for a second stream; make a new one per input.
type Formatter struct {
	// Colorizer, if non-nil, colors scalar values in the output.  Set it
	// before the first Write and do not change it during a run.
	Colorizer *Colorizer

	opts Options
	out  printer

	depth       int
	inString    bool
	inBackslash bool
	empty       bool
	first       bool

	// colorizer support: container kinds by depth (true = object), whether
	// the next scalar is an object key, and whether a scalar color code is
	// open.
	containers []bool
	keyNext    bool
	colored    bool
}

var _ io.WriteCloser = &Formatter{}

// NewFormatter returns a Formatter writing reformatted output to out.
// The output is written in small pieces, so out should be buffered (for
// example with bufio.Writer) unless it is an in-memory buffer.
func NewFormatter(out io.Writer, opts Options) *Formatter {
	return &Formatter{
		opts:  opts,
		out:   printer{w: out},
		first: true,
	}
}

// Write feeds one chunk of input to the Formatter and writes the
// transformed bytes to the output sink.  The returned error is a
// *PrinterError wrapping the sink's error if a write failed.
func (f *Formatter) Write(p []byte) (n int, err error) {
	defer CatchPrinterError(&err)
	for _, b := range p {
		if f.inString {
			f.stringByte(b)
		} else {
			f.structuralByte(b)
		}
	}
	return len(p), nil
}

// Close writes the configured trailing output.  It does not close the
// underlying writer.
func (f *Formatter) Close() (err error) {
	defer CatchPrinterError(&err)
	f.resetColor()
	f.out.printString(f.opts.TrailingOutput)
	return nil
}

// stringByte handles one byte inside a string literal.  Every byte is
// emitted unchanged; the only bookkeeping is finding the closing quote.
// Any byte following a backslash is treated as escaped and not examined
// further, so escape sequences are never validated.
func (f *Formatter) stringByte(b byte) {
	f.out.printByte(b)
	switch {
	case f.inBackslash:
		f.inBackslash = false
	case b == '\\':
		f.inBackslash = true
	case b == '"':
		f.inString = false
		f.resetColor()
	}
}

// structuralByte handles one byte outside string literals.
func (f *Formatter) structuralByte(b byte) {
	switch b {
	case ' ', '\t', '\n', '\r':
		// Insignificant whitespace is consumed, never emitted.
		f.resetColor()
	case '{', '[':
		f.openStructure(b)
	case '}', ']':
		f.closeStructure(b)
	case ',':
		f.resetColor()
		f.out.printByte(b)
		f.out.printString(f.opts.LineSeparator)
		f.printIndent()
		f.keyNext = len(f.containers) > 0 && f.containers[len(f.containers)-1]
	case ':':
		f.resetColor()
		f.out.printByte(b)
		f.out.printString(f.opts.AfterColon)
		f.keyNext = false
	default:
		if f.empty {
			// Deferred separator for the first content of a structure.
			f.out.printString(f.opts.LineSeparator)
			f.printIndent()
			f.empty = false
		}
		f.first = false
		f.startColor(b)
		if b == '"' {
			f.inString = true
		}
		f.out.printByte(b)
	}
}

func (f *Formatter) openStructure(b byte) {
	f.resetColor()
	if f.first {
		f.first = false
	} else if f.empty {
		// This bracket is the first content of an enclosing structure.
		f.out.printString(f.opts.LineSeparator)
		f.printIndent()
	} else if f.depth == 0 && !f.opts.EagerRecordSeparators {
		f.out.printString(f.opts.RecordSeparator)
	}
	f.out.printByte(b)
	f.depth++
	f.empty = true
	if f.Colorizer != nil {
		f.containers = append(f.containers, b == '{')
	}
	f.keyNext = b == '{'
}

func (f *Formatter) closeStructure(b byte) {
	f.resetColor()
	if f.depth > 0 {
		// Clamped at zero: surplus closers pass through without panicking.
		f.depth--
	}
	if f.empty {
		// The structure had no content; render it as {} or [].
		f.empty = false
	} else {
		f.out.printString(f.opts.LineSeparator)
		f.printIndent()
	}
	f.out.printByte(b)
	if f.depth == 0 && f.opts.EagerRecordSeparators {
		f.out.printString(f.opts.RecordSeparator)
	}
	if n := len(f.containers); n > 0 {
		f.containers = f.containers[:n-1]
	}
	f.keyNext = false
}

func (f *Formatter) printIndent() {
	for i := 0; i < f.depth; i++ {
		f.out.printString(f.opts.Indent)
	}
}

// startColor opens a color code when b starts a new scalar.  Bytes that
// continue a scalar already being colored are left alone.
func (f *Formatter) startColor(b byte) {
	c := f.Colorizer
	if c == nil || f.colored {
		return
	}
	f.out.print(c.scalarColorCode(scalarTypeOf(b), f.keyNext && b == '"'))
	f.colored = true
}

func (f *Formatter) resetColor() {
	if f.colored {
		f.out.print(f.Colorizer.ResetCode)
		f.colored = false
	}
}
