package jsonxf

// Options describes how a Formatter separates and indents the JSON it
// emits.  The strings are opaque byte sequences copied verbatim into the
// output; they are never themselves interpreted as JSON syntax.
//
// An Options value carries no run state, so the same value can configure
// any number of Formatter instances.
type Options struct {
	// Indent is written once per nesting level at the start of each line
	// inside an array or object.
	Indent string

	// LineSeparator is written between sibling elements or members and
	// before a closing bracket.
	LineSeparator string

	// RecordSeparator is written between top-level values.  Input may be a
	// bare concatenation of JSON values; each one is a record.
	RecordSeparator string

	// AfterColon is written immediately after a structural colon.
	AfterColon string

	// TrailingOutput is written once by Close, after all input has been
	// consumed.
	TrailingOutput string

	// EagerRecordSeparators writes the record separator after every record
	// rather than between records, so even single-record output ends with
	// one.
	EagerRecordSeparators bool
}

// PrettyPrinter returns the options used for pretty-printing: two-space
// indent, newline separators, a space after colons, and a newline after
// every record.
func PrettyPrinter() Options {
	return Options{
		Indent:                "  ",
		LineSeparator:         "\n",
		RecordSeparator:       "\n",
		AfterColon:            " ",
		EagerRecordSeparators: true,
	}
}

// Minimizer returns the options used for minimizing: no indent or
// separators at all, except that concatenated records stay delimited by
// single newlines.
func Minimizer() Options {
	return Options{
		RecordSeparator: "\n",
	}
}
