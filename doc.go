// Package jsonxf provides fast pretty-printing and minimizing of
// JSON-encoded data.
//
// The package reformats its input in a single pass, without building a
// document model and without validating the JSON grammar: valid inputs
// produce valid outputs, but invalid inputs are transformed on a
// best-effort basis rather than rejected.
//
// Data flows through a Formatter, a byte-oriented state machine that
// tracks just enough context (string literals, escapes, nesting depth,
// structure emptiness) to decide what whitespace to emit:
//
//	input bytes -> Formatter -> reformatted bytes
//
// A Formatter is an io.Writer and can be fed the input in chunks of any
// size, so the whole transformation is streaming: memory usage is constant
// in the size of the input, and output is available as soon as input
// arrives, which works well when piping through tools like 'less' or
// 'head'.
//
// The Format, PrettyPrintStream and MinimizeStream functions drive a
// Formatter over an io.Reader.  The FormatString, PrettyPrint and Minimize
// functions are convenience wrappers for whole in-memory values.
//
// The CLI utility is in the directory cmd/jsonxf. You can install it with:
//
//	go install github.com/gamache/jsonxf/cmd/jsonxf
package jsonxf
