package jsonxf

import (
	"bytes"
	"testing"
)

// Readable stand-ins for ANSI codes.
var testColorizer = Colorizer{
	KeyColorCode: []byte("<key>"),
	ScalarColorCodes: [4][]byte{
		Null:    []byte("<null>"),
		Boolean: []byte("<bool>"),
		Number:  []byte("<num>"),
		String:  []byte("<str>"),
	},
	ResetCode: []byte("<r>"),
}

func colorize(t *testing.T, input string, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	f := NewFormatter(&buf, opts)
	f.Colorizer = &testColorizer
	if _, err := f.Write([]byte(input)); err != nil {
		t.Fatalf("write error: %s", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close error: %s", err)
	}
	return buf.String()
}

func TestColorizerScalarClasses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "object members",
			input: `{"a":"x","n":1,"t":true,"f":false,"z":null}`,
			want: `{<key>"a"<r>:<str>"x"<r>,<key>"n"<r>:<num>1<r>,` +
				`<key>"t"<r>:<bool>true<r>,<key>"f"<r>:<bool>false<r>,<key>"z"<r>:<null>null<r>}`,
		},
		{
			name:  "array elements are not keys",
			input: `[1,"a",null,true]`,
			want:  `[<num>1<r>,<str>"a"<r>,<null>null<r>,<bool>true<r>]`,
		},
		{
			name:  "keys after nested values",
			input: `{"a":{"b":[1]},"c":2}`,
			want:  `{<key>"a"<r>:{<key>"b"<r>:[<num>1<r>]},<key>"c"<r>:<num>2<r>}`,
		},
		{
			name:  "key with escaped quote",
			input: `{"a\"b":1}`,
			want:  `{<key>"a\"b"<r>:<num>1<r>}`,
		},
		{
			name:  "root scalars",
			input: "true null 1",
			want:  "<bool>true<r><null>null<r><num>1<r>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorize(t, tt.input, Minimizer())
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestColorizerPrettyPrint checks that color codes sit inside the line,
// with resets written before separators and newlines.
func TestColorizerPrettyPrint(t *testing.T) {
	got := colorize(t, `{"a":1}`, PrettyPrinter())
	want := "{\n  <key>\"a\"<r>: <num>1<r>\n}\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestNilColorizer checks that a nil colorizer leaves the output
// byte-identical to a plain run.
func TestNilColorizer(t *testing.T) {
	input := `{"a":[1,"x",null],"b":{"c":true}}`
	var buf bytes.Buffer
	f := NewFormatter(&buf, PrettyPrinter())
	if _, err := f.Write([]byte(input)); err != nil {
		t.Fatalf("write error: %s", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close error: %s", err)
	}

	want, err := PrettyPrint(input)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestScalarTypeOf(t *testing.T) {
	tests := []struct {
		b    byte
		want ScalarType
	}{
		{'"', String},
		{'t', Boolean},
		{'f', Boolean},
		{'n', Null},
		{'1', Number},
		{'-', Number},
	}
	for _, tt := range tests {
		if got := scalarTypeOf(tt.b); got != tt.want {
			t.Errorf("scalarTypeOf(%q): expected %d, got %d", tt.b, tt.want, got)
		}
	}
}
