package jsonxf

// ScalarType classifies a scalar value by the byte that starts it.  The
// values index Colorizer.ScalarColorCodes.
type ScalarType uint8

const (
	Null ScalarType = iota
	Boolean
	Number
	String
)

// scalarTypeOf classifies a scalar from its first byte.  The input is not
// validated, so anything that is not a string, a boolean or null is taken
// to be a number.
func scalarTypeOf(b byte) ScalarType {
	switch b {
	case '"':
		return String
	case 't', 'f':
		return Boolean
	case 'n':
		return Null
	default:
		return Number
	}
}

// A Colorizer holds the ANSI codes a Formatter uses to color scalar
// values.  Object keys get KeyColorCode, other scalars the entry of
// ScalarColorCodes for their ScalarType.  Structural punctuation is left
// uncolored.  A nil *Colorizer on a Formatter disables coloring entirely,
// leaving the output byte-identical to a plain run.
type Colorizer struct {
	KeyColorCode     []byte
	ScalarColorCodes [4][]byte
	ResetCode        []byte
}

func (c *Colorizer) scalarColorCode(t ScalarType, isKey bool) []byte {
	if isKey {
		return c.KeyColorCode
	}
	return c.ScalarColorCodes[t]
}
