package pyclient

import (
	"strconv"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

// pyLiteral renders a converted default as Python source.
func pyLiteral(d *codetypes.Default) string {
	switch d.Kind {
	case codetypes.DefaultNull:
		return "None"
	case codetypes.DefaultBool:
		if d.Bool {
			return "True"
		}
		return "False"
	case codetypes.DefaultInt:
		return strconv.FormatInt(d.Int, 10)
	case codetypes.DefaultString:
		return strconv.Quote(d.Text)
	case codetypes.DefaultEmptyMap:
		return "{}"
	}
	return d.Text
}

// Literal renders d as the Python expression used in generated signatures.
// A nil default renders as the empty string.
func Literal(d *codetypes.Default) string {
	if d == nil {
		return ""
	}
	return pyLiteral(d)
}
