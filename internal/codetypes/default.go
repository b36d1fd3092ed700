package codetypes

import "encoding/json"

// DefaultKind enumerates the shapes a converted PHP default value can take.
type DefaultKind int

const (
	DefaultNull DefaultKind = iota
	DefaultBool
	DefaultInt
	DefaultString
	DefaultEmptyMap
	// DefaultRaw is a default whose PHP shape was not recognized; Text holds
	// the expression verbatim.
	DefaultRaw
)

func (k DefaultKind) String() string {
	switch k {
	case DefaultNull:
		return "null"
	case DefaultBool:
		return "bool"
	case DefaultInt:
		return "int"
	case DefaultString:
		return "string"
	case DefaultEmptyMap:
		return "empty_map"
	case DefaultRaw:
		return "raw"
	}
	return "unknown"
}

// Default is a PHP default value converted to a language-neutral literal.
type Default struct {
	Kind DefaultKind
	Bool bool
	Int  int64
	// Text carries the value for DefaultString and DefaultRaw.
	Text string
}

func NullDefault() *Default { return &Default{Kind: DefaultNull} }
func BoolDefault(b bool) *Default { return &Default{Kind: DefaultBool, Bool: b} }
func IntDefault(n int64) *Default { return &Default{Kind: DefaultInt, Int: n} }
func StringDefault(s string) *Default { return &Default{Kind: DefaultString, Text: s} }
func EmptyMapDefault() *Default { return &Default{Kind: DefaultEmptyMap} }
func RawDefault(s string) *Default { return &Default{Kind: DefaultRaw, Text: s} }

// Value returns the default as a plain Go value: nil, bool, int64, string or
// an empty map.
func (d *Default) Value() any {
	switch d.Kind {
	case DefaultBool:
		return d.Bool
	case DefaultInt:
		return d.Int
	case DefaultString, DefaultRaw:
		return d.Text
	case DefaultEmptyMap:
		return map[string]any{}
	}
	return nil
}

func (d *Default) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value())
}
