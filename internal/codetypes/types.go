package codetypes

// TypeCode is the Hungarian-notation letter that prefixes a PHP parameter
// name (the "i" in $iSurveyID). The zero value means the type is unknown.
type TypeCode byte

const (
	TypeUnknown TypeCode = 0
	TypeString  TypeCode = 's'
	TypeInteger TypeCode = 'i'
	TypeBoolean TypeCode = 'b'
	TypeArray   TypeCode = 'a'
	TypeDate    TypeCode = 'd'
)

// Known reports whether a type letter was inferred at all.
func (t TypeCode) Known() bool { return t != TypeUnknown }

func (t TypeCode) String() string {
	if t == TypeUnknown {
		return ""
	}
	return string(rune(t))
}

// MarshalText encodes the type as its single letter.
func (t TypeCode) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Function describes one documented public method of the PHP handler.
type Function struct {
	Name       string      `json:"name"`
	Doc        string      `json:"doc"`
	Parameters []Parameter `json:"parameters"`
}

// Parameter describes one positional parameter of a Function.
type Parameter struct {
	// SourceName is the identifier as written in PHP, including the $ sigil.
	SourceName string `json:"name"`
	// TargetName is the snake_case Python identifier.
	TargetName string   `json:"py_name"`
	Type       TypeCode `json:"type,omitempty"`
	// Default is nil when the PHP signature has no default value.
	Default *Default `json:"default,omitempty"`
}

// HasDefault reports whether the PHP signature declared a default value.
func (p Parameter) HasDefault() bool { return p.Default != nil }
