package phpsig

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

func TestConvertDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		typ  codetypes.TypeCode
		want *codetypes.Default
	}{
		{"upper null", "NULL", codetypes.TypeUnknown, codetypes.NullDefault()},
		{"lower null", "null", codetypes.TypeInteger, codetypes.NullDefault()},
		{"true", "true", codetypes.TypeUnknown, codetypes.BoolDefault(true)},
		{"upper true", "TRUE", codetypes.TypeBoolean, codetypes.BoolDefault(true)},
		{"false", "false", codetypes.TypeUnknown, codetypes.BoolDefault(false)},
		{"upper false", "FALSE", codetypes.TypeBoolean, codetypes.BoolDefault(false)},
		{"Array()", "Array()", codetypes.TypeUnknown, codetypes.EmptyMapDefault()},
		{"array()", "array()", codetypes.TypeArray, codetypes.EmptyMapDefault()},
		{"short array", "[]", codetypes.TypeArray, codetypes.EmptyMapDefault()},
		{"typed string", "'pdf'", codetypes.TypeString, codetypes.StringDefault("pdf")},
		{"typed string keeps digits", "'0'", codetypes.TypeString, codetypes.StringDefault("0")},
		{"typed integer", "42", codetypes.TypeInteger, codetypes.IntDefault(42)},
		{"typed quoted integer", "'7'", codetypes.TypeInteger, codetypes.IntDefault(7)},
		{"untyped quoted integer", "'0'", codetypes.TypeUnknown, codetypes.IntDefault(0)},
		{"untyped quoted string", "'foo'", codetypes.TypeUnknown, codetypes.StringDefault("foo")},
		{"untyped bare", "1", codetypes.TypeUnknown, codetypes.RawDefault("1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := newTestPass()
			p := codetypes.Parameter{SourceName: "$x", Type: tt.typ}
			got, err := ps.convertDefault("f", p, tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConvertDefault_Diagnostics(t *testing.T) {
	ps := newTestPass()
	got, err := ps.convertDefault("f", codetypes.Parameter{SourceName: "$x"}, "SOME_CONSTANT")
	require.NoError(t, err)
	require.Equal(t, codetypes.RawDefault("SOME_CONSTANT"), got)
	require.True(t, hasWarning(ps.warnings, WarnUnrecognizedDefault, "$x"))

	ps = newTestPass()
	got, err = ps.convertDefault("f", codetypes.Parameter{SourceName: "$bFlag", Type: codetypes.TypeBoolean}, "'yes'")
	require.NoError(t, err)
	require.Equal(t, codetypes.StringDefault("yes"), got)
	require.True(t, hasWarning(ps.warnings, WarnUnhandledType, "$bFlag"))
}

func TestConvertDefault_InvalidInteger(t *testing.T) {
	_, err := newTestPass().convertDefault("f", codetypes.Parameter{SourceName: "$iX", Type: codetypes.TypeInteger}, "'abc'")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidIntegerDefault))
}
