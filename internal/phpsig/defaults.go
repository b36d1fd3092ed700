package phpsig

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

// emptyArrayRe matches the two empty array literal forms, array() and [].
var emptyArrayRe = regexp.MustCompile(`^(?i:array\s*\(\s*\)|\[\s*\])$`)

// convertDefault turns a raw PHP default expression into a literal. Rules
// apply in order: null, booleans, empty arrays, typed conversion, then the
// untyped fallback.
func (ps *pass) convertDefault(fn string, p codetypes.Parameter, raw string) (*codetypes.Default, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case strings.EqualFold(raw, "null"):
		return codetypes.NullDefault(), nil
	case strings.EqualFold(raw, "true"):
		return codetypes.BoolDefault(true), nil
	case strings.EqualFold(raw, "false"):
		return codetypes.BoolDefault(false), nil
	case emptyArrayRe.MatchString(raw):
		return codetypes.EmptyMapDefault(), nil
	}

	switch p.Type {
	case codetypes.TypeInteger:
		n, err := strconv.ParseInt(unquote(raw), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidIntegerDefault, "parameter %s = %s", p.SourceName, raw)
		}
		return codetypes.IntDefault(n), nil
	case codetypes.TypeString:
		return codetypes.StringDefault(unquote(raw)), nil
	case codetypes.TypeUnknown:
	default:
		ps.warn(Warning{
			Kind:     WarnUnhandledType,
			Function: fn,
			Subject:  p.SourceName,
			Message:  fmt.Sprintf("no conversion for type %q, default %s", p.Type, raw),
		})
	}

	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		value := raw[1 : len(raw)-1]
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return codetypes.IntDefault(n), nil
		}
		return codetypes.StringDefault(value), nil
	}

	ps.warn(Warning{
		Kind:     WarnUnrecognizedDefault,
		Function: fn,
		Subject:  p.SourceName,
		Message:  fmt.Sprintf("unexpected default %s, passed through as is", raw),
	})
	return codetypes.RawDefault(raw), nil
}

// unquote removes one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
