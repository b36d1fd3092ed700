package phpsig

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

var (
	// paramFieldRe splits "identifier [= default]".
	paramFieldRe = regexp.MustCompile(`(?s)^([^=]+?)\s*(?:=\s*(.+))?$`)

	// identifierRe accepts an optional type hint, by-reference and variadic
	// markers in front of the identifier; only the identifier is captured.
	identifierRe = regexp.MustCompile(`^(?:\??[A-Za-z_\\][A-Za-z0-9_\\|]*\s+)?&?(?:\.\.\.)?(\$?[A-Za-z_][A-Za-z0-9_]*)$`)
)

// splitParams splits a parameter list on commas that are not nested inside
// parentheses, brackets or quoted strings.
func splitParams(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var (
		fields []string
		cur    strings.Builder
		depth  int
		quote  byte
	)
	for i := 0; i < len(list); i++ {
		c := list[i]
		if quote != 0 {
			cur.WriteByte(c)
			switch c {
			case '\\':
				if i+1 < len(list) {
					i++
					cur.WriteByte(list[i])
				}
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				fields = append(fields, strings.TrimSpace(cur.String()))
				cur.Reset()
				continue
			}
		}
		cur.WriteByte(c)
	}

	last := strings.TrimSpace(cur.String())
	if last != "" {
		fields = append(fields, last)
	}
	// A trailing comma is legal PHP and leaves no final field; any other
	// empty field is not.
	for _, f := range fields {
		if f == "" {
			return nil, errors.Wrapf(ErrMalformedParameter, "empty field in %q", list)
		}
	}
	return fields, nil
}

// splitField separates a parameter field into its identifier and the raw
// default expression. hasDefault is false when no "=" was written.
func splitField(field string) (ident, rawDefault string, hasDefault bool, err error) {
	m := paramFieldRe.FindStringSubmatch(field)
	if m == nil {
		return "", "", false, errors.Wrapf(ErrMalformedParameter,
			"parameter %q has not the shape of a PHP function parameter", field)
	}
	id := identifierRe.FindStringSubmatch(strings.TrimSpace(m[1]))
	if id == nil {
		return "", "", false, errors.Wrapf(ErrMalformedParameter,
			"parameter %q has no identifier", field)
	}
	return id[1], strings.TrimSpace(m[2]), m[2] != "", nil
}

// extractParameters converts a raw PHP parameter list into descriptors. doc
// is the cleaned doc text, used to look up types of non-Hungarian names.
func (ps *pass) extractParameters(fn, list, doc string) ([]codetypes.Parameter, error) {
	fields, err := splitParams(list)
	if err != nil {
		return nil, err
	}

	params := make([]codetypes.Parameter, 0, len(fields))
	for _, field := range fields {
		ident, raw, hasDefault, err := splitField(field)
		if err != nil {
			return nil, err
		}

		typ, target := describeIdentifier(ident, doc)
		p := codetypes.Parameter{
			SourceName: ident,
			TargetName: target,
			Type:       typ,
		}
		if hasDefault {
			if p.Default, err = ps.convertDefault(fn, p, raw); err != nil {
				return nil, err
			}
		}
		params = append(params, p)
	}
	return params, nil
}
