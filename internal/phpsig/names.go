package phpsig

import (
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

// hungarianRe matches "$iSurveyID" style names once the sigil is stripped:
// a lowercase type letter followed by the capitalized semantic name.
var hungarianRe = regexp.MustCompile(`^([a-z])([A-Z].+)$`)

// docTypeCodes maps PHPDoc @param type words to Hungarian type letters.
var docTypeCodes = map[string]codetypes.TypeCode{
	"string":  codetypes.TypeString,
	"int":     codetypes.TypeInteger,
	"integer": codetypes.TypeInteger,
	"bool":    codetypes.TypeBoolean,
	"boolean": codetypes.TypeBoolean,
	"array":   codetypes.TypeArray,
	"date":    codetypes.TypeDate,
}

// pythonKeywords cannot be used as parameter names in the generated client.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// describeIdentifier infers the type letter and target name of a PHP
// parameter. The Hungarian prefix wins; otherwise the @param annotation in
// doc is consulted.
func describeIdentifier(ident, doc string) (codetypes.TypeCode, string) {
	stripped := strings.TrimPrefix(ident, "$")
	if m := hungarianRe.FindStringSubmatch(stripped); m != nil {
		return codetypes.TypeCode(m[1][0]), targetName(m[2])
	}
	return docParamType(doc, ident), targetName(stripped)
}

// targetName converts a semantic PHP name to a snake_case identifier.
func targetName(name string) string {
	// sformat lacks the capital that would make it Hungarian.
	if name == "sformat" {
		name = "format"
	}
	// Without this, groupIDs would become group_i_ds.
	name = strings.ReplaceAll(name, "IDs", "Ids")

	snake := strcase.ToSnake(name)
	if pythonKeywords[snake] {
		snake += "_"
	}
	return snake
}

// docParamType maps the @param type of ident in doc to a type letter.
// Union types use their first known member; a leading "?" is ignored.
func docParamType(doc, ident string) codetypes.TypeCode {
	tag, ok := parsePHPDoc(doc).param(ident)
	if !ok {
		return codetypes.TypeUnknown
	}
	for _, word := range strings.Split(strings.TrimPrefix(tag.Type, "?"), "|") {
		if code, ok := docTypeCodes[strings.ToLower(word)]; ok {
			return code
		}
	}
	return codetypes.TypeUnknown
}
