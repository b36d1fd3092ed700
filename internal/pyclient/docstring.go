package pyclient

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

var (
	accessTagRe = regexp.MustCompile(`^\s*@access\b`)
	returnTagRe = regexp.MustCompile(`@return\b`)
)

// typeNames are the docstring names of the Hungarian type letters.
var typeNames = map[codetypes.TypeCode]string{
	codetypes.TypeInteger: "integer",
	codetypes.TypeBoolean: "boolean",
	codetypes.TypeString:  "string",
	codetypes.TypeArray:   "dict",
	codetypes.TypeDate:    "date",
}

// typeLabel returns the human readable label used in ":type x: Label".
func typeLabel(t codetypes.TypeCode) (string, bool) {
	name, ok := typeNames[t]
	if !ok {
		return "", false
	}
	return cases.Title(language.English).String(name), true
}

// identifierPattern matches a PHP identifier as a whole word.
func identifierPattern(ident string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(ident) + `\b`
	if !strings.HasPrefix(ident, "$") {
		pattern = `\b` + pattern
	}
	return regexp.MustCompile(pattern)
}

// renderDoc converts a cleaned PHPDoc text into an indented Python
// docstring in reStructuredText field style.
func (g *Generator) renderDoc(fn codetypes.Function, indent int) string {
	var kept []string
	for _, line := range strings.Split(fn.Doc, "\n") {
		if accessTagRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	doc := strings.Join(kept, "\n")
	doc = returnTagRe.ReplaceAllLiteralString(doc, ":return:")

	for _, p := range fn.Parameters {
		if !p.Type.Known() {
			continue
		}
		label, ok := typeLabel(p.Type)
		if !ok {
			g.log.Warn("no docstring label for parameter type",
				zap.String("function", fn.Name),
				zap.String("parameter", p.SourceName),
				zap.Stringer("type", p.Type),
			)
			continue
		}
		paramRe := regexp.MustCompile(`@param[ \t]+\S+[ \t]+` + regexp.QuoteMeta(p.SourceName) + `\b`)
		doc = paramRe.ReplaceAllLiteralString(doc,
			fmt.Sprintf(":type %s: %s\n:param %s:", p.TargetName, label, p.TargetName))
	}
	for _, p := range fn.Parameters {
		doc = identifierPattern(p.SourceName).ReplaceAllLiteralString(doc, p.TargetName)
	}
	doc = strings.ReplaceAll(doc, `"""`, `\"\"\"`)

	pad := strings.Repeat(" ", indent)
	lines := []string{pad + `"""`}
	for _, line := range strings.Split(doc, "\n") {
		if line == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, pad+line)
	}
	lines = append(lines, pad+`"""`)
	return strings.Join(lines, "\n")
}
