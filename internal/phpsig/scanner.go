package phpsig

import (
	"regexp"
	"strings"
	"unicode"
)

// publicFunctionRe matches the head of a public method declaration up to and
// including the opening parenthesis of its parameter list.
var publicFunctionRe = regexp.MustCompile(
	`(?:(?:final|abstract)\s+)*public\s+(?:static\s+)?function\s+&?\s*([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// declaration is a raw public method declaration found in the source.
type declaration struct {
	name       string
	params     string
	doc        string
	documented bool
}

// scanDeclarations finds every public method declaration in order and tags
// whether a doc block immediately precedes it.
func scanDeclarations(src string) []declaration {
	var decls []declaration
	for _, loc := range publicFunctionRe.FindAllStringSubmatchIndex(src, -1) {
		open := loc[1] - 1
		end := matchingParen(src, open)
		if end < 0 {
			continue
		}
		d := declaration{
			name:   src[loc[2]:loc[3]],
			params: src[open+1 : end],
		}
		d.doc, d.documented = precedingDocBlock(src[:loc[0]])
		decls = append(decls, d)
	}
	return decls
}

// matchingParen returns the index of the parenthesis closing the one at
// open, or -1. Parentheses inside quoted strings are ignored.
func matchingParen(src string, open int) int {
	depth := 0
	var quote byte
	for i := open; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// precedingDocBlock returns the body of the /** ... */ block that ends right
// before a declaration, ignoring whitespace in between. The body starts after
// the last /** marker so earlier comments swept up with it are dropped.
func precedingDocBlock(prefix string) (string, bool) {
	trimmed := strings.TrimRightFunc(prefix, unicode.IsSpace)
	if !strings.HasSuffix(trimmed, "*/") {
		return "", false
	}
	body := trimmed[:len(trimmed)-2]
	open := strings.LastIndex(body, "/**")
	if open < 0 {
		return "", false
	}
	body = body[open+3:]
	// A */ after the opener means the closing comment is a plain /* */ one.
	if strings.Contains(body, "*/") {
		return "", false
	}
	return body, true
}

var docLinePrefixRe = regexp.MustCompile(`^\*\s?`)

// cleanDoc turns a raw doc block body into plain text: everything after the
// last /** marker, trimmed, with each line's leading "* " removed.
func cleanDoc(doc string) string {
	if i := strings.LastIndex(doc, "/**"); i >= 0 {
		doc = doc[i+3:]
	}
	doc = strings.TrimSpace(doc)
	lines := strings.Split(doc, "\n")
	for i, line := range lines {
		lines[i] = docLinePrefixRe.ReplaceAllString(strings.TrimSpace(line), "")
	}
	return strings.Join(lines, "\n")
}
