package phpsig

import (
	"regexp"
	"strings"
)

// docInfo holds the PHPDoc tags of a cleaned doc block.
type docInfo struct {
	Description string
	Params      []paramDoc
	Returns     []string
}

// paramDoc represents a @param tag.
type paramDoc struct {
	Name        string // with the $ sigil
	Type        string
	Description string
}

var (
	paramTagRe  = regexp.MustCompile(`^@param\s+(\S+)\s+&?(?:\.\.\.)?(\$[A-Za-z_][A-Za-z0-9_]*)(?:\s+(.*))?$`)
	returnTagRe = regexp.MustCompile(`^@return\s+(\S+)`)
)

// parsePHPDoc reads the tags of a doc cleaned by cleanDoc. Description is the
// text before the first tag with lines joined by spaces.
func parsePHPDoc(doc string) *docInfo {
	info := &docInfo{}

	var desc []string
	inDescription := true
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "@") {
			if inDescription {
				desc = append(desc, line)
			}
			continue
		}
		inDescription = false

		if m := paramTagRe.FindStringSubmatch(line); m != nil {
			info.Params = append(info.Params, paramDoc{
				Name:        m[2],
				Type:        m[1],
				Description: strings.TrimSpace(m[3]),
			})
			continue
		}
		if m := returnTagRe.FindStringSubmatch(line); m != nil {
			info.Returns = append(info.Returns, m[1])
		}
	}

	info.Description = strings.Join(desc, " ")
	return info
}

// param returns the @param tag documenting ident.
func (d *docInfo) param(ident string) (paramDoc, bool) {
	for _, p := range d.Params {
		if p.Name == ident {
			return p, true
		}
	}
	return paramDoc{}, false
}
