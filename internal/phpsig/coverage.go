package phpsig

import (
	"fmt"
	"strings"

	"github.com/VKCOM/php-parser/pkg/ast"
	"github.com/VKCOM/php-parser/pkg/conf"
	phperrors "github.com/VKCOM/php-parser/pkg/errors"
	"github.com/VKCOM/php-parser/pkg/parser"
	"github.com/VKCOM/php-parser/pkg/version"
	"github.com/VKCOM/php-parser/pkg/visitor"
	"github.com/VKCOM/php-parser/pkg/visitor/traverser"
	"github.com/cockroachdb/errors"
)

// constructorName is skipped everywhere: it takes a controller injected by
// the PHP framework and means nothing to a remote client.
const constructorName = "__construct"

func isConstructor(name string) bool {
	return strings.EqualFold(name, constructorName)
}

// checkCoverage reports public methods that have no documented declaration.
// Candidates come from the PHP AST, which also sees methods without an
// explicit "public" modifier, and from the declaration scan.
func (ps *pass) checkCoverage(src []byte, decls []declaration) {
	documented := make(map[string]bool, len(decls))
	var candidates []string
	for _, d := range decls {
		if d.documented {
			documented[strings.ToLower(d.name)] = true
		}
		candidates = append(candidates, d.name)
	}

	methods, syntaxErrs, err := publicMethods(src)
	switch {
	case err != nil:
		ps.log.Debug("php parser unavailable for coverage check, using declaration scan only")
	case len(syntaxErrs) > 0:
		ps.warn(Warning{
			Kind:    WarnSyntax,
			Subject: syntaxErrs[0].String(),
			Message: fmt.Sprintf("php parser reported %d syntax errors", len(syntaxErrs)),
		})
	}
	candidates = append(candidates, methods...)

	reported := make(map[string]bool)
	for _, name := range candidates {
		key := strings.ToLower(name)
		if documented[key] || reported[key] || isConstructor(name) {
			continue
		}
		reported[key] = true
		ps.warn(Warning{
			Kind:     WarnMissingDoc,
			Function: name,
			Message:  "missing function in doc",
		})
	}
}

// publicMethods parses src and lists the names of all public class methods.
func publicMethods(src []byte) ([]string, []*phperrors.Error, error) {
	var syntaxErrs []*phperrors.Error

	root, err := parser.Parse(src, conf.Config{
		Version: &version.Version{Major: 8, Minor: 0},
		ErrorHandlerFunc: func(e *phperrors.Error) {
			syntaxErrs = append(syntaxErrs, e)
		},
	})
	if err != nil {
		return nil, syntaxErrs, err
	}
	if root == nil {
		return nil, syntaxErrs, errors.New("php parser returned no AST")
	}

	collector := &methodCollector{}
	traverser.NewTraverser(collector).Traverse(root)
	return collector.names, syntaxErrs, nil
}

// methodCollector is a visitor that records public method names.
type methodCollector struct {
	visitor.Null
	names []string
}

func (c *methodCollector) StmtClassMethod(n *ast.StmtClassMethod) {
	ident, ok := n.Name.(*ast.Identifier)
	if !ok {
		return
	}
	for _, mod := range n.Modifiers {
		if m, ok := mod.(*ast.Identifier); ok {
			switch strings.ToLower(string(m.Value)) {
			case "private", "protected":
				return
			}
		}
	}
	c.names = append(c.names, string(ident.Value))
}
