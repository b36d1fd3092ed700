// Package pyclient renders parsed RemoteControl functions into a Python
// client module.
package pyclient

import (
	_ "embed"
	"strconv"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

// Placeholder marks where generated methods are inserted into the template.
const Placeholder = "#METHODSPLACEHOLDER"

const (
	docIndent     = 8
	payloadIndent = 12
)

// ErrMissingPlaceholder is returned when the client template has no
// Placeholder marker.
var ErrMissingPlaceholder = errors.New("client template has no " + Placeholder + " marker")

//go:embed template/python_client.py
var defaultTemplate string

var methodTemplate = template.Must(template.New("method").Parse(`
    def {{.Name}}({{.Signature}}):
{{.Doc}}
        params = OrderedDict([{{if .Payload}}
{{.Payload}}{{end}}
        ])
        return self.query({{.QuotedName}}, params)
`))

type methodView struct {
	Name       string
	QuotedName string
	Signature  string
	Doc        string
	Payload    string
}

// Generator renders Python client source. It holds no per-call state and is
// safe for concurrent use.
type Generator struct {
	log      *zap.Logger
	template string
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sends diagnostics to log.
func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithTemplate replaces the embedded client template. An empty text keeps
// the default.
func WithTemplate(text string) Option {
	return func(g *Generator) {
		if text != "" {
			g.template = text
		}
	}
}

// New creates a Generator using the embedded template.
func New(opts ...Option) *Generator {
	g := &Generator{log: zap.NewNop(), template: defaultTemplate}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DefaultTemplate returns the embedded client template.
func DefaultTemplate() string {
	return defaultTemplate
}

// Generate renders fns with the embedded template.
func Generate(fns []codetypes.Function) (string, error) {
	return New().Generate(fns)
}

// Generate renders one Python method per function, in order, and substitutes
// them for the template placeholder.
func (g *Generator) Generate(fns []codetypes.Function) (string, error) {
	if !strings.Contains(g.template, Placeholder) {
		return "", ErrMissingPlaceholder
	}

	var methods strings.Builder
	for _, fn := range fns {
		if err := methodTemplate.Execute(&methods, g.view(fn)); err != nil {
			return "", errors.Wrapf(err, "render %s", fn.Name)
		}
	}

	g.log.Debug("generated python client", zap.Int("methods", len(fns)))
	return strings.Replace(g.template, Placeholder, methods.String(), 1), nil
}

func (g *Generator) view(fn codetypes.Function) methodView {
	return methodView{
		Name:       fn.Name,
		QuotedName: strconv.Quote(fn.Name),
		Signature:  signature(fn.Parameters),
		Doc:        g.renderDoc(fn, docIndent),
		Payload:    payload(fn.Parameters, payloadIndent),
	}
}

// signature renders "self, a, b=None" for a def statement.
func signature(params []codetypes.Parameter) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, "self")
	for _, p := range params {
		if p.HasDefault() {
			parts = append(parts, p.TargetName+"="+pyLiteral(p.Default))
			continue
		}
		parts = append(parts, p.TargetName)
	}
	return strings.Join(parts, ", ")
}

// payload renders the ("$phpName", py_name) pairs of the OrderedDict in
// declaration order. The API reads them positionally.
func payload(params []codetypes.Parameter, indent int) string {
	pad := strings.Repeat(" ", indent)
	lines := make([]string, 0, len(params))
	for _, p := range params {
		lines = append(lines, pad+"("+strconv.Quote(p.SourceName)+", "+p.TargetName+")")
	}
	return strings.Join(lines, ",\n")
}
