// Package phpsig extracts documented public method signatures from the PHP
// source of the LimeSurvey RemoteControl handler.
//
// Parameter types follow the handler's Hungarian notation ($sSessionKey is a
// string, $iSurveyID an integer). Names without a type prefix fall back to
// the @param annotation of the doc block.
package phpsig

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/doITmagic/lsrc2gen/internal/codetypes"
)

// Result is the outcome of a successful parse.
type Result struct {
	Functions []codetypes.Function `json:"functions"`
	Warnings  []Warning            `json:"warnings,omitempty"`
}

// Parser extracts function descriptors from PHP source. The zero value is
// not usable; create one with New. A Parser holds no per-call state.
type Parser struct {
	log *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sends diagnostics to log.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log != nil {
			p.log = log
		}
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts every documented public method of src, in declaration
// order, except the constructor. Malformed parameters and unparseable integer
// defaults abort the parse; everything else is reported in Result.Warnings.
func Parse(src string) (*Result, error) {
	return New().Parse(src)
}

// Parse is the method form of the package-level Parse.
func (p *Parser) Parse(src string) (*Result, error) {
	ps := &pass{log: p.log}

	decls := scanDeclarations(src)
	ps.checkCoverage([]byte(src), decls)

	res := &Result{}
	for _, d := range decls {
		if !d.documented || isConstructor(d.name) {
			continue
		}
		fn, err := ps.describe(d)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s", d.name)
		}
		res.Functions = append(res.Functions, fn)
	}
	res.Warnings = ps.warnings

	p.log.Debug("parsed php source",
		zap.Int("declarations", len(decls)),
		zap.Int("functions", len(res.Functions)),
		zap.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}

func (ps *pass) describe(d declaration) (codetypes.Function, error) {
	doc := cleanDoc(d.doc)
	params, err := ps.extractParameters(d.name, d.params, doc)
	if err != nil {
		return codetypes.Function{}, err
	}
	return codetypes.Function{
		Name:       d.name,
		Doc:        doc,
		Parameters: params,
	}, nil
}
