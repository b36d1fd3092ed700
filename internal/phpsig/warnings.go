package phpsig

import (
	"fmt"

	"go.uber.org/zap"
)

// WarningKind classifies a non-fatal parse diagnostic.
type WarningKind string

const (
	// WarnMissingDoc marks a public method that has no doc block and was
	// therefore left out of the result.
	WarnMissingDoc WarningKind = "missing_doc"
	// WarnUnrecognizedDefault marks a default value passed through verbatim.
	WarnUnrecognizedDefault WarningKind = "unrecognized_default"
	// WarnUnhandledType marks a default whose type letter has no conversion.
	WarnUnhandledType WarningKind = "unhandled_type"
	// WarnSyntax marks errors reported by the PHP parser during the coverage check.
	WarnSyntax WarningKind = "syntax"
)

// Warning is a data-quality diagnostic. Parsing continues after a warning.
type Warning struct {
	Kind     WarningKind `json:"kind"`
	Function string      `json:"function,omitempty"`
	Subject  string      `json:"subject,omitempty"`
	Message  string      `json:"message"`
}

func (w Warning) String() string {
	if w.Function == "" {
		return fmt.Sprintf("%s: %s", w.Kind, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Kind, w.Function, w.Message)
}

// pass holds the diagnostics of a single Parse call.
type pass struct {
	log      *zap.Logger
	warnings []Warning
}

func (ps *pass) warn(w Warning) {
	ps.warnings = append(ps.warnings, w)
	ps.log.Warn(w.Message,
		zap.String("kind", string(w.Kind)),
		zap.String("function", w.Function),
		zap.String("subject", w.Subject),
	)
}
