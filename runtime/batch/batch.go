package batch

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/pgfjr/tex2mml"
	"github.com/pgfjr/tex2mml/runtime/parser"
)

// Result is the outcome of one formula. Exactly one of MathML and Error is set.
type Result struct {
	ID     string       `json:"id" yaml:"id"`
	MathML string       `json:"mathml,omitempty" yaml:"mathml,omitempty"`
	Error  *ResultError `json:"error,omitempty" yaml:"error,omitempty"`
}

// ResultError describes a failed conversion.
type ResultError struct {
	Position   int    `json:"position" yaml:"position"`
	Code       int    `json:"code" yaml:"code"`
	Kind       string `json:"kind" yaml:"kind"`
	Message    string `json:"message" yaml:"message"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Runner converts manifests.
type Runner struct {
	conv   *tex2mml.Converter
	logger *slog.Logger
}

// NewRunner returns a Runner converting through conv. A nil conv uses a
// fresh Converter and a nil logger discards output.
func NewRunner(conv *tex2mml.Converter, logger *slog.Logger) *Runner {
	if conv == nil {
		conv = tex2mml.NewConverter(0)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{conv: conv, logger: logger}
}

// Run converts every formula of m in manifest order. A conversion failure
// is recorded in its Result; only cancellation of ctx stops the run.
func (r *Runner) Run(ctx context.Context, m *Manifest) ([]Result, error) {
	results := make([]Result, 0, len(m.Formulas))
	failed := 0
	for _, f := range m.Formulas {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		out, err := r.conv.Convert(f.TeX, m.DisplayFor(f))
		if err != nil {
			failed++
			results = append(results, Result{ID: f.ID, Error: resultError(err)})
			r.logger.Debug("[BATCH] formula failed", "id", f.ID, "error", err)
			continue
		}
		results = append(results, Result{ID: f.ID, MathML: out})
	}

	r.logger.Debug("[BATCH] done", "formulas", len(results), "failed", failed)
	return results, nil
}

func resultError(err error) *ResultError {
	var convErr *parser.ConvertError
	if !errors.As(err, &convErr) {
		return &ResultError{Message: err.Error()}
	}
	return &ResultError{
		Position:   convErr.Position,
		Code:       convErr.Code(),
		Kind:       convErr.Kind.String(),
		Message:    convErr.Message,
		Suggestion: convErr.Suggestion,
	}
}
