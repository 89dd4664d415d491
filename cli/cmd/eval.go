package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/dynscope/log"
)

// Eval evaluates one or more expressions against the document scope and
// prints each result.
//
// Expressions see every name visible from the root closure, innermost
// bindings shadowing outer ones, so "host + ':' + string(port)" resolves
// both names against the document before falling back to built-ins.
type Eval struct {
	Expr []string `arg:"" help:"Expression(s) to evaluate" name:"expr"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := scopeFrom(ctx)
	if s == nil {
		return ErrNoScope
	}

	for _, expr := range e.Expr {
		result, err := s.Root.Eval(expr)
		if err != nil {
			return err
		}

		log.DebugContext(ctx, "evaluated expression",
			slog.String("expr", expr),
		)

		err = printValue(s.Output, result)
		if err != nil {
			return err
		}
	}

	return nil
}
