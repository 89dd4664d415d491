package cmd

import (
	"context"
	"fmt"
)

// Names lists every name visible from the document scope, including the
// built-in symbols, one per line.
type Names struct {
	Filter string `arg:"" help:"Fuzzy filter applied to the listed names" name:"filter" optional:""`
}

// Run executes the names command.
func (n *Names) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := scopeFrom(ctx)
	if s == nil {
		return ErrNoScope
	}

	names := s.Root.Names()

	if n.Filter != "" {
		names = s.Root.Suggest(n.Filter, len(names))
	}

	for _, name := range names {
		_, err = fmt.Fprintln(s.Output, name)
		if err != nil {
			return err
		}
	}

	return nil
}
