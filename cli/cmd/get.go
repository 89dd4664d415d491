package cmd

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ardnew/dynscope/log"
	"github.com/ardnew/dynscope/scope"
)

// suggestLimit bounds the number of similar names offered when resolution
// fails.
const suggestLimit = 5

// Get resolves a name against the document scope and prints its value.
type Get struct {
	Name string `arg:"" help:"Name to resolve" name:"name"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := scopeFrom(ctx)
	if s == nil {
		return ErrNoScope
	}

	value, err := s.Root.Get(g.Name)
	if err != nil {
		if errors.Is(err, scope.ErrNameNotFound) {
			if match := s.Root.Suggest(g.Name, suggestLimit); len(match) > 0 {
				return scope.WrapError(err).With(
					slog.String("name", g.Name),
					slog.String("similar", strings.Join(match, ", ")),
				)
			}
		}

		return err
	}

	log.DebugContext(ctx, "resolved name", slog.String("name", g.Name))

	return printValue(s.Output, value)
}
