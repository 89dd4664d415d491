package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ardnew/dynscope/log"
	"github.com/ardnew/dynscope/scope"
)

// Set assigns a value to a name in the document scope and persists the
// updated document.
type Set struct {
	Name  string `arg:"" help:"Name to assign"                  name:"name"`
	Value string `arg:"" help:"Value to assign (YAML notation)" name:"value"`

	Create bool `help:"Insert the name if it does not exist" short:"c"`
}

// Run executes the set command.
func (c *Set) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := scopeFrom(ctx)
	if s == nil {
		return ErrNoScope
	}

	value, err := parseValue(c.Value)
	if err != nil {
		return err
	}

	err = s.Root.Set(c.Name, value)

	// Assignment only rebinds existing names. Creating a new one requires
	// an explicit flag, and lands in the top-level document mapping.
	if errors.Is(err, scope.ErrNameNotFound) && c.Create {
		s.Document[c.Name] = value
		err = nil
	}

	if err != nil {
		return err
	}

	log.DebugContext(ctx, "assigned name",
		slog.String("name", c.Name),
		slog.Any("value", value),
	)

	err = s.Save()
	if err != nil {
		return err
	}

	return printDocument(s.Output, s.Document)
}
