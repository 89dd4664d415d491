package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/dynscope/log"
)

// Del removes a name from the document scope and persists the updated
// document.
type Del struct {
	Name string `arg:"" help:"Name to remove" name:"name"`
}

// Run executes the del command.
func (d *Del) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := scopeFrom(ctx)
	if s == nil {
		return ErrNoScope
	}

	err = s.Root.Delete(d.Name)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "removed name", slog.String("name", d.Name))

	err = s.Save()
	if err != nil {
		return err
	}

	return printDocument(s.Output, s.Document)
}
