package scope

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Compile compiles an expr-lang expression against the environment visible
// from this scope. The compiled program can be evaluated repeatedly with
// [Closure.RunProgram] as the scope's bindings change.
func (c *Closure) Compile(source string) (*vm.Program, error) {
	program, err := expr.Compile(source, expr.Env(c.Env()))
	if err != nil {
		return nil, ErrExprCompile.Wrap(err).
			With(slog.String("source", source))
	}

	return program, nil
}

// RunProgram evaluates a compiled expression against the environment
// currently visible from this scope.
func (c *Closure) RunProgram(program *vm.Program) (any, error) {
	result, err := vm.Run(program, c.Env())
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err)
	}

	return result, nil
}

// Eval compiles and evaluates an expr-lang expression in one step.
func (c *Closure) Eval(source string) (any, error) {
	program, err := c.Compile(source)
	if err != nil {
		return nil, err
	}

	result, err := vm.Run(program, c.Env())
	if err != nil {
		return nil, ErrExprEvaluate.Wrap(err).
			With(slog.String("source", source))
	}

	return result, nil
}
