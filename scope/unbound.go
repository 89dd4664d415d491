package scope

// UnboundClosure is a deferred binding: a nested lexical scope captured
// before it is applied to a target value. It is a pure value with no
// lifecycle beyond the call that constructs and then binds it.
type UnboundClosure struct {
	Parent *Closure
	Locals Locals
	Fn     Func
}

// Bind constructs the concrete child Closure and invokes the captured
// callable with it prepended to args.
//
// The child's parent and locals are the captured ones. If args is non-empty,
// args[0] becomes the child's target, adapted through the parent's context
// factory; otherwise the child has no target of its own. This models
// applying a configuration block to the object it configures, or invoking a
// function literal whose first argument becomes its local target scope.
func (u *UnboundClosure) Bind(args ...any) (any, error) {
	opts := []Option{
		WithParent(u.Parent),
		WithLocals(u.Locals),
	}

	if len(args) > 0 {
		opts = append(opts, WithTarget(args[0]))
	}

	return u.Fn(New(opts...), args...)
}
