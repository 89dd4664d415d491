package scope

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_SentinelMatchSurvivesWithAndWrap(t *testing.T) {
	err := nameNotFound("k", "test scope")

	if !errors.Is(err, ErrNameNotFound) {
		t.Errorf("derived error must match its sentinel")
	}

	wrapped := ErrExprEvaluate.Wrap(errors.New("boom"))
	if !errors.Is(wrapped, ErrExprEvaluate) {
		t.Errorf("wrapped error must match its sentinel")
	}

	if errors.Is(err, ErrFrozenBinding) {
		t.Errorf("distinct sentinels must not match")
	}
}

func TestError_MatchesThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("loading scope: %w", nameNotFound("k", ""))

	if !errors.Is(err, ErrNameNotFound) {
		t.Errorf("sentinel match must survive fmt.Errorf wrapping")
	}
}

func TestError_MessageComposition(t *testing.T) {
	base := NewError("outer")

	if got := base.Error(); got != "outer" {
		t.Errorf("expected 'outer', got %q", got)
	}

	wrapped := base.Wrap(errors.New("inner"))
	if got := wrapped.Error(); got != "outer: inner" {
		t.Errorf("expected 'outer: inner', got %q", got)
	}

	if got := WrapError(errors.New("inner")).Error(); got != "inner" {
		t.Errorf("expected 'inner', got %q", got)
	}
}

func TestError_UnwrapChain(t *testing.T) {
	cause := errors.New("cause")
	err := ErrExprCompile.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Errorf("expected unwrap to reach cause")
	}
}
