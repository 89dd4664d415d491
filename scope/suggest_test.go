package scope

import "testing"

func TestSuggest_RanksNearMisses(t *testing.T) {
	root := New(
		WithTargetContext(NewMapContext(map[string]any{
			"hostname": "a",
			"port":     1,
			"protocol": "tcp",
		}, "root")),
		WithBuiltins(nil),
	)

	names := root.Suggest("hstname", 3)
	if len(names) == 0 {
		t.Fatalf("expected at least one suggestion")
	}

	if names[0] != "hostname" {
		t.Errorf("expected 'hostname' ranked first, got %v", names)
	}
}

func TestSuggest_LimitAndEmptyKey(t *testing.T) {
	root := New(
		WithTargetContext(NewMapContext(map[string]any{
			"aa": 1, "ab": 2, "ac": 3,
		}, "root")),
		WithBuiltins(nil),
	)

	if names := root.Suggest("a", 2); len(names) > 2 {
		t.Errorf("expected at most 2 suggestions, got %v", names)
	}

	if names := root.Suggest("", 5); names != nil {
		t.Errorf("expected no suggestions for empty key, got %v", names)
	}

	if names := root.Suggest("aa", 0); names != nil {
		t.Errorf("expected no suggestions for zero limit, got %v", names)
	}
}

func TestSuggest_NoResemblance(t *testing.T) {
	root := New(
		WithTargetContext(NewMapContext(map[string]any{"port": 1}, "root")),
		WithBuiltins(nil),
	)

	if names := root.Suggest("zzz", 3); len(names) != 0 {
		t.Errorf("expected no suggestions, got %v", names)
	}
}
