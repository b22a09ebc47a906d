package mock

import "testing"

func strptr(s string) *string { return &s }

// TestPickContentEcho verifies the echo strategy returns the last message's
// content regardless of its role.
func TestPickContentEcho(t *testing.T) {
	rng := NewRand(1)

	history := []Message{
		{Role: "user", Content: strptr("first")},
		{Role: "assistant", Content: strptr("second")},
	}

	got := PickContent(StrategyEcho, history, nil, nil, rng)
	if got == nil || *got != "second" {
		t.Fatalf("echo should return last content, got %v", got)
	}

	if got := PickContent(StrategyEcho, nil, nil, nil, rng); got != nil {
		t.Fatalf("echo with empty history should be nil, got %q", *got)
	}

	history = append(history, Message{Role: "assistant", Content: nil})
	if got := PickContent(StrategyEcho, history, nil, nil, rng); got != nil {
		t.Fatalf("echo of null content should be nil, got %q", *got)
	}
}

// TestPickContentRandom verifies random selection always lands in the pool
// and that an empty pool is a soft nil, not a panic.
func TestPickContentRandom(t *testing.T) {
	rng := NewRand(42)
	pool := []string{"a", "b", "c"}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		got := PickContent(StrategyRandom, nil, nil, pool, rng)
		if got == nil {
			t.Fatalf("random with non-empty pool returned nil")
		}
		seen[*got] = true
	}
	for _, want := range pool {
		if !seen[want] {
			t.Fatalf("pool entry %q never selected across 50 draws", want)
		}
	}

	if got := PickContent(StrategyRandom, nil, nil, nil, rng); got != nil {
		t.Fatalf("random with empty pool should be nil, got %q", *got)
	}
}

// TestPickContentFixed verifies fixed returns the supplied body verbatim and
// that a missing body is accepted as nil.
func TestPickContentFixed(t *testing.T) {
	rng := NewRand(1)

	got := PickContent(StrategyFixed, []Message{{Role: "user", Content: strptr("ignored")}}, strptr("X"), nil, rng)
	if got == nil || *got != "X" {
		t.Fatalf("fixed should return supplied content, got %v", got)
	}

	if got := PickContent(StrategyFixed, nil, nil, nil, rng); got != nil {
		t.Fatalf("fixed without content should be nil, got %q", *got)
	}
}

// TestPickContentUnknownStrategy verifies unknown strategies degrade to nil
// content instead of failing.
func TestPickContentUnknownStrategy(t *testing.T) {
	rng := NewRand(1)
	history := []Message{{Role: "user", Content: strptr("hi")}}

	if got := PickContent(Strategy("surprise"), history, strptr("X"), []string{"a"}, rng); got != nil {
		t.Fatalf("unknown strategy should be nil, got %q", *got)
	}
}
