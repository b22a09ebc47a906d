package mock

// PickContent resolves the text body of a plain-answer turn. It is a pure
// function of its inputs plus one random draw for the random strategy.
//
// Gaps are soft failures, not errors: an empty pool, a missing fixed body, or
// an unknown strategy all yield nil, the same representation used for
// tool-call turns with no content.
func PickContent(strategy Strategy, history []Message, fixed *string, pool []string, rng *Rand) *string {
	switch strategy {
	case StrategyEcho:
		if len(history) == 0 {
			return nil
		}
		last := history[len(history)-1]
		if last.Content == nil {
			return nil
		}
		s := *last.Content
		return &s

	case StrategyRandom:
		if len(pool) == 0 {
			return nil
		}
		s := pool[rng.Intn(len(pool))]
		return &s

	case StrategyFixed:
		if fixed == nil {
			return nil
		}
		s := *fixed
		return &s
	}

	// Unknown strategies fall through silently; clients test against the
	// resulting null content.
	return nil
}
