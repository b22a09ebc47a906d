package mock

// TokenSplitter maps text to the ordered token sequence used for streaming
// granularity. It affects chunk boundaries only, never content.
type TokenSplitter func(s string) []string

// SplitTokens chunks s into groups of at most size runes. Multi-byte runes
// are never split across tokens.
func SplitTokens(s string, size int) []string {
	if s == "" {
		return nil
	}
	if size <= 0 {
		size = 1
	}
	rs := []rune(s)
	tokens := make([]string, 0, (len(rs)+size-1)/size)
	for i := 0; i < len(rs); i += size {
		end := i + size
		if end > len(rs) {
			end = len(rs)
		}
		tokens = append(tokens, string(rs[i:end]))
	}
	return tokens
}

// Splitter returns a TokenSplitter with a fixed chunk size.
func Splitter(size int) TokenSplitter {
	return func(s string) []string {
		return SplitTokens(s, size)
	}
}
