package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Pool holds the canned content served by the random strategy, plus an
// optional default body for the fixed strategy.
type Pool struct {
	Sentences []string `toml:"sentences"`
	Fixed     string   `toml:"fixed"`
}

var defaultSentences = []string{
	"This is a mock completion produced without a model backend.",
	"The assistant is simulated; any resemblance to reasoning is coincidental.",
	"Canned response selected from the configured content pool.",
	"Streaming and tool calls here follow the chat-completions wire contract.",
	"Nothing was generated; everything was fabricated deterministically.",
}

// DefaultPool returns the built-in sentence pool.
func DefaultPool() Pool {
	return Pool{Sentences: append([]string(nil), defaultSentences...)}
}

// LoadPool reads a TOML pool file. An empty path or a missing file yields the
// built-in defaults; a present-but-broken file is an error.
func LoadPool(path string) (Pool, error) {
	pool := DefaultPool()
	if path == "" {
		return pool, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return pool, nil
	}
	pool = Pool{}
	if _, err := toml.DecodeFile(path, &pool); err != nil {
		return Pool{}, fmt.Errorf("failed to parse pool file %s: %w", path, err)
	}
	return pool, nil
}
