package mock

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is an instance-scoped randomness source so id generation and pool
// selection are reproducible under test with a fixed seed.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand creates a source from the given seed. Seed 0 means time-based.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

const idLetters = "abcdefghijklmnopqrstuvwxyz0123456789"

func (r *Rand) token(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idLetters[r.Intn(len(idLetters))]
	}
	return string(b)
}

// CallID returns an opaque tool-call id. Uniqueness is probabilistic, not
// guaranteed.
func (r *Rand) CallID() string {
	return "call_" + r.token(12)
}

// ResponseID returns a completion id in the upstream "chatcmpl-" form.
func (r *Rand) ResponseID() string {
	return "chatcmpl-" + r.token(12)
}
