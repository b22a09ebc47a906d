package metrics

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Recorder accumulates per-route request counts, latency, and payload sizes.
// Routes are keyed by method, path, and response status. It is safe for
// concurrent use by the request middleware.
type Recorder struct {
	mu     sync.Mutex
	routes map[string]*routeStats
}

type routeStats struct {
	count        int64
	totalLatency time.Duration
	maxLatency   time.Duration
	totalBytes   int64
}

func NewRecorder() *Recorder {
	return &Recorder{routes: make(map[string]*routeStats)}
}

// Observe records one completed request. bodyBytes is the request payload
// size as received on the wire.
func (r *Recorder) Observe(method, path string, status int, latency time.Duration, bodyBytes int64) {
	key := fmt.Sprintf("%s %s %d", method, path, status)

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.routes[key]
	if !ok {
		s = &routeStats{}
		r.routes[key] = s
	}
	s.count++
	s.totalLatency += latency
	if latency > s.maxLatency {
		s.maxLatency = latency
	}
	s.totalBytes += bodyBytes
}

// RouteSnapshot is one route's aggregate view, JSON-ready for /metrics.
type RouteSnapshot struct {
	Route        string  `json:"route"`
	Count        int64   `json:"count"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	MaxLatencyMs float64 `json:"max_latency_ms"`
	TotalBytes   int64   `json:"total_bytes"`
}

// Snapshot returns the current aggregates sorted by route key.
func (r *Recorder) Snapshot() []RouteSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]RouteSnapshot, 0, len(r.routes))
	for key, s := range r.routes {
		avg := float64(0)
		if s.count > 0 {
			avg = float64(s.totalLatency.Microseconds()) / float64(s.count) / 1000
		}
		out = append(out, RouteSnapshot{
			Route:        key,
			Count:        s.count,
			AvgLatencyMs: avg,
			MaxLatencyMs: float64(s.maxLatency.Microseconds()) / 1000,
			TotalBytes:   s.totalBytes,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Route < out[j].Route })
	return out
}
