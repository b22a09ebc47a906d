package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/intercepted16/promptkit/internal/config"
	"github.com/intercepted16/promptkit/internal/logger"
	"github.com/intercepted16/promptkit/internal/metrics"
	"github.com/intercepted16/promptkit/internal/mock"
)

// delayHeader overrides the process-wide default delay for one request,
// in milliseconds.
const delayHeader = "X-Mock-Delay-Ms"

type API struct {
	cfg    config.Config
	engine *mock.Engine
	sink   *metrics.Recorder
}

// NewHandler mounts the chat-completions endpoint plus the health and metrics
// surface, wrapped in the observability middleware.
func NewHandler(cfg config.Config, engine *mock.Engine, sink *metrics.Recorder) http.Handler {
	api := &API{cfg: cfg, engine: engine, sink: sink}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", api.handleChatCompletions)
	mux.HandleFunc("GET /healthz", api.handleHealthz)
	mux.HandleFunc("GET /metrics", api.handleMetrics)

	return withObservability(sink, mux)
}

// completionRequest keeps messages and stream raw so their shapes can be
// validated explicitly before anything else runs.
type completionRequest struct {
	Model             string          `json:"model"`
	Messages          json.RawMessage `json:"messages"`
	Stream            json.RawMessage `json:"stream"`
	MockType          string          `json:"mockType"`
	MockFixedContents *string         `json:"mockFixedContents"`
	Tools             []mock.ToolSpec `json:"tools"`
	ToolChoice        json.RawMessage `json:"tool_choice"` // accepted, never interpreted
}

func (a *API) handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req completionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	messages, ok := parseMessages(req.Messages)
	if !ok {
		writeError(w, http.StatusBadRequest, "messages is required and must be an array")
		return
	}

	stream, ok := parseStreamFlag(req.Stream)
	if !ok {
		writeError(w, http.StatusBadRequest, "stream must be a boolean")
		return
	}

	// Artificial latency runs before any synthesis; it affects timing only.
	sleepWithContext(r.Context(), a.requestDelay(r))
	if r.Context().Err() != nil {
		return
	}

	resp, call := a.engine.Respond(mock.Request{
		Model:    req.Model,
		Messages: messages,
		Tools:    req.Tools,
		Strategy: a.strategy(req.MockType),
		Fixed:    a.fixedContent(req.MockFixedContents),
	})

	logger.Log.Infow("[http][chat.completions] synthesized",
		"id", resp.ID,
		"model", resp.Model,
		"finishReason", resp.Choices[0].FinishReason,
		"stream", stream,
	)

	if !stream {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	a.streamResponse(w, r, resp, call)
}

func (a *API) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"routes": a.sink.Snapshot()})
}

// parseMessages rejects absent, null, and non-array values.
func parseMessages(raw json.RawMessage) ([]mock.Message, bool) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	var messages []mock.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, false
	}
	return messages, true
}

// parseStreamFlag accepts an absent flag and rejects any non-boolean value.
func parseStreamFlag(raw json.RawMessage) (bool, bool) {
	if len(raw) == 0 {
		return false, true
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, false
	}
	var stream bool
	if err := json.Unmarshal(raw, &stream); err != nil {
		return false, false
	}
	return stream, true
}

func (a *API) requestDelay(r *http.Request) time.Duration {
	ms := a.cfg.DefaultDelayMs
	if v := r.Header.Get(delayHeader); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			ms = n
		}
	}
	return time.Duration(ms) * time.Millisecond
}

// strategy resolves the per-request mock type, falling back to the process
// default then "random". Unknown values pass through untouched; the picker
// treats them as a soft gap rather than an error.
func (a *API) strategy(mockType string) mock.Strategy {
	if mockType != "" {
		return mock.Strategy(mockType)
	}
	if a.cfg.DefaultMockType != "" {
		return mock.Strategy(a.cfg.DefaultMockType)
	}
	return mock.StrategyRandom
}

func (a *API) fixedContent(fromRequest *string) *string {
	if fromRequest != nil {
		return fromRequest
	}
	if a.cfg.FixedContent != "" {
		s := a.cfg.FixedContent
		return &s
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Warnw("[http] write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
