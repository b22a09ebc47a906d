package httpapi

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/intercepted16/promptkit/internal/mock"
)

// streamResponse delivers the assembled response as SSE frames, one chunk per
// frame, terminated by a literal [DONE] frame. Chunks are written by a single
// goroutine in sequence order, so arrival order is guaranteed by construction.
// If the client goes away mid-stream, remaining chunk production is abandoned;
// there is nothing to clean up.
func (a *API) streamResponse(w http.ResponseWriter, r *http.Request, resp mock.CompletionResponse, call *mock.ToolCall) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	bw := bufio.NewWriter(w)
	for _, chunk := range a.engine.Sequence(resp, call) {
		select {
		case <-r.Context().Done():
			return
		default:
		}

		if err := writeSSE(bw, chunk); err != nil {
			return
		}
		if err := bw.Flush(); err != nil {
			return
		}
		flusher.Flush()
	}

	if _, err := fmt.Fprint(bw, "data: [DONE]\n\n"); err != nil {
		return
	}
	if err := bw.Flush(); err != nil {
		return
	}
	flusher.Flush()
}

func writeSSE(w *bufio.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", b)
	return err
}
