package mock

// Engine wires the classifier, picker, synthesizer, assembler, and sequencer
// behind one entry point. All state (rng, pool, splitter) is fixed at
// construction; per-request inputs arrive in Request, so a single Engine is
// safe for concurrent requests.
type Engine struct {
	rng   *Rand
	pool  []string
	split TokenSplitter
}

func NewEngine(rng *Rand, pool []string, split TokenSplitter) *Engine {
	return &Engine{rng: rng, pool: pool, split: split}
}

// Request is one turn's worth of synthesis input, fully supplied by the
// caller (stateless multi-turn protocol).
type Request struct {
	Model    string
	Messages []Message
	Tools    []ToolSpec
	Strategy Strategy
	Fixed    *string
}

// Respond classifies the turn and assembles the complete response. The
// returned ToolCall is non-nil only on tool-invocation turns; the streaming
// path needs it to sequence argument deltas.
func (e *Engine) Respond(req Request) (CompletionResponse, *ToolCall) {
	var content *string
	var call *ToolCall

	switch Classify(req.Messages, req.Tools) {
	case PhaseToolResult:
		content = AckToolResult(req.Messages)
	case PhaseToolInvocation:
		call = SynthesizeToolCall(req.Tools, e.rng)
	default:
		content = PickContent(req.Strategy, req.Messages, req.Fixed, e.pool, e.rng)
	}

	return Assemble(req.Model, content, call, e.rng), call
}

// Sequence converts an assembled response into its streamed chunk order.
func (e *Engine) Sequence(resp CompletionResponse, call *ToolCall) []StreamChunk {
	return Sequence(resp, call, e.split)
}
