package mock

import "time"

// Static usage estimate. Token counts are not computed from the actual
// payloads; this is a documented limitation of the mock, not a bug.
var staticUsage = Usage{
	PromptTokens:     10,
	CompletionTokens: 20,
	TotalTokens:      30,
}

// Assemble builds the full completion envelope. Exactly one of content/call
// may be non-nil; when call is set the choice carries finish_reason
// "tool_calls" and null content, otherwise "stop" with the given content
// (which may itself be nil on a soft synthesis gap).
func Assemble(model string, content *string, call *ToolCall, rng *Rand) CompletionResponse {
	msg := Message{Role: "assistant"}
	finish := "stop"

	if call != nil {
		msg.ToolCalls = []ToolCall{*call}
		finish = "tool_calls"
	} else {
		msg.Content = content
	}

	return CompletionResponse{
		ID:      rng.ResponseID(),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []Choice{{
			Index:        0,
			Message:      msg,
			FinishReason: finish,
		}},
		Usage: staticUsage,
	}
}
