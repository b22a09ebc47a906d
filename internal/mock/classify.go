package mock

import "fmt"

// Phase is the conversation state a request is in. It is evaluated fresh from
// the supplied history every request; nothing persists between turns.
type Phase int

const (
	// PhasePlainAnswer is the default: reply with picked text content.
	PhasePlainAnswer Phase = iota
	// PhaseToolResult means the last message is a tool result; reply with a
	// plain acknowledgement and never re-invoke a tool.
	PhaseToolResult
	// PhaseToolInvocation means tools are declared and no result has come
	// back yet; reply with a fabricated tool call.
	PhaseToolInvocation
)

// Classify decides the phase for one turn.
//
// PhaseToolInvocation requires all of: at least one declared tool, no tool
// message anywhere in history, and the last message not being an assistant
// message that already carries tool calls (a call is still outstanding).
func Classify(history []Message, tools []ToolSpec) Phase {
	if len(history) > 0 && history[len(history)-1].Role == "tool" {
		return PhaseToolResult
	}

	if len(tools) > 0 && !anyToolMessage(history) && !lastIsPendingCall(history) {
		return PhaseToolInvocation
	}

	return PhasePlainAnswer
}

func anyToolMessage(history []Message) bool {
	for _, m := range history {
		if m.Role == "tool" {
			return true
		}
	}
	return false
}

func lastIsPendingCall(history []Message) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	return last.Role == "assistant" && len(last.ToolCalls) > 0
}

// AckToolResult composes the plain acknowledgement for a tool-result turn,
// referencing the tool's name (or call id) and the reported content.
func AckToolResult(history []Message) *string {
	last := history[len(history)-1]

	label := last.Name
	if label == "" {
		label = last.ToolCallID
	}
	if label == "" {
		label = "tool"
	}
	if last.Name != "" && last.ToolCallID != "" {
		label = fmt.Sprintf("%s (%s)", last.Name, last.ToolCallID)
	}

	s := fmt.Sprintf("Received result from %s: %s", label, last.Text())
	return &s
}
