package mock

// Sequence flattens an assembled response into the ordered chunk sequence a
// streaming client receives. The terminating [DONE] sentinel is framing, not
// a chunk, and is written by the transport.
//
// Tool-call path is exactly three chunks: call header (role, id, type, name,
// empty arguments), the full arguments delta, then an empty delta carrying
// finish_reason. Plain-text path carries the assistant role alongside the
// first content token, one chunk per token after that, then the empty
// finish_reason chunk. Concatenating content or arguments deltas in arrival
// order reproduces the non-streamed message exactly.
func Sequence(resp CompletionResponse, call *ToolCall, split TokenSplitter) []StreamChunk {
	base := func() StreamChunk {
		return StreamChunk{
			ID:      resp.ID,
			Object:  "chat.completion.chunk",
			Created: resp.Created,
			Model:   resp.Model,
			Choices: []StreamChoice{{Index: 0}},
		}
	}

	if call != nil {
		return sequenceToolCall(base, *call)
	}

	content := ""
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != nil {
		content = *resp.Choices[0].Message.Content
	}
	return sequenceText(base, split(content))
}

func sequenceToolCall(base func() StreamChunk, call ToolCall) []StreamChunk {
	header := base()
	header.Choices[0].Delta = Delta{
		Role: "assistant",
		ToolCalls: []DeltaToolCall{{
			Index: 0,
			ID:    call.ID,
			Type:  call.Type,
			Function: DeltaToolCallFunc{
				Name:      call.Function.Name,
				Arguments: "",
			},
		}},
	}

	args := base()
	args.Choices[0].Delta = Delta{
		ToolCalls: []DeltaToolCall{{
			Index:    0,
			Function: DeltaToolCallFunc{Arguments: call.Function.Arguments},
		}},
	}

	final := base()
	reason := "tool_calls"
	final.Choices[0].FinishReason = &reason

	return []StreamChunk{header, args, final}
}

func sequenceText(base func() StreamChunk, tokens []string) []StreamChunk {
	chunks := make([]StreamChunk, 0, len(tokens)+2)

	if len(tokens) == 0 {
		// No content to stream; the role still has to arrive before the
		// terminal chunk.
		role := base()
		role.Choices[0].Delta = Delta{Role: "assistant"}
		chunks = append(chunks, role)
	}

	for i, tok := range tokens {
		ch := base()
		t := tok
		ch.Choices[0].Delta = Delta{Content: &t}
		if i == 0 {
			ch.Choices[0].Delta.Role = "assistant"
		}
		chunks = append(chunks, ch)
	}

	final := base()
	reason := "stop"
	final.Choices[0].FinishReason = &reason

	return append(chunks, final)
}
