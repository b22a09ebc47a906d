package mock

import "encoding/json"

// placeholderString fills string properties that declare no enum.
const placeholderString = "example"

// SynthesizeToolCall fabricates a structurally valid call against the FIRST
// declared tool spec. The policy is deliberately dumb: one call per turn, no
// parallel calls, no content-based tool selection — client test suites rely
// on this being predictable.
//
// Returns nil when no tools are declared.
func SynthesizeToolCall(specs []ToolSpec, rng *Rand) *ToolCall {
	if len(specs) == 0 {
		return nil
	}
	spec := specs[0]

	args := fabricateArguments(spec.Function.Parameters)
	raw, err := json.Marshal(args)
	if err != nil {
		// A map[string]any of JSON scalars cannot fail to marshal; keep the
		// call well-formed regardless.
		raw = []byte("{}")
	}

	return &ToolCall{
		ID:   rng.CallID(),
		Type: "function",
		Function: ToolCallFunc{
			Name:      spec.Function.Name,
			Arguments: string(raw),
		},
	}
}

// fabricateArguments populates one value per declared property, keyed by the
// property's JSON-Schema type. Properties with an unrecognized or missing
// type are omitted.
func fabricateArguments(parameters map[string]any) map[string]any {
	args := map[string]any{}
	props, ok := parameters["properties"].(map[string]any)
	if !ok {
		return args
	}

	for name, raw := range props {
		schema, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		typ, _ := schema["type"].(string)

		switch typ {
		case "string":
			if v, ok := firstEnum(schema); ok {
				args[name] = v
			} else {
				args[name] = placeholderString
			}
		case "integer", "number":
			if v, ok := firstEnum(schema); ok {
				args[name] = v
			} else {
				args[name] = 1
			}
		case "boolean":
			args[name] = true
		case "array":
			args[name] = []any{}
		case "object":
			args[name] = map[string]any{}
		}
	}
	return args
}

func firstEnum(schema map[string]any) (any, bool) {
	enum, ok := schema["enum"].([]any)
	if !ok || len(enum) == 0 {
		return nil, false
	}
	return enum[0], true
}
