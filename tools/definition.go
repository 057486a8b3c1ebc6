package tools

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ToolDefinition describes one callable operation: its wire name, the JSON
// schema of its arguments, and the handler. Definitions are built by
// constructors that close over the store they operate on, so every handler's
// dependency is explicit.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	// WidgetURI, when set, names the widget resource the host should use to
	// render this tool's results. Rendering itself is the host's concern.
	WidgetURI string
	Function  func(input json.RawMessage) (Result, error)
}

// Result is the three-part payload every tool returns: a human-readable
// summary, the structured content, and an operation-tagged metadata block.
// Domain failures (unknown ids) are ordinary Results carrying an error
// payload and success=false metadata, not Go errors.
type Result struct {
	Text       string
	Structured map[string]any
	Meta       map[string]any
}

// GenerateSchema derives the JSON input schema for T from its struct tags.
func GenerateSchema[T any]() json.RawMessage {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	b, err := json.Marshal(schema)
	if err != nil {
		// Schemas are derived from static types; failure here is a bug.
		panic(fmt.Sprintf("tools: generate schema: %v", err))
	}
	return b
}
