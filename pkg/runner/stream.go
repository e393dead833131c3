package runner

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Stream event types emitted by the headless CLI in stream-json mode.
// Types outside this set are forwarded verbatim with Raw populated, so new
// CLI versions degrade gracefully instead of breaking the parser.
const (
	EventAssistant  = "assistant"
	EventToolUse    = "tool_use"
	EventToolResult = "tool_result"
	EventResult     = "result"
)

// StreamEvent is one parsed line of CLI output. Check Type to determine which
// fields are populated; Raw always carries the original line.
type StreamEvent struct {
	Type string

	// Text is the concatenated text content of an assistant event.
	Text string

	// ToolName and ToolInput are populated for tool_use events.
	ToolName  string
	ToolInput json.RawMessage

	// ToolOutput is populated for tool_result events.
	ToolOutput string

	// Result is populated for the terminal result event.
	Result *ResultEvent

	// Raw is the original JSON line, forwarded verbatim.
	Raw json.RawMessage
}

// ResultEvent is the terminal accounting record of an invocation.
type ResultEvent struct {
	Subtype      string      `json:"subtype"`
	IsError      bool        `json:"is_error"`
	Result       string      `json:"result"`
	DurationMS   int         `json:"duration_ms"`
	NumTurns     int         `json:"num_turns"`
	TotalCostUSD float64     `json:"total_cost_usd"`
	Usage        ResultUsage `json:"usage"`
}

// ResultUsage contains cumulative token usage from a result event.
type ResultUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// contentBlock is one block inside an assistant message.
type contentBlock struct {
	Type    string          `json:"type"`
	Text    string          `json:"text,omitempty"`
	Name    string          `json:"name,omitempty"`
	Input   json.RawMessage `json:"input,omitempty"`
	Content string          `json:"content,omitempty"`
}

// assistantMessage is the API message wrapped by an assistant event.
type assistantMessage struct {
	Content []contentBlock `json:"content"`
}

// ParseLine parses one line of stream-json output. Malformed JSON returns an
// error; the caller logs and skips. Unknown event types are returned with
// their original type and Raw set.
func ParseLine(line []byte) (StreamEvent, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(line, &envelope); err != nil {
		return StreamEvent{}, fmt.Errorf("malformed stream line: %w", err)
	}
	if envelope.Type == "" {
		return StreamEvent{}, fmt.Errorf("stream line missing type")
	}

	event := StreamEvent{
		Type: envelope.Type,
		Raw:  json.RawMessage(append([]byte(nil), line...)),
	}

	switch envelope.Type {
	case EventAssistant:
		var body struct {
			Message assistantMessage `json:"message"`
		}
		if err := json.Unmarshal(line, &body); err != nil {
			return StreamEvent{}, fmt.Errorf("malformed assistant event: %w", err)
		}
		var parts []string
		for _, block := range body.Message.Content {
			switch block.Type {
			case "text":
				if block.Text != "" {
					parts = append(parts, block.Text)
				}
			case "tool_use":
				// Tool calls embedded in assistant messages surface as
				// separate tool_use stream events for subscribers.
			}
		}
		event.Text = strings.Join(parts, "")

	case EventToolUse:
		var body struct {
			Name  string          `json:"name"`
			Input json.RawMessage `json:"input"`
		}
		if err := json.Unmarshal(line, &body); err != nil {
			return StreamEvent{}, fmt.Errorf("malformed tool_use event: %w", err)
		}
		event.ToolName = body.Name
		event.ToolInput = body.Input

	case EventToolResult:
		var body struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(line, &body); err != nil {
			return StreamEvent{}, fmt.Errorf("malformed tool_result event: %w", err)
		}
		event.ToolOutput = body.Content

	case EventResult:
		var result ResultEvent
		if err := json.Unmarshal(line, &result); err != nil {
			return StreamEvent{}, fmt.Errorf("malformed result event: %w", err)
		}
		event.Result = &result
	}

	return event, nil
}
