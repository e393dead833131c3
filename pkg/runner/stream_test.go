package runner

import (
	"testing"
	"time"

	"github.com/droverhq/drover/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Run("assistant text", func(t *testing.T) {
		line := `{"type":"assistant","message":{"content":[{"type":"text","text":"Hello "},{"type":"text","text":"world"}]}}`
		event, err := ParseLine([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, EventAssistant, event.Type)
		assert.Equal(t, "Hello world", event.Text)
		assert.JSONEq(t, line, string(event.Raw))
	})

	t.Run("tool use", func(t *testing.T) {
		line := `{"type":"tool_use","name":"Read","input":{"file_path":"/etc/hosts"}}`
		event, err := ParseLine([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, EventToolUse, event.Type)
		assert.Equal(t, "Read", event.ToolName)
		assert.JSONEq(t, `{"file_path":"/etc/hosts"}`, string(event.ToolInput))
	})

	t.Run("tool result", func(t *testing.T) {
		line := `{"type":"tool_result","content":"127.0.0.1 localhost"}`
		event, err := ParseLine([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, EventToolResult, event.Type)
		assert.Equal(t, "127.0.0.1 localhost", event.ToolOutput)
	})

	t.Run("result accounting", func(t *testing.T) {
		line := `{"type":"result","subtype":"success","is_error":false,"result":"done","duration_ms":8300,"num_turns":4,"total_cost_usd":0.31,"usage":{"input_tokens":1200,"output_tokens":450}}`
		event, err := ParseLine([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, EventResult, event.Type)
		require.NotNil(t, event.Result)
		assert.False(t, event.Result.IsError)
		assert.Equal(t, "done", event.Result.Result)
		assert.Equal(t, 0.31, event.Result.TotalCostUSD)
		assert.Equal(t, 1200, event.Result.Usage.InputTokens)
		assert.Equal(t, 450, event.Result.Usage.OutputTokens)
	})

	t.Run("error result", func(t *testing.T) {
		line := `{"type":"result","subtype":"error","is_error":true,"result":"credit limit reached"}`
		event, err := ParseLine([]byte(line))
		require.NoError(t, err)
		require.NotNil(t, event.Result)
		assert.True(t, event.Result.IsError)
	})

	t.Run("unknown type forwarded verbatim", func(t *testing.T) {
		line := `{"type":"system_notice","detail":"model updated"}`
		event, err := ParseLine([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, "system_notice", event.Type)
		assert.JSONEq(t, line, string(event.Raw))
	})

	t.Run("malformed line is an error", func(t *testing.T) {
		_, err := ParseLine([]byte(`{"type":`))
		assert.Error(t, err)
	})

	t.Run("missing type is an error", func(t *testing.T) {
		_, err := ParseLine([]byte(`{"detail":"no type"}`))
		assert.Error(t, err)
	})
}

func TestCLIRunner_BuildArgs(t *testing.T) {
	runner := NewCLIRunner(&config.CLIConfig{Binary: "claude", InvokeTimeout: time.Minute})

	t.Run("base flags always present", func(t *testing.T) {
		args := runner.buildArgs(InvokeRequest{})
		assert.Equal(t, []string{"-p", "--verbose", "--output-format", "stream-json"}, args)
	})

	t.Run("model and tools appended", func(t *testing.T) {
		args := runner.buildArgs(InvokeRequest{
			Model:        "opus",
			AllowedTools: []string{"Read", "Grep"},
		})
		assert.Contains(t, args, "--model")
		assert.Contains(t, args, "opus")
		assert.Contains(t, args, "--allowedTools")
		assert.Contains(t, args, "Read,Grep")
	})
}

func TestCLIRunner_BuildResult(t *testing.T) {
	runner := NewCLIRunner(&config.CLIConfig{Binary: "claude", InvokeTimeout: time.Minute})

	t.Run("result event wins over accumulated text", func(t *testing.T) {
		result := runner.buildResult(&ResultEvent{
			Result:       "final answer",
			DurationMS:   2500,
			TotalCostUSD: 0.12,
			Usage:        ResultUsage{InputTokens: 10, OutputTokens: 20},
		}, []string{"partial"}, 5*time.Second)

		assert.True(t, result.Success)
		assert.Equal(t, "final answer", result.Output)
		assert.Equal(t, 2.5, result.DurationSeconds)
		assert.Equal(t, 0.12, result.CostUSD)
	})

	t.Run("missing result record is a failure with partial output", func(t *testing.T) {
		result := runner.buildResult(nil, []string{"a", "b"}, 3*time.Second)
		assert.False(t, result.Success)
		assert.Equal(t, "a\nb", result.Output)
		assert.Equal(t, 3.0, result.DurationSeconds)
		assert.Zero(t, result.CostUSD)
	})

	t.Run("error result marks failure", func(t *testing.T) {
		result := runner.buildResult(&ResultEvent{
			IsError: true,
			Result:  "ran out of budget",
		}, nil, time.Second)
		assert.False(t, result.Success)
		assert.Equal(t, "ran out of budget", result.ErrorMessage)
	})
}
