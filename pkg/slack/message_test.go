package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTaskFinishedMessage_Completed(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:    "task-1",
		AgentName: "planning",
		Source:    "chat",
		Status:    "completed",
		Output:    "Deployed the fix to staging.",
		CostUSD:   0.1234,
	}
	blocks := BuildTaskFinishedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Task Completed")
	assert.Contains(t, header.Text.Text, "planning")
	assert.Contains(t, header.Text.Text, "$0.1234")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, content.Text.Text, "Deployed the fix to staging.")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Task", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/tasks/task-1")
}

func TestBuildTaskFinishedMessage_Failed(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:       "task-2",
		AgentName:    "ops",
		Source:       "webhook",
		Status:       "failed",
		ErrorMessage: "CLI exited with code 1",
	}
	blocks := BuildTaskFinishedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Task Failed")

	detail := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, detail.Text.Text, "CLI exited with code 1")
}

func TestBuildTaskFinishedMessage_Cancelled(t *testing.T) {
	input := TaskFinishedInput{
		TaskID:    "task-3",
		AgentName: "ops",
		Source:    "webhook",
		Status:    "cancelled",
	}
	blocks := BuildTaskFinishedMessage(input, "")

	// No dashboard configured, so no action block either.
	require.Len(t, blocks, 1)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":no_entry_sign:")
	assert.Contains(t, header.Text.Text, "Task Cancelled")
}

func TestTruncateForSlack(t *testing.T) {
	long := strings.Repeat("x", maxBlockTextLength+100)
	out := truncateForSlack(long)
	assert.Less(t, len(out), len(long))
	assert.Contains(t, out, "truncated")

	short := "short output"
	assert.Equal(t, short, truncateForSlack(short))
}
