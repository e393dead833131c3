package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed": ":white_check_mark:",
	"failed":    ":x:",
	"cancelled": ":no_entry_sign:",
}

var statusLabel = map[string]string{
	"completed": "Task Completed",
	"failed":    "Task Failed",
	"cancelled": "Task Cancelled",
}

// TaskFinishedInput contains data for a terminal task announcement.
type TaskFinishedInput struct {
	TaskID       string
	AgentName    string
	Source       string // chat, webhook, subagent
	Status       string // completed, failed, cancelled
	Output       string
	ErrorMessage string
	CostUSD      float64
}

func taskURL(taskID, dashboardURL string) string {
	return fmt.Sprintf("%s/tasks/%s", dashboardURL, taskID)
}

// BuildTaskFinishedMessage creates Block Kit blocks for a terminal task
// announcement.
func BuildTaskFinishedMessage(input TaskFinishedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Task " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s* — `%s` (%s", emoji, label, input.AgentName, input.Source)
	if input.CostUSD > 0 {
		headerText += fmt.Sprintf(", $%.4f", input.CostUSD)
	}
	headerText += ")"

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	switch input.Status {
	case "completed":
		if input.Output != "" {
			blocks = append(blocks, goslack.NewSectionBlock(
				goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(input.Output), false, false),
				nil, nil,
			))
		}
	case "failed":
		if input.ErrorMessage != "" {
			blocks = append(blocks, goslack.NewSectionBlock(
				goslack.NewTextBlockObject(goslack.MarkdownType, "*Error:*\n"+truncateForSlack(input.ErrorMessage), false, false),
				nil, nil,
			))
		}
	}

	if dashboardURL != "" {
		btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Task", false, false))
		btn.URL = taskURL(input.TaskID, dashboardURL)
		blocks = append(blocks, goslack.NewActionBlock("", btn))
	}

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — view the full output in the dashboard)_"
}
