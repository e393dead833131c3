package config

// BuiltinWebhooks returns the static webhook definitions compiled into the
// binary. Operators extend or override these with dynamic configs created at
// runtime; dynamic commands win on name collision.
//
// Priority bands: 0-9 immediate acknowledgements, 10+ task-creating actions.
func BuiltinWebhooks() []WebhookDefinition {
	return []WebhookDefinition{
		{
			Name:              "github-builtin",
			Provider:          ProviderGitHub,
			Path:              "",
			DefaultAgent:      "planning",
			DefaultCommand:    "analyze",
			CommandPrefix:     "@agent",
			SecretEnv:         "GITHUB_WEBHOOK_SECRET",
			RequiresSignature: true,
			Enabled:           true,
			Commands: []CommandDefinition{
				{
					Name:     "ack-react",
					Agent:    "planning",
					Trigger:  "issue_comment.created",
					Priority: 0,
					Action:   ActionReact,
					ActionArgs: map[string]interface{}{
						"emoji": "eyes",
					},
				},
				{
					Name:     "ack-comment",
					Agent:    "planning",
					Trigger:  "issue_comment.created",
					Priority: 1,
					Action:   ActionComment,
					Template: "On it — working on issue #{{issue.number}}.",
				},
				{
					Name:     "analyze",
					Aliases:  []string{"investigate", "triage"},
					Agent:    "planning",
					Priority: 10,
					Action:   ActionCreateTask,
					Template: "Analyze GitHub issue #{{issue.number}} in {{repository.full_name}}: {{issue.title}}\n\n{{issue.body}}\n\nComment: {{comment.body}}",
				},
				{
					Name:     "implement",
					Aliases:  []string{"fix", "build"},
					Agent:    "executor",
					Priority: 11,
					Action:   ActionCreateTask,
					Template: "Implement a fix for GitHub issue #{{issue.number}} in {{repository.full_name}}: {{issue.title}}\n\n{{issue.body}}\n\nComment: {{comment.body}}",
				},
				{
					Name:     "review",
					Agent:    "planning",
					Priority: 12,
					Action:   ActionCreateTask,
					Template: "Review pull request #{{pull_request.number}} in {{repository.full_name}}: {{pull_request.title}}\n\n{{pull_request.body}}",
				},
				{
					Name:     "triage-new-issue",
					Agent:    "planning",
					Trigger:  "issues.opened",
					Priority: 15,
					Action:   ActionCreateTask,
					Template: "Triage new GitHub issue #{{issue.number}} in {{repository.full_name}}: {{issue.title}}\n\n{{issue.body}}",
				},
			},
		},
		{
			Name:              "jira-builtin",
			Provider:          ProviderJira,
			Path:              "",
			DefaultAgent:      "planning",
			SecretEnv:         "JIRA_WEBHOOK_SECRET",
			RequiresSignature: false,
			Enabled:           true,
			Commands: []CommandDefinition{
				{
					Name:     "ack-comment",
					Agent:    "planning",
					Trigger:  "jira:issue_updated",
					Conditions: map[string]interface{}{
						"issue.fields.assignee.displayName": "AI Agent",
					},
					Priority: 1,
					Action:   ActionComment,
					Template: "Picked up {{issue.key}} — analysis in progress.",
				},
				{
					Name:    "work-assigned-issue",
					Agent:   "planning",
					Trigger: "jira:issue_updated",
					Conditions: map[string]interface{}{
						"issue.fields.assignee.displayName": "AI Agent",
					},
					Priority: 10,
					Action:   ActionCreateTask,
					Template: "Work Jira issue {{issue.key}}: {{issue.fields.summary}}\n\n{{issue.fields.description}}",
				},
			},
		},
		{
			Name:              "slack-builtin",
			Provider:          ProviderSlack,
			Path:              "",
			DefaultAgent:      "brain",
			CommandPrefix:     "@agent",
			SecretEnv:         "SLACK_SIGNING_SECRET",
			RequiresSignature: true,
			Enabled:           true,
			Commands: []CommandDefinition{
				{
					Name:     "ack-respond",
					Agent:    "brain",
					Trigger:  "app_mention",
					Priority: 0,
					Action:   ActionRespond,
					ActionArgs: map[string]interface{}{
						"body": map[string]interface{}{"text": "Working on it."},
					},
				},
				{
					Name:     "answer-mention",
					Agent:    "brain",
					Trigger:  "app_mention",
					Priority: 10,
					Action:   ActionCreateTask,
					Template: "Respond to the Slack message in channel {{event.channel}} from <@{{event.user}}>:\n\n{{event.text}}",
				},
			},
		},
		{
			Name:              "sentry-builtin",
			Provider:          ProviderSentry,
			Path:              "",
			DefaultAgent:      "brain",
			SecretEnv:         "SENTRY_CLIENT_SECRET",
			RequiresSignature: true,
			Enabled:           true,
			Commands: []CommandDefinition{
				{
					Name:    "investigate-alert",
					Agent:   "brain",
					Trigger: "created",
					Priority: 10,
					Action:  ActionCreateTask,
					Template: "Investigate Sentry issue {{data.issue.shortId}}: {{data.issue.title}}\n\nCulprit: {{data.issue.culprit}}\nLevel: {{data.issue.level}}",
				},
			},
		},
	}
}
