// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/droverhq/drover/ent/account"
	"github.com/droverhq/drover/ent/conversation"
	"github.com/droverhq/drover/ent/machine"
	"github.com/droverhq/drover/ent/message"
	"github.com/droverhq/drover/ent/schema"
	"github.com/droverhq/drover/ent/session"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/webhookcommand"
	"github.com/droverhq/drover/ent/webhookconfig"
	"github.com/droverhq/drover/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[2].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescTotalCostUsd is the schema descriptor for total_cost_usd field.
	conversationDescTotalCostUsd := conversationFields[4].Descriptor()
	// conversation.DefaultTotalCostUsd holds the default value on creation for the total_cost_usd field.
	conversation.DefaultTotalCostUsd = conversationDescTotalCostUsd.Default.(float64)
	// conversationDescTotalInputTokens is the schema descriptor for total_input_tokens field.
	conversationDescTotalInputTokens := conversationFields[5].Descriptor()
	// conversation.DefaultTotalInputTokens holds the default value on creation for the total_input_tokens field.
	conversation.DefaultTotalInputTokens = conversationDescTotalInputTokens.Default.(int)
	// conversationDescTotalOutputTokens is the schema descriptor for total_output_tokens field.
	conversationDescTotalOutputTokens := conversationFields[6].Descriptor()
	// conversation.DefaultTotalOutputTokens holds the default value on creation for the total_output_tokens field.
	conversation.DefaultTotalOutputTokens = conversationDescTotalOutputTokens.Default.(int)
	// conversationDescTaskCount is the schema descriptor for task_count field.
	conversationDescTaskCount := conversationFields[7].Descriptor()
	// conversation.DefaultTaskCount holds the default value on creation for the task_count field.
	conversation.DefaultTaskCount = conversationDescTaskCount.Default.(int)
	// conversationDescArchived is the schema descriptor for archived field.
	conversationDescArchived := conversationFields[8].Descriptor()
	// conversation.DefaultArchived holds the default value on creation for the archived field.
	conversation.DefaultArchived = conversationDescArchived.Default.(bool)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[9].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[10].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	machineFields := schema.Machine{}.Fields()
	_ = machineFields
	// machineDescLastHeartbeatAt is the schema descriptor for last_heartbeat_at field.
	machineDescLastHeartbeatAt := machineFields[3].Descriptor()
	// machine.DefaultLastHeartbeatAt holds the default value on creation for the last_heartbeat_at field.
	machine.DefaultLastHeartbeatAt = machineDescLastHeartbeatAt.Default.(func() time.Time)
	// machineDescCreatedAt is the schema descriptor for created_at field.
	machineDescCreatedAt := machineFields[4].Descriptor()
	// machine.DefaultCreatedAt holds the default value on creation for the created_at field.
	machine.DefaultCreatedAt = machineDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSynthetic is the schema descriptor for synthetic field.
	sessionDescSynthetic := sessionFields[3].Descriptor()
	// session.DefaultSynthetic holds the default value on creation for the synthetic field.
	session.DefaultSynthetic = sessionDescSynthetic.Default.(bool)
	// sessionDescTotalCostUsd is the schema descriptor for total_cost_usd field.
	sessionDescTotalCostUsd := sessionFields[4].Descriptor()
	// session.DefaultTotalCostUsd holds the default value on creation for the total_cost_usd field.
	session.DefaultTotalCostUsd = sessionDescTotalCostUsd.Default.(float64)
	// sessionDescTaskCount is the schema descriptor for task_count field.
	sessionDescTaskCount := sessionFields[5].Descriptor()
	// session.DefaultTaskCount holds the default value on creation for the task_count field.
	session.DefaultTaskCount = sessionDescTaskCount.Default.(int)
	// sessionDescConnectedAt is the schema descriptor for connected_at field.
	sessionDescConnectedAt := sessionFields[6].Descriptor()
	// session.DefaultConnectedAt holds the default value on creation for the connected_at field.
	session.DefaultConnectedAt = sessionDescConnectedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCostUsd is the schema descriptor for cost_usd field.
	taskDescCostUsd := taskFields[12].Descriptor()
	// task.DefaultCostUsd holds the default value on creation for the cost_usd field.
	task.DefaultCostUsd = taskDescCostUsd.Default.(float64)
	// taskDescInputTokens is the schema descriptor for input_tokens field.
	taskDescInputTokens := taskFields[13].Descriptor()
	// task.DefaultInputTokens holds the default value on creation for the input_tokens field.
	task.DefaultInputTokens = taskDescInputTokens.Default.(int)
	// taskDescOutputTokens is the schema descriptor for output_tokens field.
	taskDescOutputTokens := taskFields[14].Descriptor()
	// task.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	task.DefaultOutputTokens = taskDescOutputTokens.Default.(int)
	// taskDescDurationSeconds is the schema descriptor for duration_seconds field.
	taskDescDurationSeconds := taskFields[15].Descriptor()
	// task.DefaultDurationSeconds holds the default value on creation for the duration_seconds field.
	task.DefaultDurationSeconds = taskDescDurationSeconds.Default.(float64)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[18].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	webhookcommandFields := schema.WebhookCommand{}.Fields()
	_ = webhookcommandFields
	// webhookcommandDescPriority is the schema descriptor for priority field.
	webhookcommandDescPriority := webhookcommandFields[8].Descriptor()
	// webhookcommand.DefaultPriority holds the default value on creation for the priority field.
	webhookcommand.DefaultPriority = webhookcommandDescPriority.Default.(int)
	// webhookcommandDescCreatedAt is the schema descriptor for created_at field.
	webhookcommandDescCreatedAt := webhookcommandFields[11].Descriptor()
	// webhookcommand.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookcommand.DefaultCreatedAt = webhookcommandDescCreatedAt.Default.(func() time.Time)
	webhookconfigFields := schema.WebhookConfig{}.Fields()
	_ = webhookconfigFields
	// webhookconfigDescRequiresSignature is the schema descriptor for requires_signature field.
	webhookconfigDescRequiresSignature := webhookconfigFields[8].Descriptor()
	// webhookconfig.DefaultRequiresSignature holds the default value on creation for the requires_signature field.
	webhookconfig.DefaultRequiresSignature = webhookconfigDescRequiresSignature.Default.(bool)
	// webhookconfigDescEnabled is the schema descriptor for enabled field.
	webhookconfigDescEnabled := webhookconfigFields[11].Descriptor()
	// webhookconfig.DefaultEnabled holds the default value on creation for the enabled field.
	webhookconfig.DefaultEnabled = webhookconfigDescEnabled.Default.(bool)
	// webhookconfigDescCreatedAt is the schema descriptor for created_at field.
	webhookconfigDescCreatedAt := webhookconfigFields[13].Descriptor()
	// webhookconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookconfig.DefaultCreatedAt = webhookconfigDescCreatedAt.Default.(func() time.Time)
	// webhookconfigDescUpdatedAt is the schema descriptor for updated_at field.
	webhookconfigDescUpdatedAt := webhookconfigFields[14].Descriptor()
	// webhookconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookconfig.DefaultUpdatedAt = webhookconfigDescUpdatedAt.Default.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescResponseSent is the schema descriptor for response_sent field.
	webhookeventDescResponseSent := webhookeventFields[7].Descriptor()
	// webhookevent.DefaultResponseSent holds the default value on creation for the response_sent field.
	webhookevent.DefaultResponseSent = webhookeventDescResponseSent.Default.(bool)
	// webhookeventDescReceivedAt is the schema descriptor for received_at field.
	webhookeventDescReceivedAt := webhookeventFields[8].Descriptor()
	// webhookevent.DefaultReceivedAt holds the default value on creation for the received_at field.
	webhookevent.DefaultReceivedAt = webhookeventDescReceivedAt.Default.(func() time.Time)
}
