// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "flow_id", Type: field.TypeString},
		{Name: "total_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "total_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "task_count", Type: field.TypeInt, Default: 0},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_flow_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "NOT archived",
				},
			},
			{
				Name:    "conversation_user_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2]},
			},
			{
				Name:    "conversation_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[9]},
			},
		},
	}
	// MachinesColumns holds the columns for the "machines" table.
	MachinesColumns = []*schema.Column{
		{Name: "machine_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString, Nullable: true},
		{Name: "hostname", Type: field.TypeString},
		{Name: "last_heartbeat_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MachinesTable holds the schema information for the "machines" table.
	MachinesTable = &schema.Table{
		Name:       "machines",
		Columns:    MachinesColumns,
		PrimaryKey: []*schema.Column{MachinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "machine_account_id",
				Unique:  false,
				Columns: []*schema.Column{MachinesColumns[1]},
			},
			{
				Name:    "machine_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{MachinesColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[4]},
			},
			{
				Name:    "message_task_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "machine_id", Type: field.TypeString, Nullable: true},
		{Name: "synthetic", Type: field.TypeBool, Default: false},
		{Name: "total_cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "task_count", Type: field.TypeInt, Default: 0},
		{Name: "connected_at", Type: field.TypeTime},
		{Name: "disconnected_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_disconnected_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7]},
			},
			{
				Name:    "session_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "flow_id", Type: field.TypeString},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_task_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "agent_kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "output_stream", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "duration_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"chat", "webhook", "subagent"}},
		{Name: "source_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_output_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8]},
			},
			{
				Name:    "task_session_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_conversation_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_flow_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
			{
				Name:    "task_agent_name",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[18]},
			},
			{
				Name:    "task_status_last_output_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[21]},
			},
			{
				Name:    "task_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[22]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// WebhookCommandsColumns holds the columns for the "webhook_commands" table.
	WebhookCommandsColumns = []*schema.Column{
		{Name: "command_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "aliases", Type: field.TypeJSON, Nullable: true},
		{Name: "agent", Type: field.TypeString},
		{Name: "template", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "trigger", Type: field.TypeString, Nullable: true},
		{Name: "conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 10},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"create_task", "comment", "react", "label", "ask", "respond", "forward"}, Default: "create_task"},
		{Name: "action_args", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "webhook_id", Type: field.TypeString},
	}
	// WebhookCommandsTable holds the schema information for the "webhook_commands" table.
	WebhookCommandsTable = &schema.Table{
		Name:       "webhook_commands",
		Columns:    WebhookCommandsColumns,
		PrimaryKey: []*schema.Column{WebhookCommandsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_commands_webhook_configs_commands",
				Columns:    []*schema.Column{WebhookCommandsColumns[11]},
				RefColumns: []*schema.Column{WebhookConfigsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookcommand_webhook_id_name",
				Unique:  true,
				Columns: []*schema.Column{WebhookCommandsColumns[11], WebhookCommandsColumns[1]},
			},
			{
				Name:    "webhookcommand_webhook_id_priority",
				Unique:  false,
				Columns: []*schema.Column{WebhookCommandsColumns[11], WebhookCommandsColumns[7]},
			},
		},
	}
	// WebhookConfigsColumns holds the columns for the "webhook_configs" table.
	WebhookConfigsColumns = []*schema.Column{
		{Name: "webhook_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "default_agent", Type: field.TypeString},
		{Name: "default_command", Type: field.TypeString, Nullable: true},
		{Name: "command_prefix", Type: field.TypeString, Nullable: true},
		{Name: "secret_env", Type: field.TypeString, Nullable: true},
		{Name: "requires_signature", Type: field.TypeBool, Default: true},
		{Name: "event_type_expr", Type: field.TypeString, Nullable: true},
		{Name: "brain_preamble", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WebhookConfigsTable holds the schema information for the "webhook_configs" table.
	WebhookConfigsTable = &schema.Table{
		Name:       "webhook_configs",
		Columns:    WebhookConfigsColumns,
		PrimaryKey: []*schema.Column{WebhookConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookconfig_provider",
				Unique:  false,
				Columns: []*schema.Column{WebhookConfigsColumns[2]},
			},
			{
				Name:    "webhookconfig_provider_path",
				Unique:  true,
				Columns: []*schema.Column{WebhookConfigsColumns[2], WebhookConfigsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "enabled",
				},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "webhook_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "matched_command", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "response_sent", Type: field.TypeBool, Default: false},
		{Name: "received_at", Type: field.TypeTime},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_webhook_id_received_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[1], WebhookEventsColumns[8]},
			},
			{
				Name:    "webhookevent_provider",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		ConversationsTable,
		MachinesTable,
		MessagesTable,
		SessionsTable,
		TasksTable,
		WebhookCommandsTable,
		WebhookConfigsTable,
		WebhookEventsTable,
	}
)

func init() {
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	WebhookCommandsTable.ForeignKeys[0].RefTable = WebhookConfigsTable
}
