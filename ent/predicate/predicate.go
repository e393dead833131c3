// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Machine is the predicate function for machine builders.
type Machine func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// WebhookCommand is the predicate function for webhookcommand builders.
type WebhookCommand func(*sql.Selector)

// WebhookConfig is the predicate function for webhookconfig builders.
type WebhookConfig func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
