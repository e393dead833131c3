// Code generated by ent, DO NOT EDIT.

package webhookcommand

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContainsFold(FieldID, id))
}

// WebhookID applies equality check predicate on the "webhook_id" field. It's identical to WebhookIDEQ.
func WebhookID(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldWebhookID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldName, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldAgent, v))
}

// Template applies equality check predicate on the "template" field. It's identical to TemplateEQ.
func Template(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldTemplate, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldTrigger, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldCreatedAt, v))
}

// WebhookIDEQ applies the EQ predicate on the "webhook_id" field.
func WebhookIDEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldWebhookID, v))
}

// WebhookIDNEQ applies the NEQ predicate on the "webhook_id" field.
func WebhookIDNEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldWebhookID, v))
}

// WebhookIDIn applies the In predicate on the "webhook_id" field.
func WebhookIDIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldWebhookID, vs...))
}

// WebhookIDNotIn applies the NotIn predicate on the "webhook_id" field.
func WebhookIDNotIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldWebhookID, vs...))
}

// WebhookIDGT applies the GT predicate on the "webhook_id" field.
func WebhookIDGT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGT(FieldWebhookID, v))
}

// WebhookIDGTE applies the GTE predicate on the "webhook_id" field.
func WebhookIDGTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGTE(FieldWebhookID, v))
}

// WebhookIDLT applies the LT predicate on the "webhook_id" field.
func WebhookIDLT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLT(FieldWebhookID, v))
}

// WebhookIDLTE applies the LTE predicate on the "webhook_id" field.
func WebhookIDLTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLTE(FieldWebhookID, v))
}

// WebhookIDContains applies the Contains predicate on the "webhook_id" field.
func WebhookIDContains(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContains(FieldWebhookID, v))
}

// WebhookIDHasPrefix applies the HasPrefix predicate on the "webhook_id" field.
func WebhookIDHasPrefix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasPrefix(FieldWebhookID, v))
}

// WebhookIDHasSuffix applies the HasSuffix predicate on the "webhook_id" field.
func WebhookIDHasSuffix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasSuffix(FieldWebhookID, v))
}

// WebhookIDEqualFold applies the EqualFold predicate on the "webhook_id" field.
func WebhookIDEqualFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEqualFold(FieldWebhookID, v))
}

// WebhookIDContainsFold applies the ContainsFold predicate on the "webhook_id" field.
func WebhookIDContainsFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContainsFold(FieldWebhookID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContainsFold(FieldName, v))
}

// AliasesIsNil applies the IsNil predicate on the "aliases" field.
func AliasesIsNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIsNull(FieldAliases))
}

// AliasesNotNil applies the NotNil predicate on the "aliases" field.
func AliasesNotNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotNull(FieldAliases))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContainsFold(FieldAgent, v))
}

// TemplateEQ applies the EQ predicate on the "template" field.
func TemplateEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldTemplate, v))
}

// TemplateNEQ applies the NEQ predicate on the "template" field.
func TemplateNEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldTemplate, v))
}

// TemplateIn applies the In predicate on the "template" field.
func TemplateIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldTemplate, vs...))
}

// TemplateNotIn applies the NotIn predicate on the "template" field.
func TemplateNotIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldTemplate, vs...))
}

// TemplateGT applies the GT predicate on the "template" field.
func TemplateGT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGT(FieldTemplate, v))
}

// TemplateGTE applies the GTE predicate on the "template" field.
func TemplateGTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGTE(FieldTemplate, v))
}

// TemplateLT applies the LT predicate on the "template" field.
func TemplateLT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLT(FieldTemplate, v))
}

// TemplateLTE applies the LTE predicate on the "template" field.
func TemplateLTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLTE(FieldTemplate, v))
}

// TemplateContains applies the Contains predicate on the "template" field.
func TemplateContains(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContains(FieldTemplate, v))
}

// TemplateHasPrefix applies the HasPrefix predicate on the "template" field.
func TemplateHasPrefix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasPrefix(FieldTemplate, v))
}

// TemplateHasSuffix applies the HasSuffix predicate on the "template" field.
func TemplateHasSuffix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasSuffix(FieldTemplate, v))
}

// TemplateIsNil applies the IsNil predicate on the "template" field.
func TemplateIsNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIsNull(FieldTemplate))
}

// TemplateNotNil applies the NotNil predicate on the "template" field.
func TemplateNotNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotNull(FieldTemplate))
}

// TemplateEqualFold applies the EqualFold predicate on the "template" field.
func TemplateEqualFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEqualFold(FieldTemplate, v))
}

// TemplateContainsFold applies the ContainsFold predicate on the "template" field.
func TemplateContainsFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContainsFold(FieldTemplate, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerIsNil applies the IsNil predicate on the "trigger" field.
func TriggerIsNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIsNull(FieldTrigger))
}

// TriggerNotNil applies the NotNil predicate on the "trigger" field.
func TriggerNotNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotNull(FieldTrigger))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldContainsFold(FieldTrigger, v))
}

// ConditionsIsNil applies the IsNil predicate on the "conditions" field.
func ConditionsIsNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIsNull(FieldConditions))
}

// ConditionsNotNil applies the NotNil predicate on the "conditions" field.
func ConditionsNotNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotNull(FieldConditions))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLTE(FieldPriority, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldAction, vs...))
}

// ActionArgsIsNil applies the IsNil predicate on the "action_args" field.
func ActionArgsIsNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIsNull(FieldActionArgs))
}

// ActionArgsNotNil applies the NotNil predicate on the "action_args" field.
func ActionArgsNotNil() predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotNull(FieldActionArgs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWebhook applies the HasEdge predicate on the "webhook" edge.
func HasWebhook() predicate.WebhookCommand {
	return predicate.WebhookCommand(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WebhookTable, WebhookColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWebhookWith applies the HasEdge predicate on the "webhook" edge with a given conditions (other predicates).
func HasWebhookWith(preds ...predicate.WebhookConfig) predicate.WebhookCommand {
	return predicate.WebhookCommand(func(s *sql.Selector) {
		step := newWebhookStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookCommand) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookCommand) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookCommand) predicate.WebhookCommand {
	return predicate.WebhookCommand(sql.NotPredicates(p))
}
