// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTitle, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUserID, v))
}

// FlowID applies equality check predicate on the "flow_id" field. It's identical to FlowIDEQ.
func FlowID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldFlowID, v))
}

// TotalCostUsd applies equality check predicate on the "total_cost_usd" field. It's identical to TotalCostUsdEQ.
func TotalCostUsd(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TotalInputTokens applies equality check predicate on the "total_input_tokens" field. It's identical to TotalInputTokensEQ.
func TotalInputTokens(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTotalInputTokens, v))
}

// TotalOutputTokens applies equality check predicate on the "total_output_tokens" field. It's identical to TotalOutputTokensEQ.
func TotalOutputTokens(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTotalOutputTokens, v))
}

// TaskCount applies equality check predicate on the "task_count" field. It's identical to TaskCountEQ.
func TaskCount(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTaskCount, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldArchived, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldTitle, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldUserID, v))
}

// FlowIDEQ applies the EQ predicate on the "flow_id" field.
func FlowIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldFlowID, v))
}

// FlowIDNEQ applies the NEQ predicate on the "flow_id" field.
func FlowIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldFlowID, v))
}

// FlowIDIn applies the In predicate on the "flow_id" field.
func FlowIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldFlowID, vs...))
}

// FlowIDNotIn applies the NotIn predicate on the "flow_id" field.
func FlowIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldFlowID, vs...))
}

// FlowIDGT applies the GT predicate on the "flow_id" field.
func FlowIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldFlowID, v))
}

// FlowIDGTE applies the GTE predicate on the "flow_id" field.
func FlowIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldFlowID, v))
}

// FlowIDLT applies the LT predicate on the "flow_id" field.
func FlowIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldFlowID, v))
}

// FlowIDLTE applies the LTE predicate on the "flow_id" field.
func FlowIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldFlowID, v))
}

// FlowIDContains applies the Contains predicate on the "flow_id" field.
func FlowIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldFlowID, v))
}

// FlowIDHasPrefix applies the HasPrefix predicate on the "flow_id" field.
func FlowIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldFlowID, v))
}

// FlowIDHasSuffix applies the HasSuffix predicate on the "flow_id" field.
func FlowIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldFlowID, v))
}

// FlowIDEqualFold applies the EqualFold predicate on the "flow_id" field.
func FlowIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldFlowID, v))
}

// FlowIDContainsFold applies the ContainsFold predicate on the "flow_id" field.
func FlowIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldFlowID, v))
}

// TotalCostUsdEQ applies the EQ predicate on the "total_cost_usd" field.
func TotalCostUsdEQ(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdNEQ applies the NEQ predicate on the "total_cost_usd" field.
func TotalCostUsdNEQ(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdIn applies the In predicate on the "total_cost_usd" field.
func TotalCostUsdIn(vs ...float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdNotIn applies the NotIn predicate on the "total_cost_usd" field.
func TotalCostUsdNotIn(vs ...float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdGT applies the GT predicate on the "total_cost_usd" field.
func TotalCostUsdGT(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTotalCostUsd, v))
}

// TotalCostUsdGTE applies the GTE predicate on the "total_cost_usd" field.
func TotalCostUsdGTE(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTotalCostUsd, v))
}

// TotalCostUsdLT applies the LT predicate on the "total_cost_usd" field.
func TotalCostUsdLT(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTotalCostUsd, v))
}

// TotalCostUsdLTE applies the LTE predicate on the "total_cost_usd" field.
func TotalCostUsdLTE(v float64) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTotalCostUsd, v))
}

// TotalInputTokensEQ applies the EQ predicate on the "total_input_tokens" field.
func TotalInputTokensEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTotalInputTokens, v))
}

// TotalInputTokensNEQ applies the NEQ predicate on the "total_input_tokens" field.
func TotalInputTokensNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTotalInputTokens, v))
}

// TotalInputTokensIn applies the In predicate on the "total_input_tokens" field.
func TotalInputTokensIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTotalInputTokens, vs...))
}

// TotalInputTokensNotIn applies the NotIn predicate on the "total_input_tokens" field.
func TotalInputTokensNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTotalInputTokens, vs...))
}

// TotalInputTokensGT applies the GT predicate on the "total_input_tokens" field.
func TotalInputTokensGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTotalInputTokens, v))
}

// TotalInputTokensGTE applies the GTE predicate on the "total_input_tokens" field.
func TotalInputTokensGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTotalInputTokens, v))
}

// TotalInputTokensLT applies the LT predicate on the "total_input_tokens" field.
func TotalInputTokensLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTotalInputTokens, v))
}

// TotalInputTokensLTE applies the LTE predicate on the "total_input_tokens" field.
func TotalInputTokensLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTotalInputTokens, v))
}

// TotalOutputTokensEQ applies the EQ predicate on the "total_output_tokens" field.
func TotalOutputTokensEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTotalOutputTokens, v))
}

// TotalOutputTokensNEQ applies the NEQ predicate on the "total_output_tokens" field.
func TotalOutputTokensNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTotalOutputTokens, v))
}

// TotalOutputTokensIn applies the In predicate on the "total_output_tokens" field.
func TotalOutputTokensIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTotalOutputTokens, vs...))
}

// TotalOutputTokensNotIn applies the NotIn predicate on the "total_output_tokens" field.
func TotalOutputTokensNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTotalOutputTokens, vs...))
}

// TotalOutputTokensGT applies the GT predicate on the "total_output_tokens" field.
func TotalOutputTokensGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTotalOutputTokens, v))
}

// TotalOutputTokensGTE applies the GTE predicate on the "total_output_tokens" field.
func TotalOutputTokensGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTotalOutputTokens, v))
}

// TotalOutputTokensLT applies the LT predicate on the "total_output_tokens" field.
func TotalOutputTokensLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTotalOutputTokens, v))
}

// TotalOutputTokensLTE applies the LTE predicate on the "total_output_tokens" field.
func TotalOutputTokensLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTotalOutputTokens, v))
}

// TaskCountEQ applies the EQ predicate on the "task_count" field.
func TaskCountEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTaskCount, v))
}

// TaskCountNEQ applies the NEQ predicate on the "task_count" field.
func TaskCountNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTaskCount, v))
}

// TaskCountIn applies the In predicate on the "task_count" field.
func TaskCountIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTaskCount, vs...))
}

// TaskCountNotIn applies the NotIn predicate on the "task_count" field.
func TaskCountNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTaskCount, vs...))
}

// TaskCountGT applies the GT predicate on the "task_count" field.
func TaskCountGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTaskCount, v))
}

// TaskCountGTE applies the GTE predicate on the "task_count" field.
func TaskCountGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTaskCount, v))
}

// TaskCountLT applies the LT predicate on the "task_count" field.
func TaskCountLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTaskCount, v))
}

// TaskCountLTE applies the LTE predicate on the "task_count" field.
func TaskCountLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTaskCount, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldArchived, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
