// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// MachineID applies equality check predicate on the "machine_id" field. It's identical to MachineIDEQ.
func MachineID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMachineID, v))
}

// Synthetic applies equality check predicate on the "synthetic" field. It's identical to SyntheticEQ.
func Synthetic(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSynthetic, v))
}

// TotalCostUsd applies equality check predicate on the "total_cost_usd" field. It's identical to TotalCostUsdEQ.
func TotalCostUsd(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TaskCount applies equality check predicate on the "task_count" field. It's identical to TaskCountEQ.
func TaskCount(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTaskCount, v))
}

// ConnectedAt applies equality check predicate on the "connected_at" field. It's identical to ConnectedAtEQ.
func ConnectedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConnectedAt, v))
}

// DisconnectedAt applies equality check predicate on the "disconnected_at" field. It's identical to DisconnectedAtEQ.
func DisconnectedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDisconnectedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// MachineIDEQ applies the EQ predicate on the "machine_id" field.
func MachineIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMachineID, v))
}

// MachineIDNEQ applies the NEQ predicate on the "machine_id" field.
func MachineIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMachineID, v))
}

// MachineIDIn applies the In predicate on the "machine_id" field.
func MachineIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMachineID, vs...))
}

// MachineIDNotIn applies the NotIn predicate on the "machine_id" field.
func MachineIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMachineID, vs...))
}

// MachineIDGT applies the GT predicate on the "machine_id" field.
func MachineIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMachineID, v))
}

// MachineIDGTE applies the GTE predicate on the "machine_id" field.
func MachineIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMachineID, v))
}

// MachineIDLT applies the LT predicate on the "machine_id" field.
func MachineIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMachineID, v))
}

// MachineIDLTE applies the LTE predicate on the "machine_id" field.
func MachineIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMachineID, v))
}

// MachineIDContains applies the Contains predicate on the "machine_id" field.
func MachineIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldMachineID, v))
}

// MachineIDHasPrefix applies the HasPrefix predicate on the "machine_id" field.
func MachineIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldMachineID, v))
}

// MachineIDHasSuffix applies the HasSuffix predicate on the "machine_id" field.
func MachineIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldMachineID, v))
}

// MachineIDIsNil applies the IsNil predicate on the "machine_id" field.
func MachineIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMachineID))
}

// MachineIDNotNil applies the NotNil predicate on the "machine_id" field.
func MachineIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMachineID))
}

// MachineIDEqualFold applies the EqualFold predicate on the "machine_id" field.
func MachineIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldMachineID, v))
}

// MachineIDContainsFold applies the ContainsFold predicate on the "machine_id" field.
func MachineIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldMachineID, v))
}

// SyntheticEQ applies the EQ predicate on the "synthetic" field.
func SyntheticEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSynthetic, v))
}

// SyntheticNEQ applies the NEQ predicate on the "synthetic" field.
func SyntheticNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSynthetic, v))
}

// TotalCostUsdEQ applies the EQ predicate on the "total_cost_usd" field.
func TotalCostUsdEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdNEQ applies the NEQ predicate on the "total_cost_usd" field.
func TotalCostUsdNEQ(v float64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTotalCostUsd, v))
}

// TotalCostUsdIn applies the In predicate on the "total_cost_usd" field.
func TotalCostUsdIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdNotIn applies the NotIn predicate on the "total_cost_usd" field.
func TotalCostUsdNotIn(vs ...float64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTotalCostUsd, vs...))
}

// TotalCostUsdGT applies the GT predicate on the "total_cost_usd" field.
func TotalCostUsdGT(v float64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTotalCostUsd, v))
}

// TotalCostUsdGTE applies the GTE predicate on the "total_cost_usd" field.
func TotalCostUsdGTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTotalCostUsd, v))
}

// TotalCostUsdLT applies the LT predicate on the "total_cost_usd" field.
func TotalCostUsdLT(v float64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTotalCostUsd, v))
}

// TotalCostUsdLTE applies the LTE predicate on the "total_cost_usd" field.
func TotalCostUsdLTE(v float64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTotalCostUsd, v))
}

// TaskCountEQ applies the EQ predicate on the "task_count" field.
func TaskCountEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTaskCount, v))
}

// TaskCountNEQ applies the NEQ predicate on the "task_count" field.
func TaskCountNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTaskCount, v))
}

// TaskCountIn applies the In predicate on the "task_count" field.
func TaskCountIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTaskCount, vs...))
}

// TaskCountNotIn applies the NotIn predicate on the "task_count" field.
func TaskCountNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTaskCount, vs...))
}

// TaskCountGT applies the GT predicate on the "task_count" field.
func TaskCountGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTaskCount, v))
}

// TaskCountGTE applies the GTE predicate on the "task_count" field.
func TaskCountGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTaskCount, v))
}

// TaskCountLT applies the LT predicate on the "task_count" field.
func TaskCountLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTaskCount, v))
}

// TaskCountLTE applies the LTE predicate on the "task_count" field.
func TaskCountLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTaskCount, v))
}

// ConnectedAtEQ applies the EQ predicate on the "connected_at" field.
func ConnectedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldConnectedAt, v))
}

// ConnectedAtNEQ applies the NEQ predicate on the "connected_at" field.
func ConnectedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldConnectedAt, v))
}

// ConnectedAtIn applies the In predicate on the "connected_at" field.
func ConnectedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldConnectedAt, vs...))
}

// ConnectedAtNotIn applies the NotIn predicate on the "connected_at" field.
func ConnectedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldConnectedAt, vs...))
}

// ConnectedAtGT applies the GT predicate on the "connected_at" field.
func ConnectedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldConnectedAt, v))
}

// ConnectedAtGTE applies the GTE predicate on the "connected_at" field.
func ConnectedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldConnectedAt, v))
}

// ConnectedAtLT applies the LT predicate on the "connected_at" field.
func ConnectedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldConnectedAt, v))
}

// ConnectedAtLTE applies the LTE predicate on the "connected_at" field.
func ConnectedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldConnectedAt, v))
}

// DisconnectedAtEQ applies the EQ predicate on the "disconnected_at" field.
func DisconnectedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDisconnectedAt, v))
}

// DisconnectedAtNEQ applies the NEQ predicate on the "disconnected_at" field.
func DisconnectedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDisconnectedAt, v))
}

// DisconnectedAtIn applies the In predicate on the "disconnected_at" field.
func DisconnectedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDisconnectedAt, vs...))
}

// DisconnectedAtNotIn applies the NotIn predicate on the "disconnected_at" field.
func DisconnectedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDisconnectedAt, vs...))
}

// DisconnectedAtGT applies the GT predicate on the "disconnected_at" field.
func DisconnectedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDisconnectedAt, v))
}

// DisconnectedAtGTE applies the GTE predicate on the "disconnected_at" field.
func DisconnectedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDisconnectedAt, v))
}

// DisconnectedAtLT applies the LT predicate on the "disconnected_at" field.
func DisconnectedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDisconnectedAt, v))
}

// DisconnectedAtLTE applies the LTE predicate on the "disconnected_at" field.
func DisconnectedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDisconnectedAt, v))
}

// DisconnectedAtIsNil applies the IsNil predicate on the "disconnected_at" field.
func DisconnectedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldDisconnectedAt))
}

// DisconnectedAtNotNil applies the NotNil predicate on the "disconnected_at" field.
func DisconnectedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldDisconnectedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
