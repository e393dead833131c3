// Code generated by ent, DO NOT EDIT.

package webhookconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldProvider, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldPath, v))
}

// DefaultAgent applies equality check predicate on the "default_agent" field. It's identical to DefaultAgentEQ.
func DefaultAgent(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldDefaultAgent, v))
}

// DefaultCommand applies equality check predicate on the "default_command" field. It's identical to DefaultCommandEQ.
func DefaultCommand(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldDefaultCommand, v))
}

// CommandPrefix applies equality check predicate on the "command_prefix" field. It's identical to CommandPrefixEQ.
func CommandPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldCommandPrefix, v))
}

// SecretEnv applies equality check predicate on the "secret_env" field. It's identical to SecretEnvEQ.
func SecretEnv(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldSecretEnv, v))
}

// RequiresSignature applies equality check predicate on the "requires_signature" field. It's identical to RequiresSignatureEQ.
func RequiresSignature(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldRequiresSignature, v))
}

// EventTypeExpr applies equality check predicate on the "event_type_expr" field. It's identical to EventTypeExprEQ.
func EventTypeExpr(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldEventTypeExpr, v))
}

// BrainPreamble applies equality check predicate on the "brain_preamble" field. It's identical to BrainPreambleEQ.
func BrainPreamble(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldBrainPreamble, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldEnabled, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldProvider, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldPath, v))
}

// DefaultAgentEQ applies the EQ predicate on the "default_agent" field.
func DefaultAgentEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldDefaultAgent, v))
}

// DefaultAgentNEQ applies the NEQ predicate on the "default_agent" field.
func DefaultAgentNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldDefaultAgent, v))
}

// DefaultAgentIn applies the In predicate on the "default_agent" field.
func DefaultAgentIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldDefaultAgent, vs...))
}

// DefaultAgentNotIn applies the NotIn predicate on the "default_agent" field.
func DefaultAgentNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldDefaultAgent, vs...))
}

// DefaultAgentGT applies the GT predicate on the "default_agent" field.
func DefaultAgentGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldDefaultAgent, v))
}

// DefaultAgentGTE applies the GTE predicate on the "default_agent" field.
func DefaultAgentGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldDefaultAgent, v))
}

// DefaultAgentLT applies the LT predicate on the "default_agent" field.
func DefaultAgentLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldDefaultAgent, v))
}

// DefaultAgentLTE applies the LTE predicate on the "default_agent" field.
func DefaultAgentLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldDefaultAgent, v))
}

// DefaultAgentContains applies the Contains predicate on the "default_agent" field.
func DefaultAgentContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldDefaultAgent, v))
}

// DefaultAgentHasPrefix applies the HasPrefix predicate on the "default_agent" field.
func DefaultAgentHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldDefaultAgent, v))
}

// DefaultAgentHasSuffix applies the HasSuffix predicate on the "default_agent" field.
func DefaultAgentHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldDefaultAgent, v))
}

// DefaultAgentEqualFold applies the EqualFold predicate on the "default_agent" field.
func DefaultAgentEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldDefaultAgent, v))
}

// DefaultAgentContainsFold applies the ContainsFold predicate on the "default_agent" field.
func DefaultAgentContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldDefaultAgent, v))
}

// DefaultCommandEQ applies the EQ predicate on the "default_command" field.
func DefaultCommandEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldDefaultCommand, v))
}

// DefaultCommandNEQ applies the NEQ predicate on the "default_command" field.
func DefaultCommandNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldDefaultCommand, v))
}

// DefaultCommandIn applies the In predicate on the "default_command" field.
func DefaultCommandIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldDefaultCommand, vs...))
}

// DefaultCommandNotIn applies the NotIn predicate on the "default_command" field.
func DefaultCommandNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldDefaultCommand, vs...))
}

// DefaultCommandGT applies the GT predicate on the "default_command" field.
func DefaultCommandGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldDefaultCommand, v))
}

// DefaultCommandGTE applies the GTE predicate on the "default_command" field.
func DefaultCommandGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldDefaultCommand, v))
}

// DefaultCommandLT applies the LT predicate on the "default_command" field.
func DefaultCommandLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldDefaultCommand, v))
}

// DefaultCommandLTE applies the LTE predicate on the "default_command" field.
func DefaultCommandLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldDefaultCommand, v))
}

// DefaultCommandContains applies the Contains predicate on the "default_command" field.
func DefaultCommandContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldDefaultCommand, v))
}

// DefaultCommandHasPrefix applies the HasPrefix predicate on the "default_command" field.
func DefaultCommandHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldDefaultCommand, v))
}

// DefaultCommandHasSuffix applies the HasSuffix predicate on the "default_command" field.
func DefaultCommandHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldDefaultCommand, v))
}

// DefaultCommandIsNil applies the IsNil predicate on the "default_command" field.
func DefaultCommandIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldDefaultCommand))
}

// DefaultCommandNotNil applies the NotNil predicate on the "default_command" field.
func DefaultCommandNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldDefaultCommand))
}

// DefaultCommandEqualFold applies the EqualFold predicate on the "default_command" field.
func DefaultCommandEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldDefaultCommand, v))
}

// DefaultCommandContainsFold applies the ContainsFold predicate on the "default_command" field.
func DefaultCommandContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldDefaultCommand, v))
}

// CommandPrefixEQ applies the EQ predicate on the "command_prefix" field.
func CommandPrefixEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldCommandPrefix, v))
}

// CommandPrefixNEQ applies the NEQ predicate on the "command_prefix" field.
func CommandPrefixNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldCommandPrefix, v))
}

// CommandPrefixIn applies the In predicate on the "command_prefix" field.
func CommandPrefixIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldCommandPrefix, vs...))
}

// CommandPrefixNotIn applies the NotIn predicate on the "command_prefix" field.
func CommandPrefixNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldCommandPrefix, vs...))
}

// CommandPrefixGT applies the GT predicate on the "command_prefix" field.
func CommandPrefixGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldCommandPrefix, v))
}

// CommandPrefixGTE applies the GTE predicate on the "command_prefix" field.
func CommandPrefixGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldCommandPrefix, v))
}

// CommandPrefixLT applies the LT predicate on the "command_prefix" field.
func CommandPrefixLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldCommandPrefix, v))
}

// CommandPrefixLTE applies the LTE predicate on the "command_prefix" field.
func CommandPrefixLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldCommandPrefix, v))
}

// CommandPrefixContains applies the Contains predicate on the "command_prefix" field.
func CommandPrefixContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldCommandPrefix, v))
}

// CommandPrefixHasPrefix applies the HasPrefix predicate on the "command_prefix" field.
func CommandPrefixHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldCommandPrefix, v))
}

// CommandPrefixHasSuffix applies the HasSuffix predicate on the "command_prefix" field.
func CommandPrefixHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldCommandPrefix, v))
}

// CommandPrefixIsNil applies the IsNil predicate on the "command_prefix" field.
func CommandPrefixIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldCommandPrefix))
}

// CommandPrefixNotNil applies the NotNil predicate on the "command_prefix" field.
func CommandPrefixNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldCommandPrefix))
}

// CommandPrefixEqualFold applies the EqualFold predicate on the "command_prefix" field.
func CommandPrefixEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldCommandPrefix, v))
}

// CommandPrefixContainsFold applies the ContainsFold predicate on the "command_prefix" field.
func CommandPrefixContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldCommandPrefix, v))
}

// SecretEnvEQ applies the EQ predicate on the "secret_env" field.
func SecretEnvEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldSecretEnv, v))
}

// SecretEnvNEQ applies the NEQ predicate on the "secret_env" field.
func SecretEnvNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldSecretEnv, v))
}

// SecretEnvIn applies the In predicate on the "secret_env" field.
func SecretEnvIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldSecretEnv, vs...))
}

// SecretEnvNotIn applies the NotIn predicate on the "secret_env" field.
func SecretEnvNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldSecretEnv, vs...))
}

// SecretEnvGT applies the GT predicate on the "secret_env" field.
func SecretEnvGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldSecretEnv, v))
}

// SecretEnvGTE applies the GTE predicate on the "secret_env" field.
func SecretEnvGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldSecretEnv, v))
}

// SecretEnvLT applies the LT predicate on the "secret_env" field.
func SecretEnvLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldSecretEnv, v))
}

// SecretEnvLTE applies the LTE predicate on the "secret_env" field.
func SecretEnvLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldSecretEnv, v))
}

// SecretEnvContains applies the Contains predicate on the "secret_env" field.
func SecretEnvContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldSecretEnv, v))
}

// SecretEnvHasPrefix applies the HasPrefix predicate on the "secret_env" field.
func SecretEnvHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldSecretEnv, v))
}

// SecretEnvHasSuffix applies the HasSuffix predicate on the "secret_env" field.
func SecretEnvHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldSecretEnv, v))
}

// SecretEnvIsNil applies the IsNil predicate on the "secret_env" field.
func SecretEnvIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldSecretEnv))
}

// SecretEnvNotNil applies the NotNil predicate on the "secret_env" field.
func SecretEnvNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldSecretEnv))
}

// SecretEnvEqualFold applies the EqualFold predicate on the "secret_env" field.
func SecretEnvEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldSecretEnv, v))
}

// SecretEnvContainsFold applies the ContainsFold predicate on the "secret_env" field.
func SecretEnvContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldSecretEnv, v))
}

// RequiresSignatureEQ applies the EQ predicate on the "requires_signature" field.
func RequiresSignatureEQ(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldRequiresSignature, v))
}

// RequiresSignatureNEQ applies the NEQ predicate on the "requires_signature" field.
func RequiresSignatureNEQ(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldRequiresSignature, v))
}

// EventTypeExprEQ applies the EQ predicate on the "event_type_expr" field.
func EventTypeExprEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldEventTypeExpr, v))
}

// EventTypeExprNEQ applies the NEQ predicate on the "event_type_expr" field.
func EventTypeExprNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldEventTypeExpr, v))
}

// EventTypeExprIn applies the In predicate on the "event_type_expr" field.
func EventTypeExprIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldEventTypeExpr, vs...))
}

// EventTypeExprNotIn applies the NotIn predicate on the "event_type_expr" field.
func EventTypeExprNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldEventTypeExpr, vs...))
}

// EventTypeExprGT applies the GT predicate on the "event_type_expr" field.
func EventTypeExprGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldEventTypeExpr, v))
}

// EventTypeExprGTE applies the GTE predicate on the "event_type_expr" field.
func EventTypeExprGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldEventTypeExpr, v))
}

// EventTypeExprLT applies the LT predicate on the "event_type_expr" field.
func EventTypeExprLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldEventTypeExpr, v))
}

// EventTypeExprLTE applies the LTE predicate on the "event_type_expr" field.
func EventTypeExprLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldEventTypeExpr, v))
}

// EventTypeExprContains applies the Contains predicate on the "event_type_expr" field.
func EventTypeExprContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldEventTypeExpr, v))
}

// EventTypeExprHasPrefix applies the HasPrefix predicate on the "event_type_expr" field.
func EventTypeExprHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldEventTypeExpr, v))
}

// EventTypeExprHasSuffix applies the HasSuffix predicate on the "event_type_expr" field.
func EventTypeExprHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldEventTypeExpr, v))
}

// EventTypeExprIsNil applies the IsNil predicate on the "event_type_expr" field.
func EventTypeExprIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldEventTypeExpr))
}

// EventTypeExprNotNil applies the NotNil predicate on the "event_type_expr" field.
func EventTypeExprNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldEventTypeExpr))
}

// EventTypeExprEqualFold applies the EqualFold predicate on the "event_type_expr" field.
func EventTypeExprEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldEventTypeExpr, v))
}

// EventTypeExprContainsFold applies the ContainsFold predicate on the "event_type_expr" field.
func EventTypeExprContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldEventTypeExpr, v))
}

// BrainPreambleEQ applies the EQ predicate on the "brain_preamble" field.
func BrainPreambleEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldBrainPreamble, v))
}

// BrainPreambleNEQ applies the NEQ predicate on the "brain_preamble" field.
func BrainPreambleNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldBrainPreamble, v))
}

// BrainPreambleIn applies the In predicate on the "brain_preamble" field.
func BrainPreambleIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldBrainPreamble, vs...))
}

// BrainPreambleNotIn applies the NotIn predicate on the "brain_preamble" field.
func BrainPreambleNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldBrainPreamble, vs...))
}

// BrainPreambleGT applies the GT predicate on the "brain_preamble" field.
func BrainPreambleGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldBrainPreamble, v))
}

// BrainPreambleGTE applies the GTE predicate on the "brain_preamble" field.
func BrainPreambleGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldBrainPreamble, v))
}

// BrainPreambleLT applies the LT predicate on the "brain_preamble" field.
func BrainPreambleLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldBrainPreamble, v))
}

// BrainPreambleLTE applies the LTE predicate on the "brain_preamble" field.
func BrainPreambleLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldBrainPreamble, v))
}

// BrainPreambleContains applies the Contains predicate on the "brain_preamble" field.
func BrainPreambleContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldBrainPreamble, v))
}

// BrainPreambleHasPrefix applies the HasPrefix predicate on the "brain_preamble" field.
func BrainPreambleHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldBrainPreamble, v))
}

// BrainPreambleHasSuffix applies the HasSuffix predicate on the "brain_preamble" field.
func BrainPreambleHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldBrainPreamble, v))
}

// BrainPreambleIsNil applies the IsNil predicate on the "brain_preamble" field.
func BrainPreambleIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldBrainPreamble))
}

// BrainPreambleNotNil applies the NotNil predicate on the "brain_preamble" field.
func BrainPreambleNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldBrainPreamble))
}

// BrainPreambleEqualFold applies the EqualFold predicate on the "brain_preamble" field.
func BrainPreambleEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldBrainPreamble, v))
}

// BrainPreambleContainsFold applies the ContainsFold predicate on the "brain_preamble" field.
func BrainPreambleContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldBrainPreamble, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCommands applies the HasEdge predicate on the "commands" edge.
func HasCommands() predicate.WebhookConfig {
	return predicate.WebhookConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CommandsTable, CommandsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommandsWith applies the HasEdge predicate on the "commands" edge with a given conditions (other predicates).
func HasCommandsWith(preds ...predicate.WebhookCommand) predicate.WebhookConfig {
	return predicate.WebhookConfig(func(s *sql.Selector) {
		step := newCommandsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookConfig) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookConfig) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookConfig) predicate.WebhookConfig {
	return predicate.WebhookConfig(sql.NotPredicates(p))
}
