// Code generated by ent, DO NOT EDIT.

package ingestionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldUserID, v))
}

// InputText applies equality check predicate on the "input_text" field. It's identical to InputTextEQ.
func InputText(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldInputText, v))
}

// UploadID applies equality check predicate on the "upload_id" field. It's identical to UploadIDEQ.
func UploadID(v uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldUploadID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldStatus, v))
}

// AgentResponse applies equality check predicate on the "agent_response" field. It's identical to AgentResponseEQ.
func AgentResponse(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldAgentResponse, v))
}

// ResultSummary applies equality check predicate on the "result_summary" field. It's identical to ResultSummaryEQ.
func ResultSummary(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldResultSummary, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldLastError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldFinishedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContainsFold(FieldUserID, v))
}

// InputTextEQ applies the EQ predicate on the "input_text" field.
func InputTextEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldInputText, v))
}

// InputTextNEQ applies the NEQ predicate on the "input_text" field.
func InputTextNEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldInputText, v))
}

// InputTextIn applies the In predicate on the "input_text" field.
func InputTextIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldInputText, vs...))
}

// InputTextNotIn applies the NotIn predicate on the "input_text" field.
func InputTextNotIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldInputText, vs...))
}

// InputTextGT applies the GT predicate on the "input_text" field.
func InputTextGT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldInputText, v))
}

// InputTextGTE applies the GTE predicate on the "input_text" field.
func InputTextGTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldInputText, v))
}

// InputTextLT applies the LT predicate on the "input_text" field.
func InputTextLT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldInputText, v))
}

// InputTextLTE applies the LTE predicate on the "input_text" field.
func InputTextLTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldInputText, v))
}

// InputTextContains applies the Contains predicate on the "input_text" field.
func InputTextContains(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContains(FieldInputText, v))
}

// InputTextHasPrefix applies the HasPrefix predicate on the "input_text" field.
func InputTextHasPrefix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasPrefix(FieldInputText, v))
}

// InputTextHasSuffix applies the HasSuffix predicate on the "input_text" field.
func InputTextHasSuffix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasSuffix(FieldInputText, v))
}

// InputTextIsNil applies the IsNil predicate on the "input_text" field.
func InputTextIsNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIsNull(FieldInputText))
}

// InputTextNotNil applies the NotNil predicate on the "input_text" field.
func InputTextNotNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotNull(FieldInputText))
}

// InputTextEqualFold applies the EqualFold predicate on the "input_text" field.
func InputTextEqualFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEqualFold(FieldInputText, v))
}

// InputTextContainsFold applies the ContainsFold predicate on the "input_text" field.
func InputTextContainsFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContainsFold(FieldInputText, v))
}

// UploadIDEQ applies the EQ predicate on the "upload_id" field.
func UploadIDEQ(v uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldUploadID, v))
}

// UploadIDNEQ applies the NEQ predicate on the "upload_id" field.
func UploadIDNEQ(v uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldUploadID, v))
}

// UploadIDIn applies the In predicate on the "upload_id" field.
func UploadIDIn(vs ...uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldUploadID, vs...))
}

// UploadIDNotIn applies the NotIn predicate on the "upload_id" field.
func UploadIDNotIn(vs ...uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldUploadID, vs...))
}

// UploadIDGT applies the GT predicate on the "upload_id" field.
func UploadIDGT(v uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldUploadID, v))
}

// UploadIDGTE applies the GTE predicate on the "upload_id" field.
func UploadIDGTE(v uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldUploadID, v))
}

// UploadIDLT applies the LT predicate on the "upload_id" field.
func UploadIDLT(v uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldUploadID, v))
}

// UploadIDLTE applies the LTE predicate on the "upload_id" field.
func UploadIDLTE(v uuid.UUID) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldUploadID, v))
}

// UploadIDIsNil applies the IsNil predicate on the "upload_id" field.
func UploadIDIsNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIsNull(FieldUploadID))
}

// UploadIDNotNil applies the NotNil predicate on the "upload_id" field.
func UploadIDNotNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotNull(FieldUploadID))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotNull(FieldMetadata))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContainsFold(FieldStatus, v))
}

// AgentResponseEQ applies the EQ predicate on the "agent_response" field.
func AgentResponseEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldAgentResponse, v))
}

// AgentResponseNEQ applies the NEQ predicate on the "agent_response" field.
func AgentResponseNEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldAgentResponse, v))
}

// AgentResponseIn applies the In predicate on the "agent_response" field.
func AgentResponseIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldAgentResponse, vs...))
}

// AgentResponseNotIn applies the NotIn predicate on the "agent_response" field.
func AgentResponseNotIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldAgentResponse, vs...))
}

// AgentResponseGT applies the GT predicate on the "agent_response" field.
func AgentResponseGT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldAgentResponse, v))
}

// AgentResponseGTE applies the GTE predicate on the "agent_response" field.
func AgentResponseGTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldAgentResponse, v))
}

// AgentResponseLT applies the LT predicate on the "agent_response" field.
func AgentResponseLT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldAgentResponse, v))
}

// AgentResponseLTE applies the LTE predicate on the "agent_response" field.
func AgentResponseLTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldAgentResponse, v))
}

// AgentResponseContains applies the Contains predicate on the "agent_response" field.
func AgentResponseContains(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContains(FieldAgentResponse, v))
}

// AgentResponseHasPrefix applies the HasPrefix predicate on the "agent_response" field.
func AgentResponseHasPrefix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasPrefix(FieldAgentResponse, v))
}

// AgentResponseHasSuffix applies the HasSuffix predicate on the "agent_response" field.
func AgentResponseHasSuffix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasSuffix(FieldAgentResponse, v))
}

// AgentResponseIsNil applies the IsNil predicate on the "agent_response" field.
func AgentResponseIsNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIsNull(FieldAgentResponse))
}

// AgentResponseNotNil applies the NotNil predicate on the "agent_response" field.
func AgentResponseNotNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotNull(FieldAgentResponse))
}

// AgentResponseEqualFold applies the EqualFold predicate on the "agent_response" field.
func AgentResponseEqualFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEqualFold(FieldAgentResponse, v))
}

// AgentResponseContainsFold applies the ContainsFold predicate on the "agent_response" field.
func AgentResponseContainsFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContainsFold(FieldAgentResponse, v))
}

// ResultSummaryEQ applies the EQ predicate on the "result_summary" field.
func ResultSummaryEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldResultSummary, v))
}

// ResultSummaryNEQ applies the NEQ predicate on the "result_summary" field.
func ResultSummaryNEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldResultSummary, v))
}

// ResultSummaryIn applies the In predicate on the "result_summary" field.
func ResultSummaryIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldResultSummary, vs...))
}

// ResultSummaryNotIn applies the NotIn predicate on the "result_summary" field.
func ResultSummaryNotIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldResultSummary, vs...))
}

// ResultSummaryGT applies the GT predicate on the "result_summary" field.
func ResultSummaryGT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldResultSummary, v))
}

// ResultSummaryGTE applies the GTE predicate on the "result_summary" field.
func ResultSummaryGTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldResultSummary, v))
}

// ResultSummaryLT applies the LT predicate on the "result_summary" field.
func ResultSummaryLT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldResultSummary, v))
}

// ResultSummaryLTE applies the LTE predicate on the "result_summary" field.
func ResultSummaryLTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldResultSummary, v))
}

// ResultSummaryContains applies the Contains predicate on the "result_summary" field.
func ResultSummaryContains(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContains(FieldResultSummary, v))
}

// ResultSummaryHasPrefix applies the HasPrefix predicate on the "result_summary" field.
func ResultSummaryHasPrefix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasPrefix(FieldResultSummary, v))
}

// ResultSummaryHasSuffix applies the HasSuffix predicate on the "result_summary" field.
func ResultSummaryHasSuffix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasSuffix(FieldResultSummary, v))
}

// ResultSummaryIsNil applies the IsNil predicate on the "result_summary" field.
func ResultSummaryIsNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIsNull(FieldResultSummary))
}

// ResultSummaryNotNil applies the NotNil predicate on the "result_summary" field.
func ResultSummaryNotNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotNull(FieldResultSummary))
}

// ResultSummaryEqualFold applies the EqualFold predicate on the "result_summary" field.
func ResultSummaryEqualFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEqualFold(FieldResultSummary, v))
}

// ResultSummaryContainsFold applies the ContainsFold predicate on the "result_summary" field.
func ResultSummaryContainsFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContainsFold(FieldResultSummary, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldContainsFold(FieldLastError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldCreatedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotNull(FieldFinishedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.IngestionJob {
	return predicate.IngestionJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestionJob) predicate.IngestionJob {
	return predicate.IngestionJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestionJob) predicate.IngestionJob {
	return predicate.IngestionJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestionJob) predicate.IngestionJob {
	return predicate.IngestionJob(sql.NotPredicates(p))
}
