// Code generated by ent, DO NOT EDIT.

package parsejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFileID, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFormat, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ExtractionStrategy applies equality check predicate on the "extraction_strategy" field. It's identical to ExtractionStrategyEQ.
func ExtractionStrategy(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldExtractionStrategy, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldExtractionConfidence, v))
}

// SectionConfidence applies equality check predicate on the "section_confidence" field. It's identical to SectionConfidenceEQ.
func SectionConfidence(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldSectionConfidence, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldNeedsReview, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldRawText, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldFileID, vs...))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldFormat, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusIsNil applies the IsNil predicate on the "status" field.
func StatusIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldStatus))
}

// StatusNotNil applies the NotNil predicate on the "status" field.
func StatusNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldStatus))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ExtractionStrategyEQ applies the EQ predicate on the "extraction_strategy" field.
func ExtractionStrategyEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldExtractionStrategy, v))
}

// ExtractionStrategyNEQ applies the NEQ predicate on the "extraction_strategy" field.
func ExtractionStrategyNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldExtractionStrategy, v))
}

// ExtractionStrategyIn applies the In predicate on the "extraction_strategy" field.
func ExtractionStrategyIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldExtractionStrategy, vs...))
}

// ExtractionStrategyNotIn applies the NotIn predicate on the "extraction_strategy" field.
func ExtractionStrategyNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldExtractionStrategy, vs...))
}

// ExtractionStrategyGT applies the GT predicate on the "extraction_strategy" field.
func ExtractionStrategyGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldExtractionStrategy, v))
}

// ExtractionStrategyGTE applies the GTE predicate on the "extraction_strategy" field.
func ExtractionStrategyGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldExtractionStrategy, v))
}

// ExtractionStrategyLT applies the LT predicate on the "extraction_strategy" field.
func ExtractionStrategyLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldExtractionStrategy, v))
}

// ExtractionStrategyLTE applies the LTE predicate on the "extraction_strategy" field.
func ExtractionStrategyLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldExtractionStrategy, v))
}

// ExtractionStrategyContains applies the Contains predicate on the "extraction_strategy" field.
func ExtractionStrategyContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldExtractionStrategy, v))
}

// ExtractionStrategyHasPrefix applies the HasPrefix predicate on the "extraction_strategy" field.
func ExtractionStrategyHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldExtractionStrategy, v))
}

// ExtractionStrategyHasSuffix applies the HasSuffix predicate on the "extraction_strategy" field.
func ExtractionStrategyHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldExtractionStrategy, v))
}

// ExtractionStrategyIsNil applies the IsNil predicate on the "extraction_strategy" field.
func ExtractionStrategyIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldExtractionStrategy))
}

// ExtractionStrategyNotNil applies the NotNil predicate on the "extraction_strategy" field.
func ExtractionStrategyNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldExtractionStrategy))
}

// ExtractionStrategyEqualFold applies the EqualFold predicate on the "extraction_strategy" field.
func ExtractionStrategyEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldExtractionStrategy, v))
}

// ExtractionStrategyContainsFold applies the ContainsFold predicate on the "extraction_strategy" field.
func ExtractionStrategyContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldExtractionStrategy, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIsNil applies the IsNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldExtractionConfidence))
}

// ExtractionConfidenceNotNil applies the NotNil predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldExtractionConfidence))
}

// SectionConfidenceEQ applies the EQ predicate on the "section_confidence" field.
func SectionConfidenceEQ(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldSectionConfidence, v))
}

// SectionConfidenceNEQ applies the NEQ predicate on the "section_confidence" field.
func SectionConfidenceNEQ(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldSectionConfidence, v))
}

// SectionConfidenceIn applies the In predicate on the "section_confidence" field.
func SectionConfidenceIn(vs ...float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldSectionConfidence, vs...))
}

// SectionConfidenceNotIn applies the NotIn predicate on the "section_confidence" field.
func SectionConfidenceNotIn(vs ...float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldSectionConfidence, vs...))
}

// SectionConfidenceGT applies the GT predicate on the "section_confidence" field.
func SectionConfidenceGT(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldSectionConfidence, v))
}

// SectionConfidenceGTE applies the GTE predicate on the "section_confidence" field.
func SectionConfidenceGTE(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldSectionConfidence, v))
}

// SectionConfidenceLT applies the LT predicate on the "section_confidence" field.
func SectionConfidenceLT(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldSectionConfidence, v))
}

// SectionConfidenceLTE applies the LTE predicate on the "section_confidence" field.
func SectionConfidenceLTE(v float64) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldSectionConfidence, v))
}

// SectionConfidenceIsNil applies the IsNil predicate on the "section_confidence" field.
func SectionConfidenceIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldSectionConfidence))
}

// SectionConfidenceNotNil applies the NotNil predicate on the "section_confidence" field.
func SectionConfidenceNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldSectionConfidence))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldNeedsReview, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ParseJob {
	return predicate.ParseJob(sql.FieldContainsFold(FieldRawText, v))
}

// ParsedJSONIsNil applies the IsNil predicate on the "parsed_json" field.
func ParsedJSONIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldParsedJSON))
}

// ParsedJSONNotNil applies the NotNil predicate on the "parsed_json" field.
func ParsedJSONNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldParsedJSON))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.ParseJob {
	return predicate.ParseJob(sql.FieldNotNull(FieldWarnings))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.ResumeFile) predicate.ParseJob {
	return predicate.ParseJob(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParseJob) predicate.ParseJob {
	return predicate.ParseJob(sql.NotPredicates(p))
}
