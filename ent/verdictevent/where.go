// Code generated by ent, DO NOT EDIT.

package verdictevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/crucible/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldSessionID, v))
}

// AssessedGrade applies equality check predicate on the "assessed_grade" field. It's identical to AssessedGradeEQ.
func AssessedGrade(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldAssessedGrade, v))
}

// Recommendation applies equality check predicate on the "recommendation" field. It's identical to RecommendationEQ.
func Recommendation(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldRecommendation, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldReasoning, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldFallback, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// AssessedGradeEQ applies the EQ predicate on the "assessed_grade" field.
func AssessedGradeEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldAssessedGrade, v))
}

// AssessedGradeNEQ applies the NEQ predicate on the "assessed_grade" field.
func AssessedGradeNEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldAssessedGrade, v))
}

// AssessedGradeIn applies the In predicate on the "assessed_grade" field.
func AssessedGradeIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldAssessedGrade, vs...))
}

// AssessedGradeNotIn applies the NotIn predicate on the "assessed_grade" field.
func AssessedGradeNotIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldAssessedGrade, vs...))
}

// AssessedGradeGT applies the GT predicate on the "assessed_grade" field.
func AssessedGradeGT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldAssessedGrade, v))
}

// AssessedGradeGTE applies the GTE predicate on the "assessed_grade" field.
func AssessedGradeGTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldAssessedGrade, v))
}

// AssessedGradeLT applies the LT predicate on the "assessed_grade" field.
func AssessedGradeLT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldAssessedGrade, v))
}

// AssessedGradeLTE applies the LTE predicate on the "assessed_grade" field.
func AssessedGradeLTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldAssessedGrade, v))
}

// AssessedGradeContains applies the Contains predicate on the "assessed_grade" field.
func AssessedGradeContains(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContains(FieldAssessedGrade, v))
}

// AssessedGradeHasPrefix applies the HasPrefix predicate on the "assessed_grade" field.
func AssessedGradeHasPrefix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasPrefix(FieldAssessedGrade, v))
}

// AssessedGradeHasSuffix applies the HasSuffix predicate on the "assessed_grade" field.
func AssessedGradeHasSuffix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasSuffix(FieldAssessedGrade, v))
}

// AssessedGradeEqualFold applies the EqualFold predicate on the "assessed_grade" field.
func AssessedGradeEqualFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEqualFold(FieldAssessedGrade, v))
}

// AssessedGradeContainsFold applies the ContainsFold predicate on the "assessed_grade" field.
func AssessedGradeContainsFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContainsFold(FieldAssessedGrade, v))
}

// RecommendationEQ applies the EQ predicate on the "recommendation" field.
func RecommendationEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldRecommendation, v))
}

// RecommendationNEQ applies the NEQ predicate on the "recommendation" field.
func RecommendationNEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldRecommendation, v))
}

// RecommendationIn applies the In predicate on the "recommendation" field.
func RecommendationIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldRecommendation, vs...))
}

// RecommendationNotIn applies the NotIn predicate on the "recommendation" field.
func RecommendationNotIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldRecommendation, vs...))
}

// RecommendationGT applies the GT predicate on the "recommendation" field.
func RecommendationGT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldRecommendation, v))
}

// RecommendationGTE applies the GTE predicate on the "recommendation" field.
func RecommendationGTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldRecommendation, v))
}

// RecommendationLT applies the LT predicate on the "recommendation" field.
func RecommendationLT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldRecommendation, v))
}

// RecommendationLTE applies the LTE predicate on the "recommendation" field.
func RecommendationLTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldRecommendation, v))
}

// RecommendationContains applies the Contains predicate on the "recommendation" field.
func RecommendationContains(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContains(FieldRecommendation, v))
}

// RecommendationHasPrefix applies the HasPrefix predicate on the "recommendation" field.
func RecommendationHasPrefix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasPrefix(FieldRecommendation, v))
}

// RecommendationHasSuffix applies the HasSuffix predicate on the "recommendation" field.
func RecommendationHasSuffix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasSuffix(FieldRecommendation, v))
}

// RecommendationEqualFold applies the EqualFold predicate on the "recommendation" field.
func RecommendationEqualFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEqualFold(FieldRecommendation, v))
}

// RecommendationContainsFold applies the ContainsFold predicate on the "recommendation" field.
func RecommendationContainsFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContainsFold(FieldRecommendation, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldConfidence, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.FieldNEQ(FieldFallback, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerdictEvent) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerdictEvent) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerdictEvent) predicate.VerdictEvent {
	return predicate.VerdictEvent(sql.NotPredicates(p))
}
