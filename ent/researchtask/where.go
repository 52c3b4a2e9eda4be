// Code generated by ent, DO NOT EDIT.

package researchtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/scout-research/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldEmail, v))
}

// ResearchTopic applies equality check predicate on the "research_topic" field. It's identical to ResearchTopicEQ.
func ResearchTopic(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldResearchTopic, v))
}

// ScheduleTime applies equality check predicate on the "schedule_time" field. It's identical to ScheduleTimeEQ.
func ScheduleTime(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldScheduleTime, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCreatedAt, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldLastRunAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldEmail, v))
}

// ResearchTopicEQ applies the EQ predicate on the "research_topic" field.
func ResearchTopicEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldResearchTopic, v))
}

// ResearchTopicNEQ applies the NEQ predicate on the "research_topic" field.
func ResearchTopicNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldResearchTopic, v))
}

// ResearchTopicIn applies the In predicate on the "research_topic" field.
func ResearchTopicIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldResearchTopic, vs...))
}

// ResearchTopicNotIn applies the NotIn predicate on the "research_topic" field.
func ResearchTopicNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldResearchTopic, vs...))
}

// ResearchTopicGT applies the GT predicate on the "research_topic" field.
func ResearchTopicGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldResearchTopic, v))
}

// ResearchTopicGTE applies the GTE predicate on the "research_topic" field.
func ResearchTopicGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldResearchTopic, v))
}

// ResearchTopicLT applies the LT predicate on the "research_topic" field.
func ResearchTopicLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldResearchTopic, v))
}

// ResearchTopicLTE applies the LTE predicate on the "research_topic" field.
func ResearchTopicLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldResearchTopic, v))
}

// ResearchTopicContains applies the Contains predicate on the "research_topic" field.
func ResearchTopicContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldResearchTopic, v))
}

// ResearchTopicHasPrefix applies the HasPrefix predicate on the "research_topic" field.
func ResearchTopicHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldResearchTopic, v))
}

// ResearchTopicHasSuffix applies the HasSuffix predicate on the "research_topic" field.
func ResearchTopicHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldResearchTopic, v))
}

// ResearchTopicEqualFold applies the EqualFold predicate on the "research_topic" field.
func ResearchTopicEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldResearchTopic, v))
}

// ResearchTopicContainsFold applies the ContainsFold predicate on the "research_topic" field.
func ResearchTopicContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldResearchTopic, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v Frequency) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v Frequency) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...Frequency) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...Frequency) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldFrequency, vs...))
}

// ScheduleTimeEQ applies the EQ predicate on the "schedule_time" field.
func ScheduleTimeEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldScheduleTime, v))
}

// ScheduleTimeNEQ applies the NEQ predicate on the "schedule_time" field.
func ScheduleTimeNEQ(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldScheduleTime, v))
}

// ScheduleTimeIn applies the In predicate on the "schedule_time" field.
func ScheduleTimeIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldScheduleTime, vs...))
}

// ScheduleTimeNotIn applies the NotIn predicate on the "schedule_time" field.
func ScheduleTimeNotIn(vs ...string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldScheduleTime, vs...))
}

// ScheduleTimeGT applies the GT predicate on the "schedule_time" field.
func ScheduleTimeGT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldScheduleTime, v))
}

// ScheduleTimeGTE applies the GTE predicate on the "schedule_time" field.
func ScheduleTimeGTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldScheduleTime, v))
}

// ScheduleTimeLT applies the LT predicate on the "schedule_time" field.
func ScheduleTimeLT(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldScheduleTime, v))
}

// ScheduleTimeLTE applies the LTE predicate on the "schedule_time" field.
func ScheduleTimeLTE(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldScheduleTime, v))
}

// ScheduleTimeContains applies the Contains predicate on the "schedule_time" field.
func ScheduleTimeContains(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContains(FieldScheduleTime, v))
}

// ScheduleTimeHasPrefix applies the HasPrefix predicate on the "schedule_time" field.
func ScheduleTimeHasPrefix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasPrefix(FieldScheduleTime, v))
}

// ScheduleTimeHasSuffix applies the HasSuffix predicate on the "schedule_time" field.
func ScheduleTimeHasSuffix(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldHasSuffix(FieldScheduleTime, v))
}

// ScheduleTimeEqualFold applies the EqualFold predicate on the "schedule_time" field.
func ScheduleTimeEqualFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEqualFold(FieldScheduleTime, v))
}

// ScheduleTimeContainsFold applies the ContainsFold predicate on the "schedule_time" field.
func ScheduleTimeContainsFold(v string) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldContainsFold(FieldScheduleTime, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldCreatedAt, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldLTE(FieldLastRunAt, v))
}

// LastRunAtIsNil applies the IsNil predicate on the "last_run_at" field.
func LastRunAtIsNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldIsNull(FieldLastRunAt))
}

// LastRunAtNotNil applies the NotNil predicate on the "last_run_at" field.
func LastRunAtNotNil() predicate.ResearchTask {
	return predicate.ResearchTask(sql.FieldNotNull(FieldLastRunAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResearchTask) predicate.ResearchTask {
	return predicate.ResearchTask(sql.NotPredicates(p))
}
