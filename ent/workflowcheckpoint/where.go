// Code generated by ent, DO NOT EDIT.

package workflowcheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/scout-research/scout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldLTE(FieldID, id))
}

// ThreadID applies equality check predicate on the "thread_id" field. It's identical to ThreadIDEQ.
func ThreadID(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEQ(FieldThreadID, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEQ(FieldPhase, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// ThreadIDEQ applies the EQ predicate on the "thread_id" field.
func ThreadIDEQ(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEQ(FieldThreadID, v))
}

// ThreadIDNEQ applies the NEQ predicate on the "thread_id" field.
func ThreadIDNEQ(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldNEQ(FieldThreadID, v))
}

// ThreadIDIn applies the In predicate on the "thread_id" field.
func ThreadIDIn(vs ...string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldIn(FieldThreadID, vs...))
}

// ThreadIDNotIn applies the NotIn predicate on the "thread_id" field.
func ThreadIDNotIn(vs ...string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldNotIn(FieldThreadID, vs...))
}

// ThreadIDGT applies the GT predicate on the "thread_id" field.
func ThreadIDGT(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldGT(FieldThreadID, v))
}

// ThreadIDGTE applies the GTE predicate on the "thread_id" field.
func ThreadIDGTE(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldGTE(FieldThreadID, v))
}

// ThreadIDLT applies the LT predicate on the "thread_id" field.
func ThreadIDLT(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldLT(FieldThreadID, v))
}

// ThreadIDLTE applies the LTE predicate on the "thread_id" field.
func ThreadIDLTE(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldLTE(FieldThreadID, v))
}

// ThreadIDContains applies the Contains predicate on the "thread_id" field.
func ThreadIDContains(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldContains(FieldThreadID, v))
}

// ThreadIDHasPrefix applies the HasPrefix predicate on the "thread_id" field.
func ThreadIDHasPrefix(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldHasPrefix(FieldThreadID, v))
}

// ThreadIDHasSuffix applies the HasSuffix predicate on the "thread_id" field.
func ThreadIDHasSuffix(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldHasSuffix(FieldThreadID, v))
}

// ThreadIDEqualFold applies the EqualFold predicate on the "thread_id" field.
func ThreadIDEqualFold(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEqualFold(FieldThreadID, v))
}

// ThreadIDContainsFold applies the ContainsFold predicate on the "thread_id" field.
func ThreadIDContainsFold(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldContainsFold(FieldThreadID, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldContainsFold(FieldPhase, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowCheckpoint) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowCheckpoint) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowCheckpoint) predicate.WorkflowCheckpoint {
	return predicate.WorkflowCheckpoint(sql.NotPredicates(p))
}
