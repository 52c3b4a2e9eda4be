// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scout-research/scout/ent/researchtask"
)

// ResearchTask is the model entity for the ResearchTask schema.
type ResearchTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// ResearchTopic holds the value of the "research_topic" field.
	ResearchTopic string `json:"research_topic,omitempty"`
	// Frequency holds the value of the "frequency" field.
	Frequency researchtask.Frequency `json:"frequency,omitempty"`
	// HH:MM, interpreted by the external scheduler
	ScheduleTime string `json:"schedule_time,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Set only after successful webhook delivery
	LastRunAt    *time.Time `json:"last_run_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchtask.FieldIsActive:
			values[i] = new(sql.NullBool)
		case researchtask.FieldID, researchtask.FieldEmail, researchtask.FieldResearchTopic, researchtask.FieldFrequency, researchtask.FieldScheduleTime:
			values[i] = new(sql.NullString)
		case researchtask.FieldCreatedAt, researchtask.FieldLastRunAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchTask fields.
func (_m *ResearchTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchtask.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case researchtask.FieldResearchTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field research_topic", values[i])
			} else if value.Valid {
				_m.ResearchTopic = value.String
			}
		case researchtask.FieldFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = researchtask.Frequency(value.String)
			}
		case researchtask.FieldScheduleTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_time", values[i])
			} else if value.Valid {
				_m.ScheduleTime = value.String
			}
		case researchtask.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case researchtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchtask.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = new(time.Time)
				*_m.LastRunAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchTask.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResearchTask.
// Note that you need to call ResearchTask.Unwrap() before calling this method if this ResearchTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchTask) Update() *ResearchTaskUpdateOne {
	return NewResearchTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchTask) Unwrap() *ResearchTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchTask) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("research_topic=")
	builder.WriteString(_m.ResearchTopic)
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Frequency))
	builder.WriteString(", ")
	builder.WriteString("schedule_time=")
	builder.WriteString(_m.ScheduleTime)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastRunAt; v != nil {
		builder.WriteString("last_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResearchTasks is a parsable slice of ResearchTask.
type ResearchTasks []*ResearchTask
