// Code generated by ent, DO NOT EDIT.

package researchtask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the researchtask type in the database.
	Label = "research_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldResearchTopic holds the string denoting the research_topic field in the database.
	FieldResearchTopic = "research_topic"
	// FieldFrequency holds the string denoting the frequency field in the database.
	FieldFrequency = "frequency"
	// FieldScheduleTime holds the string denoting the schedule_time field in the database.
	FieldScheduleTime = "schedule_time"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// Table holds the table name of the researchtask in the database.
	Table = "research_tasks"
)

// Columns holds all SQL columns for researchtask fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldResearchTopic,
	FieldFrequency,
	FieldScheduleTime,
	FieldIsActive,
	FieldCreatedAt,
	FieldLastRunAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// ResearchTopicValidator is a validator for the "research_topic" field. It is called by the builders before save.
	ResearchTopicValidator func(string) error
	// DefaultScheduleTime holds the default value on creation for the "schedule_time" field.
	DefaultScheduleTime string
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Frequency defines the type for the "frequency" enum field.
type Frequency string

// Frequency values.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) String() string {
	return string(f)
}

// FrequencyValidator is a validator for the "frequency" field enum values. It is called by the builders before save.
func FrequencyValidator(f Frequency) error {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return nil
	default:
		return fmt.Errorf("researchtask: invalid enum value for frequency field: %q", f)
	}
}

// OrderOption defines the ordering options for the ResearchTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByResearchTopic orders the results by the research_topic field.
func ByResearchTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchTopic, opts...).ToFunc()
}

// ByFrequency orders the results by the frequency field.
func ByFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequency, opts...).ToFunc()
}

// ByScheduleTime orders the results by the schedule_time field.
func ByScheduleTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleTime, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}
