// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GlobalSettingsColumns holds the columns for the "global_settings" table.
	GlobalSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GlobalSettingsTable holds the schema information for the "global_settings" table.
	GlobalSettingsTable = &schema.Table{
		Name:       "global_settings",
		Columns:    GlobalSettingsColumns,
		PrimaryKey: []*schema.Column{GlobalSettingsColumns[0]},
	}
	// ResearchTasksColumns holds the columns for the "research_tasks" table.
	ResearchTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "research_topic", Type: field.TypeString, Size: 2147483647},
		{Name: "frequency", Type: field.TypeEnum, Enums: []string{"daily", "weekly", "monthly"}},
		{Name: "schedule_time", Type: field.TypeString, Default: "08:00"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_run_at", Type: field.TypeTime, Nullable: true},
	}
	// ResearchTasksTable holds the schema information for the "research_tasks" table.
	ResearchTasksTable = &schema.Table{
		Name:       "research_tasks",
		Columns:    ResearchTasksColumns,
		PrimaryKey: []*schema.Column{ResearchTasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "researchtask_email",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[1]},
			},
			{
				Name:    "researchtask_is_active_frequency",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[5], ResearchTasksColumns[3]},
			},
		},
	}
	// ScopeClassificationsColumns holds the columns for the "scope_classifications" table.
	ScopeClassificationsColumns = []*schema.Column{
		{Name: "request_hash", Type: field.TypeString, Unique: true},
		{Name: "result", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ScopeClassificationsTable holds the schema information for the "scope_classifications" table.
	ScopeClassificationsTable = &schema.Table{
		Name:       "scope_classifications",
		Columns:    ScopeClassificationsColumns,
		PrimaryKey: []*schema.Column{ScopeClassificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scopeclassification_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScopeClassificationsColumns[2]},
			},
		},
	}
	// StrategyRecordsColumns holds the columns for the "strategy_records" table.
	StrategyRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "yaml_content", Type: field.TypeJSON},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StrategyRecordsTable holds the schema information for the "strategy_records" table.
	StrategyRecordsTable = &schema.Table{
		Name:       "strategy_records",
		Columns:    StrategyRecordsColumns,
		PrimaryKey: []*schema.Column{StrategyRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "strategyrecord_is_active",
				Unique:  false,
				Columns: []*schema.Column{StrategyRecordsColumns[4]},
			},
		},
	}
	// WorkflowCheckpointsColumns holds the columns for the "workflow_checkpoints" table.
	WorkflowCheckpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "thread_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkflowCheckpointsTable holds the schema information for the "workflow_checkpoints" table.
	WorkflowCheckpointsTable = &schema.Table{
		Name:       "workflow_checkpoints",
		Columns:    WorkflowCheckpointsColumns,
		PrimaryKey: []*schema.Column{WorkflowCheckpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowcheckpoint_thread_id_phase",
				Unique:  true,
				Columns: []*schema.Column{WorkflowCheckpointsColumns[1], WorkflowCheckpointsColumns[2]},
			},
			{
				Name:    "workflowcheckpoint_thread_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowCheckpointsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GlobalSettingsTable,
		ResearchTasksTable,
		ScopeClassificationsTable,
		StrategyRecordsTable,
		WorkflowCheckpointsTable,
	}
)

func init() {
}
