// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GlobalSetting is the predicate function for globalsetting builders.
type GlobalSetting func(*sql.Selector)

// ResearchTask is the predicate function for researchtask builders.
type ResearchTask func(*sql.Selector)

// ScopeClassification is the predicate function for scopeclassification builders.
type ScopeClassification func(*sql.Selector)

// StrategyRecord is the predicate function for strategyrecord builders.
type StrategyRecord func(*sql.Selector)

// WorkflowCheckpoint is the predicate function for workflowcheckpoint builders.
type WorkflowCheckpoint func(*sql.Selector)
