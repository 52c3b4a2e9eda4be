// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/scout-research/scout/ent/globalsetting"
	"github.com/scout-research/scout/ent/researchtask"
	"github.com/scout-research/scout/ent/schema"
	"github.com/scout-research/scout/ent/scopeclassification"
	"github.com/scout-research/scout/ent/strategyrecord"
	"github.com/scout-research/scout/ent/workflowcheckpoint"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	globalsettingFields := schema.GlobalSetting{}.Fields()
	_ = globalsettingFields
	// globalsettingDescKey is the schema descriptor for key field.
	globalsettingDescKey := globalsettingFields[0].Descriptor()
	// globalsetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	globalsetting.KeyValidator = globalsettingDescKey.Validators[0].(func(string) error)
	// globalsettingDescUpdatedAt is the schema descriptor for updated_at field.
	globalsettingDescUpdatedAt := globalsettingFields[2].Descriptor()
	// globalsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	globalsetting.DefaultUpdatedAt = globalsettingDescUpdatedAt.Default.(func() time.Time)
	// globalsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	globalsetting.UpdateDefaultUpdatedAt = globalsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	researchtaskFields := schema.ResearchTask{}.Fields()
	_ = researchtaskFields
	// researchtaskDescEmail is the schema descriptor for email field.
	researchtaskDescEmail := researchtaskFields[1].Descriptor()
	// researchtask.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	researchtask.EmailValidator = researchtaskDescEmail.Validators[0].(func(string) error)
	// researchtaskDescResearchTopic is the schema descriptor for research_topic field.
	researchtaskDescResearchTopic := researchtaskFields[2].Descriptor()
	// researchtask.ResearchTopicValidator is a validator for the "research_topic" field. It is called by the builders before save.
	researchtask.ResearchTopicValidator = researchtaskDescResearchTopic.Validators[0].(func(string) error)
	// researchtaskDescScheduleTime is the schema descriptor for schedule_time field.
	researchtaskDescScheduleTime := researchtaskFields[4].Descriptor()
	// researchtask.DefaultScheduleTime holds the default value on creation for the schedule_time field.
	researchtask.DefaultScheduleTime = researchtaskDescScheduleTime.Default.(string)
	// researchtaskDescIsActive is the schema descriptor for is_active field.
	researchtaskDescIsActive := researchtaskFields[5].Descriptor()
	// researchtask.DefaultIsActive holds the default value on creation for the is_active field.
	researchtask.DefaultIsActive = researchtaskDescIsActive.Default.(bool)
	// researchtaskDescCreatedAt is the schema descriptor for created_at field.
	researchtaskDescCreatedAt := researchtaskFields[6].Descriptor()
	// researchtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	researchtask.DefaultCreatedAt = researchtaskDescCreatedAt.Default.(func() time.Time)
	scopeclassificationFields := schema.ScopeClassification{}.Fields()
	_ = scopeclassificationFields
	// scopeclassificationDescCreatedAt is the schema descriptor for created_at field.
	scopeclassificationDescCreatedAt := scopeclassificationFields[2].Descriptor()
	// scopeclassification.DefaultCreatedAt holds the default value on creation for the created_at field.
	scopeclassification.DefaultCreatedAt = scopeclassificationDescCreatedAt.Default.(func() time.Time)
	strategyrecordFields := schema.StrategyRecord{}.Fields()
	_ = strategyrecordFields
	// strategyrecordDescSlug is the schema descriptor for slug field.
	strategyrecordDescSlug := strategyrecordFields[0].Descriptor()
	// strategyrecord.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	strategyrecord.SlugValidator = strategyrecordDescSlug.Validators[0].(func(string) error)
	// strategyrecordDescPriority is the schema descriptor for priority field.
	strategyrecordDescPriority := strategyrecordFields[2].Descriptor()
	// strategyrecord.DefaultPriority holds the default value on creation for the priority field.
	strategyrecord.DefaultPriority = strategyrecordDescPriority.Default.(int)
	// strategyrecordDescIsActive is the schema descriptor for is_active field.
	strategyrecordDescIsActive := strategyrecordFields[3].Descriptor()
	// strategyrecord.DefaultIsActive holds the default value on creation for the is_active field.
	strategyrecord.DefaultIsActive = strategyrecordDescIsActive.Default.(bool)
	// strategyrecordDescCreatedAt is the schema descriptor for created_at field.
	strategyrecordDescCreatedAt := strategyrecordFields[4].Descriptor()
	// strategyrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	strategyrecord.DefaultCreatedAt = strategyrecordDescCreatedAt.Default.(func() time.Time)
	// strategyrecordDescUpdatedAt is the schema descriptor for updated_at field.
	strategyrecordDescUpdatedAt := strategyrecordFields[5].Descriptor()
	// strategyrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	strategyrecord.DefaultUpdatedAt = strategyrecordDescUpdatedAt.Default.(func() time.Time)
	// strategyrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	strategyrecord.UpdateDefaultUpdatedAt = strategyrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowcheckpointFields := schema.WorkflowCheckpoint{}.Fields()
	_ = workflowcheckpointFields
	// workflowcheckpointDescThreadID is the schema descriptor for thread_id field.
	workflowcheckpointDescThreadID := workflowcheckpointFields[0].Descriptor()
	// workflowcheckpoint.ThreadIDValidator is a validator for the "thread_id" field. It is called by the builders before save.
	workflowcheckpoint.ThreadIDValidator = workflowcheckpointDescThreadID.Validators[0].(func(string) error)
	// workflowcheckpointDescPhase is the schema descriptor for phase field.
	workflowcheckpointDescPhase := workflowcheckpointFields[1].Descriptor()
	// workflowcheckpoint.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	workflowcheckpoint.PhaseValidator = workflowcheckpointDescPhase.Validators[0].(func(string) error)
	// workflowcheckpointDescCreatedAt is the schema descriptor for created_at field.
	workflowcheckpointDescCreatedAt := workflowcheckpointFields[3].Descriptor()
	// workflowcheckpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowcheckpoint.DefaultCreatedAt = workflowcheckpointDescCreatedAt.Default.(func() time.Time)
}
