package config

import "time"

// TimeWindow is the recency window a strategy targets.
type TimeWindow string

const (
	TimeWindowDay   TimeWindow = "day"
	TimeWindowWeek  TimeWindow = "week"
	TimeWindowMonth TimeWindow = "month"
	TimeWindowYear  TimeWindow = "year"
)

// IsValid checks if the time window is valid.
func (w TimeWindow) IsValid() bool {
	switch w {
	case TimeWindowDay, TimeWindowWeek, TimeWindowMonth, TimeWindowYear:
		return true
	default:
		return false
	}
}

// Duration returns the window length for recency scoring and QC date checks.
func (w TimeWindow) Duration() time.Duration {
	switch w {
	case TimeWindowDay:
		return 24 * time.Hour
	case TimeWindowWeek:
		return 7 * 24 * time.Hour
	case TimeWindowMonth:
		return 30 * 24 * time.Hour
	case TimeWindowYear:
		return 365 * 24 * time.Hour
	default:
		return 0
	}
}

// Depth is the requested research depth.
type Depth string

const (
	DepthBrief         Depth = "brief"
	DepthOverview      Depth = "overview"
	DepthDeep          Depth = "deep"
	DepthComprehensive Depth = "comprehensive"
)

// IsValid checks if the depth is valid.
func (d Depth) IsValid() bool {
	switch d {
	case DepthBrief, DepthOverview, DepthDeep, DepthComprehensive:
		return true
	default:
		return false
	}
}

// Frequency is a subscription task's execution cadence.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// IsValid checks if the frequency is valid.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// Phase identifies a workflow phase for LLM overrides and checkpoints.
type Phase string

const (
	PhaseScope    Phase = "scope"
	PhaseFill     Phase = "fill"
	PhaseResearch Phase = "research"
	PhaseFinalize Phase = "finalize"
	PhaseQC       Phase = "qc"
	PhaseDone     Phase = "done"
)

// IsValid checks if the phase is valid.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseScope, PhaseFill, PhaseResearch, PhaseFinalize, PhaseQC, PhaseDone:
		return true
	default:
		return false
	}
}
