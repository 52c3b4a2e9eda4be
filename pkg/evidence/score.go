package evidence

import (
	"strings"
	"time"
)

// ScoringWeights are the tunable components of the evidence score.
// Weights are injectable so alternative tunings can be compared; the
// defaults preserve the monotonicity invariant (a more recent, on-list
// source never scores below a less recent, off-list one with the same
// snippet).
type ScoringWeights struct {
	DomainBoost  float64 // added when the host is on the allow-list
	RecencyMax   float64 // maximum recency contribution, decays linearly across the window
	SnippetBonus float64 // added when a non-empty snippet is present
}

// DefaultWeights is the standard tuning.
var DefaultWeights = ScoringWeights{
	DomainBoost:  2.0,
	RecencyMax:   1.5,
	SnippetBonus: 0.5,
}

// ScoreParams carries the per-strategy scoring context.
type ScoreParams struct {
	Now          time.Time
	Window       time.Duration   // recency window derived from the strategy's time_window
	AllowDomains map[string]bool // domain-authority allow-list (hosts, no www prefix)
	Weights      ScoringWeights
}

// Score computes the evidence score: base adapter score plus domain boost,
// recency decay within the window, and snippet presence bonus.
func Score(ev Evidence, p ScoreParams) float64 {
	score := ev.Score

	if p.AllowDomains[domainOf(ev)] {
		score += p.Weights.DomainBoost
	}

	if ev.PublishedAt != nil && p.Window > 0 {
		age := p.Now.Sub(*ev.PublishedAt)
		if age < 0 {
			age = 0
		}
		if age <= p.Window {
			fraction := 1.0 - float64(age)/float64(p.Window)
			score += p.Weights.RecencyMax * fraction
		}
	}

	if ev.Snippet != "" {
		score += p.Weights.SnippetBonus
	}

	return score
}

// Rescore applies Score to every record in place.
func Rescore(items []Evidence, p ScoreParams) {
	for i := range items {
		items[i].Score = Score(items[i], p)
	}
}

func domainOf(ev Evidence) string {
	if ev.Publisher != "" && !strings.ContainsAny(ev.Publisher, " /") {
		return strings.TrimPrefix(strings.ToLower(ev.Publisher), "www.")
	}
	return hostOf(ev.URL)
}
