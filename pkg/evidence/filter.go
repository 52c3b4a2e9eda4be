package evidence

import "sort"

// Filter applies the per-strategy evidence budget. Records are ordered by
// score descending, then recency descending (missing date last), then
// explicit sources before sentinel records; the sort is stable so equal
// records keep arrival order. Protected URLs (sentinel records whose text
// backs a report section) survive trimming regardless of rank.
func Filter(items []Evidence, maxResults int, protected map[string]bool) []Evidence {
	sorted := make([]Evidence, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		switch {
		case a.PublishedAt != nil && b.PublishedAt == nil:
			return true
		case a.PublishedAt == nil && b.PublishedAt != nil:
			return false
		case a.PublishedAt != nil && b.PublishedAt != nil && !a.PublishedAt.Equal(*b.PublishedAt):
			return a.PublishedAt.After(*b.PublishedAt)
		}
		return !IsSentinelTool(a.Tool) && IsSentinelTool(b.Tool)
	})

	if maxResults <= 0 || len(sorted) <= maxResults {
		return sorted
	}

	kept := sorted[:maxResults:maxResults]
	if len(protected) == 0 {
		return kept
	}

	// Re-attach protected records that fell below the cut.
	inKept := make(map[string]bool, len(kept))
	for _, ev := range kept {
		inKept[ev.URL] = true
	}
	for _, ev := range sorted[maxResults:] {
		if IsSentinelTool(ev.Tool) && protected[ev.URL] && !inKept[ev.URL] {
			kept = append(kept, ev)
		}
	}
	return kept
}
