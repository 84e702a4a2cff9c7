package tracker

// Summary aggregates a history log.
type Summary struct {
	Days     int     `json:"days"`
	Total    float64 `json:"total"`
	Average  float64 `json:"average"`
	Best     float64 `json:"best"`
	GoalDays int     `json:"goalDays"`
}

// Summarize computes the summary of entries against goal. Days are counted
// as meeting the goal with today's goal, the log does not record older goals.
func Summarize(entries []HistoryEntry, goal int) Summary {
	var s Summary
	for _, e := range entries {
		s.Days++
		s.Total += e.Glasses
		if e.Glasses > s.Best {
			s.Best = e.Glasses
		}
		if goal > 0 && e.Glasses >= float64(goal) {
			s.GoalDays++
		}
	}
	if s.Days > 0 {
		s.Average = s.Total / float64(s.Days)
	}
	return s
}
