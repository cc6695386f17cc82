package domain

import "time"

// NoPurchases is the sentinel rendered when a stats window has no assets.
const NoPurchases = "Never"

// Stats is the dashboard summary for one asset collection.
type Stats struct {
	TotalCount        int     `json:"total_count"`
	TotalValue        float64 `json:"total_value"`
	MonthToDateCount  int     `json:"month_to_date_count"`
	Trailing7DayCount int     `json:"trailing_7_day_count"`
	MostRecent        *Asset  `json:"most_recent,omitempty"`
}

// LastPurchase renders the purchase date of the most recent asset, or the
// NoPurchases sentinel when there is none.
func (s Stats) LastPurchase() string {
	if s.MostRecent == nil {
		return NoPurchases
	}
	return s.MostRecent.DatePurchased.Format("Jan 2, 2006")
}

// Summarize computes dashboard statistics from scratch over one asset
// sequence. Every field is a pure function of assets and now.
//
// The month-to-date window starts at the first calendar day of now's month
// in now's location, not a rolling 30 days. The trailing window is rolling
// and inclusive of the now-7d boundary instant.
//
// MostRecent is simply the first element: callers pass the sequence already
// sorted descending by created_at and Summarize does not re-sort.
func Summarize(assets []Asset, now time.Time) Stats {
	stats := Stats{TotalCount: len(assets)}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	weekStart := now.AddDate(0, 0, -7)

	for _, a := range assets {
		stats.TotalValue += a.CostValue()
		if !a.CreatedAt.Before(monthStart) {
			stats.MonthToDateCount++
		}
		if !a.CreatedAt.Before(weekStart) {
			stats.Trailing7DayCount++
		}
	}

	if len(assets) > 0 {
		first := assets[0]
		stats.MostRecent = &first
	}
	return stats
}
