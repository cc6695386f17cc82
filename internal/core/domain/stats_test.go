package domain

import (
	"testing"
	"time"
)

func cost(v float64) *float64 { return &v }

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil, time.Now())
	if stats.TotalCount != 0 || stats.TotalValue != 0 {
		t.Fatalf("empty sequence should yield zero stats: %+v", stats)
	}
	if stats.MostRecent != nil {
		t.Fatalf("empty sequence should have no most recent asset")
	}
	if stats.LastPurchase() != NoPurchases {
		t.Fatalf("expected %q sentinel, got %q", NoPurchases, stats.LastPurchase())
	}
}

func TestSummarize_TotalValueTreatsMissingCostAsZero(t *testing.T) {
	now := time.Now()
	assets := []Asset{
		{Cost: cost(100), CreatedAt: now},
		{Cost: nil, CreatedAt: now},
		{Cost: cost(50), CreatedAt: now},
	}
	stats := Summarize(assets, now)
	if stats.TotalValue != 150 {
		t.Fatalf("expected total value 150, got %v", stats.TotalValue)
	}
	if stats.TotalCount != 3 {
		t.Fatalf("expected count 3, got %d", stats.TotalCount)
	}
}

func TestSummarize_MonthToDateUsesCalendarBoundary(t *testing.T) {
	// March 3rd: the last day of February is within 31 raw days but outside
	// the calendar month.
	now := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	assets := []Asset{
		{CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)},
	}
	stats := Summarize(assets, now)
	if stats.MonthToDateCount != 1 {
		t.Fatalf("expected month-to-date 1, got %d", stats.MonthToDateCount)
	}
}

func TestSummarize_Trailing7DaysInclusiveBoundary(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	assets := []Asset{
		{CreatedAt: now.AddDate(0, 0, -7)},                   // exactly 7d: counts
		{CreatedAt: now.AddDate(0, 0, -7).Add(-time.Second)}, // 7d + 1s: does not
		{CreatedAt: now.Add(-time.Hour)},
	}
	stats := Summarize(assets, now)
	if stats.Trailing7DayCount != 2 {
		t.Fatalf("expected trailing-7-day 2, got %d", stats.Trailing7DayCount)
	}
}

func TestSummarize_MostRecentTakesFirstElement(t *testing.T) {
	now := time.Now()
	assets := []Asset{
		{Name: "newest", DatePurchased: time.Date(2025, time.May, 4, 0, 0, 0, 0, time.UTC), CreatedAt: now},
		{Name: "older", CreatedAt: now.Add(-time.Hour)},
	}
	stats := Summarize(assets, now)
	if stats.MostRecent == nil || stats.MostRecent.Name != "newest" {
		t.Fatalf("expected first element as most recent, got %+v", stats.MostRecent)
	}
	if stats.LastPurchase() != "May 4, 2025" {
		t.Fatalf("unexpected last purchase: %q", stats.LastPurchase())
	}
}
