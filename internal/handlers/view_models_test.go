package handlers

import (
	"testing"
	"time"

	"github.com/Zumgugger/vielseitig/internal/models"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		count int
		total int
		want  float64
	}{
		{"half", 1, 2, 50},
		{"third rounds to two decimals", 1, 3, 33.33},
		{"two thirds", 2, 3, 66.67},
		{"all", 3, 3, 100},
		{"empty total", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentage(tt.count, tt.total); got != tt.want {
				t.Errorf("percentage(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
			}
		})
	}
}

func TestSessionOverviewDuration(t *testing.T) {
	started := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	finished := started.Add(95 * time.Second)

	views := newSessionOverviewViews([]models.SessionOverview{
		{
			AnalyticsSession: models.AnalyticsSession{ID: "a", StartedAt: started, FinishedAt: &finished},
		},
		{
			AnalyticsSession: models.AnalyticsSession{ID: "b", StartedAt: started},
		},
	})

	if len(views) != 2 {
		t.Fatalf("len(views) = %d, want 2", len(views))
	}
	if views[0].DurationSeconds == nil || *views[0].DurationSeconds != 95 {
		t.Errorf("DurationSeconds = %v, want 95", views[0].DurationSeconds)
	}
	// Unfinished sessions have no duration
	if views[1].DurationSeconds != nil {
		t.Errorf("DurationSeconds = %v, want nil for an unfinished session", views[1].DurationSeconds)
	}
}

func TestViewBuildersReturnEmptySlices(t *testing.T) {
	// JSON responses carry [] rather than null for empty collections
	if newAdjectiveViews(nil) == nil {
		t.Error("newAdjectiveViews(nil) = nil, want empty slice")
	}
	if newListSummaryViews(nil) == nil {
		t.Error("newListSummaryViews(nil) = nil, want empty slice")
	}
	if newSessionOverviewViews(nil) == nil {
		t.Error("newSessionOverviewViews(nil) = nil, want empty slice")
	}
}
