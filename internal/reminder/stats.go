package reminder

import (
	"math"
	"time"

	"khisha/internal/models"
)

// ComputeStats derives the reminder metrics snapshot for one user's full
// reminder set at the given instant. It is a pure read: recomputing with
// the same inputs yields the same result.
//
// The success rate treats "expected completions" as one per active
// reminder per day over the trailing 7 days. It is a coarse adherence
// proxy, not a per-reminder streak.
func ComputeStats(reminders []models.Reminder, now time.Time) models.ReminderStats {
	stats := models.ReminderStats{Total: len(reminders)}

	windowStart := now.AddDate(0, 0, -7)
	recentCompletions := 0

	for _, r := range reminders {
		if r.IsActive {
			stats.Active++
			// exact equality counts as overdue
			if r.NextTrigger != nil && !r.NextTrigger.After(now) {
				stats.Overdue++
			}
		}
		if r.LastTriggered != nil {
			if sameDay(*r.LastTriggered, now) {
				stats.CompletedToday++
			}
			if !r.LastTriggered.Before(windowStart) {
				recentCompletions++
			}
		}
	}

	if stats.Active > 0 {
		rate := int(math.Round(float64(recentCompletions) / (float64(stats.Active) * 7) * 100))
		if rate > 100 {
			rate = 100
		}
		stats.SuccessRate = rate
	}

	return stats
}

// sameDay reports whether two instants fall on the same calendar date
// in b's location
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
