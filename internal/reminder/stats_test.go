package reminder

import (
	"testing"
	"time"

	"khisha/internal/models"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func activeReminder(next *time.Time, last *time.Time) models.Reminder {
	return models.Reminder{
		Title:         "r",
		Time:          "08:00",
		Frequency:     models.Daily,
		IsActive:      true,
		NextTrigger:   next,
		LastTriggered: last,
	}
}

func TestComputeStatsEmptySet(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(nil, date(2024, time.January, 15, 9, 0, 0))
	assert.Equal(t, models.ReminderStats{}, stats)
}

func TestComputeStatsSuccessRateExample(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)
	recent := now.AddDate(0, 0, -2)

	// 2 active reminders, 5 completions inside the trailing 7 days;
	// round(5 / 14 * 100) = 36
	reminders := []models.Reminder{
		activeReminder(timePtr(now.Add(time.Hour)), timePtr(recent)),
		activeReminder(timePtr(now.Add(time.Hour)), timePtr(recent)),
	}
	for i := 0; i < 3; i++ {
		r := activeReminder(nil, timePtr(recent))
		r.IsActive = false
		reminders = append(reminders, r)
	}

	stats := ComputeStats(reminders, now)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 36, stats.SuccessRate)
}

func TestComputeStatsNoActiveMeansZeroRate(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)
	r := activeReminder(nil, timePtr(now.Add(-time.Hour)))
	r.IsActive = false

	stats := ComputeStats([]models.Reminder{r, r, r}, now)
	assert.Equal(t, 0, stats.Active)
	assert.Equal(t, 0, stats.SuccessRate)
}

func TestComputeStatsRateClampsAt100(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)
	recent := timePtr(now.Add(-time.Hour))

	// 1 active but 10 recently-completed records: 10/7 would exceed 100%
	reminders := []models.Reminder{activeReminder(timePtr(now.Add(time.Hour)), recent)}
	for i := 0; i < 9; i++ {
		r := activeReminder(nil, recent)
		r.IsActive = false
		reminders = append(reminders, r)
	}

	stats := ComputeStats(reminders, now)
	assert.Equal(t, 100, stats.SuccessRate)
}

func TestComputeStatsOverdueBoundary(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)

	reminders := []models.Reminder{
		activeReminder(timePtr(now), nil),                   // exactly due counts
		activeReminder(timePtr(now.Add(-time.Minute)), nil), // past due counts
		activeReminder(timePtr(now.Add(time.Minute)), nil),  // future does not
	}
	inactive := activeReminder(timePtr(now.Add(-time.Hour)), nil)
	inactive.IsActive = false
	reminders = append(reminders, inactive)

	stats := ComputeStats(reminders, now)
	assert.Equal(t, 2, stats.Overdue)
}

func TestComputeStatsCompletedToday(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)

	today := activeReminder(nil, timePtr(date(2024, time.January, 15, 0, 30, 0)))
	yesterday := activeReminder(nil, timePtr(date(2024, time.January, 14, 23, 59, 0)))
	pausedToday := activeReminder(nil, timePtr(date(2024, time.January, 15, 8, 0, 0)))
	pausedToday.IsActive = false

	stats := ComputeStats([]models.Reminder{today, yesterday, pausedToday}, now)
	assert.Equal(t, 2, stats.CompletedToday)
}

func TestComputeStatsWindowBoundary(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)

	// exactly 7 days ago is inside the window, a second earlier is not
	onBoundary := activeReminder(timePtr(now.Add(time.Hour)), timePtr(now.AddDate(0, 0, -7)))
	justOutside := activeReminder(timePtr(now.Add(time.Hour)), timePtr(now.AddDate(0, 0, -7).Add(-time.Second)))

	stats := ComputeStats([]models.Reminder{onBoundary, justOutside}, now)
	// round(1 / (2*7) * 100) = 7
	assert.Equal(t, 7, stats.SuccessRate)
}

func TestComputeStatsIsIdempotent(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)
	reminders := []models.Reminder{
		activeReminder(timePtr(now), timePtr(now.Add(-2*time.Hour))),
		activeReminder(timePtr(now.Add(time.Hour)), nil),
	}

	first := ComputeStats(reminders, now)
	second := ComputeStats(reminders, now)
	assert.Equal(t, first, second)
}
