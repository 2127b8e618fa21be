package reminder

import (
	"sort"
	"testing"
	"time"

	"khisha/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store so the lifecycle tests run without a
// database. It mirrors the owner scoping and ordering of GormStore.
type fakeStore struct {
	seq       uint
	reminders map[uint]models.Reminder
}

func newFakeStore() *fakeStore {
	return &fakeStore{reminders: make(map[uint]models.Reminder)}
}

func (s *fakeStore) ListByOwner(userID uint) ([]models.Reminder, error) {
	var out []models.Reminder
	for _, r := range s.reminders {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *fakeStore) FindByOwner(userID, id uint) (*models.Reminder, error) {
	r, ok := s.reminders[id]
	if !ok || r.UserID != userID {
		return nil, ErrNotFound
	}
	copied := r
	return &copied, nil
}

func (s *fakeStore) Create(r *models.Reminder) error {
	s.seq++
	r.ID = s.seq
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.reminders[r.ID] = *r
	return nil
}

func (s *fakeStore) Save(r *models.Reminder) error {
	s.reminders[r.ID] = *r
	return nil
}

func (s *fakeStore) DeleteByOwner(userID, id uint) (bool, error) {
	r, ok := s.reminders[id]
	if !ok || r.UserID != userID {
		return false, nil
	}
	delete(s.reminders, id)
	return true, nil
}

// newTestService returns a service with a frozen clock
func newTestService(now time.Time) (*Service, *fakeStore) {
	store := newFakeStore()
	svc := NewService(store)
	svc.now = func() time.Time { return now }
	return svc, store
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func freqPtr(f models.Frequency) *models.Frequency { return &f }

func TestCreateActiveReminderComputesTrigger(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 7, 0, 0)
	svc, _ := newTestService(now)

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Morning meds",
		Type:      models.MedicationReminder,
		Time:      "08:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)

	assert.True(t, created.IsActive)
	require.NotNil(t, created.NextTrigger)
	assert.True(t, created.NextTrigger.Equal(date(2024, time.January, 15, 8, 0, 0)))
	assert.Nil(t, created.LastTriggered)
	assert.Equal(t, models.MedicationReminder, created.Type)
}

func TestCreateInactiveReminderHasNoTrigger(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Stretch",
		Time:      "18:00",
		Frequency: models.Weekly,
		IsActive:  boolPtr(false),
	})
	require.NoError(t, err)

	assert.False(t, created.IsActive)
	assert.Nil(t, created.NextTrigger)
}

func TestCreateDefaultsTypeToGeneral(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Drink water",
		Time:      "10:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)
	assert.Equal(t, models.GeneralReminder, created.Type)
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	longTitle := make([]byte, 101)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	tests := []struct {
		name  string
		req   models.CreateReminderRequest
		field string
	}{
		{
			name:  "missing title",
			req:   models.CreateReminderRequest{Time: "08:00", Frequency: models.Daily},
			field: "title",
		},
		{
			name:  "title too long",
			req:   models.CreateReminderRequest{Title: string(longTitle), Time: "08:00", Frequency: models.Daily},
			field: "title",
		},
		{
			name:  "malformed time",
			req:   models.CreateReminderRequest{Title: "x", Time: "25:00", Frequency: models.Daily},
			field: "time",
		},
		{
			name:  "missing frequency",
			req:   models.CreateReminderRequest{Title: "x", Time: "08:00"},
			field: "frequency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(1, tt.req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestUpdateScheduleChangeRecomputesTrigger(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 7, 0, 0)
	svc, _ := newTestService(now)

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Walk",
		Time:      "08:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)

	updated, err := svc.Update(1, created.ID, models.UpdateReminderRequest{
		Time:      strPtr("06:00"),
		Frequency: freqPtr(models.Weekly),
	})
	require.NoError(t, err)

	// weekly advances unconditionally from the same-day candidate
	require.NotNil(t, updated.NextTrigger)
	assert.True(t, updated.NextTrigger.Equal(date(2024, time.January, 22, 6, 0, 0)))
	assert.Equal(t, models.Weekly, updated.Frequency)
	assert.Equal(t, "06:00", updated.Time)
}

func TestUpdateUnrelatedFieldKeepsTrigger(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Walk",
		Time:      "08:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)
	before := *created.NextTrigger

	updated, err := svc.Update(1, created.ID, models.UpdateReminderRequest{
		Description: strPtr("around the block"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.NextTrigger)
	assert.True(t, updated.NextTrigger.Equal(before))
	assert.Equal(t, "around the block", updated.Description)
}

func TestUpdateDeactivateClearsTrigger(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Walk",
		Time:      "08:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)

	updated, err := svc.Update(1, created.ID, models.UpdateReminderRequest{
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.Nil(t, updated.NextTrigger)

	// reactivating through update restores the trigger
	updated, err = svc.Update(1, created.ID, models.UpdateReminderRequest{
		IsActive: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	require.NotNil(t, updated.NextTrigger)
}

func TestUpdateMalformedTime(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Walk",
		Time:      "08:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)

	_, err = svc.Update(1, created.ID, models.UpdateReminderRequest{Time: strPtr("8 am")})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "time", verr.Field)
}

func TestUpdateUnknownReminder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	_, err := svc.Update(1, 42, models.UpdateReminderRequest{Title: strPtr("nope")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCrossOwnerAccessLooksLikeNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Private",
		Time:      "08:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)

	_, err = svc.Update(2, created.ID, models.UpdateReminderRequest{Title: strPtr("mine now")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Toggle(2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Complete(2, created.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(2, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleInvariant(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 7, 0, 0))

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Hydrate",
		Time:      "12:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)

	toggled, err := svc.Toggle(1, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
	assert.Nil(t, toggled.NextTrigger)

	toggled, err = svc.Toggle(1, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
	require.NotNil(t, toggled.NextTrigger)
	assert.True(t, toggled.NextTrigger.Equal(date(2024, time.January, 15, 12, 0, 0)))
}

func TestCompleteStampsAndAdvances(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)
	svc, _ := newTestService(now)

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Morning meds",
		Time:      "08:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)

	completed, err := svc.Complete(1, created.ID, "took with breakfast")
	require.NoError(t, err)

	require.NotNil(t, completed.LastTriggered)
	assert.True(t, completed.LastTriggered.Equal(now))
	require.NotNil(t, completed.NextTrigger)
	assert.True(t, completed.NextTrigger.Equal(date(2024, time.January, 16, 8, 0, 0)))
	assert.Equal(t, "took with breakfast", completed.CompletionNotes)
}

func TestRepeatedCompletionStrictlyAdvances(t *testing.T) {
	t.Parallel()

	for _, freq := range []models.Frequency{models.Daily, models.Weekly, models.Monthly} {
		now := date(2024, time.January, 15, 9, 0, 0)
		svc, _ := newTestService(now)

		created, err := svc.Create(1, models.CreateReminderRequest{
			Title:     "Routine",
			Time:      "08:00",
			Frequency: freq,
		})
		require.NoError(t, err)

		first, err := svc.Complete(1, created.ID, "")
		require.NoError(t, err)

		// clock moves past the first trigger before completing again
		svc.now = func() time.Time { return first.NextTrigger.Add(time.Hour) }
		second, err := svc.Complete(1, created.ID, "")
		require.NoError(t, err)

		assert.True(t, second.NextTrigger.After(*first.NextTrigger),
			"frequency %s: %v should be after %v", freq, second.NextTrigger, first.NextTrigger)
	}
}

func TestCompleteInactiveReminderStillAdvances(t *testing.T) {
	t.Parallel()

	now := date(2024, time.January, 15, 9, 0, 0)
	svc, _ := newTestService(now)

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Paused habit",
		Time:      "08:00",
		Frequency: models.Daily,
		IsActive:  boolPtr(false),
	})
	require.NoError(t, err)
	require.Nil(t, created.NextTrigger)

	completed, err := svc.Complete(1, created.ID, "")
	require.NoError(t, err)

	assert.False(t, completed.IsActive)
	require.NotNil(t, completed.LastTriggered)
	require.NotNil(t, completed.NextTrigger)
}

func TestDeleteRemovesReminder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(date(2024, time.January, 15, 9, 0, 0))

	created, err := svc.Create(1, models.CreateReminderRequest{
		Title:     "Old habit",
		Time:      "08:00",
		Frequency: models.Daily,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(1, created.ID))
	assert.ErrorIs(t, svc.Delete(1, created.ID), ErrNotFound)

	reminders, err := svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestListMostRecentFirst(t *testing.T) {
	t.Parallel()

	svc, store := newTestService(date(2024, time.January, 15, 9, 0, 0))

	for i, title := range []string{"first", "second", "third"} {
		created, err := svc.Create(1, models.CreateReminderRequest{
			Title:     title,
			Time:      "08:00",
			Frequency: models.Daily,
		})
		require.NoError(t, err)

		// stagger creation times so the ordering is observable
		r := store.reminders[created.ID]
		r.CreatedAt = date(2024, time.January, 15, 9, i, 0)
		store.reminders[created.ID] = r
	}

	reminders, err := svc.List(1)
	require.NoError(t, err)
	require.Len(t, reminders, 3)
	assert.Equal(t, "third", reminders[0].Title)
	assert.Equal(t, "first", reminders[2].Title)
}
