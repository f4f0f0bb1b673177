package draft

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titleguide/internal/form"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "drafts.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	snap := form.SampleSnapshot()

	rec, err := s.Create(snap, 2)
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	assert.Equal(t, StatusDraft, rec.Status)

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Last Horizon", got.Title)
	assert.Equal(t, "film", got.TitleType)
	assert.Equal(t, 2, got.CurrentStep)
	require.NotNil(t, got.ReleaseYear)
	assert.Equal(t, 2026, *got.ReleaseYear)
	assert.Equal(t, snap.Core.Title, got.Form.Core.Title)
	assert.Len(t, got.Form.Mandatory.ReleaseDates, 2)
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveUpdatesSummaryColumns(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(form.EmptySnapshot(), 0)
	require.NoError(t, err)

	snap := form.SampleSnapshot()
	require.NoError(t, s.Save(rec.ID, snap, 4))

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Last Horizon", got.Title)
	assert.Equal(t, 4, got.CurrentStep)
	assert.Equal(t, 100, got.CompletionPercent)
}

func TestSubmitLocksDraft(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(form.SampleSnapshot(), 4)
	require.NoError(t, err)

	require.NoError(t, s.Submit(rec.ID))

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitted, got.Status)

	// Submitted drafts reject further saves and double submission.
	assert.ErrorIs(t, s.Save(rec.ID, form.SampleSnapshot(), 4), ErrNotFound)
	assert.ErrorIs(t, s.Submit(rec.ID), ErrNotFound)
}

func TestLoadLatestSkipsSubmitted(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, err := NewStore(filepath.Join(t.TempDir(), "drafts.db"), func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})
	require.NoError(t, err)
	defer s.Close()

	older, err := s.Create(form.SampleSnapshot(), 1)
	require.NoError(t, err)
	newer, err := s.Create(form.SampleSnapshot(), 3)
	require.NoError(t, err)

	got, err := s.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)

	require.NoError(t, s.Submit(newer.ID))
	got, err = s.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, older.ID, got.ID)

	require.NoError(t, s.Submit(older.ID))
	_, err = s.LoadLatest()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersByStatus(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Create(form.SampleSnapshot(), 0)
	require.NoError(t, err)
	_, err = s.Create(form.SampleSnapshot(), 0)
	require.NoError(t, err)
	require.NoError(t, s.Submit(a.ID))

	drafts, err := s.List(StatusDraft, 0)
	require.NoError(t, err)
	assert.Len(t, drafts, 1)

	submitted, err := s.List(StatusSubmitted, 0)
	require.NoError(t, err)
	assert.Len(t, submitted, 1)
	assert.Equal(t, a.ID, submitted[0].ID)

	all, err := s.List("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(form.SampleSnapshot(), 0)
	require.NoError(t, err)
	require.NoError(t, s.Delete(rec.ID))

	_, err = s.Get(rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(rec.ID), ErrNotFound)
}

func TestAutosaverSkipsEmptyAndCreatesLazily(t *testing.T) {
	s := newTestStore(t)
	a := NewAutosaver(s, "", 10*time.Millisecond)
	defer a.Stop()

	a.FormChanged(form.EmptySnapshot())
	time.Sleep(50 * time.Millisecond)

	all, err := s.List("", 0)
	require.NoError(t, err)
	assert.Empty(t, all, "empty forms must not create rows")
	assert.Empty(t, a.DraftID())

	a.SetStep(1)
	a.FormChanged(form.SampleSnapshot())
	time.Sleep(50 * time.Millisecond)

	require.NotEmpty(t, a.DraftID())
	got, err := s.Get(a.DraftID())
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentStep)
}

func TestAutosaverDebouncesBursts(t *testing.T) {
	s := newTestStore(t)
	a := NewAutosaver(s, "", 20*time.Millisecond)
	defer a.Stop()

	snap := form.SampleSnapshot()
	for i := 0; i < 5; i++ {
		a.FormChanged(snap)
		time.Sleep(2 * time.Millisecond)
	}
	time.Sleep(80 * time.Millisecond)

	all, err := s.List("", 0)
	require.NoError(t, err)
	assert.Len(t, all, 1, "a burst should collapse to one write")
}

func TestAutosaverFlushWritesImmediately(t *testing.T) {
	s := newTestStore(t)
	a := NewAutosaver(s, "", time.Hour)
	defer a.Stop()

	require.NoError(t, a.Flush(form.SampleSnapshot()))
	require.NotEmpty(t, a.DraftID())
}
