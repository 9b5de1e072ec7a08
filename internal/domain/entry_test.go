package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmluong/workout-diary/internal/domain"
)

// newAuthor builds an author from a private allocator.
func newAuthor(t *testing.T, name string) *domain.Author {
	t.Helper()
	a, err := domain.NewAuthorWith(domain.NewIDAllocator(), name)
	require.NoError(t, err)
	return a
}

func validEntry(t *testing.T) *domain.Entry {
	t.Helper()
	e, err := domain.NewEntry(newAuthor(t, "Bjorn"), "Run", "cardio", "Felt great", 30, 5)
	require.NoError(t, err)
	return e
}

func TestNewEntry_OK(t *testing.T) {
	author := newAuthor(t, "Bjorn")

	e, err := domain.NewEntry(author, "Run", "cardio", "Felt great", 30, 5)

	require.NoError(t, err)
	assert.Same(t, author, e.Author())
	assert.Equal(t, "Run", e.EntryTitle())
	assert.Equal(t, "cardio", e.ActivityType())
	assert.Equal(t, "Felt great", e.DiaryText())
	assert.Equal(t, 30, e.DurationMinutes())
	assert.Equal(t, 5, e.IntensityLevel())
	assert.False(t, e.CreatedAt().IsZero())
	assert.Equal(t, e.CreatedAt(), e.LastModified())
}

func TestNewEntry_Invalid(t *testing.T) {
	author := newAuthor(t, "Bjorn")

	tests := []struct {
		name      string
		author    *domain.Author
		title     string
		activity  string
		text      string
		duration  int
		intensity int
	}{
		{"nil author", nil, "Run", "cardio", "Felt great", 30, 5},
		{"blank title", author, "  ", "cardio", "Felt great", 30, 5},
		{"blank activity", author, "Run", "", "Felt great", 30, 5},
		{"blank text", author, "Run", "cardio", " \t ", 30, 5},
		{"zero duration", author, "Run", "cardio", "Felt great", 0, 5},
		{"negative duration", author, "Run", "cardio", "Felt great", -10, 5},
		{"intensity too low", author, "Run", "cardio", "Felt great", 30, 0},
		{"intensity too high", author, "Run", "cardio", "Felt great", 30, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewEntry(tt.author, tt.title, tt.activity, tt.text, tt.duration, tt.intensity)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestEntry_Setters_UpdateFieldAndStamp(t *testing.T) {
	e := validEntry(t)
	before := e.LastModified()

	require.NoError(t, e.SetEntryTitle("Long run"))
	require.NoError(t, e.SetActivityType("endurance"))
	require.NoError(t, e.SetDiaryText("Felt even better"))
	require.NoError(t, e.SetDurationMinutes(60))
	require.NoError(t, e.SetIntensityLevel(7))

	assert.Equal(t, "Long run", e.EntryTitle())
	assert.Equal(t, "endurance", e.ActivityType())
	assert.Equal(t, "Felt even better", e.DiaryText())
	assert.Equal(t, 60, e.DurationMinutes())
	assert.Equal(t, 7, e.IntensityLevel())
	assert.False(t, e.LastModified().Before(before))
	assert.False(t, e.LastModified().Before(e.CreatedAt()))
}

func TestEntry_Setters_RejectInvalidAndLeaveEntryUntouched(t *testing.T) {
	e := validEntry(t)
	stamp := e.LastModified()

	assert.ErrorIs(t, e.SetEntryTitle("   "), domain.ErrInvalidArgument)
	assert.ErrorIs(t, e.SetActivityType(""), domain.ErrInvalidArgument)
	assert.ErrorIs(t, e.SetDiaryText("\n"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, e.SetDurationMinutes(0), domain.ErrInvalidArgument)
	assert.ErrorIs(t, e.SetIntensityLevel(11), domain.ErrInvalidArgument)
	assert.ErrorIs(t, e.SetIntensityLevel(0), domain.ErrInvalidArgument)

	assert.Equal(t, "Run", e.EntryTitle())
	assert.Equal(t, "cardio", e.ActivityType())
	assert.Equal(t, "Felt great", e.DiaryText())
	assert.Equal(t, 30, e.DurationMinutes())
	assert.Equal(t, 5, e.IntensityLevel())
	assert.Equal(t, stamp, e.LastModified())
}
