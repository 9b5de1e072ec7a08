package domain

import (
	"fmt"
	"strings"
	"time"
)

// Valid intensity range for a workout session.
const (
	MinIntensity = 1
	MaxIntensity = 10
)

// Entry is one logged workout session in the diary.
// The author and creation timestamp are fixed at construction; every other
// field is mutable through a setter that re-validates its field and stamps
// LastModified. A failed setter leaves the entry untouched.
type Entry struct {
	author          *Author
	entryTitle      string
	activityType    string
	diaryText       string
	durationMinutes int
	intensityLevel  int
	createdAt       time.Time
	lastModified    time.Time
}

// NewEntry constructs a fully validated diary entry and stamps both
// CreatedAt and LastModified with the current time.
// Returns ErrInvalidArgument if author is nil, any text field is blank,
// durationMinutes is not positive, or intensityLevel is outside [1,10].
func NewEntry(author *Author, title, activityType, diaryText string, durationMinutes, intensityLevel int) (*Entry, error) {
	if author == nil {
		return nil, fmt.Errorf("%w: author must not be nil", ErrInvalidArgument)
	}
	if err := validateText("entry title", title); err != nil {
		return nil, err
	}
	if err := validateText("activity type", activityType); err != nil {
		return nil, err
	}
	if err := validateText("diary text", diaryText); err != nil {
		return nil, err
	}
	if err := validateDuration(durationMinutes); err != nil {
		return nil, err
	}
	if err := validateIntensity(intensityLevel); err != nil {
		return nil, err
	}

	ts := time.Now()
	return &Entry{
		author:          author,
		entryTitle:      title,
		activityType:    activityType,
		diaryText:       diaryText,
		durationMinutes: durationMinutes,
		intensityLevel:  intensityLevel,
		createdAt:       ts,
		lastModified:    ts,
	}, nil
}

// SetEntryTitle replaces the title and stamps LastModified.
// Returns ErrInvalidArgument if the new title is blank.
func (e *Entry) SetEntryTitle(title string) error {
	if err := validateText("entry title", title); err != nil {
		return err
	}
	e.entryTitle = title
	e.lastModified = time.Now()
	return nil
}

// SetActivityType replaces the activity type and stamps LastModified.
// Returns ErrInvalidArgument if the new activity type is blank.
func (e *Entry) SetActivityType(activityType string) error {
	if err := validateText("activity type", activityType); err != nil {
		return err
	}
	e.activityType = activityType
	e.lastModified = time.Now()
	return nil
}

// SetDiaryText replaces the diary text and stamps LastModified.
// Returns ErrInvalidArgument if the new text is blank.
func (e *Entry) SetDiaryText(diaryText string) error {
	if err := validateText("diary text", diaryText); err != nil {
		return err
	}
	e.diaryText = diaryText
	e.lastModified = time.Now()
	return nil
}

// SetDurationMinutes replaces the duration and stamps LastModified.
// Returns ErrInvalidArgument if the new duration is not positive.
func (e *Entry) SetDurationMinutes(durationMinutes int) error {
	if err := validateDuration(durationMinutes); err != nil {
		return err
	}
	e.durationMinutes = durationMinutes
	e.lastModified = time.Now()
	return nil
}

// SetIntensityLevel replaces the intensity and stamps LastModified.
// Returns ErrInvalidArgument if the new level is outside [1,10].
func (e *Entry) SetIntensityLevel(intensityLevel int) error {
	if err := validateIntensity(intensityLevel); err != nil {
		return err
	}
	e.intensityLevel = intensityLevel
	e.lastModified = time.Now()
	return nil
}

// Author returns the author who wrote the entry.
func (e *Entry) Author() *Author { return e.author }

// EntryTitle returns the session title.
func (e *Entry) EntryTitle() string { return e.entryTitle }

// ActivityType returns the workout activity type.
func (e *Entry) ActivityType() string { return e.activityType }

// DiaryText returns the free-form diary text.
func (e *Entry) DiaryText() string { return e.diaryText }

// DurationMinutes returns the session length in minutes.
func (e *Entry) DurationMinutes() int { return e.durationMinutes }

// IntensityLevel returns the session intensity in [1,10].
func (e *Entry) IntensityLevel() int { return e.intensityLevel }

// CreatedAt returns the construction timestamp.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// LastModified returns the timestamp of the most recent successful mutation,
// or the construction time if the entry has never been mutated.
func (e *Entry) LastModified() time.Time { return e.lastModified }

func validateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s must not be blank", ErrInvalidArgument, field)
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: duration must be more than 0 minutes", ErrInvalidArgument)
	}
	return nil
}

func validateIntensity(level int) error {
	if level < MinIntensity || level > MaxIntensity {
		return fmt.Errorf("%w: intensity level must be between %d and %d", ErrInvalidArgument, MinIntensity, MaxIntensity)
	}
	return nil
}
