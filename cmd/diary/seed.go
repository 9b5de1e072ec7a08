package main

import (
	"github.com/tmluong/workout-diary/internal/domain"
	"github.com/tmluong/workout-diary/internal/register"
)

// sampleEntry is one row of the built-in demo data.
type sampleEntry struct {
	author    string
	title     string
	activity  string
	text      string
	duration  int
	intensity int
}

// sampleEntries is the demo diary: four authors with one workout each.
var sampleEntries = []sampleEntry{
	{"Bjorn", "Jumping", "cardio", "Fun jumping day, burned the legs", 20, 4},
	{"Polo", "Arm curls", "strength", "Really tough arm day, made me get a huge pump", 10, 8},
	{"olav", "evening run", "cardio", "Cold run, need to put on a jacket next time", 15, 2},
	{"ola", "morning run", "running", "Great weather really warm", 45, 7},
}

// seed builds both registers and fills them with the sample diary.
// There is no persistence, so every command invocation starts from this
// same data set. A fresh allocator keeps IDs starting at 1 per run.
func seed() (*register.AuthorRegister, *register.DiaryRegister, error) {
	alloc := domain.NewIDAllocator()
	authors := register.NewAuthorRegister()
	diary := register.NewDiaryRegister()

	for _, s := range sampleEntries {
		author, err := domain.NewAuthorWith(alloc, s.author)
		if err != nil {
			return nil, nil, err
		}
		if _, err := authors.Add(author); err != nil {
			return nil, nil, err
		}

		entry, err := domain.NewEntry(author, s.title, s.activity, s.text, s.duration, s.intensity)
		if err != nil {
			return nil, nil, err
		}
		if _, err := diary.Add(author, entry); err != nil {
			return nil, nil, err
		}
	}

	return authors, diary, nil
}
