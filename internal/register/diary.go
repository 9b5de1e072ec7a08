package register

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tmluong/workout-diary/internal/domain"
)

// DiaryRegister maps each author to the ordered list of entries they wrote.
// Buckets are keyed by author ID, matching author identity semantics: two
// Author values with the same ID share one bucket.
//
// A bucket is created the first time an entry is added for an author and
// survives even when all of its entries are deleted; only Clear removes
// buckets. TotalByAuthor reports on exactly the buckets that exist.
type DiaryRegister struct {
	buckets map[int][]*domain.Entry
	owners  map[int]*domain.Author // bucket key -> author that opened it
}

// NewDiaryRegister constructs an empty diary register.
func NewDiaryRegister() *DiaryRegister {
	return &DiaryRegister{
		buckets: make(map[int][]*domain.Entry),
		owners:  make(map[int]*domain.Author),
	}
}

// Add appends an entry to the given author's bucket, creating the bucket
// if the author has none yet.
// Returns false without error when the same entry (by reference) is
// already in the bucket. Returns ErrInvalidArgument if author or entry is
// nil, or when the entry was written by a different author.
func (r *DiaryRegister) Add(author *domain.Author, entry *domain.Entry) (bool, error) {
	if author == nil || entry == nil {
		return false, fmt.Errorf("%w: author and entry must not be nil", domain.ErrInvalidArgument)
	}
	if entry.Author().ID() != author.ID() {
		return false, fmt.Errorf("%w: entry does not belong to author %d", domain.ErrInvalidArgument, author.ID())
	}

	key := author.ID()
	if _, ok := r.buckets[key]; !ok {
		r.buckets[key] = nil
		r.owners[key] = author
	}
	for _, e := range r.buckets[key] {
		if e == entry {
			return false, nil
		}
	}
	r.buckets[key] = append(r.buckets[key], entry)
	return true, nil
}

// Delete removes an entry (matched by reference) from the author's bucket.
// Returns false when the author has no bucket or the entry is not in it;
// the emptied bucket itself is kept. Returns ErrInvalidArgument if author
// or entry is nil.
func (r *DiaryRegister) Delete(author *domain.Author, entry *domain.Entry) (bool, error) {
	if author == nil || entry == nil {
		return false, fmt.Errorf("%w: author and entry must not be nil", domain.ErrInvalidArgument)
	}
	bucket, ok := r.buckets[author.ID()]
	if !ok {
		return false, nil
	}
	for i, e := range bucket {
		if e == entry {
			r.buckets[author.ID()] = append(bucket[:i], bucket[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// SearchByDate returns every entry across all authors whose creation time
// lies strictly between from and to (both bounds exclusive).
// Returns ErrInvalidArgument if either bound is the zero time or from is
// after to.
func (r *DiaryRegister) SearchByDate(from, to time.Time) ([]*domain.Entry, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: both date bounds are required", domain.ErrInvalidArgument)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must not be after to", domain.ErrInvalidArgument)
	}
	var matches []*domain.Entry
	for _, key := range r.sortedKeys() {
		for _, e := range r.buckets[key] {
			if e.CreatedAt().After(from) && e.CreatedAt().Before(to) {
				matches = append(matches, e)
			}
		}
	}
	return matches, nil
}

// SortedEntries returns every entry across all authors ordered by creation
// time, newest first. Ties keep a stable author-id/insertion order.
func (r *DiaryRegister) SortedEntries() []*domain.Entry {
	var all []*domain.Entry
	for _, key := range r.sortedKeys() {
		all = append(all, r.buckets[key]...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[j].CreatedAt().Before(all[i].CreatedAt())
	})
	return all
}

// Clear removes every bucket from the register.
// Returns false when the register was already empty.
func (r *DiaryRegister) Clear() bool {
	if len(r.buckets) == 0 {
		return false
	}
	r.buckets = make(map[int][]*domain.Entry)
	r.owners = make(map[int]*domain.Author)
	return true
}

// EntriesByAuthor returns a copy of the author's bucket in insertion
// order, or an empty slice when the author has no bucket.
// Returns ErrInvalidArgument if author is nil.
func (r *DiaryRegister) EntriesByAuthor(author *domain.Author) ([]*domain.Entry, error) {
	if author == nil {
		return nil, fmt.Errorf("%w: author must not be nil", domain.ErrInvalidArgument)
	}
	bucket := r.buckets[author.ID()]
	out := make([]*domain.Entry, len(bucket))
	copy(out, bucket)
	return out, nil
}

// TotalByAuthor returns the entry count per author for every existing
// bucket. An author whose entries were all deleted still has a bucket and
// is reported with count 0; an author never added to this register is
// absent.
func (r *DiaryRegister) TotalByAuthor() map[*domain.Author]int {
	totals := make(map[*domain.Author]int, len(r.buckets))
	for key, bucket := range r.buckets {
		totals[r.owners[key]] = len(bucket)
	}
	return totals
}

// SearchByWord returns every entry across all authors whose diary text
// contains word as a case-insensitive substring.
// Returns ErrInvalidArgument if word is blank.
func (r *DiaryRegister) SearchByWord(word string) ([]*domain.Entry, error) {
	if strings.TrimSpace(word) == "" {
		return nil, fmt.Errorf("%w: search word must not be blank", domain.ErrInvalidArgument)
	}
	needle := strings.ToLower(word)
	var matches []*domain.Entry
	for _, key := range r.sortedKeys() {
		for _, e := range r.buckets[key] {
			if strings.Contains(strings.ToLower(e.DiaryText()), needle) {
				matches = append(matches, e)
			}
		}
	}
	return matches, nil
}

// sortedKeys returns bucket keys in ascending author-id order so that
// cross-bucket results have a deterministic base order.
func (r *DiaryRegister) sortedKeys() []int {
	keys := make([]int, 0, len(r.buckets))
	for key := range r.buckets {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}
