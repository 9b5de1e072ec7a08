// Package register holds the in-memory collections at the core of the
// workout diary: a register of authors and a register of diary entries
// grouped by author. All lookups are linear scans or direct map access
// over small collections.
//
// Registers are not safe for concurrent use; callers must serialize access.
package register

import (
	"fmt"
	"strings"

	"github.com/tmluong/workout-diary/internal/domain"
)

// AuthorRegister stores all authors of the diary in insertion order.
// Authors are unique by ID; adding the same ID twice is a no-op.
type AuthorRegister struct {
	authors []*domain.Author
}

// NewAuthorRegister constructs an empty author register.
func NewAuthorRegister() *AuthorRegister {
	return &AuthorRegister{}
}

// Add appends an author to the register.
// Returns false without error when an author with the same ID is already
// present. Returns ErrInvalidArgument if author is nil.
func (r *AuthorRegister) Add(author *domain.Author) (bool, error) {
	if author == nil {
		return false, fmt.Errorf("%w: author must not be nil", domain.ErrInvalidArgument)
	}
	for _, a := range r.authors {
		if a.ID() == author.ID() {
			return false, nil
		}
	}
	r.authors = append(r.authors, author)
	return true, nil
}

// All returns a copy of the register in insertion order.
// Mutating the returned slice does not affect the register.
func (r *AuthorRegister) All() []*domain.Author {
	out := make([]*domain.Author, len(r.authors))
	copy(out, r.authors)
	return out
}

// Count returns the number of registered authors.
func (r *AuthorRegister) Count() int {
	return len(r.authors)
}

// SearchByName returns every author whose name matches name
// case-insensitively. The match is exact, not substring: "bjo" does not
// match "Bjorn". Returns ErrInvalidArgument if name is blank.
func (r *AuthorRegister) SearchByName(name string) ([]*domain.Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: author name must not be blank", domain.ErrInvalidArgument)
	}
	var matches []*domain.Author
	for _, a := range r.authors {
		if strings.EqualFold(a.Name(), name) {
			matches = append(matches, a)
		}
	}
	return matches, nil
}

// ByID returns the author with the given ID, or nil when no author
// matches. An unknown or out-of-range ID is not an error.
func (r *AuthorRegister) ByID(id int) *domain.Author {
	for _, a := range r.authors {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

// Remove deletes the author with the given ID.
// Returns true when an author was removed, false when no author matched.
// Returns ErrInvalidArgument if id is not positive.
func (r *AuthorRegister) Remove(id int) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: author ID must be positive", domain.ErrInvalidArgument)
	}
	for i, a := range r.authors {
		if a.ID() == id {
			r.authors = append(r.authors[:i], r.authors[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
