// Package domain contains the core data types for the workout diary.
// This package has no dependencies outside the standard library and is
// imported by every other internal package (register, service, cmd).
package domain

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// IDAllocator hands out unique, monotonically increasing author IDs
// starting at 1. Allocation is process-wide state shared by everything
// that constructs authors, so the counter is atomic even though the
// registers themselves are single-threaded.
//
// Tests should construct their own allocator with NewIDAllocator rather
// than rely on the package-level default, so ID sequences are isolated
// between test runs.
type IDAllocator struct {
	last atomic.Int64
}

// NewIDAllocator returns an allocator whose first Next call yields 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next unused ID and advances the counter.
func (a *IDAllocator) Next() int {
	return int(a.last.Add(1))
}

// defaultAllocator backs NewAuthor so plain construction keeps the
// process-wide ID sequence of the original application.
var defaultAllocator = NewIDAllocator()

// Author is an immutable identity record for a diary contributor.
// Two authors may share a name; the generated ID is what distinguishes them.
type Author struct {
	id   int
	name string
}

// NewAuthor constructs an author with the next process-wide ID.
// Returns ErrInvalidArgument if name is empty or whitespace-only.
func NewAuthor(name string) (*Author, error) {
	return NewAuthorWith(defaultAllocator, name)
}

// NewAuthorWith constructs an author using the given allocator.
// Returns ErrInvalidArgument if the allocator is nil or name is blank.
func NewAuthorWith(alloc *IDAllocator, name string) (*Author, error) {
	if alloc == nil {
		return nil, fmt.Errorf("%w: allocator must not be nil", ErrInvalidArgument)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: author name must not be blank", ErrInvalidArgument)
	}
	return &Author{id: alloc.Next(), name: name}, nil
}

// ID returns the author's unique generated ID.
func (a *Author) ID() int {
	return a.id
}

// Name returns the author's display name.
func (a *Author) Name() string {
	return a.name
}

// Equal reports whether both authors carry the same ID.
// Name is not part of identity.
func (a *Author) Equal(other *Author) bool {
	return other != nil && a.id == other.id
}

// String renders the author as "<name> (ID: <id>)" so same-named authors
// stay distinguishable in output.
func (a *Author) String() string {
	return fmt.Sprintf("%s (ID: %d)", a.name, a.id)
}
