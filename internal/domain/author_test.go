package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmluong/workout-diary/internal/domain"
)

func TestNewAuthorWith_AssignsIncreasingIDs(t *testing.T) {
	alloc := domain.NewIDAllocator()

	var prev int
	for _, name := range []string{"Bjorn", "Polo", "olav", "ola"} {
		a, err := domain.NewAuthorWith(alloc, name)
		require.NoError(t, err)
		assert.Greater(t, a.ID(), prev)
		prev = a.ID()
	}
}

func TestNewAuthorWith_FirstIDIsOne(t *testing.T) {
	alloc := domain.NewIDAllocator()

	a, err := domain.NewAuthorWith(alloc, "Bjorn")

	require.NoError(t, err)
	assert.Equal(t, 1, a.ID())
}

func TestNewAuthor_UsesProcessWideSequence(t *testing.T) {
	first, err := domain.NewAuthor("Bjorn")
	require.NoError(t, err)
	second, err := domain.NewAuthor("Polo")
	require.NoError(t, err)

	assert.Greater(t, second.ID(), first.ID())
}

func TestNewAuthorWith_BlankName(t *testing.T) {
	alloc := domain.NewIDAllocator()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := domain.NewAuthorWith(alloc, name)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestNewAuthorWith_NilAllocator(t *testing.T) {
	_, err := domain.NewAuthorWith(nil, "Bjorn")

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAuthor_Equal_ByIDOnly(t *testing.T) {
	// Two separate allocators both start at 1, so authors with different
	// names end up with the same identity.
	a, err := domain.NewAuthorWith(domain.NewIDAllocator(), "Bjorn")
	require.NoError(t, err)
	b, err := domain.NewAuthorWith(domain.NewIDAllocator(), "Polo")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	alloc := domain.NewIDAllocator()
	sameName1, err := domain.NewAuthorWith(alloc, "Bjorn")
	require.NoError(t, err)
	sameName2, err := domain.NewAuthorWith(alloc, "Bjorn")
	require.NoError(t, err)

	assert.False(t, sameName1.Equal(sameName2))
}

func TestAuthor_String(t *testing.T) {
	a, err := domain.NewAuthorWith(domain.NewIDAllocator(), "Bjorn")
	require.NoError(t, err)

	assert.Equal(t, "Bjorn (ID: 1)", a.String())
}
