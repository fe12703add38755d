package idx_test

import (
	"testing"
	"time"

	"github.com/quizden/quizden/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a := idx.New()
	b := idx.New()

	require.False(t, a.IsZero())
	require.False(t, b.IsZero())
	require.NotEqual(t, a, b)
}

func TestMonotonicOrdering(t *testing.T) {
	t.Parallel()

	prev := idx.New()
	for range 100 {
		next := idx.New()
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		id := idx.New()
		parsed, err := idx.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := idx.Parse("")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := idx.Parse("not-a-ulid")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})
}

func TestTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	id := idx.NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
	require.True(t, idx.Zero.Time().IsZero())
}
