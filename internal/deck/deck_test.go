package deck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runmate/internal/deck"
)

type recorder struct{ calls []int }

func (r *recorder) ScrollToIndex(i int) { r.calls = append(r.calls, i) }

func at(t *testing.T, length, index int, s deck.Scroller) *deck.Navigator {
	t.Helper()
	n := deck.New(length, s)
	require.NoError(t, n.Jump(index))
	return n
}

func TestNext_WrapsToFirst(t *testing.T) {
	n := at(t, 4, 3, nil)
	assert.Equal(t, 0, n.Next())
}

func TestPrevious_WrapsToLast(t *testing.T) {
	n := at(t, 4, 0, nil)
	assert.Equal(t, 3, n.Previous())
}

func TestCycleClosure(t *testing.T) {
	for length := 1; length <= 7; length++ {
		for start := 0; start < length; start++ {
			n := at(t, length, start, nil)
			for i := 0; i < length; i++ {
				n.Next()
			}
			assert.Equal(t, start, n.Index(), "next x%d from %d", length, start)

			for i := 0; i < length; i++ {
				n.Previous()
			}
			assert.Equal(t, start, n.Index(), "previous x%d from %d", length, start)

			n.Next()
			n.Previous()
			assert.Equal(t, start, n.Index(), "next then previous from %d", start)
		}
	}
}

func TestScrollIssuedAfterEveryMove(t *testing.T) {
	rec := &recorder{}
	n := deck.New(3, rec)

	n.Next()
	n.Next()
	n.Next()
	n.Previous()
	require.NoError(t, n.Jump(1))

	assert.Equal(t, []int{1, 2, 0, 2, 1}, rec.calls)
}

func TestScrollFunc(t *testing.T) {
	got := -1
	n := deck.New(2, deck.ScrollFunc(func(i int) { got = i }))
	n.Next()
	assert.Equal(t, 1, got)
}

func TestEmptyDeck(t *testing.T) {
	rec := &recorder{}
	n := deck.New(0, rec)

	assert.True(t, n.Empty())
	assert.Equal(t, 0, n.Next())
	assert.Equal(t, 0, n.Previous())
	assert.Error(t, n.Jump(0))
	assert.Empty(t, rec.calls)
}

func TestJumpOutOfRange(t *testing.T) {
	n := deck.New(2, nil)
	assert.Error(t, n.Jump(2))
	assert.Error(t, n.Jump(-1))
	assert.Equal(t, 0, n.Index())
}

func TestResize_ClampsIndex(t *testing.T) {
	n := at(t, 5, 4, nil)

	n.Resize(4)
	assert.Equal(t, 3, n.Index())

	n.Resize(10)
	assert.Equal(t, 3, n.Index())

	n.Resize(0)
	assert.Equal(t, 0, n.Index())
	assert.True(t, n.Empty())
}
