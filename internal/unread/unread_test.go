package unread_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"runmate/internal/domain"
	"runmate/internal/unread"
)

func TestCounter_Basics(t *testing.T) {
	c := unread.New()
	c.Reset(map[domain.ConversationID]int{"a": 2, "b": 0, "c": 3})

	assert.Equal(t, 5, c.Total())
	assert.Equal(t, 2, c.For("a"))

	c.Add("b", 1)
	c.MarkRead("a")
	c.Add("c", -10)

	assert.Equal(t, 1, c.Total())
	assert.Equal(t, 0, c.For("c"))
}

func TestCounter_TotalIsSumOfCounts(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ids := []domain.ConversationID{"a", "b", "c", "d"}
	c := unread.New()
	model := map[domain.ConversationID]int{}

	for i := 0; i < 500; i++ {
		id := ids[r.Intn(len(ids))]
		switch r.Intn(3) {
		case 0:
			n := r.Intn(5) - 1
			c.Add(id, n)
			model[id] = max(0, model[id]+n)
		case 1:
			c.MarkRead(id)
			model[id] = 0
		case 2:
			sum := 0
			for _, v := range model {
				sum += v
			}
			assert.Equal(t, sum, c.Total())
		}
	}
}

func TestCounter_SubscribeGetsLatest(t *testing.T) {
	c := unread.New()
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Add("a", 1)
	c.Add("a", 1)
	c.Add("b", 4)

	assert.Equal(t, 6, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %d", v)
	default:
	}
}

func TestCounter_CancelDetachesSubscriber(t *testing.T) {
	c := unread.New()
	ch, cancel := c.Subscribe()
	other, cancelOther := c.Subscribe()
	defer cancelOther()

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)

	c.Add("a", 2)
	assert.Equal(t, 2, <-other)
}

func TestCounter_ConcurrentAdds(t *testing.T) {
	c := unread.New()
	_, cancel := c.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add("a", 1)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Total())
}
