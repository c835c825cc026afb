package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterLateSubscriberGetsCurrentValue(t *testing.T) {
	c := NewCounter(4)
	c.Publish(3)

	ch, cancel := c.Subscribe()
	defer cancel()

	assert.Equal(t, 3, <-ch)
	assert.Equal(t, 3, c.Value())
}

func TestCounterDeliversEveryValueInOrder(t *testing.T) {
	c := NewCounter(8)
	ch, cancel := c.Subscribe()
	defer cancel()

	for _, v := range []int{1, 2, 1, 0} {
		c.Publish(v)
	}

	got := []int{<-ch, <-ch, <-ch, <-ch, <-ch}
	assert.Equal(t, []int{0, 1, 2, 1, 0}, got)
}

func TestCounterSlowSubscriberKeepsNewest(t *testing.T) {
	c := NewCounter(2)
	ch, cancel := c.Subscribe()
	defer cancel()

	for v := 1; v <= 10; v++ {
		c.Publish(v)
	}

	require.Len(t, ch, 2)
	<-ch
	assert.Equal(t, 10, <-ch)
}

func TestCounterUnsubscribeClosesChannel(t *testing.T) {
	c := NewCounter(1)
	ch, cancel := c.Subscribe()
	<-ch

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	c.Publish(5)
	assert.Equal(t, 5, c.Value())
}

func TestCounterConcurrentPublishers(t *testing.T) {
	c := NewCounter(1)
	ch, cancel := c.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Publish(n)
		}(i)
	}
	wg.Wait()

	c.Publish(99)
	assert.Equal(t, 99, <-ch)
}

func TestNewCounterDefaultsBuffer(t *testing.T) {
	c := NewCounter(0)
	assert.Equal(t, defaultSubscriberBuffer, c.buffer)
}

func TestCounterCloseEndsSubscriptions(t *testing.T) {
	c := NewCounter(2)
	ch, cancel := c.Subscribe()
	<-ch

	c.Close()
	_, open := <-ch
	assert.False(t, open)
	cancel()

	c.Publish(4)
	late, lateCancel := c.Subscribe()
	defer lateCancel()
	require.Equal(t, 4, <-late)
	_, open = <-late
	assert.False(t, open)
}
