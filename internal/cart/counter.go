package cart

import "sync"

const defaultSubscriberBuffer = 16

// Counter holds the latest cart size and fans every change out to subscribers.
// New subscribers receive the current value first.
type Counter struct {
	mu     sync.RWMutex
	value  int
	buffer int
	subs   map[chan int]struct{}
	closed bool
}

// NewCounter builds a counter whose subscriber channels hold up to buffer
// pending values.
func NewCounter(buffer int) *Counter {
	if buffer < 1 {
		buffer = defaultSubscriberBuffer
	}
	return &Counter{buffer: buffer, subs: make(map[chan int]struct{})}
}

// Value returns the latest published count.
func (c *Counter) Value() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Subscribe returns a channel primed with the current value that then receives
// every published value. Call the returned func to unsubscribe; it closes the
// channel and is safe to call more than once. After Close the channel carries
// the last value and is already closed.
func (c *Counter) Subscribe() (<-chan int, func()) {
	ch := make(chan int, c.buffer)

	c.mu.Lock()
	defer c.mu.Unlock()
	ch <- c.value
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	c.subs[ch] = struct{}{}

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subs[ch]; ok {
			delete(c.subs, ch)
			close(ch)
		}
	}
}

// Close ends every subscription. Publish keeps updating Value afterwards.
func (c *Counter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for ch := range c.subs {
		delete(c.subs, ch)
		close(ch)
	}
}

// Publish stores n and delivers it to every subscriber without blocking. When
// a subscriber's buffer is full its oldest pending value is dropped so the
// newest value always arrives.
func (c *Counter) Publish(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = n
	for ch := range c.subs {
		select {
		case ch <- n:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- n
		}
	}
}
