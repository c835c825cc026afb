package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/angelmondragon/activitycart/pkg/kv"
	"github.com/angelmondragon/activitycart/pkg/logger"
	"github.com/angelmondragon/activitycart/pkg/metrics"
)

const (
	opAdd    = "add"
	opUpdate = "update_counts"
	opStep   = "step"
	opRemove = "remove"
	opClear  = "clear"
)

// Store owns the ordered cart sequence persisted in a single kv slot and keeps
// the Counter in step with its length.
//
// Every read goes to the backend so writes made by other processes are seen.
// Unreadable slots read as an empty cart, and failed writes are logged and
// counted but never returned: the counter still reflects the attempted write.
// Mutations from one process are serialized; writers in other processes still
// race and the last write wins.
type Store struct {
	mu      sync.Mutex
	kv      kv.Store
	key     string
	counter *Counter
	logg    *logger.Logger
	metrics *metrics.CartMetrics
}

// StoreParams wires a Store.
type StoreParams struct {
	KV      kv.Store
	Key     string
	Counter *Counter
	Logger  *logger.Logger
	Metrics *metrics.CartMetrics
}

// NewStore builds a Store and seeds the counter from the persisted slot.
func NewStore(ctx context.Context, p StoreParams) (*Store, error) {
	if p.KV == nil {
		return nil, fmt.Errorf("kv store required")
	}
	if p.Counter == nil {
		return nil, fmt.Errorf("counter required")
	}
	if p.Key == "" {
		p.Key = DefaultStorageKey
	}
	s := &Store{
		kv:      p.KV,
		key:     p.Key,
		counter: p.Counter,
		logg:    p.Logger,
		metrics: p.Metrics,
	}
	n := len(s.Items(ctx))
	s.counter.Publish(n)
	s.metrics.SetItems(n)
	return s, nil
}

// Key returns the storage slot name.
func (s *Store) Key() string {
	return s.key
}

// Items returns the persisted sequence, or an empty one when the slot is
// missing or unreadable.
func (s *Store) Items(ctx context.Context) []CartItem {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.warn(ctx, "cart.read_failed", err)
		return []CartItem{}
	}
	if !ok {
		return []CartItem{}
	}
	var items []CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		if err != nil {
			s.warn(ctx, "cart.decode_failed", err)
		}
		return []CartItem{}
	}
	return items
}

// HasConflict reports whether any cart entry overlaps q.
func (s *Store) HasConflict(ctx context.Context, q ConflictQuery) bool {
	for _, item := range s.Items(ctx) {
		if item.conflictsWith(q) {
			s.metrics.IncConflict()
			return true
		}
	}
	return false
}

// Add appends item to the cart.
func (s *Store) Add(ctx context.Context, item CartItem) {
	s.update(ctx, opAdd, func(items []CartItem) ([]CartItem, bool) {
		return append(items, item), true
	})
}

// AddIfNoConflict appends item unless it overlaps an entry already in the
// cart. The check and the write happen under the same lock, so concurrent
// callers cannot both add the same booking.
func (s *Store) AddIfNoConflict(ctx context.Context, item CartItem) bool {
	q := ConflictQuery{
		ActivityID: item.ActivityID,
		Date:       item.Date,
		SlotID:     item.SlotID,
		StartTime:  item.StartTime,
		EndTime:    item.EndTime,
	}
	return s.update(ctx, opAdd, func(items []CartItem) ([]CartItem, bool) {
		for _, existing := range items {
			if existing.conflictsWith(q) {
				s.metrics.IncConflict()
				return nil, false
			}
		}
		return append(items, item), true
	})
}

// UpdateCounts sets the party sizes of the item at index, clamping negatives to
// zero and recomputing its total when both unit prices are known. Out of range
// indexes are ignored.
func (s *Store) UpdateCounts(ctx context.Context, index, adults, children int) {
	s.update(ctx, opUpdate, func(items []CartItem) ([]CartItem, bool) {
		if index < 0 || index >= len(items) {
			return nil, false
		}
		next := cloneItems(items)
		next[index] = items[index].WithCounts(adults, children)
		return next, true
	})
}

// Step moves one party count of the item at index by delta, checking the
// item's cap when counting up and its floor when counting down. It reports
// whether the item changed.
func (s *Store) Step(ctx context.Context, index int, party Party, delta int) bool {
	return s.update(ctx, opStep, func(items []CartItem) ([]CartItem, bool) {
		if index < 0 || index >= len(items) {
			return nil, false
		}
		item := items[index]
		adults, children := item.Adults, item.Children
		switch party {
		case PartyAdults:
			adults += delta
			if !stepAllowed(adults, delta, minAdults, item.MaxAdults) {
				return nil, false
			}
		case PartyChildren:
			children += delta
			if !stepAllowed(children, delta, minChildren, item.MaxChildren) {
				return nil, false
			}
		default:
			return nil, false
		}
		next := cloneItems(items)
		next[index] = item.WithCounts(adults, children)
		return next, true
	})
}

// Remove deletes the item at index. Out of range indexes are ignored.
func (s *Store) Remove(ctx context.Context, index int) {
	s.update(ctx, opRemove, func(items []CartItem) ([]CartItem, bool) {
		if index < 0 || index >= len(items) {
			return nil, false
		}
		next := make([]CartItem, 0, len(items)-1)
		next = append(next, items[:index]...)
		next = append(next, items[index+1:]...)
		return next, true
	})
}

// Clear empties the cart by deleting its slot; a missing slot reads as empty.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit(ctx, opClear, 0, s.kv.Delete(ctx, s.key))
}

// Count returns the latest published cart size.
func (s *Store) Count() int {
	return s.counter.Value()
}

// Subscribe streams the cart size; see Counter.Subscribe.
func (s *Store) Subscribe() (<-chan int, func()) {
	return s.counter.Subscribe()
}

// Ping checks the storage backend.
func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

// update reads the sequence, applies fn and persists the result, all under the
// store lock. fn returns false to leave the cart untouched.
func (s *Store) update(ctx context.Context, op string, fn func([]CartItem) ([]CartItem, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(s.Items(ctx))
	if !changed {
		return false
	}
	payload, err := json.Marshal(next)
	if err == nil {
		err = s.kv.Set(ctx, s.key, string(payload))
	}
	s.commit(ctx, op, len(next), err)
	return true
}

// commit records a write attempt and publishes n whether or not it succeeded.
func (s *Store) commit(ctx context.Context, op string, n int, err error) {
	s.metrics.IncOperation(op)
	if err != nil {
		s.metrics.IncPersistFailure(op)
		s.warn(s.withOp(ctx, op), "cart.persist_failed", err)
	}

	s.counter.Publish(n)
	s.metrics.SetItems(n)
}

func (s *Store) withOp(ctx context.Context, op string) context.Context {
	if s.logg == nil {
		return ctx
	}
	return s.logg.WithField(ctx, "op", op)
}

func (s *Store) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(s.logg.WithCartKey(ctx, s.key), map[string]any{"error": err.Error()})
	s.logg.Warn(ctx, msg)
}
