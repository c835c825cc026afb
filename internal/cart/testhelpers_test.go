package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/angelmondragon/activitycart/pkg/kv"
	"github.com/angelmondragon/activitycart/pkg/types"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func price(v float64) types.Amount { return types.NewAmount(v) }

func newTestStore(t *testing.T, backend kv.Store) *Store {
	t.Helper()
	if backend == nil {
		backend = kv.NewMemory()
	}
	store, err := NewStore(context.Background(), StoreParams{
		KV:      backend,
		Counter: NewCounter(4),
	})
	require.NoError(t, err)
	return store
}

func slotItem() CartItem {
	return CartItem{
		ActivityID:  1,
		Title:       "Desert safari",
		Date:        "2025-09-17",
		HasTimeSlot: true,
		SlotID:      intPtr(5),
		Adults:      2,
		Children:    1,
		AdultPrice:  price(100),
		ChildPrice:  price(50),
		TotalPrice:  price(250),
	}
}

// failingKV accepts reads from an inner store and rejects every write.
type failingKV struct {
	kv.Store
}

var errQuota = errors.New("quota exceeded")

func (f failingKV) Set(context.Context, string, string) error { return errQuota }

// brokenKV fails every read.
type brokenKV struct {
	kv.Store
}

func (brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

// hookKV runs a callback on the next Get once armed.
type hookKV struct {
	kv.Store
	mu    sync.Mutex
	onGet func()
}

func (h *hookKV) arm(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onGet = fn
}

func (h *hookKV) Get(ctx context.Context, key string) (string, bool, error) {
	h.mu.Lock()
	fn := h.onGet
	h.onGet = nil
	h.mu.Unlock()
	if fn != nil {
		fn()
	}
	return h.Store.Get(ctx, key)
}
