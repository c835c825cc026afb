package cart

import (
	"context"

	"github.com/angelmondragon/activitycart/pkg/types"
	"github.com/shopspring/decimal"
)

const (
	minAdults   = 1
	minChildren = 0
)

// Party selects which head count an Editor step changes.
type Party string

const (
	PartyAdults   Party = "adults"
	PartyChildren Party = "children"
)

// Summary is the cart as shown to the shopper.
type Summary struct {
	Items    []CartItem   `json:"items"`
	Subtotal types.Amount `json:"subtotal"`
	Count    int          `json:"count"`
}

// Editor applies the cart page's step controls on top of a Store. Every
// call reloads the full summary from the store.
type Editor struct {
	store *Store
}

// NewEditor returns an Editor over store.
func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// Load returns the items and their subtotal; unknown totals count as zero.
func (e *Editor) Load(ctx context.Context) Summary {
	items := e.store.Items(ctx)
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice.Decimal())
	}
	return Summary{
		Items:    items,
		Subtotal: types.AmountFromDecimal(subtotal),
		Count:    len(items),
	}
}

// Step moves the party count of the item at index by delta (+1 or -1) and
// returns the reloaded summary. Steps past maxAdults/maxChildren or below one
// adult / zero children are ignored, as are unknown indexes and parties.
func (e *Editor) Step(ctx context.Context, index int, party Party, delta int) Summary {
	e.store.Step(ctx, index, party, delta)
	return e.Load(ctx)
}

// IncrementAdults adds one adult to the item at index, up to maxAdults.
func (e *Editor) IncrementAdults(ctx context.Context, index int) Summary {
	return e.Step(ctx, index, PartyAdults, 1)
}

// DecrementAdults removes one adult from the item at index, keeping at least one.
func (e *Editor) DecrementAdults(ctx context.Context, index int) Summary {
	return e.Step(ctx, index, PartyAdults, -1)
}

// IncrementChildren adds one child to the item at index, up to maxChildren.
func (e *Editor) IncrementChildren(ctx context.Context, index int) Summary {
	return e.Step(ctx, index, PartyChildren, 1)
}

// DecrementChildren removes one child from the item at index, down to zero.
func (e *Editor) DecrementChildren(ctx context.Context, index int) Summary {
	return e.Step(ctx, index, PartyChildren, -1)
}

// stepAllowed checks the cap when counting up and the floor when counting down.
func stepAllowed(next, delta, floor int, ceiling *int) bool {
	if delta > 0 {
		return ceiling == nil || next <= *ceiling
	}
	return next >= floor
}
