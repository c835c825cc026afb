package cart

import (
	"github.com/angelmondragon/activitycart/pkg/types"
	"github.com/shopspring/decimal"
)

// DefaultStorageKey is the slot holding the serialized cart.
const DefaultStorageKey = "activity_cart"

// CartItem is one booked activity line. Items are replaced, never mutated in
// place, once they are part of a persisted sequence.
type CartItem struct {
	ActivityID  int          `json:"activityId"`
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	HasTimeSlot bool         `json:"hasTimeSlot"`
	SlotID      *int         `json:"slotId,omitempty"`
	StartTime   *string      `json:"startTime,omitempty"`
	EndTime     *string      `json:"endTime,omitempty"`
	Adults      int          `json:"adults"`
	Children    int          `json:"children"`
	AdultPrice  types.Amount `json:"adultPrice,omitzero"`
	ChildPrice  types.Amount `json:"childPrice,omitzero"`
	TotalPrice  types.Amount `json:"totalPrice,omitzero"`
	MaxAdults   *int         `json:"maxAdults,omitempty"`
	MaxChildren *int         `json:"maxChildren,omitempty"`
}

// WithCounts returns a copy of the item with clamped counts and, when both unit
// prices are known, a recomputed total.
func (i CartItem) WithCounts(adults, children int) CartItem {
	i.Adults = max(adults, 0)
	i.Children = max(children, 0)
	if total, ok := lineTotal(i); ok {
		i.TotalPrice = total
	}
	return i
}

func lineTotal(i CartItem) (types.Amount, bool) {
	if !i.AdultPrice.Valid || !i.ChildPrice.Valid {
		return types.Amount{}, false
	}
	total := i.AdultPrice.Decimal().Mul(decimal.NewFromInt(int64(i.Adults))).
		Add(i.ChildPrice.Decimal().Mul(decimal.NewFromInt(int64(i.Children))))
	return types.AmountFromDecimal(total), true
}

// ConflictQuery identifies a prospective booking to check against the cart.
type ConflictQuery struct {
	ActivityID int
	Date       string
	SlotID     *int
	StartTime  *string
	EndTime    *string
}

// conflictsWith reports whether the item occupies the same activity, date and
// slot (or time range, when neither side has a slot) as q.
func (i CartItem) conflictsWith(q ConflictQuery) bool {
	if i.ActivityID != q.ActivityID || i.Date != q.Date {
		return false
	}
	if i.SlotID != nil && q.SlotID != nil {
		return *i.SlotID == *q.SlotID
	}
	if i.SlotID == nil && q.SlotID == nil {
		return sameOptional(i.StartTime, q.StartTime) && sameOptional(i.EndTime, q.EndTime)
	}
	return false
}

func sameOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
