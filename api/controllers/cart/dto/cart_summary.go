package cartdto

import "github.com/angelmondragon/activitycart/pkg/types"

// CartSummary is the cart snapshot returned by every cart endpoint that
// changes or reads the line items.
type CartSummary struct {
	Items    []CartLine   `json:"items"`
	Subtotal types.Amount `json:"subtotal"`
	Count    int          `json:"count"`
}

// CartLine is one activity booking as exposed through the API. The index is
// the position used by the item routes.
type CartLine struct {
	Index       int          `json:"index"`
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

type CountResponse struct {
	Count int `json:"count"`
}

type ConflictResponse struct {
	Conflict bool `json:"conflict"`
}
