package cartdto

import "github.com/angelmondragon/activitycart/pkg/types"

// AddItemRequest is the booking form payload for one activity line.
type AddItemRequest struct {
	ActivityID  int          `json:"activityId" validate:"required,min=1"`
	Title       string       `json:"title" validate:"required,max=256"`
	Date        string       `json:"date" validate:"required,datetime=2006-01-02"`
	HasTimeSlot bool         `json:"hasTimeSlot"`
	SlotID      *int         `json:"slotId,omitempty" validate:"omitempty,min=1"`
	StartTime   *string      `json:"startTime,omitempty" validate:"required_with=EndTime,omitempty,datetime=15:04"`
	EndTime     *string      `json:"endTime,omitempty" validate:"required_with=StartTime,omitempty,datetime=15:04"`
	Adults      int          `json:"adults" validate:"gte=0"`
	Children    int          `json:"children" validate:"gte=0"`
	AdultPrice  types.Amount `json:"adultPrice"`
	ChildPrice  types.Amount `json:"childPrice"`
	TotalPrice  types.Amount `json:"totalPrice"`
	MaxAdults   *int         `json:"maxAdults,omitempty" validate:"omitempty,gte=0"`
	MaxChildren *int         `json:"maxChildren,omitempty" validate:"omitempty,gte=0"`
}

// UpdateCountsRequest replaces both head counts of a cart line. Negative
// values are accepted and clamped to zero.
type UpdateCountsRequest struct {
	Adults   *int `json:"adults" validate:"required"`
	Children *int `json:"children" validate:"required"`
}
