package cart

import (
	cartdto "github.com/angelmondragon/activitycart/api/controllers/cart/dto"
	"github.com/angelmondragon/activitycart/api/validators"
	cartsvc "github.com/angelmondragon/activitycart/internal/cart"
)

const maxTitleLen = 256

// toCartItem maps the booking payload onto a cart line. When both unit prices
// are known the total is derived from them; otherwise the submitted total is
// kept as-is.
func toCartItem(payload cartdto.AddItemRequest) cartsvc.CartItem {
	item := cartsvc.CartItem{
		ActivityID:  payload.ActivityID,
		Title:       validators.SanitizeString(payload.Title, maxTitleLen),
		Date:        payload.Date,
		HasTimeSlot: payload.HasTimeSlot,
		SlotID:      payload.SlotID,
		StartTime:   payload.StartTime,
		EndTime:     payload.EndTime,
		AdultPrice:  payload.AdultPrice,
		ChildPrice:  payload.ChildPrice,
		TotalPrice:  payload.TotalPrice,
		MaxAdults:   payload.MaxAdults,
		MaxChildren: payload.MaxChildren,
	}
	return item.WithCounts(payload.Adults, payload.Children)
}
