package cart

import (
	cartdto "github.com/angelmondragon/activitycart/api/controllers/cart/dto"
	cartsvc "github.com/angelmondragon/activitycart/internal/cart"
)

func newCartSummary(summary cartsvc.Summary) cartdto.CartSummary {
	lines := make([]cartdto.CartLine, 0, len(summary.Items))
	for i, item := range summary.Items {
		lines = append(lines, cartdto.CartLine{
			Index:       i,
			ActivityID:  item.ActivityID,
			Title:       item.Title,
			Date:        item.Date,
			HasTimeSlot: item.HasTimeSlot,
			SlotID:      item.SlotID,
			StartTime:   item.StartTime,
			EndTime:     item.EndTime,
			Adults:      item.Adults,
			Children:    item.Children,
			AdultPrice:  item.AdultPrice,
			ChildPrice:  item.ChildPrice,
			TotalPrice:  item.TotalPrice,
			MaxAdults:   item.MaxAdults,
			MaxChildren: item.MaxChildren,
		})
	}
	return cartdto.CartSummary{
		Items:    lines,
		Subtotal: summary.Subtotal,
		Count:    summary.Count,
	}
}
