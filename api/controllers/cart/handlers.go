package cart

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	cartdto "github.com/angelmondragon/activitycart/api/controllers/cart/dto"
	"github.com/angelmondragon/activitycart/api/responses"
	"github.com/angelmondragon/activitycart/api/validators"
	cartsvc "github.com/angelmondragon/activitycart/internal/cart"
	pkgerrors "github.com/angelmondragon/activitycart/pkg/errors"
	"github.com/angelmondragon/activitycart/pkg/logger"
)

// Store is the cart store surface the handlers need.
type Store interface {
	Items(ctx context.Context) []cartsvc.CartItem
	HasConflict(ctx context.Context, q cartsvc.ConflictQuery) bool
	AddIfNoConflict(ctx context.Context, item cartsvc.CartItem) bool
	UpdateCounts(ctx context.Context, index, adults, children int)
	Remove(ctx context.Context, index int)
	Clear(ctx context.Context)
	Count() int
	Subscribe() (<-chan int, func())
}

// Editor is the step-control surface the handlers need.
type Editor interface {
	Load(ctx context.Context) cartsvc.Summary
	Step(ctx context.Context, index int, party cartsvc.Party, delta int) cartsvc.Summary
}

// Get returns the cart summary.
func Get(editor Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newCartSummary(editor.Load(r.Context())))
	}
}

// Count returns the current cart size.
func Count(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, cartdto.CountResponse{Count: store.Count()})
	}
}

// Conflicts reports whether a prospective booking overlaps a cart entry.
func Conflicts(store Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := conflictQueryFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cartdto.ConflictResponse{Conflict: store.HasConflict(r.Context(), q)})
	}
}

// AddItem appends a line item unless it overlaps an existing one.
func AddItem(store Store, editor Editor, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartdto.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item := toCartItem(payload)
		if !store.AddIfNoConflict(r.Context(), item) {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeConflict, "activity already booked for this date and time").
					WithDetails(map[string]any{"activityId": item.ActivityID, "date": item.Date}))
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, newCartSummary(editor.Load(r.Context())))
	}
}

// UpdateCounts sets both party sizes of one item.
func UpdateCounts(store Store, editor Editor, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := itemIndex(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartdto.UpdateCountsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.UpdateCounts(r.Context(), index, *payload.Adults, *payload.Children)
		responses.WriteSuccess(w, newCartSummary(editor.Load(r.Context())))
	}
}

// StepCount moves one party count up or down within the item's limits.
func StepCount(store Store, editor Editor, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := itemIndex(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		party := cartsvc.Party(chi.URLParam(r, "party"))
		if party != cartsvc.PartyAdults && party != cartsvc.PartyChildren {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "party must be adults or children"))
			return
		}

		var delta int
		switch chi.URLParam(r, "direction") {
		case "increment":
			delta = 1
		case "decrement":
			delta = -1
		default:
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "direction must be increment or decrement"))
			return
		}

		responses.WriteSuccess(w, newCartSummary(editor.Step(r.Context(), index, party, delta)))
	}
}

// RemoveItem deletes one item.
func RemoveItem(store Store, editor Editor, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := itemIndex(r, store)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		store.Remove(r.Context(), index)
		responses.WriteSuccess(w, newCartSummary(editor.Load(r.Context())))
	}
}

// Clear empties the cart.
func Clear(store Store, editor Editor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Clear(r.Context())
		responses.WriteSuccess(w, newCartSummary(editor.Load(r.Context())))
	}
}

// CountStream pushes the cart size as server-sent events until the client
// disconnects. The first event carries the current size.
func CountStream(store Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeInternal, "streaming unsupported"))
			return
		}

		updates, cancel := store.Subscribe()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case n, open := <-updates:
				if !open {
					return
				}
				if _, err := fmt.Fprintf(w, "event: count\ndata: {\"count\":%d}\n\n", n); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// itemIndex parses {index} and checks it against the current cart so clients
// get NOT_FOUND instead of a silent no-op. The store re-checks the index under
// its lock, so an item removed after this check turns the request into a no-op.
func itemIndex(r *http.Request, store Store) (int, error) {
	index, err := validators.ParsePathIndex(chi.URLParam(r, "index"))
	if err != nil {
		return 0, err
	}
	if index >= len(store.Items(r.Context())) {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return index, nil
}

func conflictQueryFromRequest(r *http.Request) (cartsvc.ConflictQuery, error) {
	activityID, err := validators.ParseRequiredQueryInt(r, "activityId")
	if err != nil {
		return cartsvc.ConflictQuery{}, err
	}
	date := validators.ParseOptionalQueryString(r, "date")
	if date == nil {
		return cartsvc.ConflictQuery{}, pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").
			WithDetails(map[string]any{"field": "date"})
	}
	slotID, err := validators.ParseOptionalQueryInt(r, "slotId")
	if err != nil {
		return cartsvc.ConflictQuery{}, err
	}
	return cartsvc.ConflictQuery{
		ActivityID: activityID,
		Date:       *date,
		SlotID:     slotID,
		StartTime:  validators.ParseOptionalQueryString(r, "startTime"),
		EndTime:    validators.ParseOptionalQueryString(r, "endTime"),
	}, nil
}
