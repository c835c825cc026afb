package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/angelmondragon/activitycart/api/responses"
	pkgerrors "github.com/angelmondragon/activitycart/pkg/errors"
	"github.com/angelmondragon/activitycart/pkg/logger"
)

// Recoverer turns handler panics into INTERNAL_ERROR responses. Aborted
// handlers (http.ErrAbortHandler) are re-panicked for net/http to handle.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				err := fmt.Errorf("panic: %v", rec)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{"panic": rec})
					logg.Error(ctx, "panic.recovered", err)
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
