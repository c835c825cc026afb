package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/activitycart/api/responses"
	"github.com/angelmondragon/activitycart/pkg/config"
	pkgerrors "github.com/angelmondragon/activitycart/pkg/errors"
	"github.com/angelmondragon/activitycart/pkg/logger"
)

const readyTimeout = 2 * time.Second

// Pinger is anything readiness depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ActivityCart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready once the cart storage backend answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, storage Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-ActivityCart-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := storage.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storage backend unavailable").
					WithDetails(map[string]any{"backend": cfg.Cart.NormalizedBackend()}))
			return
		}
		responses.WriteSuccess(w, map[string]string{
			"status":  "ready",
			"backend": cfg.Cart.NormalizedBackend(),
		})
	}
}
