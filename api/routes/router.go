package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/activitycart/api/controllers"
	cartcontrollers "github.com/angelmondragon/activitycart/api/controllers/cart"
	"github.com/angelmondragon/activitycart/api/middleware"
	"github.com/angelmondragon/activitycart/internal/cart"
	"github.com/angelmondragon/activitycart/pkg/config"
	"github.com/angelmondragon/activitycart/pkg/logger"
)

// NewRouter mounts the health probes, the cart API and, when enabled, the
// prometheus scrape endpoint. gatherer may be nil when metrics are disabled.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store *cart.Store,
	editor *cart.Editor,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", cartcontrollers.Get(editor))
		r.Delete("/", cartcontrollers.Clear(store, editor))
		r.Get("/count", cartcontrollers.Count(store))
		r.Get("/count/stream", cartcontrollers.CountStream(store, logg))
		r.Get("/conflicts", cartcontrollers.Conflicts(store, logg))

		r.Route("/items", func(r chi.Router) {
			r.Post("/", cartcontrollers.AddItem(store, editor, logg))
			r.Patch("/{index}", cartcontrollers.UpdateCounts(store, editor, logg))
			r.Delete("/{index}", cartcontrollers.RemoveItem(store, editor, logg))
			r.Post("/{index}/{party}/{direction}", cartcontrollers.StepCount(store, editor, logg))
		})
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
