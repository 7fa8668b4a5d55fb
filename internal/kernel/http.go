// Package kernel assembles the HTTP stack: global middleware, operational
// endpoints, and the API routes.
package kernel

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/gbvars988/SoilFullStack/app/routes"
	"github.com/gbvars988/SoilFullStack/pkg/metrics"
	"github.com/gbvars988/SoilFullStack/pkg/middleware"
	"github.com/gbvars988/SoilFullStack/pkg/reqid"
	"github.com/gbvars988/SoilFullStack/pkg/response"
	"github.com/gbvars988/SoilFullStack/pkg/router"
)

// Build returns the fully wired router. Middleware order matters: metrics
// wraps everything for accurate total latency, recovery catches panics from
// everything below it, and the request id is injected before anything logs.
func Build(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(200, time.Minute),
	)

	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, db)

	return r
}
