package web

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nisavid/32health-assmt-claim-process/claims/health"
	"github.com/nisavid/32health-assmt-claim-process/claims/models/postgres"
	"github.com/nisavid/32health-assmt-claim-process/claims/service"
	"github.com/nisavid/32health-assmt-claim-process/claims/web/middleware"
)

func NewAPIRouter(db *sql.DB) http.Handler {
	claimService = service.NewService(postgres.NewRepository(db))
	healthChecker = health.NewHealthChecker(db)

	r := chi.NewRouter()
	r.Use(middleware.NewTransactionID, NewStructuredLogger(), SecurityHeader, ConnectionClose)

	rateLimiter := middleware.NewRateLimitMiddleware()

	r.Post("/claims", createClaims)
	r.Get("/claims", getClaims)
	r.Get("/claims/{claimID}", getClaim)
	r.With(rateLimiter.Limit).Get("/top-provider-npis", topProviderNPIs)

	r.Get("/_version", getVersion)
	r.Get("/_health", healthCheck)
	return r
}
