package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"loan-calculator/service"
)

type Dependencies struct {
	LoanService           *service.LoanService
	RecommendationService *service.TenureRecommendationService
	RateLimiter           *RateLimiter
	Logger                zerolog.Logger
}

func NewRouter(deps Dependencies) chi.Router {
	loanHandler := NewLoanHandler(deps.LoanService)
	recommendationHandler := NewTenureRecommendationHandler(deps.RecommendationService)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(RequestLogger(deps.Logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1/loan", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(RateLimitMiddleware(deps.RateLimiter))
		}
		r.Post("/emi", loanHandler.ComputeEmi)
		r.Post("/schedule", loanHandler.CalculateSchedule)
		r.Post("/recommend-tenure", recommendationHandler.RecommendTenure)
	})

	return router
}
