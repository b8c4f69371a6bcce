package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"loan-calculator/domain"
	"loan-calculator/service"
)

type TenureRecommendationHandler struct {
	service *service.TenureRecommendationService
}

func NewTenureRecommendationHandler(service *service.TenureRecommendationService) *TenureRecommendationHandler {
	return &TenureRecommendationHandler{service: service}
}

func (h *TenureRecommendationHandler) RecommendTenure(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	// Content-Type must be JSON
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.TenureRecommendationInput
	if err := decodeJSON(r, &input); err != nil {
		logger.Warn().Err(err).Msg("error decoding request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.RecommendTenure(r.Context(), input)
	if err != nil {
		logger.Warn().Err(err).Msg("error recommending tenure")
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
