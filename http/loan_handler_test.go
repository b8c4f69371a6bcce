package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-calculator/domain"
	"loan-calculator/repository"
	"loan-calculator/service"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(Dependencies{
		LoanService:           service.NewLoanService(repository.NewMemoryCache(0, 0), 0),
		RecommendationService: service.NewTenureRecommendationService(),
		Logger:                zerolog.New(zerolog.NewTestWriter(t)),
	})
}

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestComputeEmiHandler_OK(t *testing.T) {
	router := newTestRouter(t)

	w := post(t, router, "/api/v1/loan/emi", `{"principal": 10000, "annualRatePercent": 5, "tenureYears": 10}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp emiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 106.07, resp.Emi)
}

func TestComputeEmiHandler_ZeroTenure(t *testing.T) {
	router := newTestRouter(t)

	w := post(t, router, "/api/v1/loan/emi", `{"principal": 10000, "annualRatePercent": 5, "tenureYears": 0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateScheduleHandler_OK(t *testing.T) {
	router := newTestRouter(t)

	w := post(t, router, "/api/v1/loan/schedule",
		`{"principal": 50000, "annualRatePercent": 5, "tenureYears": 10, "extraMonthlyPayment": 200}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result domain.LoanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 530.33, result.Emi)
	assert.Equal(t, 81, result.Schedule.ActualTenureMonths)
	assert.Len(t, result.Schedule.Records, 81)
	assert.Equal(t, 0.0, result.Schedule.Records[80].RemainingBalance)
	require.NotNil(t, result.Savings)
	assert.Equal(t, 39, result.Savings.MonthsSaved)
}

func TestCalculateScheduleHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loan/schedule", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateScheduleHandler_BadRequest(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{invalid-json}`},
		{name: "unknown field", body: `{"amount": 10000}`},
		{name: "negative rate", body: `{"principal": 10000, "annualRatePercent": -2, "tenureYears": 10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, router, "/api/v1/loan/schedule", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRecommendTenureHandler(t *testing.T) {
	router := newTestRouter(t)

	w := post(t, router, "/api/v1/loan/recommend-tenure", `{
		"principal": 100000,
		"annualRatePercent": 8,
		"minTenureYears": 5,
		"maxTenureYears": 20,
		"maxMonthlyPayment": 2000,
		"preference": "minimize_interest"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.TenureRecommendationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 6, result.RecommendedTenureYears)

	w = post(t, router, "/api/v1/loan/recommend-tenure", `{
		"principal": 100000,
		"annualRatePercent": 8,
		"minTenureYears": 5,
		"maxTenureYears": 20,
		"maxMonthlyPayment": 100,
		"preference": "balanced"
	}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRecommendTenureHandler_RequiresJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/loan/recommend-tenure", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
