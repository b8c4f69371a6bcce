package http

import (
	"net/http"

	"loan-calculator/domain"
	"loan-calculator/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

type emiRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TenureYears       int     `json:"tenureYears"`
}

type emiResponse struct {
	Emi float64 `json:"emi"`
}

func (h *LoanHandler) ComputeEmi(w http.ResponseWriter, r *http.Request) {
	var req emiRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	emi, err := service.ComputeEmi(req.Principal, req.AnnualRatePercent, req.TenureYears)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, emiResponse{Emi: service.RoundTo2Decimals(emi)})
}

func (h *LoanHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if err := decodeJSON(r, &input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, roundResult(result))
}
