package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"loan-calculator/domain"
	"loan-calculator/service"
)

// writeJSON encodes into a buffer first so a failed encode never writes the header.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	logger := zerolog.Ctx(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error().Err(err).Msg("failed to write response")
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnaffordablePayment):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("unexpected service error")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// roundResult rounds every amount in the response to cents.
func roundResult(result domain.LoanResult) domain.LoanResult {
	records := make([]domain.AmortizationRecord, len(result.Schedule.Records))
	for i, rec := range result.Schedule.Records {
		records[i] = domain.AmortizationRecord{
			MonthIndex:       rec.MonthIndex,
			PrincipalPaid:    service.RoundTo2Decimals(rec.PrincipalPaid),
			InterestPaid:     service.RoundTo2Decimals(rec.InterestPaid),
			RemainingBalance: service.RoundTo2Decimals(rec.RemainingBalance),
		}
	}

	rounded := domain.LoanResult{
		Emi: service.RoundTo2Decimals(result.Emi),
		Schedule: domain.AmortizationSummary{
			Records:             records,
			TotalInterest:       service.RoundTo2Decimals(result.Schedule.TotalInterest),
			TotalPaid:           service.RoundTo2Decimals(result.Schedule.TotalPaid),
			ActualTenureMonths:  result.Schedule.ActualTenureMonths,
			NominalTenureMonths: result.Schedule.NominalTenureMonths,
		},
	}
	if result.Savings != nil {
		rounded.Savings = &domain.Savings{
			InterestSaved: service.RoundTo2Decimals(result.Savings.InterestSaved),
			MonthsSaved:   result.Savings.MonthsSaved,
		}
	}
	return rounded
}
