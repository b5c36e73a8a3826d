package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy onto HTTP statuses: input validation
// to 400, authorization to 403, not-found to 404, policy violations and
// resource exhaustion to 409. Anything unclassified is logged and hidden
// behind a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyProducts),
		errors.Is(err, domain.ErrDuplicateProduct),
		errors.Is(err, domain.ErrInvalidProduct),
		errors.Is(err, domain.ErrInvalidFee),
		errors.Is(err, domain.ErrUnknownPolicy),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidRef):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, port.ErrNotMinter):
		status = http.StatusForbidden
	case errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, domain.ErrUnknownProduct):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrPaused),
		errors.Is(err, domain.ErrFinalized),
		errors.Is(err, domain.ErrNotFinalized),
		errors.Is(err, domain.ErrNotRefundable),
		errors.Is(err, domain.ErrDeadlineNotReached),
		errors.Is(err, domain.ErrSupplyExhausted),
		errors.Is(err, domain.ErrInsufficientReceipts),
		errors.Is(err, port.ErrProductExists),
		errors.Is(err, port.ErrInsufficientFunds),
		errors.Is(err, port.ErrInsufficientAllowance):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, status, errorBody{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorBody{Error: err.Error()})
}

// caller reads the authenticated caller address from the request.
func caller(r *http.Request) domain.Address {
	return domain.Address(r.Header.Get("X-Caller-Address"))
}
