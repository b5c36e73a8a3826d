package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fundvault/internal/core/port"
)

type approveBody struct {
	Amount int64 `json:"amount"`
}

// handleApprove authorizes the campaign's custody address to pull funds
// from the calling depositor.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	var body approveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.campaigns.Approve(r.Context(), chi.URLParam(r, "id"), caller(r), body.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type depositBody struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// handleDeposit settles a purchase for the calling depositor. The caller
// must have approved the campaign's custody address beforehand.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var body depositBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.campaigns.Deposit(r.Context(), port.DepositReq{
		CampaignID: chi.URLParam(r, "id"),
		Depositor:  caller(r),
		ProductID:  body.ProductID,
		Quantity:   body.Quantity,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleFinalize(w http.ResponseWriter, r *http.Request) {
	resp, err := h.campaigns.Finalize(r.Context(), chi.URLParam(r, "id"), caller(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type refundBody struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

func (h *Handler) handleClaimRefund(w http.ResponseWriter, r *http.Request) {
	var body refundBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.campaigns.ClaimRefund(r.Context(), port.RefundReq{
		CampaignID: chi.URLParam(r, "id"),
		Claimant:   caller(r),
		ProductID:  body.ProductID,
		Quantity:   body.Quantity,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	view, err := h.campaigns.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	events, err := h.campaigns.ListEvents(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, events)
}
