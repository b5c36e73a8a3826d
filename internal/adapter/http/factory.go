package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"fundvault/internal/core/domain"
	"fundvault/internal/core/port"
)

type createCampaignBody struct {
	Beneficiary   domain.Address         `json:"beneficiary"`
	FeeWallet     domain.Address         `json:"fee_wallet"`
	Policy        domain.FundingPolicy   `json:"policy"`
	MinimumTarget int64                  `json:"minimum_target"`
	Deadline      time.Time              `json:"deadline"`
	Products      []domain.ProductConfig `json:"products"`
}

// handleCreateCampaign deploys a new campaign for the calling creator.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body createCampaignBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	view, err := h.factory.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Creator:       caller(r),
		Beneficiary:   body.Beneficiary,
		FeeWallet:     body.FeeWallet,
		Policy:        body.Policy,
		MinimumTarget: body.MinimumTarget,
		Deadline:      body.Deadline,
		Products:      body.Products,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	views, err := h.factory.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleSetSpecialFee(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FeeBps int32 `json:"fee_bps"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	creator := domain.Address(chi.URLParam(r, "creator"))
	if err := h.factory.SetSpecialFee(r.Context(), caller(r), creator, body.FeeBps); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetSpecialFee returns the pending override, or fee_bps: null as the
// unset sentinel.
func (h *Handler) handleGetSpecialFee(w http.ResponseWriter, r *http.Request) {
	creator := domain.Address(chi.URLParam(r, "creator"))
	bps, err := h.factory.GetSpecialFee(r.Context(), creator)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		FeeBps *int32 `json:"fee_bps"`
	}{FeeBps: bps})
}

// handleGetImplementation reports the ref new campaigns will bind to.
func (h *Handler) handleGetImplementation(w http.ResponseWriter, r *http.Request) {
	ref, err := h.factory.CurrentImplementation(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Ref string `json:"ref"`
	}{Ref: ref})
}

func (h *Handler) handleUpdateImplementation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Ref string `json:"ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.factory.UpdateImplementation(r.Context(), caller(r), body.Ref); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
