package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fundvault/internal/core/domain"
)

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Pause(r.Context(), chi.URLParam(r, "id"), caller(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUnpause(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Unpause(r.Context(), chi.URLParam(r, "id"), caller(r)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateFee(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FeeBps int32 `json:"fee_bps"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.campaigns.UpdateFee(r.Context(), chi.URLParam(r, "id"), caller(r), body.FeeBps); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateDeadline(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Deadline time.Time `json:"deadline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.campaigns.UpdateDeadline(r.Context(), chi.URLParam(r, "id"), caller(r), body.Deadline); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var cfg domain.ProductConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.campaigns.AddProduct(r.Context(), chi.URLParam(r, "id"), caller(r), cfg); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func productID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
}

func (h *Handler) handleRemoveProduct(w http.ResponseWriter, r *http.Request) {
	pid, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	if err = h.campaigns.RemoveProduct(r.Context(), chi.URLParam(r, "id"), caller(r), pid); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleUpdateProductPrice(w http.ResponseWriter, r *http.Request) {
	pid, err := productID(r)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	var body struct {
		Price int64 `json:"price"`
	}
	if err = json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err = h.campaigns.UpdateProductPrice(r.Context(), chi.URLParam(r, "id"), caller(r), pid, body.Price); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
