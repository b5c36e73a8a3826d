package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCheckReady is the read-only readiness probe for external automation
// callers. Opaque data passed in the query is echoed back unmodified.
func (h *Handler) handleCheckReady(w http.ResponseWriter, r *http.Request) {
	data := []byte(r.URL.Query().Get("data"))
	ready, out, err := h.campaigns.CheckReady(r.Context(), chi.URLParam(r, "id"), data)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Ready bool   `json:"ready"`
		Data  string `json:"data"`
	}{Ready: ready, Data: string(out)})
}

// handleTrigger performs the automation finalize. Readiness is re-validated
// inside the engine; a stale trigger is rejected, never partially applied.
func (h *Handler) handleTrigger(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Data string `json:"data"`
	}
	if r.Body != nil {
		// body is optional for triggers
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	if err := h.campaigns.Trigger(r.Context(), chi.URLParam(r, "id"), []byte(body.Data)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
