package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"fundvault/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the campaign engine and
// the factory on a chi.Router. Caller identity for gated operations comes
// from the X-Caller-Address header; the service trusts its fronting gateway
// to have authenticated it.
type Handler struct {
	campaigns port.CampaignUseCase
	factory   port.FactoryUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, factory port.FactoryUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, factory: factory, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Get("/events", h.handleListEvents)
				r.Post("/approve", h.handleApprove)
				r.Post("/deposit", h.handleDeposit)
				r.Post("/finalize", h.handleFinalize)
				r.Post("/refund", h.handleClaimRefund)
				r.Post("/pause", h.handlePause)
				r.Post("/unpause", h.handleUnpause)
				r.Patch("/fee", h.handleUpdateFee)
				r.Patch("/deadline", h.handleUpdateDeadline)
				r.Post("/products", h.handleAddProduct)
				r.Delete("/products/{productID}", h.handleRemoveProduct)
				r.Patch("/products/{productID}/price", h.handleUpdateProductPrice)
				r.Get("/check-ready", h.handleCheckReady)
				r.Post("/trigger", h.handleTrigger)
			})
		})
		r.Route("/factory", func(r chi.Router) {
			r.Put("/special-fees/{creator}", h.handleSetSpecialFee)
			r.Get("/special-fees/{creator}", h.handleGetSpecialFee)
			r.Put("/implementation", h.handleUpdateImplementation)
			r.Get("/implementation", h.handleGetImplementation)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
