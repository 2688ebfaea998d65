package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storefront/wallet-checkout/walletpay-service/application"
	"github.com/storefront/wallet-checkout/walletpay-service/domain"
)

// WalletHandlers contains wallet HTTP handlers
type WalletHandlers struct {
	controller *application.WalletInteractionController
}

// NewWalletHandlers creates new wallet handlers
func NewWalletHandlers(controller *application.WalletInteractionController) *WalletHandlers {
	return &WalletHandlers{controller: controller}
}

type stateResponse struct {
	State domain.SessionState `json:"state"`
}

// Initialize handles wallet initialization requests
func (h *WalletHandlers) Initialize(w http.ResponseWriter, r *http.Request) {
	methodID := chi.URLParam(r, "methodID")
	if methodID == "" {
		http.Error(w, "Payment method ID is required", http.StatusBadRequest)
		return
	}

	err := h.controller.Initialize(r.Context(), &application.WalletOptions{MethodID: methodID})
	if err != nil {
		writeError(w, err)
		return
	}

	writeState(w, http.StatusCreated, h.controller.State())
}

// Activate handles synthetic trigger activations
func (h *WalletHandlers) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.HandleActivation(r.Context(), nil); err != nil {
		writeError(w, err)
		return
	}

	writeState(w, http.StatusOK, h.controller.State())
}

// State reports the current interaction state
func (h *WalletHandlers) State(w http.ResponseWriter, r *http.Request) {
	writeState(w, http.StatusOK, h.controller.State())
}

// Deinitialize tears the wallet integration down
func (h *WalletHandlers) Deinitialize(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Deinitialize(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers wallet routes
func (h *WalletHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/wallet", func(r chi.Router) {
		r.Post("/{methodID}/initialize", h.Initialize)
		r.Post("/activate", h.Activate)
		r.Get("/state", h.State)
		r.Delete("/", h.Deinitialize)
	})
}

func writeState(w http.ResponseWriter, status int, state domain.SessionState) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(stateResponse{State: state})
}

func writeError(w http.ResponseWriter, err error) {
	var invalidArgument *domain.InvalidArgumentError
	var missingConfiguration *domain.MissingConfigurationError
	var notInitialized *domain.NotInitializedError

	switch {
	case errors.As(err, &invalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &missingConfiguration):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &notInitialized):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
