package connection

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-transfer/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-transfer/pkg/app/http"
	"github.com/chainsafe/bridge-transfer/pkg/network"
)

type networkRequest struct {
	Network string `json:"network" validate:"required"`
}

type contextResponse struct {
	Context
	Connected bool `json:"connected"`
}

type httpHandler struct {
	manager  *Manager
	validate *validator.Validate
	logger   *zap.Logger
}

// RegisterRoutes mounts the connection endpoints on r.
func RegisterRoutes(r chi.Router, manager *Manager, logger *zap.Logger) {
	h := &httpHandler{
		manager:  manager,
		validate: validator.New(),
		logger:   logger,
	}
	r.Post("/connect", apphttp.HandleError(h.connect))
	r.Delete("/connect", apphttp.HandleError(h.disconnect))
	r.Post("/network", apphttp.HandleError(h.switchNetwork))
	r.Get("/context", apphttp.HandleError(h.current))
}

func (h *httpHandler) decode(r *http.Request) (network.Key, error) {
	var body networkRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := h.validate.Struct(&body); err != nil {
		return "", apperrors.BadRequestError(err, "network is required")
	}
	return network.Key(body.Network), nil
}

func (h *httpHandler) connect(w http.ResponseWriter, r *http.Request) error {
	key, err := h.decode(r)
	if err != nil {
		return err
	}
	c, err := h.manager.Connect(r.Context(), key)
	if err != nil {
		return toServiceError(err)
	}
	apphttp.WriteJSON(w, http.StatusOK, contextResponse{Context: c, Connected: true})
	return nil
}

func (h *httpHandler) switchNetwork(w http.ResponseWriter, r *http.Request) error {
	key, err := h.decode(r)
	if err != nil {
		return err
	}
	c, err := h.manager.SwitchNetwork(r.Context(), key)
	if err != nil {
		return toServiceError(err)
	}
	apphttp.WriteJSON(w, http.StatusOK, contextResponse{Context: c, Connected: true})
	return nil
}

func (h *httpHandler) disconnect(w http.ResponseWriter, _ *http.Request) error {
	h.manager.Disconnect()
	apphttp.WriteJSON(w, http.StatusOK, contextResponse{})
	return nil
}

func (h *httpHandler) current(w http.ResponseWriter, _ *http.Request) error {
	c := h.manager.CurrentContext()
	apphttp.WriteJSON(w, http.StatusOK, contextResponse{Context: c, Connected: c.Connected()})
	return nil
}

func toServiceError(err error) error {
	switch {
	case errors.Is(err, ErrWalletNotInstalled):
		return apperrors.UnavailableError(err, "no wallet is installed or reachable")
	case errors.Is(err, network.ErrUnknownNetwork):
		return apperrors.ResourceNotFoundError(err, "unknown network")
	case errors.Is(err, ErrNoActiveConnection):
		return apperrors.ConflictError(err, "connect a wallet first")
	case errors.Is(err, ErrNetworkRegistrationFailed):
		return apperrors.DependencyError(err, "wallet did not add the network")
	case errors.Is(err, ErrNetworkSwitchFailed):
		return apperrors.DependencyError(err, "wallet did not switch network")
	default:
		return apperrors.DependencyError(err, "wallet request failed")
	}
}
