package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/bridge-transfer/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-transfer/pkg/app/http"
	"github.com/chainsafe/bridge-transfer/pkg/connection"
	"github.com/chainsafe/bridge-transfer/pkg/network"
	"github.com/chainsafe/bridge-transfer/pkg/transfer"
)

type submitRequest struct {
	Amount             string `json:"amount" validate:"required"`
	Mode               string `json:"mode" validate:"required,oneof=native token"`
	Recipient          string `json:"recipient" validate:"required,eth_addr"`
	DestinationChainID uint64 `json:"destination_chain_id" validate:"required,gt=0"`
}

type httpHandler struct {
	svc      Service
	validate *validator.Validate
	logger   *zap.Logger
}

// RegisterRoutes mounts the transfer endpoints on r.
func RegisterRoutes(r chi.Router, svc Service, logger *zap.Logger) {
	h := &httpHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
	r.Post("/transfers", apphttp.HandleError(h.submit))
	r.Get("/transfers/status", apphttp.HandleError(h.status))
}

func (h *httpHandler) submit(w http.ResponseWriter, r *http.Request) error {
	var body submitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := h.validate.Struct(&body); err != nil {
		return apperrors.BadRequestError(err, validationMessage(err))
	}

	// A dropped client connection must not abort a broadcast transfer.
	ctx := context.WithoutCancel(r.Context())
	out, err := h.svc.Submit(ctx, &transfer.Request{
		Amount:             body.Amount,
		Mode:               transfer.Mode(body.Mode),
		Recipient:          common.HexToAddress(body.Recipient),
		DestinationChainID: body.DestinationChainID,
	})
	if out == nil {
		if errors.Is(err, transfer.ErrSubmissionInProgress) {
			return apperrors.LockedError(err, "a transfer is already in progress")
		}
		return apperrors.GeneralError(err)
	}

	apphttp.WriteJSON(w, outcomeCategory(err).StatusCode(), out)
	return nil
}

func (h *httpHandler) status(w http.ResponseWriter, _ *http.Request) error {
	apphttp.WriteJSON(w, http.StatusOK, h.svc.State())
	return nil
}

// outcomeCategory picks the response status for a finished submission.
// Precondition failures map to client or state errors and provider failures
// to 502. Reverted, rejected and underfunded outcomes are returned as 200.
func outcomeCategory(err error) apperrors.Category {
	switch {
	case err == nil:
		return apperrors.CategoryNoError
	case errors.Is(err, transfer.ErrInvalidAmount), errors.Is(err, transfer.ErrInvalidDestination):
		return apperrors.CategoryDataError
	case errors.Is(err, connection.ErrNoActiveConnection):
		return apperrors.CategoryDataConflict
	case errors.Is(err, network.ErrNoBridgeDeployment), errors.Is(err, network.ErrUnknownNetwork):
		return apperrors.CategoryResourceNotFound
	case errors.Is(err, transfer.ErrFailed):
		return apperrors.CategoryDependencyFailure
	default:
		return apperrors.CategoryNoError
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "invalid field " + fe.Field() + ": failed " + fe.Tag()
	}
	return "invalid request"
}
