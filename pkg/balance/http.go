package balance

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/chainsafe/bridge-transfer/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-transfer/pkg/app/http"
	"github.com/chainsafe/bridge-transfer/pkg/connection"
)

// RegisterRoutes mounts the balance endpoints on r.
func RegisterRoutes(r chi.Router, reader *Reader) {
	r.Get("/balances", apphttp.HandleError(func(w http.ResponseWriter, _ *http.Request) error {
		active := reader.source.CurrentContext()
		if !active.Connected() {
			return notConnected(connection.ErrNoActiveConnection)
		}
		apphttp.WriteJSON(w, http.StatusOK, reader.Last(active.Account, active.NetworkKey))
		return nil
	}))

	r.Post("/balances/refresh", apphttp.HandleError(func(w http.ResponseWriter, req *http.Request) error {
		b, err := reader.RefreshActive(req.Context())
		if err != nil {
			return notConnected(err)
		}
		apphttp.WriteJSON(w, http.StatusOK, b)
		return nil
	}))
}

func notConnected(err error) error {
	if errors.Is(err, connection.ErrNoActiveConnection) {
		return apperrors.ConflictError(err, "connect a wallet first")
	}
	return apperrors.GeneralError(err)
}
