package network

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	apphttp "github.com/chainsafe/bridge-transfer/pkg/app/http"
)

type currencyResponse struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type deploymentResponse struct {
	BridgeAddress string `json:"bridge_address"`
	TokenAddress  string `json:"token_address,omitempty"`
	CallSignature string `json:"call_signature"`
}

type networkResponse struct {
	Key            Key                 `json:"key"`
	ChainID        uint64              `json:"chain_id"`
	ChainIDHex     string              `json:"chain_id_hex"`
	DisplayName    string              `json:"display_name"`
	NativeCurrency currencyResponse    `json:"native_currency"`
	Deployment     *deploymentResponse `json:"deployment,omitempty"`
}

// RegisterRoutes mounts the read-only registry endpoint on r.
func RegisterRoutes(r chi.Router, registry *Registry) {
	r.Get("/networks", apphttp.HandleError(func(w http.ResponseWriter, _ *http.Request) error {
		apphttp.WriteJSON(w, http.StatusOK, describe(registry))
		return nil
	}))
}

func describe(registry *Registry) []networkResponse {
	profiles := registry.Profiles()
	out := make([]networkResponse, 0, len(profiles))
	for _, p := range profiles {
		resp := networkResponse{
			Key:         p.Key,
			ChainID:     p.ChainID,
			ChainIDHex:  p.ChainIDHex(),
			DisplayName: p.DisplayName,
			NativeCurrency: currencyResponse{
				Name:     p.NativeCurrency.Name,
				Symbol:   p.NativeCurrency.Symbol,
				Decimals: p.NativeCurrency.Decimals,
			},
		}
		if d, err := registry.DeploymentFor(p.Key); err == nil {
			resp.Deployment = &deploymentResponse{
				BridgeAddress: d.BridgeAddress.Hex(),
				CallSignature: string(d.CallSignature),
			}
			if d.TokenAddress != (common.Address{}) {
				resp.Deployment.TokenAddress = d.TokenAddress.Hex()
			}
		}
		out = append(out, resp)
	}
	return out
}
