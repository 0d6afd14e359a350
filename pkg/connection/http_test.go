package connection

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-transfer/pkg/wallet/mocks"
)

func newConnectionTestServer(m *Manager) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, m, zap.NewNop())
	return r
}

func doRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestConnectHTTP(t *testing.T) {
	w := mocks.NewWallet(t)
	m := NewManager(w, testRegistry(t), noDial, zap.NewNop())
	expectConnect(w, "0x3b1", mocks.NewSigner(t))
	handler := newConnectionTestServer(m)

	rec := doRequest(handler, http.MethodPost, "/connect", `{"network":"bittensor"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got contextResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Connected || got.NetworkKey != "bittensor" || got.Account != testAccount || got.ChainID != 945 {
		t.Fatalf("unexpected context %+v", got)
	}

	rec = doRequest(handler, http.MethodGet, "/context", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if !got.Connected || got.NetworkKey != "bittensor" {
		t.Fatalf("unexpected context %+v", got)
	}
}

func TestConnectHTTP_ErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		wallet func(t *testing.T) *mocks.Wallet
		body   string
		want   int
	}{
		{
			name:   "missing network",
			wallet: func(t *testing.T) *mocks.Wallet { return mocks.NewWallet(t) },
			body:   `{}`,
			want:   http.StatusBadRequest,
		},
		{
			name:   "unknown network",
			wallet: func(t *testing.T) *mocks.Wallet { return mocks.NewWallet(t) },
			body:   `{"network":"polygon"}`,
			want:   http.StatusNotFound,
		},
		{
			name: "registration failed",
			wallet: func(t *testing.T) *mocks.Wallet {
				w := mocks.NewWallet(t)
				w.EXPECT().RegisterNetwork(mock.Anything, mock.Anything).Return(errors.New("nope")).Once()
				return w
			},
			body: `{"network":"ethereum"}`,
			want: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.wallet(t), testRegistry(t), noDial, zap.NewNop())
			rec := doRequest(newConnectionTestServer(m), http.MethodPost, "/connect", tt.body)
			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestConnectHTTP_NoWallet(t *testing.T) {
	m := NewManager(nil, testRegistry(t), noDial, zap.NewNop())
	rec := doRequest(newConnectionTestServer(m), http.MethodPost, "/connect", `{"network":"ethereum"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestSwitchNetworkHTTP_NotConnected(t *testing.T) {
	m := NewManager(mocks.NewWallet(t), testRegistry(t), noDial, zap.NewNop())
	rec := doRequest(newConnectionTestServer(m), http.MethodPost, "/network", `{"network":"ethereum"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestDisconnectHTTP(t *testing.T) {
	w := mocks.NewWallet(t)
	signer := mocks.NewSigner(t)
	m := NewManager(w, testRegistry(t), noDial, zap.NewNop())
	handler := newConnectionTestServer(m)

	expectConnect(w, "0xaa36a7", signer)
	if rec := doRequest(handler, http.MethodPost, "/connect", `{"network":"ethereum"}`); rec.Code != http.StatusOK {
		t.Fatalf("connect failed with status %d", rec.Code)
	}

	signer.EXPECT().Close().Return().Once()
	rec := doRequest(handler, http.MethodDelete, "/connect", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if m.CurrentContext().Connected() {
		t.Fatal("expected context to be cleared")
	}
}
