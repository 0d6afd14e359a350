// Package api implements app.Runner for the bridge client process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/bridge-transfer/pkg/app/http"
	"github.com/chainsafe/bridge-transfer/pkg/auth"
	"github.com/chainsafe/bridge-transfer/pkg/balance"
	"github.com/chainsafe/bridge-transfer/pkg/config"
	"github.com/chainsafe/bridge-transfer/pkg/connection"
	"github.com/chainsafe/bridge-transfer/pkg/network"
	transferservice "github.com/chainsafe/bridge-transfer/pkg/transfer/service"
	"github.com/chainsafe/bridge-transfer/pkg/wallet"
)

const (
	defaultRequestTimeout = 60
	walletDialTimeout     = 10 * time.Second
)

// Server holds cfg to init the bridge client.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new bridge client server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("bridge client config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting bridge client",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("wallet_mode", cfg.Wallet.Mode),
	)

	registry, err := network.Load(cfg)
	if err != nil {
		return fmt.Errorf("load network registry: %w", err)
	}

	w, dial, closeWallet, err := s.openWallet(ctx, logger)
	if err != nil {
		return err
	}
	defer closeWallet()

	manager := connection.NewManager(w, registry, dial, logger)
	defer manager.Disconnect()

	reader := balance.NewReader(manager, registry, logger)
	manager.OnChange(func(c connection.Context) {
		if !c.Connected() {
			return
		}
		go reader.Refresh(ctx, c.Account, c.NetworkKey)
	})

	orchestrator, err := transferservice.NewOrchestrator(&cfg.Transfer, manager, registry, reader, logger)
	if err != nil {
		return fmt.Errorf("create transfer orchestrator: %w", err)
	}

	router := s.setupRouter(registry, manager, reader, transferservice.NewLog(orchestrator, logger), logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// openWallet returns the wallet and signer dialer for the configured mode.
// An unreachable rpc wallet is reported as not installed on connect.
func (s *Server) openWallet(ctx context.Context, logger *zap.Logger) (wallet.Wallet, wallet.Dialer, func(), error) {
	wc := s.cfg.Wallet

	switch wc.Mode {
	case "keyed":
		kw, err := wallet.NewKeyedWallet(wc.PrivateKey, wc.PollInterval, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create keyed wallet: %w", err)
		}
		logger.Info("Using keyed wallet", zap.String("account", kw.Address().Hex()))
		return kw, kw.Dialer(), func() {}, nil
	default:
		dial := wallet.DialRPCSigner(wc.PollInterval)

		dialCtx, cancel := context.WithTimeout(ctx, walletDialTimeout)
		defer cancel()

		rw, err := wallet.DialRPCWallet(dialCtx, wc.URL, wc.PollInterval, logger)
		if err != nil {
			logger.Warn("Wallet provider not reachable", zap.String("url", wc.URL), zap.Error(err))
			return nil, dial, func() {}, nil
		}
		logger.Info("Connected to wallet provider", zap.String("url", wc.URL))
		return rw, dial, rw.Close, nil
	}
}

func (s *Server) setupRouter(
	registry *network.Registry,
	manager *connection.Manager,
	reader *balance.Reader,
	transfers transferservice.Service,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		if s.cfg.Auth.Enabled() {
			logger.Info("API authentication enabled", zap.String("issuer", s.cfg.Auth.Issuer))
			r.Use(auth.Middleware(auth.NewJWTValidator(s.cfg.Auth), logger))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(time.Second * defaultRequestTimeout))
			network.RegisterRoutes(r, registry)
			connection.RegisterRoutes(r, manager, logger)
			balance.RegisterRoutes(r, reader)
		})

		// Submissions wait for confirmations without a request deadline.
		transferservice.RegisterRoutes(r, transfers, logger)
	})

	return r
}
