// Package connection owns the active wallet connection: which account is in
// use, on which network, and the signer bound to both.
package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-transfer/internal/metrics"
	"github.com/chainsafe/bridge-transfer/pkg/network"
	"github.com/chainsafe/bridge-transfer/pkg/wallet"
)

var (
	ErrWalletNotInstalled        = errors.New("wallet not installed")
	ErrNetworkRegistrationFailed = errors.New("network registration failed")
	ErrNetworkSwitchFailed       = errors.New("network switch failed")
	ErrNoActiveConnection        = errors.New("no active connection")
	ErrNoAccounts                = errors.New("wallet returned no accounts")
)

// Context is a snapshot of the active connection.
type Context struct {
	Account    common.Address `json:"account"`
	NetworkKey network.Key    `json:"network"`
	ChainID    uint64         `json:"chain_id"`
}

// Connected reports whether both an account and a network are set.
func (c Context) Connected() bool {
	return c.NetworkKey != "" && c.Account != (common.Address{})
}

// Manager is the only place the connection context is mutated.
type Manager struct {
	wallet   wallet.Wallet
	registry *network.Registry
	dial     wallet.Dialer
	logger   *zap.Logger

	// opMu serializes connect, switch and disconnect.
	opMu sync.Mutex

	mu        sync.RWMutex
	current   Context
	lease     *signerLease
	observers []func(Context)
}

// signerLease counts holders of a signer. A replaced signer is closed once
// the last holder releases it.
type signerLease struct {
	signer  wallet.Signer
	refs    int
	retired bool
}

// NewManager creates a Manager. w may be nil when no wallet is configured or
// reachable, in which case Connect fails with ErrWalletNotInstalled.
func NewManager(w wallet.Wallet, registry *network.Registry, dial wallet.Dialer, logger *zap.Logger) *Manager {
	return &Manager{
		wallet:   w,
		registry: registry,
		dial:     dial,
		logger:   logger.Named("connection"),
	}
}

// Connect binds the first account the wallet authorizes on the network
// identified by key. On any failure the current context is left unchanged.
func (m *Manager) Connect(ctx context.Context, key network.Key) (Context, error) {
	if m.wallet == nil {
		metrics.ConnectAttempts.WithLabelValues(string(key), "wallet_missing").Inc()
		return Context{}, ErrWalletNotInstalled
	}

	profile, err := m.registry.Lookup(key)
	if err != nil {
		metrics.ConnectAttempts.WithLabelValues(string(key), "unknown_network").Inc()
		return Context{}, err
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	logger := m.logger.With(zap.String("network", string(key)), zap.Uint64("chain_id", profile.ChainID))
	chainIDHex := profile.ChainIDHex()

	params := wallet.ChainParams{
		ChainID:   chainIDHex,
		ChainName: profile.DisplayName,
		NativeCurrency: wallet.NativeCurrency{
			Name:     profile.NativeCurrency.Name,
			Symbol:   profile.NativeCurrency.Symbol,
			Decimals: profile.NativeCurrency.Decimals,
		},
		RPCURLs: profile.RPCURLs,
	}
	if err := m.wallet.RegisterNetwork(ctx, params); err != nil {
		logger.Warn("Network registration failed", zap.Error(err))
		metrics.ConnectAttempts.WithLabelValues(string(key), "registration_failed").Inc()
		return Context{}, fmt.Errorf("%w: %w", ErrNetworkRegistrationFailed, err)
	}

	if err := m.wallet.SwitchNetwork(ctx, chainIDHex); err != nil {
		logger.Warn("Network switch failed", zap.Error(err))
		metrics.ConnectAttempts.WithLabelValues(string(key), "switch_failed").Inc()
		return Context{}, fmt.Errorf("%w: %w", ErrNetworkSwitchFailed, err)
	}

	accounts, err := m.wallet.RequestAccounts(ctx)
	if err != nil {
		metrics.ConnectAttempts.WithLabelValues(string(key), "accounts_failed").Inc()
		return Context{}, fmt.Errorf("failed to request accounts: %w", err)
	}
	if len(accounts) == 0 {
		metrics.ConnectAttempts.WithLabelValues(string(key), "accounts_failed").Inc()
		return Context{}, ErrNoAccounts
	}
	account := accounts[0]

	signer, err := m.wallet.Signer(ctx, account)
	if err != nil {
		metrics.ConnectAttempts.WithLabelValues(string(key), "signer_failed").Inc()
		return Context{}, fmt.Errorf("failed to get signer for %s: %w", account.Hex(), err)
	}

	next := Context{Account: account, NetworkKey: key, ChainID: profile.ChainID}
	m.replace(next, signer)
	metrics.ConnectAttempts.WithLabelValues(string(key), "connected").Inc()
	logger.Info("Wallet connected", zap.String("account", account.Hex()))
	return next, nil
}

// SwitchNetwork moves the existing account to the network identified by key
// through that network's first RPC endpoint, without prompting the wallet.
func (m *Manager) SwitchNetwork(ctx context.Context, key network.Key) (Context, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	current := m.CurrentContext()
	if !current.Connected() {
		return Context{}, ErrNoActiveConnection
	}

	profile, err := m.registry.Lookup(key)
	if err != nil {
		return Context{}, err
	}

	signer, err := m.dial(ctx, profile.RPCURLs[0], current.Account)
	if err != nil {
		m.logger.Warn("Direct network switch failed",
			zap.String("network", string(key)),
			zap.Error(err))
		metrics.ConnectAttempts.WithLabelValues(string(key), "switch_failed").Inc()
		return Context{}, fmt.Errorf("%w: %w", ErrNetworkSwitchFailed, err)
	}

	next := Context{Account: current.Account, NetworkKey: key, ChainID: profile.ChainID}
	m.replace(next, signer)
	metrics.ConnectAttempts.WithLabelValues(string(key), "switched").Inc()
	m.logger.Info("Switched network",
		zap.String("from", string(current.NetworkKey)),
		zap.String("to", string(key)),
		zap.String("account", current.Account.Hex()))
	return next, nil
}

// Disconnect clears the connection context and releases the signer.
func (m *Manager) Disconnect() {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if !m.CurrentContext().Connected() {
		return
	}
	m.replace(Context{}, nil)
	m.logger.Info("Wallet disconnected")
}

// CurrentContext returns a snapshot of the connection context.
func (m *Manager) CurrentContext() Context {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// ActiveSigner returns the signer together with the context it is bound to.
// The signer may be closed by the next context change; callers that use it
// across blocking calls take it with AcquireSigner instead.
func (m *Manager) ActiveSigner() (wallet.Signer, Context, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.current.Connected() || m.lease == nil {
		return nil, Context{}, ErrNoActiveConnection
	}
	return m.lease.signer, m.current, nil
}

// AcquireSigner is ActiveSigner for long-running use. The signer stays open
// until release is called, even if the context changes meanwhile.
func (m *Manager) AcquireSigner() (signer wallet.Signer, active Context, release func(), err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.current.Connected() || m.lease == nil {
		return nil, Context{}, nil, ErrNoActiveConnection
	}

	l := m.lease
	l.refs++
	var once sync.Once
	return l.signer, m.current, func() { once.Do(func() { m.release(l) }) }, nil
}

func (m *Manager) release(l *signerLease) {
	m.mu.Lock()
	l.refs--
	closeNow := l.retired && l.refs == 0
	m.mu.Unlock()

	if closeNow {
		l.signer.Close()
	}
}

// OnChange registers fn to be called after every context change.
func (m *Manager) OnChange(fn func(Context)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

func (m *Manager) replace(next Context, signer wallet.Signer) {
	m.mu.Lock()
	prev := m.lease
	closePrev := false
	if prev == nil || prev.signer != signer {
		m.lease = nil
		if signer != nil {
			m.lease = &signerLease{signer: signer}
		}
		if prev != nil {
			prev.retired = true
			closePrev = prev.refs == 0
		}
	}
	m.current = next
	observers := append([]func(Context){}, m.observers...)
	m.mu.Unlock()

	if closePrev {
		prev.signer.Close()
	}
	for _, fn := range observers {
		fn(next)
	}
}
