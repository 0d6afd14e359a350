// Package balance reads the native and bridged-token balances shown next to
// the transfer form.
package balance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	cache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-transfer/internal/metrics"
	"github.com/chainsafe/bridge-transfer/pkg/connection"
	"github.com/chainsafe/bridge-transfer/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-transfer/pkg/network"
	"github.com/chainsafe/bridge-transfer/pkg/wallet"
)

// TokenDecimals is the fixed precision of the bridged token.
const TokenDecimals = 18

// SignerSource lends the signer used for reads.
type SignerSource interface {
	AcquireSigner() (signer wallet.Signer, active connection.Context, release func(), err error)
	CurrentContext() connection.Context
}

// Balances is the balance pair for one account on one network.
type Balances struct {
	Account      common.Address  `json:"account"`
	Network      network.Key     `json:"network"`
	Native       decimal.Decimal `json:"native"`
	NativeSymbol string          `json:"native_symbol"`
	Token        decimal.Decimal `json:"token"`
	UpdatedAt    time.Time       `json:"updated_at,omitzero"`
}

type balanceKey struct {
	account common.Address
	network network.Key
}

func (k balanceKey) String() string {
	return k.account.Hex() + "@" + string(k.network)
}

// Reader fetches balances and remembers the last value read for each
// account and network. A failed read keeps the previous value.
type Reader struct {
	source   SignerSource
	registry *network.Registry
	logger   *zap.Logger

	last *cache.Cache
	// refreshing holds one *sync.Mutex per balanceKey.
	refreshing sync.Map
}

func NewReader(source SignerSource, registry *network.Registry, logger *zap.Logger) *Reader {
	return &Reader{
		source:   source,
		registry: registry,
		logger:   logger.Named("balance"),
		last:     cache.New(cache.NoExpiration, 0),
	}
}

// Refresh reads both balances for account on the network identified by key.
// Read failures are logged and never returned.
func (r *Reader) Refresh(ctx context.Context, account common.Address, key network.Key) Balances {
	bk := balanceKey{account: account, network: key}
	lock := r.keyLock(bk)
	lock.Lock()
	defer lock.Unlock()

	result := r.lookup(bk)

	logger := r.logger.With(zap.String("account", account.Hex()), zap.String("network", string(key)))

	profile, err := r.registry.Lookup(key)
	if err != nil {
		logger.Warn("Balance refresh skipped", zap.Error(err))
		return result
	}
	result.NativeSymbol = profile.NativeCurrency.Symbol

	signer, active, release, err := r.source.AcquireSigner()
	if err != nil {
		logger.Warn("Balance refresh skipped", zap.Error(err))
		return result
	}
	defer release()
	if active.NetworkKey != key {
		logger.Warn("Balance refresh skipped",
			zap.String("active_network", string(active.NetworkKey)))
		return result
	}

	updated := false
	if native, err := r.readNative(ctx, signer, account, profile.NativeCurrency.Decimals); err != nil {
		logger.Warn("Failed to read native balance", zap.Error(err))
		metrics.BalanceReadErrors.WithLabelValues(string(key), "native").Inc()
	} else {
		result.Native = native
		updated = true
	}

	deployment, err := r.registry.DeploymentFor(key)
	switch {
	case err != nil:
		logger.Debug("No bridge deployment, token balance not read", zap.Error(err))
	case deployment.TokenAddress == (common.Address{}):
		logger.Debug("No bridged token on network, token balance not read")
	default:
		if token, err := r.readToken(ctx, signer, deployment.TokenAddress, account); err != nil {
			logger.Warn("Failed to read token balance",
				zap.String("token", deployment.TokenAddress.Hex()),
				zap.Error(err))
			metrics.BalanceReadErrors.WithLabelValues(string(key), "token").Inc()
		} else {
			result.Token = token
			updated = true
		}
	}

	if updated {
		result.UpdatedAt = time.Now().UTC()
	}
	r.store(bk, result)
	return result
}

// RefreshActive refreshes balances for the active connection.
func (r *Reader) RefreshActive(ctx context.Context) (Balances, error) {
	active := r.source.CurrentContext()
	if !active.Connected() {
		return Balances{}, connection.ErrNoActiveConnection
	}
	return r.Refresh(ctx, active.Account, active.NetworkKey), nil
}

// Last returns the last known balances for account on key.
func (r *Reader) Last(account common.Address, key network.Key) Balances {
	return r.lookup(balanceKey{account: account, network: key})
}

func (r *Reader) keyLock(bk balanceKey) *sync.Mutex {
	l, _ := r.refreshing.LoadOrStore(bk.String(), &sync.Mutex{})
	return l.(*sync.Mutex)
}

func (r *Reader) lookup(bk balanceKey) Balances {
	if x, found := r.last.Get(bk.String()); found {
		if b, ok := x.(Balances); ok {
			return b
		}
	}
	return Balances{Account: bk.account, Network: bk.network, Native: decimal.Zero, Token: decimal.Zero}
}

func (r *Reader) store(bk balanceKey, b Balances) {
	r.last.Set(bk.String(), b, cache.NoExpiration)
}

func (r *Reader) readNative(ctx context.Context, signer wallet.Signer, account common.Address, decimals int) (decimal.Decimal, error) {
	wei, err := signer.BalanceAt(ctx, account)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(wei, -int32(decimals)), nil
}

func (r *Reader) readToken(ctx context.Context, signer wallet.Signer, token, account common.Address) (decimal.Decimal, error) {
	data, err := contracts.PackBalanceOf(account)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := signer.CallContract(ctx, token, data)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := contracts.UnpackBalanceOf(out)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode balanceOf result: %w", err)
	}
	return decimal.NewFromBigInt(amount, -TokenDecimals), nil
}
