package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// providerError carries an EIP-1193 code for failures raised locally.
type providerError struct {
	code int
	msg  string
}

func (e *providerError) Error() string  { return e.msg }
func (e *providerError) ErrorCode() int { return e.code }

type dialFunc func(ctx context.Context, url string) (*rpc.Client, error)

// KeyedWallet behaves like a wallet for a single locally held key. Network
// registration and switching only select which RPC endpoint the signer uses.
type KeyedWallet struct {
	key          *ecdsa.PrivateKey
	address      common.Address
	pollInterval time.Duration
	dial         dialFunc
	logger       *zap.Logger

	mu     sync.RWMutex
	chains map[string]ChainParams
	active string
}

// NewKeyedWallet parses a hex private key (with or without 0x prefix).
func NewKeyedWallet(hexKey string, pollInterval time.Duration, logger *zap.Logger) (*KeyedWallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}
	return &KeyedWallet{
		key:          key,
		address:      crypto.PubkeyToAddress(key.PublicKey),
		pollInterval: pollInterval,
		dial:         rpc.DialContext,
		logger:       logger.Named("keyed-wallet"),
		chains:       make(map[string]ChainParams),
	}, nil
}

// Address returns the account controlled by the key.
func (w *KeyedWallet) Address() common.Address { return w.address }

func (w *KeyedWallet) RegisterNetwork(_ context.Context, params ChainParams) error {
	if len(params.RPCURLs) == 0 {
		return &providerError{code: -32602, msg: "rpcUrls must not be empty"}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chains[strings.ToLower(params.ChainID)] = params
	return nil
}

func (w *KeyedWallet) SwitchNetwork(_ context.Context, chainIDHex string) error {
	id := strings.ToLower(chainIDHex)
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.chains[id]; !ok {
		return &providerError{code: CodeUnrecognizedChain, msg: fmt.Sprintf("unrecognized chain id %s", chainIDHex)}
	}
	w.active = id
	w.logger.Info("Switched network", zap.String("chain_id", chainIDHex))
	return nil
}

func (w *KeyedWallet) RequestAccounts(_ context.Context) ([]common.Address, error) {
	return []common.Address{w.address}, nil
}

// Signer dials the first RPC endpoint of the active network.
func (w *KeyedWallet) Signer(ctx context.Context, account common.Address) (Signer, error) {
	w.mu.RLock()
	params, ok := w.chains[w.active]
	w.mu.RUnlock()
	if !ok {
		return nil, &providerError{code: CodeDisconnected, msg: "no active network"}
	}
	return w.Dialer()(ctx, params.RPCURLs[0], account)
}

// Dialer returns a Dialer producing KeyedSigners for this wallet's key.
func (w *KeyedWallet) Dialer() Dialer {
	return func(ctx context.Context, rpcURL string, account common.Address) (Signer, error) {
		if account != w.address {
			return nil, &providerError{code: CodeUnauthorized, msg: fmt.Sprintf("account %s is not controlled by this wallet", account.Hex())}
		}
		client, err := w.dial(ctx, rpcURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
		}
		eth := ethclient.NewClient(client)
		chainID, err := eth.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to get chain id: %w", err)
		}
		return &KeyedSigner{
			eth:          eth,
			key:          w.key,
			address:      w.address,
			chainID:      chainID,
			pollInterval: w.pollInterval,
		}, nil
	}
}

// KeyedSigner signs transactions locally and submits them raw.
type KeyedSigner struct {
	eth          *ethclient.Client
	key          *ecdsa.PrivateKey
	address      common.Address
	chainID      *big.Int
	pollInterval time.Duration
}

func (s *KeyedSigner) Account() common.Address { return s.address }

func (s *KeyedSigner) PendingNonce(ctx context.Context) (uint64, error) {
	nonce, err := s.eth.PendingNonceAt(ctx, s.address)
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	return nonce, nil
}

func (s *KeyedSigner) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := s.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}
	return price, nil
}

func (s *KeyedSigner) SendTransaction(ctx context.Context, req *TxRequest) (common.Hash, error) {
	value := req.Value
	if value == nil {
		value = new(big.Int)
	}
	to := req.To
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    req.Nonce,
		GasPrice: req.GasPrice,
		Gas:      req.GasLimit,
		To:       &to,
		Value:    value,
		Data:     req.Data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := s.eth.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit transaction: %w", err)
	}
	return signed.Hash(), nil
}

func (s *KeyedSigner) WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return waitMined(ctx, s.eth, hash, s.pollInterval)
}

func (s *KeyedSigner) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := s.eth.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

func (s *KeyedSigner) CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	out, err := s.eth.CallContract(ctx, ethereum.CallMsg{From: s.address, To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("eth_call to %s: %w", to.Hex(), err)
	}
	return out, nil
}

func (s *KeyedSigner) Close() {
	s.eth.Close()
}
