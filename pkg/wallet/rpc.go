package wallet

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// RPCWallet speaks the EIP-1193 request methods to a wallet exposed over JSON-RPC.
type RPCWallet struct {
	client       *rpc.Client
	pollInterval time.Duration
	logger       *zap.Logger
}

// DialRPCWallet connects to the wallet endpoint at url.
func DialRPCWallet(ctx context.Context, url string, pollInterval time.Duration, logger *zap.Logger) (*RPCWallet, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: no wallet url configured", ErrNotReachable)
	}
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotReachable, err)
	}
	return NewRPCWallet(client, pollInterval, logger), nil
}

// NewRPCWallet wraps an existing RPC client.
func NewRPCWallet(client *rpc.Client, pollInterval time.Duration, logger *zap.Logger) *RPCWallet {
	return &RPCWallet{
		client:       client,
		pollInterval: pollInterval,
		logger:       logger.Named("rpc-wallet"),
	}
}

// RegisterNetwork issues wallet_addEthereumChain.
func (w *RPCWallet) RegisterNetwork(ctx context.Context, params ChainParams) error {
	w.logger.Debug("Requesting network registration",
		zap.String("chain_id", params.ChainID),
		zap.String("chain_name", params.ChainName))

	if err := w.client.CallContext(ctx, nil, "wallet_addEthereumChain", params); err != nil {
		return fmt.Errorf("wallet_addEthereumChain: %w", err)
	}
	return nil
}

type switchChainParams struct {
	ChainID string `json:"chainId"`
}

// SwitchNetwork issues wallet_switchEthereumChain.
func (w *RPCWallet) SwitchNetwork(ctx context.Context, chainIDHex string) error {
	w.logger.Debug("Requesting network switch", zap.String("chain_id", chainIDHex))

	if err := w.client.CallContext(ctx, nil, "wallet_switchEthereumChain", switchChainParams{ChainID: chainIDHex}); err != nil {
		return fmt.Errorf("wallet_switchEthereumChain: %w", err)
	}
	return nil
}

// RequestAccounts issues eth_requestAccounts.
func (w *RPCWallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := w.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, fmt.Errorf("eth_requestAccounts: %w", err)
	}
	return accounts, nil
}

// Signer returns a signer that routes every request through the wallet.
func (w *RPCWallet) Signer(_ context.Context, account common.Address) (Signer, error) {
	return newRPCSigner(w.client, account, w.pollInterval, false), nil
}

// Close closes the wallet connection.
func (w *RPCWallet) Close() {
	w.client.Close()
}

// RPCSigner sends transactions with eth_sendTransaction, leaving signing to
// the node or wallet behind the RPC client.
type RPCSigner struct {
	client       *rpc.Client
	eth          *ethclient.Client
	account      common.Address
	pollInterval time.Duration
	owned        bool
}

// DialRPCSigner returns a Dialer that opens an RPCSigner on the given endpoint.
func DialRPCSigner(pollInterval time.Duration) Dialer {
	return func(ctx context.Context, rpcURL string, account common.Address) (Signer, error) {
		client, err := rpc.DialContext(ctx, rpcURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
		}
		return newRPCSigner(client, account, pollInterval, true), nil
	}
}

func newRPCSigner(client *rpc.Client, account common.Address, pollInterval time.Duration, owned bool) *RPCSigner {
	return &RPCSigner{
		client:       client,
		eth:          ethclient.NewClient(client),
		account:      account,
		pollInterval: pollInterval,
		owned:        owned,
	}
}

func (s *RPCSigner) Account() common.Address { return s.account }

func (s *RPCSigner) PendingNonce(ctx context.Context) (uint64, error) {
	nonce, err := s.eth.PendingNonceAt(ctx, s.account)
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	return nonce, nil
}

func (s *RPCSigner) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := s.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}
	return price, nil
}

type sendTxArgs struct {
	From     common.Address  `json:"from"`
	To       *common.Address `json:"to,omitempty"`
	Value    *hexutil.Big    `json:"value,omitempty"`
	Data     hexutil.Bytes   `json:"data,omitempty"`
	Nonce    hexutil.Uint64  `json:"nonce"`
	GasPrice *hexutil.Big    `json:"gasPrice,omitempty"`
	Gas      hexutil.Uint64  `json:"gas"`
}

// SendTransaction issues eth_sendTransaction with the exact nonce and gas parameters of tx.
func (s *RPCSigner) SendTransaction(ctx context.Context, tx *TxRequest) (common.Hash, error) {
	to := tx.To
	args := sendTxArgs{
		From:  s.account,
		To:    &to,
		Data:  tx.Data,
		Nonce: hexutil.Uint64(tx.Nonce),
		Gas:   hexutil.Uint64(tx.GasLimit),
	}
	if tx.Value != nil {
		args.Value = (*hexutil.Big)(tx.Value)
	}
	if tx.GasPrice != nil {
		args.GasPrice = (*hexutil.Big)(tx.GasPrice)
	}

	var hash common.Hash
	if err := s.client.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, fmt.Errorf("eth_sendTransaction: %w", err)
	}
	return hash, nil
}

func (s *RPCSigner) WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return waitMined(ctx, s.eth, hash, s.pollInterval)
}

func (s *RPCSigner) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := s.eth.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

func (s *RPCSigner) CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	out, err := s.eth.CallContract(ctx, ethereum.CallMsg{From: s.account, To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("eth_call to %s: %w", to.Hex(), err)
	}
	return out, nil
}

// Close releases the connection if the signer opened it.
func (s *RPCSigner) Close() {
	if s.owned {
		s.client.Close()
	}
}
