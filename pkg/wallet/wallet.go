// Package wallet defines the capability boundary between the bridge client and
// whatever holds the user's keys, plus adapters for the supported wallet kinds.
package wallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// NativeCurrency is the native-currency metadata sent with a network registration.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// ChainParams is the payload of a network registration request.
type ChainParams struct {
	ChainID        string         `json:"chainId"`
	ChainName      string         `json:"chainName"`
	NativeCurrency NativeCurrency `json:"nativeCurrency"`
	RPCURLs        []string       `json:"rpcUrls"`
}

// TxRequest describes a transaction to be signed and submitted.
type TxRequest struct {
	To       common.Address
	Value    *big.Int
	Data     []byte
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
}

//go:generate mockery --name Wallet --output mocks --outpkg mocks --filename mock_wallet.go --with-expecter

// Wallet is the narrow set of requests the client issues to a wallet.
type Wallet interface {
	RegisterNetwork(ctx context.Context, params ChainParams) error
	SwitchNetwork(ctx context.Context, chainIDHex string) error
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// Signer returns a signer for account on the wallet's current network.
	Signer(ctx context.Context, account common.Address) (Signer, error)
}

//go:generate mockery --name Signer --output mocks --outpkg mocks --filename mock_signer.go --with-expecter

// Signer submits transactions for one account on one network and serves the
// reads needed around them.
type Signer interface {
	Account() common.Address
	PendingNonce(ctx context.Context) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *TxRequest) (common.Hash, error)
	// WaitForReceipt blocks until the transaction is included or ctx is done.
	WaitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	Close()
}

// Dialer opens a signer for account through the RPC endpoint at rpcURL,
// bypassing the wallet's account selection.
type Dialer func(ctx context.Context, rpcURL string, account common.Address) (Signer, error)
