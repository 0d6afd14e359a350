package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// CallSignature selects which requestTransfer shape a bridge deployment exposes.
type CallSignature string

const (
	// SignatureRecipient is requestTransfer(address to, uint256 amount, uint256 destChainId, bool isNative).
	SignatureRecipient CallSignature = "recipient"
	// SignatureToken is requestTransfer(address token, address to, uint256 amount, uint256 destChainId).
	// Native transfers pass the zero address as token.
	SignatureToken CallSignature = "token"
)

// Valid reports whether s names a supported call signature.
func (s CallSignature) Valid() bool {
	return s == SignatureRecipient || s == SignatureToken
}

// BridgeRecipientMetaData is the bridge ABI for SignatureRecipient deployments.
var BridgeRecipientMetaData = &bind.MetaData{
	ABI: `[{"inputs":[{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"},{"internalType":"uint256","name":"destChainId","type":"uint256"},{"internalType":"bool","name":"isNative","type":"bool"}],"name":"requestTransfer","outputs":[],"stateMutability":"payable","type":"function"}]`,
}

// BridgeTokenMetaData is the bridge ABI for SignatureToken deployments.
var BridgeTokenMetaData = &bind.MetaData{
	ABI: `[{"inputs":[{"internalType":"address","name":"token","type":"address"},{"internalType":"address","name":"to","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"},{"internalType":"uint256","name":"destChainId","type":"uint256"}],"name":"requestTransfer","outputs":[],"stateMutability":"payable","type":"function"}]`,
}

// TransferCall carries the arguments of a requestTransfer invocation.
type TransferCall struct {
	Token              common.Address // zero for native transfers
	Recipient          common.Address
	Amount             *big.Int
	DestinationChainID uint64
	IsNative           bool
}

// PackRequestTransfer encodes requestTransfer for the given call signature.
func PackRequestTransfer(sig CallSignature, call TransferCall) ([]byte, error) {
	destChainID := new(big.Int).SetUint64(call.DestinationChainID)

	switch sig {
	case SignatureRecipient, "":
		parsed, err := BridgeRecipientMetaData.GetAbi()
		if err != nil {
			return nil, fmt.Errorf("failed to parse bridge abi: %w", err)
		}
		return parsed.Pack("requestTransfer", call.Recipient, call.Amount, destChainID, call.IsNative)
	case SignatureToken:
		parsed, err := BridgeTokenMetaData.GetAbi()
		if err != nil {
			return nil, fmt.Errorf("failed to parse bridge abi: %w", err)
		}
		token := call.Token
		if call.IsNative {
			token = common.Address{}
		}
		return parsed.Pack("requestTransfer", token, call.Recipient, call.Amount, destChainID)
	default:
		return nil, fmt.Errorf("unsupported bridge call signature %q", sig)
	}
}
