package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ERC20MetaData holds the subset of the ERC-20 ABI used by the bridge client.
var ERC20MetaData = &bind.MetaData{
	ABI: `[
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"}
]`,
}

// PackApprove encodes approve(spender, amount).
func PackApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	parsed, err := ERC20MetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc20 abi: %w", err)
	}
	return parsed.Pack("approve", spender, amount)
}

// PackBalanceOf encodes balanceOf(account).
func PackBalanceOf(account common.Address) ([]byte, error) {
	parsed, err := ERC20MetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc20 abi: %w", err)
	}
	return parsed.Pack("balanceOf", account)
}

// UnpackBalanceOf decodes the uint256 returned by balanceOf.
func UnpackBalanceOf(data []byte) (*big.Int, error) {
	parsed, err := ERC20MetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse erc20 abi: %w", err)
	}
	out, err := parsed.Unpack("balanceOf", data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack balanceOf: %w", err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unexpected balanceOf output length %d", len(out))
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf output type %T", out[0])
	}
	return balance, nil
}
