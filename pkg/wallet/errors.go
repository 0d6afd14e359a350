package wallet

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// EIP-1193 provider error codes.
const (
	CodeUserRejected      = 4001
	CodeUnauthorized      = 4100
	CodeUnsupportedMethod = 4200
	CodeDisconnected      = 4900
	CodeUnrecognizedChain = 4902
)

var ErrNotReachable = errors.New("wallet not reachable")

// ErrorCode returns the JSON-RPC error code carried by err, if any.
func ErrorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

// IsUserRejected reports whether the user declined the wallet prompt.
func IsUserRejected(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := ErrorCode(err); ok && code == CodeUserRejected {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "user rejected") || strings.Contains(msg, "user denied")
}

// IsInsufficientFunds reports whether the account cannot cover value plus gas.
func IsInsufficientFunds(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "insufficient funds")
}
