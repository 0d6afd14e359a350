package transfer

import (
	"errors"

	"github.com/chainsafe/bridge-transfer/pkg/connection"
	"github.com/chainsafe/bridge-transfer/pkg/network"
)

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidDestination   = errors.New("invalid destination chain")
	ErrApprovalReverted     = errors.New("approval transaction reverted")
	ErrTransactionReverted  = errors.New("transfer transaction reverted")
	ErrRejectedByUser       = errors.New("rejected by user")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrFailed               = errors.New("transfer failed")
	ErrSubmissionInProgress = errors.New("submission already in progress")
)

var kinds = []struct {
	err  error
	name string
}{
	{connection.ErrNoActiveConnection, "NoActiveConnection"},
	{network.ErrUnknownNetwork, "UnknownNetwork"},
	{network.ErrNoBridgeDeployment, "NoBridgeDeployment"},
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrInvalidDestination, "InvalidDestination"},
	{ErrApprovalReverted, "ApprovalReverted"},
	{ErrTransactionReverted, "TransactionReverted"},
	{ErrRejectedByUser, "RejectedByUser"},
	{ErrInsufficientFunds, "InsufficientFunds"},
	{ErrSubmissionInProgress, "SubmissionInProgress"},
	{ErrFailed, "Failed"},
}

// Kind names the error class of err for display, or "" for nil.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Failed"
}

// StatusOf maps err to the outcome status shown to the user.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSubmitted
	case errors.Is(err, ErrApprovalReverted), errors.Is(err, ErrTransactionReverted):
		return StatusReverted
	case errors.Is(err, ErrRejectedByUser):
		return StatusRejectedByUser
	case errors.Is(err, ErrInsufficientFunds):
		return StatusInsufficientFunds
	default:
		return StatusFailed
	}
}
