// Package transfer holds the domain model of a bridge transfer submission.
package transfer

import (
	"github.com/ethereum/go-ethereum/common"
)

// Mode selects what is moved across the bridge.
type Mode string

const (
	ModeNative Mode = "native"
	ModeToken  Mode = "token"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeNative || m == ModeToken
}

// Request is a single transfer the user asked for. It is never persisted.
type Request struct {
	Amount             string
	Mode               Mode
	Recipient          common.Address
	DestinationChainID uint64
}

// Status is the classified result of a submission.
type Status string

const (
	StatusSubmitted         Status = "submitted"
	StatusReverted          Status = "reverted"
	StatusRejectedByUser    Status = "rejected_by_user"
	StatusInsufficientFunds Status = "insufficient_funds"
	StatusFailed            Status = "failed"
)

// Outcome is what a submission produced. TxHash is set once the transfer
// transaction was accepted by the wallet, ApprovalTxHash once the approval was.
type Outcome struct {
	ID             string       `json:"id"`
	Status         Status       `json:"status"`
	Kind           string       `json:"kind,omitempty"`
	Mode           Mode         `json:"mode"`
	TxHash         *common.Hash `json:"tx_hash,omitempty"`
	ApprovalTxHash *common.Hash `json:"approval_tx_hash,omitempty"`
	Message        string       `json:"error,omitempty"`
	Err            error        `json:"-"`
}

// Phase is the position of the in-flight submission in its state machine.
type Phase string

const (
	PhaseIdle              Phase = "idle"
	PhaseValidatingInput   Phase = "validating_input"
	PhaseAwaitingApproval  Phase = "awaiting_approval"
	PhaseApprovalConfirmed Phase = "approval_confirmed"
	PhaseApprovalReverted  Phase = "approval_reverted"
	PhaseAwaitingTransfer  Phase = "awaiting_transfer"
	PhaseTransferConfirmed Phase = "transfer_confirmed"
	PhaseTransferReverted  Phase = "transfer_reverted"
)

// State is what the UI polls to show a loading indicator.
type State struct {
	Busy  bool     `json:"busy"`
	Phase Phase    `json:"phase"`
	Last  *Outcome `json:"last,omitempty"`
}
