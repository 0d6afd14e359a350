// Package service runs transfer submissions: it validates the request,
// sequences the approval and bridge transactions with consistent nonce and
// gas, and classifies wallet failures into outcomes.
package service

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-transfer/internal/metrics"
	"github.com/chainsafe/bridge-transfer/pkg/balance"
	"github.com/chainsafe/bridge-transfer/pkg/config"
	"github.com/chainsafe/bridge-transfer/pkg/connection"
	"github.com/chainsafe/bridge-transfer/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-transfer/pkg/network"
	"github.com/chainsafe/bridge-transfer/pkg/transfer"
	"github.com/chainsafe/bridge-transfer/pkg/wallet"
)

const (
	stepApprove  = "approve"
	stepTransfer = "transfer"
)

// SignerSource lends the active signer and the context it is bound to.
// The signer stays usable until release is called.
type SignerSource interface {
	AcquireSigner() (signer wallet.Signer, active connection.Context, release func(), err error)
}

// BalanceRefresher is notified after a successful transfer.
type BalanceRefresher interface {
	Refresh(ctx context.Context, account common.Address, key network.Key) balance.Balances
}

// Service defines the interface for transfer submission
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Submit runs one transfer. The returned outcome is nil only when another
	// submission is in flight; otherwise its Err equals the returned error.
	Submit(ctx context.Context, req *transfer.Request) (*transfer.Outcome, error)
	State() transfer.State
}

// Orchestrator is the Service implementation. At most one submission runs at a time.
type Orchestrator struct {
	source   SignerSource
	registry *network.Registry
	balances BalanceRefresher
	logger   *zap.Logger

	approvalGasLimit    uint64
	transferGasLimit    uint64
	maxGasPrice         *big.Int
	strictDestination   bool
	confirmationTimeout time.Duration

	busy atomic.Bool

	mu    sync.RWMutex
	phase transfer.Phase
	last  *transfer.Outcome
}

// NewOrchestrator creates an Orchestrator. balances may be nil.
func NewOrchestrator(
	cfg *config.TransferConfig,
	source SignerSource,
	registry *network.Registry,
	balances BalanceRefresher,
	logger *zap.Logger,
) (*Orchestrator, error) {
	var maxGasPrice *big.Int
	if cfg.MaxGasPrice != "" {
		v, ok := new(big.Int).SetString(cfg.MaxGasPrice, 10)
		if !ok || v.Sign() <= 0 {
			return nil, fmt.Errorf("invalid max gas price %q", cfg.MaxGasPrice)
		}
		maxGasPrice = v
	}

	return &Orchestrator{
		source:              source,
		registry:            registry,
		balances:            balances,
		logger:              logger.Named("transfer"),
		approvalGasLimit:    cfg.ApprovalGasLimit,
		transferGasLimit:    cfg.TransferGasLimit,
		maxGasPrice:         maxGasPrice,
		strictDestination:   cfg.StrictDestination,
		confirmationTimeout: cfg.ConfirmationTimeout,
		phase:               transfer.PhaseIdle,
	}, nil
}

// Busy reports whether a submission is in flight.
func (o *Orchestrator) Busy() bool {
	return o.busy.Load()
}

// Phase returns the state machine position of the in-flight submission.
func (o *Orchestrator) Phase() transfer.Phase {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.phase
}

func (o *Orchestrator) State() transfer.State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return transfer.State{Busy: o.busy.Load(), Phase: o.phase, Last: o.last}
}

func (o *Orchestrator) Submit(ctx context.Context, req *transfer.Request) (*transfer.Outcome, error) {
	if !o.busy.CompareAndSwap(false, true) {
		return nil, transfer.ErrSubmissionInProgress
	}
	metrics.SubmissionsInFlight.Inc()
	start := time.Now()

	out := &transfer.Outcome{ID: uuid.NewString(), Mode: req.Mode}
	logger := o.logger.With(zap.String("submission_id", out.ID), zap.String("mode", string(req.Mode)))

	active, err := o.run(ctx, req, out, logger)

	out.Err = err
	out.Status = transfer.StatusOf(err)
	out.Kind = transfer.Kind(err)
	if err != nil {
		out.Message = err.Error()
	}

	metrics.SubmissionsTotal.WithLabelValues(string(req.Mode), string(out.Status)).Inc()
	metrics.SubmissionDuration.WithLabelValues(string(req.Mode)).Observe(time.Since(start).Seconds())

	if err == nil && o.balances != nil {
		o.balances.Refresh(ctx, active.Account, active.NetworkKey)
	}

	o.mu.Lock()
	o.phase = transfer.PhaseIdle
	o.last = out
	o.mu.Unlock()

	metrics.SubmissionsInFlight.Dec()
	o.busy.Store(false)
	return out, err
}

func (o *Orchestrator) run(
	ctx context.Context,
	req *transfer.Request,
	out *transfer.Outcome,
	logger *zap.Logger,
) (connection.Context, error) {
	o.setPhase(transfer.PhaseValidatingInput)

	signer, active, release, err := o.source.AcquireSigner()
	if err != nil {
		return connection.Context{}, err
	}
	defer release()
	if !req.Mode.Valid() {
		return active, fmt.Errorf("%w: unsupported transfer mode %q", transfer.ErrFailed, req.Mode)
	}
	amount, err := transfer.ParseAmount(req.Amount)
	if err != nil {
		return active, err
	}

	deployment, err := o.registry.DeploymentFor(active.NetworkKey)
	if err != nil {
		return active, err
	}
	if req.Mode == transfer.ModeToken && deployment.TokenAddress == (common.Address{}) {
		return active, fmt.Errorf("%w: no bridged token on %s", network.ErrNoBridgeDeployment, active.NetworkKey)
	}
	if o.strictDestination {
		if err := o.checkDestination(active, req.DestinationChainID); err != nil {
			return active, err
		}
	}

	nonce, err := signer.PendingNonce(ctx)
	if err != nil {
		return active, classify(err)
	}
	gasPrice, err := signer.SuggestGasPrice(ctx)
	if err != nil {
		return active, classify(err)
	}
	gasPrice = o.capGasPrice(gasPrice, logger)

	logger.Info("Submitting transfer",
		zap.String("account", active.Account.Hex()),
		zap.String("network", string(active.NetworkKey)),
		zap.String("recipient", req.Recipient.Hex()),
		zap.String("amount", amount.String()),
		zap.Uint64("destination_chain_id", req.DestinationChainID),
		zap.Uint64("nonce", nonce),
		zap.String("gas_price", gasPrice.String()))

	if req.Mode == transfer.ModeToken {
		o.setPhase(transfer.PhaseAwaitingApproval)

		data, err := contracts.PackApprove(deployment.BridgeAddress, amount)
		if err != nil {
			return active, fmt.Errorf("%w: %w", transfer.ErrFailed, err)
		}
		receipt, err := o.send(ctx, signer, stepApprove, &wallet.TxRequest{
			To:       deployment.TokenAddress,
			Data:     data,
			Nonce:    nonce,
			GasPrice: gasPrice,
			GasLimit: o.approvalGasLimit,
		}, func(h common.Hash) { out.ApprovalTxHash = &h }, logger)
		if err != nil {
			return active, err
		}
		if receipt.Status != types.ReceiptStatusSuccessful {
			o.setPhase(transfer.PhaseApprovalReverted)
			return active, fmt.Errorf("%w: %s", transfer.ErrApprovalReverted, receipt.TxHash.Hex())
		}
		o.setPhase(transfer.PhaseApprovalConfirmed)
		nonce++
	}

	o.setPhase(transfer.PhaseAwaitingTransfer)

	isNative := req.Mode == transfer.ModeNative
	data, err := contracts.PackRequestTransfer(deployment.CallSignature, contracts.TransferCall{
		Token:              deployment.TokenAddress,
		Recipient:          req.Recipient,
		Amount:             amount,
		DestinationChainID: req.DestinationChainID,
		IsNative:           isNative,
	})
	if err != nil {
		return active, fmt.Errorf("%w: %w", transfer.ErrFailed, err)
	}
	value := new(big.Int)
	if isNative {
		value.Set(amount)
	}

	receipt, err := o.send(ctx, signer, stepTransfer, &wallet.TxRequest{
		To:       deployment.BridgeAddress,
		Value:    value,
		Data:     data,
		Nonce:    nonce,
		GasPrice: gasPrice,
		GasLimit: o.transferGasLimit,
	}, func(h common.Hash) { out.TxHash = &h }, logger)
	if err != nil {
		return active, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		o.setPhase(transfer.PhaseTransferReverted)
		return active, fmt.Errorf("%w: %s", transfer.ErrTransactionReverted, receipt.TxHash.Hex())
	}
	o.setPhase(transfer.PhaseTransferConfirmed)

	logger.Info("Transfer confirmed",
		zap.String("tx_hash", receipt.TxHash.Hex()),
		zap.Uint64("gas_used", receipt.GasUsed))
	return active, nil
}

// send submits tx, records its hash and waits for the receipt.
func (o *Orchestrator) send(
	ctx context.Context,
	signer wallet.Signer,
	step string,
	tx *wallet.TxRequest,
	onSent func(common.Hash),
	logger *zap.Logger,
) (*types.Receipt, error) {
	hash, err := signer.SendTransaction(ctx, tx)
	if err != nil {
		classified := classify(err)
		metrics.TransactionsSent.WithLabelValues(step, statusLabel(classified)).Inc()
		logger.Warn("Transaction not sent", zap.String("step", step), zap.Error(err))
		return nil, classified
	}
	onSent(hash)
	metrics.TransactionsSent.WithLabelValues(step, "sent").Inc()
	logger.Info("Transaction sent",
		zap.String("step", step),
		zap.String("tx_hash", hash.Hex()),
		zap.Uint64("nonce", tx.Nonce),
		zap.Uint64("gas_limit", tx.GasLimit))

	waitCtx := ctx
	if o.confirmationTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, o.confirmationTimeout)
		defer cancel()
	}

	receipt, err := signer.WaitForReceipt(waitCtx, hash)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues(step, "unconfirmed").Inc()
		return nil, classify(err)
	}
	if receipt.TxHash == (common.Hash{}) {
		receipt.TxHash = hash
	}

	metrics.GasUsed.WithLabelValues(step).Observe(float64(receipt.GasUsed))
	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.TransactionsSent.WithLabelValues(step, "reverted").Inc()
		logger.Warn("Transaction reverted", zap.String("step", step), zap.String("tx_hash", hash.Hex()))
	} else {
		metrics.TransactionsSent.WithLabelValues(step, "confirmed").Inc()
	}
	return receipt, nil
}

func (o *Orchestrator) checkDestination(active connection.Context, destination uint64) error {
	if destination == active.ChainID {
		return fmt.Errorf("%w: %d is the active chain", transfer.ErrInvalidDestination, destination)
	}
	if _, err := o.registry.LookupByChainID(destination); err != nil {
		return fmt.Errorf("%w: chain %d is not a known network", transfer.ErrInvalidDestination, destination)
	}
	return nil
}

func (o *Orchestrator) capGasPrice(gasPrice *big.Int, logger *zap.Logger) *big.Int {
	if o.maxGasPrice == nil || gasPrice.Cmp(o.maxGasPrice) <= 0 {
		return gasPrice
	}
	logger.Warn("Suggested gas price exceeds maximum",
		zap.String("suggested", gasPrice.String()),
		zap.String("max", o.maxGasPrice.String()))
	return new(big.Int).Set(o.maxGasPrice)
}

func (o *Orchestrator) setPhase(p transfer.Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.phase = p
}

// classify maps a wallet or provider error onto the transfer error taxonomy.
func classify(err error) error {
	switch {
	case wallet.IsUserRejected(err):
		return fmt.Errorf("%w: %w", transfer.ErrRejectedByUser, err)
	case wallet.IsInsufficientFunds(err):
		return fmt.Errorf("%w: %w", transfer.ErrInsufficientFunds, err)
	default:
		return fmt.Errorf("%w: %w", transfer.ErrFailed, err)
	}
}

func statusLabel(err error) string {
	switch transfer.StatusOf(err) {
	case transfer.StatusRejectedByUser:
		return "rejected"
	case transfer.StatusInsufficientFunds:
		return "insufficient_funds"
	default:
		return "failed"
	}
}
