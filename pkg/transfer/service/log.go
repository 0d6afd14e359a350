package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/bridge-transfer/pkg/transfer"
)

const serviceName = "TransferService"

// logService wraps Service with logging of every submission
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the transfer Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Submit wraps the service method with logging
func (ls *logService) Submit(ctx context.Context, req *transfer.Request) (out *transfer.Outcome, err error) {
	start := time.Now()

	ls.logger.Info("Submit started",
		zap.String("service", serviceName),
		zap.String("method", "Submit"),
		zap.String("mode", string(req.Mode)),
		zap.String("amount", req.Amount),
		zap.String("recipient", req.Recipient.Hex()),
		zap.Uint64("destination_chain_id", req.DestinationChainID),
	)

	defer func() {
		duration := time.Since(start)

		if out == nil {
			ls.logger.Warn("Submit rejected",
				zap.String("service", serviceName),
				zap.String("method", "Submit"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Submit"),
			zap.String("submission_id", out.ID),
			zap.String("status", string(out.Status)),
			zap.Duration("duration", duration),
		}
		if out.ApprovalTxHash != nil {
			fields = append(fields, zap.String("approval_tx_hash", out.ApprovalTxHash.Hex()))
		}
		if out.TxHash != nil {
			fields = append(fields, zap.String("tx_hash", out.TxHash.Hex()))
		}

		if err != nil {
			fields = append(fields, zap.String("kind", out.Kind), zap.Error(err))
			ls.logger.Error("Submit failed", fields...)
		} else {
			ls.logger.Info("Submit completed", fields...)
		}
	}()

	return ls.svc.Submit(ctx, req)
}

// State passes through without logging; it is polled by the UI.
func (ls *logService) State() transfer.State {
	return ls.svc.State()
}
