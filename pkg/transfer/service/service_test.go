package service

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-transfer/pkg/balance"
	"github.com/chainsafe/bridge-transfer/pkg/config"
	"github.com/chainsafe/bridge-transfer/pkg/connection"
	"github.com/chainsafe/bridge-transfer/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-transfer/pkg/network"
	"github.com/chainsafe/bridge-transfer/pkg/transfer"
	"github.com/chainsafe/bridge-transfer/pkg/wallet"
	"github.com/chainsafe/bridge-transfer/pkg/wallet/mocks"
)

var (
	testAccount   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	testRecipient = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	testBridge    = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testToken     = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	approvalHash  = common.HexToHash("0xaa")
	transferHash  = common.HexToHash("0xbb")
	gwei          = big.NewInt(1_000_000_000)
	ethereumCtx   = connection.Context{Account: testAccount, NetworkKey: "ethereum", ChainID: 11155111}
)

type staticSource struct {
	signer wallet.Signer
	ctx    connection.Context
	err    error
}

func (s *staticSource) AcquireSigner() (wallet.Signer, connection.Context, func(), error) {
	if s.err != nil {
		return nil, connection.Context{}, nil, s.err
	}
	return s.signer, s.ctx, func() {}, nil
}

type recordingRefresher struct {
	mu    sync.Mutex
	calls []network.Key
}

func (r *recordingRefresher) Refresh(_ context.Context, _ common.Address, key network.Key) balance.Balances {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, key)
	return balance.Balances{}
}

func testRegistry(t *testing.T) *network.Registry {
	t.Helper()
	r, err := network.NewRegistry([]network.Profile{
		{Key: "ethereum", ChainID: 11155111, RPCURLs: []string{"https://eth.one"}},
		{Key: "bittensor", ChainID: 945, RPCURLs: []string{"https://tao.one"}},
		{Key: "devnet", ChainID: 31337, RPCURLs: []string{"http://127.0.0.1:8545"}},
	}, []network.Deployment{
		{NetworkKey: "ethereum", BridgeAddress: testBridge, TokenAddress: testToken},
		{NetworkKey: "bittensor", BridgeAddress: testBridge, CallSignature: contracts.SignatureToken},
	})
	require.NoError(t, err)
	return r
}

func testTransferConfig() *config.TransferConfig {
	return &config.TransferConfig{
		ApprovalGasLimit:  100000,
		TransferGasLimit:  300000,
		StrictDestination: true,
	}
}

func newTestOrchestrator(t *testing.T, source SignerSource, cfg *config.TransferConfig) (*Orchestrator, *recordingRefresher) {
	t.Helper()
	refresher := &recordingRefresher{}
	o, err := NewOrchestrator(cfg, source, testRegistry(t), refresher, zap.NewNop())
	require.NoError(t, err)
	return o, refresher
}

func receipt(hash common.Hash, status uint64) *types.Receipt {
	return &types.Receipt{TxHash: hash, Status: status, GasUsed: 50000}
}

func baseUnits(s string) *big.Int {
	v, err := transfer.ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Scenario A: native transfer issues exactly one transaction carrying the value.
func TestSubmit_NativeTransfer(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, refresher := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())

	wantData, err := contracts.PackRequestTransfer(contracts.SignatureRecipient, contracts.TransferCall{
		Token:              testToken,
		Recipient:          testRecipient,
		Amount:             baseUnits("1.5"),
		DestinationChainID: 945,
		IsNative:           true,
	})
	require.NoError(t, err)

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(5), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, &wallet.TxRequest{
		To:       testBridge,
		Value:    baseUnits("1.5"),
		Data:     wantData,
		Nonce:    5,
		GasPrice: gwei,
		GasLimit: 300000,
	}).Return(transferHash, nil).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, transferHash).
		Return(receipt(transferHash, types.ReceiptStatusSuccessful), nil).Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "1.5",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.NoError(t, err)
	require.Equal(t, transfer.StatusSubmitted, out.Status)
	require.Equal(t, transferHash, *out.TxHash)
	require.Nil(t, out.ApprovalTxHash)
	require.NotEmpty(t, out.ID)

	require.Equal(t, []network.Key{"ethereum"}, refresher.calls)

	state := o.State()
	require.False(t, state.Busy)
	require.Equal(t, transfer.PhaseIdle, state.Phase)
	require.Same(t, out, state.Last)
}

// Scenario B: token transfer approves the exact amount, then transfers with
// zero value at the next nonce.
func TestSubmit_TokenTransfer(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())

	amount, _ := new(big.Int).SetString("10000000000000000000", 10)
	wantApprove, err := contracts.PackApprove(testBridge, amount)
	require.NoError(t, err)
	wantTransfer, err := contracts.PackRequestTransfer(contracts.SignatureRecipient, contracts.TransferCall{
		Recipient:          testRecipient,
		Amount:             amount,
		DestinationChainID: 945,
	})
	require.NoError(t, err)

	var sent []*wallet.TxRequest
	hashes := []common.Hash{approvalHash, transferHash}

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(7), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tx *wallet.TxRequest) (common.Hash, error) {
			sent = append(sent, tx)
			return hashes[len(sent)-1], nil
		}).Times(2)
	signer.EXPECT().WaitForReceipt(mock.Anything, approvalHash).
		Return(receipt(approvalHash, types.ReceiptStatusSuccessful), nil).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, transferHash).
		Return(receipt(transferHash, types.ReceiptStatusSuccessful), nil).Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "10",
		Mode:               transfer.ModeToken,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.NoError(t, err)
	require.Equal(t, transfer.StatusSubmitted, out.Status)
	require.Equal(t, approvalHash, *out.ApprovalTxHash)
	require.Equal(t, transferHash, *out.TxHash)

	require.Len(t, sent, 2)
	approve, bridge := sent[0], sent[1]

	require.Equal(t, testToken, approve.To)
	require.Equal(t, wantApprove, approve.Data)
	require.Equal(t, uint64(100000), approve.GasLimit)
	require.Equal(t, uint64(7), approve.Nonce)

	require.Equal(t, testBridge, bridge.To)
	require.Equal(t, wantTransfer, bridge.Data)
	require.Equal(t, 0, bridge.Value.Sign())
	require.Equal(t, uint64(300000), bridge.GasLimit)
	require.Equal(t, approve.Nonce+1, bridge.Nonce)
	require.Equal(t, approve.GasPrice, bridge.GasPrice)
}

// Scenario C: insufficient funds during the transfer is classified and not retried.
func TestSubmit_InsufficientFunds(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, refresher := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(0), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.Anything).
		Return(common.Hash{}, errors.New("insufficient funds for gas * price + value")).Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "1000",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.ErrorIs(t, err, transfer.ErrInsufficientFunds)
	require.Equal(t, transfer.StatusInsufficientFunds, out.Status)
	require.Equal(t, "InsufficientFunds", out.Kind)
	require.Nil(t, out.TxHash)
	require.Empty(t, refresher.calls)
}

// Scenario D: a reverted approval stops the submission before the transfer.
func TestSubmit_ApprovalReverted(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(3), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.MatchedBy(func(tx *wallet.TxRequest) bool {
		return tx.To == testToken
	})).Return(approvalHash, nil).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, approvalHash).
		Return(receipt(approvalHash, types.ReceiptStatusFailed), nil).Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "10",
		Mode:               transfer.ModeToken,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.ErrorIs(t, err, transfer.ErrApprovalReverted)
	require.Equal(t, transfer.StatusReverted, out.Status)
	require.Equal(t, approvalHash, *out.ApprovalTxHash)
	require.Nil(t, out.TxHash)
}

func TestSubmit_TransferReverted(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, refresher := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(1), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return(transferHash, nil).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, transferHash).
		Return(receipt(transferHash, types.ReceiptStatusFailed), nil).Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "1",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.ErrorIs(t, err, transfer.ErrTransactionReverted)
	require.Equal(t, transfer.StatusReverted, out.Status)
	require.Equal(t, transferHash, *out.TxHash)
	require.Empty(t, refresher.calls)
}

func TestSubmit_RejectedByUser(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(1), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.Anything).
		Return(common.Hash{}, errors.New("MetaMask Tx Signature: User denied transaction signature.")).Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "10",
		Mode:               transfer.ModeToken,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.ErrorIs(t, err, transfer.ErrRejectedByUser)
	require.Equal(t, transfer.StatusRejectedByUser, out.Status)
}

func TestSubmit_ProviderFailureCarriesMessage(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(0), errors.New("header not found")).Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "1",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.ErrorIs(t, err, transfer.ErrFailed)
	require.Equal(t, transfer.StatusFailed, out.Status)
	require.Contains(t, out.Message, "header not found")
}

func TestSubmit_PreconditionsIssueNothing(t *testing.T) {
	tests := []struct {
		name    string
		source  *staticSource
		req     transfer.Request
		wantErr error
	}{
		{
			name:    "no active connection",
			source:  &staticSource{err: connection.ErrNoActiveConnection},
			req:     transfer.Request{Amount: "1", Mode: transfer.ModeNative, DestinationChainID: 945},
			wantErr: connection.ErrNoActiveConnection,
		},
		{
			name:    "invalid amount",
			source:  &staticSource{ctx: ethereumCtx},
			req:     transfer.Request{Amount: "-1", Mode: transfer.ModeNative, DestinationChainID: 945},
			wantErr: transfer.ErrInvalidAmount,
		},
		{
			name:    "too many fractional digits",
			source:  &staticSource{ctx: ethereumCtx},
			req:     transfer.Request{Amount: "0.0000000000000000001", Mode: transfer.ModeNative, DestinationChainID: 945},
			wantErr: transfer.ErrInvalidAmount,
		},
		{
			name:    "no bridge deployment",
			source:  &staticSource{ctx: connection.Context{Account: testAccount, NetworkKey: "devnet", ChainID: 31337}},
			req:     transfer.Request{Amount: "1", Mode: transfer.ModeNative, DestinationChainID: 945},
			wantErr: network.ErrNoBridgeDeployment,
		},
		{
			name:    "token mode without bridged token",
			source:  &staticSource{ctx: connection.Context{Account: testAccount, NetworkKey: "bittensor", ChainID: 945}},
			req:     transfer.Request{Amount: "1", Mode: transfer.ModeToken, DestinationChainID: 11155111},
			wantErr: network.ErrNoBridgeDeployment,
		},
		{
			name:    "destination is the active chain",
			source:  &staticSource{ctx: ethereumCtx},
			req:     transfer.Request{Amount: "1", Mode: transfer.ModeNative, DestinationChainID: 11155111},
			wantErr: transfer.ErrInvalidDestination,
		},
		{
			name:    "destination not in registry",
			source:  &staticSource{ctx: ethereumCtx},
			req:     transfer.Request{Amount: "1", Mode: transfer.ModeNative, DestinationChainID: 1},
			wantErr: transfer.ErrInvalidDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.source.err == nil {
				tt.source.signer = mocks.NewSigner(t)
			}
			o, _ := newTestOrchestrator(t, tt.source, testTransferConfig())

			req := tt.req
			req.Recipient = testRecipient
			out, err := o.Submit(context.Background(), &req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			require.Equal(t, transfer.StatusFailed, out.Status)
			require.False(t, o.Busy())
		})
	}
}

func TestSubmit_LenientDestination(t *testing.T) {
	signer := mocks.NewSigner(t)
	cfg := testTransferConfig()
	cfg.StrictDestination = false
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, cfg)

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(0), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return(transferHash, nil).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, transferHash).
		Return(receipt(transferHash, types.ReceiptStatusSuccessful), nil).Once()

	_, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "1",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 1,
	})
	require.NoError(t, err)
}

func TestSubmit_GasPriceCapped(t *testing.T) {
	signer := mocks.NewSigner(t)
	cfg := testTransferConfig()
	cfg.MaxGasPrice = "2000000000"
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, cfg)

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(0), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(big.NewInt(9_000_000_000), nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.MatchedBy(func(tx *wallet.TxRequest) bool {
		return tx.GasPrice.Cmp(big.NewInt(2_000_000_000)) == 0
	})).Return(transferHash, nil).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, transferHash).
		Return(receipt(transferHash, types.ReceiptStatusSuccessful), nil).Once()

	_, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "1",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.NoError(t, err)
}

func TestNewOrchestrator_InvalidMaxGasPrice(t *testing.T) {
	cfg := testTransferConfig()
	cfg.MaxGasPrice = "lots"
	_, err := NewOrchestrator(cfg, &staticSource{}, testRegistry(t), nil, zap.NewNop())
	require.Error(t, err)
}

func TestSubmit_ConfirmationTimeout(t *testing.T) {
	signer := mocks.NewSigner(t)
	cfg := testTransferConfig()
	cfg.ConfirmationTimeout = 1
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, cfg)

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(0), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return(transferHash, nil).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, transferHash).
		RunAndReturn(func(ctx context.Context, _ common.Hash) (*types.Receipt, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "1",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.ErrorIs(t, err, transfer.ErrFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, transferHash, *out.TxHash)
}

func TestSubmit_MutualExclusion(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())

	waiting := make(chan struct{})
	release := make(chan struct{})

	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(0), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return(transferHash, nil).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, transferHash).
		RunAndReturn(func(context.Context, common.Hash) (*types.Receipt, error) {
			close(waiting)
			<-release
			return receipt(transferHash, types.ReceiptStatusSuccessful), nil
		}).Once()

	req := &transfer.Request{
		Amount:             "1",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	}

	done := make(chan error, 1)
	go func() {
		_, err := o.Submit(context.Background(), req)
		done <- err
	}()

	<-waiting
	require.True(t, o.Busy())
	require.Equal(t, transfer.PhaseAwaitingTransfer, o.Phase())

	out, err := o.Submit(context.Background(), req)
	require.ErrorIs(t, err, transfer.ErrSubmissionInProgress)
	require.Nil(t, out)

	close(release)
	require.NoError(t, <-done)
	require.False(t, o.Busy())
	require.Equal(t, transfer.PhaseIdle, o.Phase())
}

func TestLogService_PassesThrough(t *testing.T) {
	signer := mocks.NewSigner(t)
	o, _ := newTestOrchestrator(t, &staticSource{signer: signer, ctx: ethereumCtx}, testTransferConfig())
	svc := NewLog(o, zap.NewNop())

	out, err := svc.Submit(context.Background(), &transfer.Request{
		Amount:             "abc",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.ErrorIs(t, err, transfer.ErrInvalidAmount)
	require.Equal(t, "InvalidAmount", out.Kind)
	require.Same(t, out, svc.State().Last)
}

func TestSubmit_NetworkSwitchDuringConfirmation(t *testing.T) {
	w := mocks.NewWallet(t)
	signer := mocks.NewSigner(t)
	next := mocks.NewSigner(t)
	dial := func(context.Context, string, common.Address) (wallet.Signer, error) {
		return next, nil
	}
	manager := connection.NewManager(w, testRegistry(t), dial, zap.NewNop())

	w.EXPECT().RegisterNetwork(mock.Anything, mock.Anything).Return(nil).Once()
	w.EXPECT().SwitchNetwork(mock.Anything, "0xaa36a7").Return(nil).Once()
	w.EXPECT().RequestAccounts(mock.Anything).Return([]common.Address{testAccount}, nil).Once()
	w.EXPECT().Signer(mock.Anything, testAccount).Return(signer, nil).Once()
	_, err := manager.Connect(context.Background(), "ethereum")
	require.NoError(t, err)

	o, _ := newTestOrchestrator(t, manager, testTransferConfig())

	var closed atomic.Bool
	signer.EXPECT().PendingNonce(mock.Anything).Return(uint64(1), nil).Once()
	signer.EXPECT().SuggestGasPrice(mock.Anything).Return(gwei, nil).Once()
	signer.EXPECT().SendTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *wallet.TxRequest) (common.Hash, error) {
			_, err := manager.SwitchNetwork(ctx, "bittensor")
			require.NoError(t, err)
			return transferHash, nil
		}).Once()
	signer.EXPECT().WaitForReceipt(mock.Anything, transferHash).
		RunAndReturn(func(context.Context, common.Hash) (*types.Receipt, error) {
			if closed.Load() {
				return nil, errors.New("client is closed")
			}
			return receipt(transferHash, types.ReceiptStatusSuccessful), nil
		}).Once()
	signer.EXPECT().Close().Run(func() { closed.Store(true) }).Return().Once()

	out, err := o.Submit(context.Background(), &transfer.Request{
		Amount:             "1",
		Mode:               transfer.ModeNative,
		Recipient:          testRecipient,
		DestinationChainID: 945,
	})
	require.NoError(t, err)
	require.Equal(t, transfer.StatusSubmitted, out.Status)
	require.True(t, closed.Load(), "replaced signer is closed once the submission ends")
	require.Equal(t, network.Key("bittensor"), manager.CurrentContext().NetworkKey)
}
