package balance

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-transfer/pkg/connection"
	"github.com/chainsafe/bridge-transfer/pkg/ethereum/contracts"
	"github.com/chainsafe/bridge-transfer/pkg/network"
	"github.com/chainsafe/bridge-transfer/pkg/wallet"
	"github.com/chainsafe/bridge-transfer/pkg/wallet/mocks"
)

var (
	testAccount = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	testBridge  = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testToken   = common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
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

func (s *staticSource) CurrentContext() connection.Context {
	return s.ctx
}

func testRegistry(t *testing.T) *network.Registry {
	t.Helper()
	r, err := network.NewRegistry([]network.Profile{
		{
			Key:            "ethereum",
			ChainID:        11155111,
			NativeCurrency: network.NativeCurrency{Name: "Sepolia Ether", Symbol: "ETH", Decimals: 18},
			RPCURLs:        []string{"https://eth.one"},
		},
		{
			Key:            "bittensor",
			ChainID:        945,
			NativeCurrency: network.NativeCurrency{Name: "TAO", Symbol: "TAO", Decimals: 18},
			RPCURLs:        []string{"https://tao.one"},
		},
	}, []network.Deployment{
		{NetworkKey: "ethereum", BridgeAddress: testBridge, TokenAddress: testToken},
	})
	require.NoError(t, err)
	return r
}

func ether(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad amount " + s)
	}
	return v
}

func encodedBalance(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}

func balanceOfCall(t *testing.T) []byte {
	t.Helper()
	data, err := contracts.PackBalanceOf(testAccount)
	require.NoError(t, err)
	return data
}

func TestReader_Refresh(t *testing.T) {
	signer := mocks.NewSigner(t)
	source := &staticSource{signer: signer, ctx: connection.Context{Account: testAccount, NetworkKey: "ethereum"}}
	r := NewReader(source, testRegistry(t), zap.NewNop())

	signer.EXPECT().BalanceAt(mock.Anything, testAccount).Return(ether("1500000000000000000"), nil).Once()
	signer.EXPECT().CallContract(mock.Anything, testToken, balanceOfCall(t)).
		Return(encodedBalance(ether("250000000000000000000")), nil).Once()

	got := r.Refresh(context.Background(), testAccount, "ethereum")
	require.Equal(t, "1.5", got.Native.String())
	require.Equal(t, "250", got.Token.String())
	require.Equal(t, "ETH", got.NativeSymbol)
	require.False(t, got.UpdatedAt.IsZero())

	require.Equal(t, got, r.Last(testAccount, "ethereum"))
}

func TestReader_Refresh_FailureKeepsPreviousValue(t *testing.T) {
	signer := mocks.NewSigner(t)
	source := &staticSource{signer: signer, ctx: connection.Context{Account: testAccount, NetworkKey: "ethereum"}}
	r := NewReader(source, testRegistry(t), zap.NewNop())

	signer.EXPECT().BalanceAt(mock.Anything, testAccount).Return(ether("2000000000000000000"), nil).Once()
	signer.EXPECT().CallContract(mock.Anything, testToken, mock.Anything).
		Return(encodedBalance(ether("1000000000000000000")), nil).Once()
	first := r.Refresh(context.Background(), testAccount, "ethereum")
	require.Equal(t, "2", first.Native.String())
	require.Equal(t, "1", first.Token.String())

	signer.EXPECT().BalanceAt(mock.Anything, testAccount).Return(nil, errors.New("rpc timeout")).Once()
	signer.EXPECT().CallContract(mock.Anything, testToken, mock.Anything).
		Return(encodedBalance(ether("3000000000000000000")), nil).Once()
	second := r.Refresh(context.Background(), testAccount, "ethereum")
	require.Equal(t, "2", second.Native.String())
	require.Equal(t, "3", second.Token.String())

	signer.EXPECT().BalanceAt(mock.Anything, testAccount).Return(ether("4000000000000000000"), nil).Once()
	signer.EXPECT().CallContract(mock.Anything, testToken, mock.Anything).
		Return(nil, errors.New("execution reverted")).Once()
	third := r.Refresh(context.Background(), testAccount, "ethereum")
	require.Equal(t, "4", third.Native.String())
	require.Equal(t, "3", third.Token.String())
}

func TestReader_Refresh_NoDeploymentSkipsToken(t *testing.T) {
	signer := mocks.NewSigner(t)
	source := &staticSource{signer: signer, ctx: connection.Context{Account: testAccount, NetworkKey: "bittensor"}}
	r := NewReader(source, testRegistry(t), zap.NewNop())

	signer.EXPECT().BalanceAt(mock.Anything, testAccount).Return(ether("500000000000000000"), nil).Once()

	got := r.Refresh(context.Background(), testAccount, "bittensor")
	require.Equal(t, "0.5", got.Native.String())
	require.True(t, got.Token.IsZero())
	require.Equal(t, "TAO", got.NativeSymbol)
}

func TestReader_Refresh_NoActiveConnection(t *testing.T) {
	source := &staticSource{err: connection.ErrNoActiveConnection}
	r := NewReader(source, testRegistry(t), zap.NewNop())

	got := r.Refresh(context.Background(), testAccount, "ethereum")
	require.True(t, got.Native.IsZero())
	require.True(t, got.Token.IsZero())
	require.True(t, got.UpdatedAt.IsZero())

	_, err := r.RefreshActive(context.Background())
	require.ErrorIs(t, err, connection.ErrNoActiveConnection)
}

func TestReader_Refresh_OtherNetworkActive(t *testing.T) {
	signer := mocks.NewSigner(t)
	source := &staticSource{signer: signer, ctx: connection.Context{Account: testAccount, NetworkKey: "bittensor"}}
	r := NewReader(source, testRegistry(t), zap.NewNop())

	got := r.Refresh(context.Background(), testAccount, "ethereum")
	require.True(t, got.Native.IsZero())
}

func TestReader_RefreshActive(t *testing.T) {
	signer := mocks.NewSigner(t)
	source := &staticSource{signer: signer, ctx: connection.Context{Account: testAccount, NetworkKey: "bittensor"}}
	r := NewReader(source, testRegistry(t), zap.NewNop())

	signer.EXPECT().BalanceAt(mock.Anything, testAccount).Return(ether("1000000000000000000"), nil).Once()

	got, err := r.RefreshActive(context.Background())
	require.NoError(t, err)
	require.Equal(t, network.Key("bittensor"), got.Network)
	require.Equal(t, "1", got.Native.String())
}

func TestReader_Refresh_OverlappingRefreshesKeepLatest(t *testing.T) {
	signer := mocks.NewSigner(t)
	source := &staticSource{signer: signer, ctx: connection.Context{Account: testAccount, NetworkKey: "bittensor"}}
	r := NewReader(source, testRegistry(t), zap.NewNop())

	var calls atomic.Int32
	entered := make(chan struct{})
	unblock := make(chan struct{})
	signer.EXPECT().BalanceAt(mock.Anything, testAccount).
		RunAndReturn(func(context.Context, common.Address) (*big.Int, error) {
			if calls.Add(1) == 1 {
				close(entered)
				<-unblock
				return ether("1000000000000000000"), nil
			}
			return ether("2000000000000000000"), nil
		}).Times(2)

	first := make(chan struct{})
	go func() {
		defer close(first)
		r.Refresh(context.Background(), testAccount, "bittensor")
	}()
	<-entered

	second := make(chan struct{})
	go func() {
		defer close(second)
		r.Refresh(context.Background(), testAccount, "bittensor")
	}()

	select {
	case <-second:
		t.Fatalf("second refresh completed while the first read was in flight")
	case <-time.After(50 * time.Millisecond):
	}
	require.Equal(t, int32(1), calls.Load())

	close(unblock)
	<-first
	<-second

	require.Equal(t, "2", r.Last(testAccount, "bittensor").Native.String())
}
