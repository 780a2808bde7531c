package service

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/vebal-sync/pkg/app/errors"
	"github.com/chainsafe/vebal-sync/pkg/auth"
	"github.com/chainsafe/vebal-sync/pkg/db"
	"github.com/chainsafe/vebal-sync/pkg/escrow"
	"github.com/chainsafe/vebal-sync/pkg/network"
	"github.com/chainsafe/vebal-sync/pkg/reconciler"
	"github.com/chainsafe/vebal-sync/pkg/syncapi"
	"github.com/chainsafe/vebal-sync/pkg/syncapi/service/mocks"
)

var (
	connected = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	stranger  = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	contract  = common.HexToAddress("0xE241C6e48CA045C7f631600a0f1403b2bFea05ad")
)

type fixture struct {
	svc      Service
	rec      *mocks.Reconciler
	store    *mocks.Store
	factory  map[common.Address]*mocks.Reconciler
	factoryN int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		rec:     mocks.NewReconciler(t),
		store:   mocks.NewStore(t),
		factory: make(map[common.Address]*mocks.Reconciler),
	}
	svc, err := NewService(Config{
		Connected:           connected,
		ConnectedReconciler: f.rec,
		Factory: func(account common.Address) Reconciler {
			f.factoryN++
			return f.factory[account]
		},
		Store: f.store,
	}, zap.NewNop())
	require.NoError(t, err)
	f.svc = svc
	return f
}

func syncingView(account common.Address) reconciler.View {
	return reconciler.View{
		Account: account,
		States: map[network.Network]escrow.SyncState{
			network.Polygon:  escrow.Synced,
			network.Arbitrum: escrow.Syncing,
			network.Gnosis:   escrow.Unsynced,
			network.Optimism: escrow.Unsynced,
		},
		Partition: reconciler.Partition{
			Synced:   []network.Network{network.Polygon},
			Syncing:  []network.Network{network.Arbitrum},
			Unsynced: []network.Network{network.Gnosis, network.Optimism},
		},
		Balances: map[network.Network]string{network.Polygon: "12.5000"},
	}
}

func TestNewService_RequiresCollaborators(t *testing.T) {
	_, err := NewService(Config{}, zap.NewNop())
	require.Error(t, err)
}

func TestSyncService_GetSyncStatus_ConnectedAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.rec.EXPECT().Refetch(mock.Anything).Return(nil).Once()
	f.rec.EXPECT().View().Return(syncingView(connected)).Once()

	status, err := f.svc.GetSyncStatus(ctx, connected)
	require.NoError(t, err)
	assert.Zero(t, f.factoryN)

	require.Len(t, status.Networks, 4)
	assert.Equal(t, network.Polygon, status.Networks[0].Network)
	assert.Equal(t, int64(137), status.Networks[0].ChainID)
	assert.Equal(t, escrow.Synced, status.Networks[0].State)
	require.NotNil(t, status.Networks[0].Balance)
	assert.Equal(t, "12.5000", *status.Networks[0].Balance)
	assert.Nil(t, status.Networks[1].Balance)
	assert.Equal(t, escrow.Syncing, status.Networks[1].State)
	assert.Equal(t, []network.Network{network.Arbitrum}, status.Partition.Syncing)
}

func TestSyncService_GetSyncStatus_CachesReconcilers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other := mocks.NewReconciler(t)
	f.factory[stranger] = other
	other.EXPECT().Refetch(mock.Anything).Return(nil).Twice()
	other.EXPECT().View().Return(syncingView(stranger)).Twice()

	for i := 0; i < 2; i++ {
		status, err := f.svc.GetSyncStatus(ctx, stranger)
		require.NoError(t, err)
		assert.Equal(t, stranger, status.Account)
	}
	assert.Equal(t, 1, f.factoryN)
}

func TestSyncService_GetSyncStatus_FetchErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing loaded", func(t *testing.T) {
		f := newFixture(t)
		f.rec.EXPECT().Refetch(mock.Anything).Return(errors.New("subgraph 503")).Once()
		f.rec.EXPECT().View().Return(reconciler.View{Loading: true}).Once()

		_, err := f.svc.GetSyncStatus(ctx, connected)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
	})

	t.Run("partial data", func(t *testing.T) {
		f := newFixture(t)
		v := syncingView(connected)
		v.Errors = map[string]string{"gnosis": "subgraph 503"}
		f.rec.EXPECT().Refetch(mock.Anything).Return(errors.New("subgraph 503")).Once()
		f.rec.EXPECT().View().Return(v).Once()

		status, err := f.svc.GetSyncStatus(ctx, connected)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"gnosis": "subgraph 503"}, status.Errors)
	})
}

func TestSyncService_GetSyncStatus_SharedRefetchOutlivesCaller(t *testing.T) {
	f := newFixture(t)

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	f.rec.EXPECT().Refetch(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			close(started)
			select {
			case <-release:
			case <-ctx.Done():
			}
		}
		return ctx.Err()
	})
	loading := syncingView(connected)
	loading.Loading = true
	f.rec.EXPECT().View().Return(loading).Once()

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := f.svc.GetSyncStatus(firstCtx, connected)
		first <- err
	}()
	<-started

	second := make(chan error, 1)
	go func() {
		_, err := f.svc.GetSyncStatus(context.Background(), connected)
		second <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	select {
	case err := <-first:
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CategoryDependencyFailure))
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(release)
	select {
	case err := <-second:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("second caller did not return")
	}
}

func TestSyncService_SyncNetwork(t *testing.T) {
	f := newFixture(t)
	ctx := auth.WithCaller(context.Background(), connected)
	txHash := common.HexToHash("0xabc")

	f.rec.EXPECT().Sync(ctx, network.Gnosis).Return(&reconciler.SyncResult{
		Network:       network.Gnosis,
		SourceNetwork: network.Mainnet,
		BridgeChainID: 145,
		Contract:      contract,
		NativeFee:     big.NewInt(42_000),
		TxHash:        txHash,
	}, nil).Once()
	f.store.EXPECT().CreateSubmission(ctx, mock.AnythingOfType("*syncapi.Submission")).
		Run(func(_ context.Context, s *syncapi.Submission) {
			s.ID = uuid.MustParse("6f1c2b6e-58a4-4d3c-9e0e-0d9b8c7a6f5e")
		}).
		Return(nil).Once()

	sub, err := f.svc.SyncNetwork(ctx, connected, network.Gnosis)
	require.NoError(t, err)
	assert.Equal(t, "6f1c2b6e-58a4-4d3c-9e0e-0d9b8c7a6f5e", sub.ID.String())
	assert.Equal(t, connected, sub.Account)
	assert.Equal(t, network.Gnosis, sub.Network)
	assert.Equal(t, network.Mainnet, sub.SourceNetwork)
	assert.Equal(t, uint16(145), sub.BridgeChainID)
	assert.Equal(t, contract, sub.Contract)
	assert.Equal(t, "42000", sub.NativeFee)
	assert.Equal(t, txHash, sub.TxHash)
}

func TestSyncService_SyncNetwork_StoreFailureStillReturnsSubmission(t *testing.T) {
	f := newFixture(t)
	ctx := auth.WithCaller(context.Background(), connected)

	f.rec.EXPECT().Sync(ctx, network.Polygon).Return(&reconciler.SyncResult{
		Network:   network.Polygon,
		NativeFee: big.NewInt(1),
		TxHash:    common.HexToHash("0x01"),
	}, nil).Once()
	f.store.EXPECT().CreateSubmission(ctx, mock.Anything).Return(errors.New("db down")).Once()

	sub, err := f.svc.SyncNetwork(ctx, connected, network.Polygon)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0x01"), sub.TxHash)
}

func TestSyncService_SyncNetwork_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		account common.Address
		wantCat apperrors.Category
		wantErr error
	}{
		{"unauthenticated", context.Background(), connected, apperrors.CategoryUnauthorized, nil},
		{"caller mismatch", auth.WithCaller(context.Background(), stranger), connected, apperrors.CategoryForbidden, ErrCallerMismatch},
		{"not connected", auth.WithCaller(context.Background(), stranger), stranger, apperrors.CategoryForbidden, ErrNotConnectedAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.SyncNetwork(tt.ctx, tt.account, network.Polygon)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.wantCat), "got %v", err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSyncService_SyncNetwork_ReconcilerErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantCat apperrors.Category
	}{
		{"unsupported network", reconciler.ErrUnsupportedNetwork, apperrors.CategoryDataError},
		{"missing contract", reconciler.ErrMissingContractAddress, apperrors.CategoryGeneralError},
		{"estimate failed", errors.New("execution reverted"), apperrors.CategoryDependencyFailure},
		{"timeout", context.DeadlineExceeded, apperrors.CategoryConnectionTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := auth.WithCaller(context.Background(), connected)
			f.rec.EXPECT().Sync(ctx, network.Base).Return(nil, tt.err).Once()

			_, err := f.svc.SyncNetwork(ctx, connected, network.Base)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.wantCat), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSyncService_ListSubmissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	subs := []*syncapi.Submission{{Account: connected, Network: network.Polygon}}

	f.store.EXPECT().ListSubmissions(ctx, connected, DefaultListLimit).Return(subs, nil).Once()
	got, err := f.svc.ListSubmissions(ctx, connected, 0)
	require.NoError(t, err)
	assert.Equal(t, subs, got)

	f.store.EXPECT().ListSubmissions(ctx, connected, 5).Return(nil, errors.New("db down")).Once()
	_, err = f.svc.ListSubmissions(ctx, connected, 5)
	assert.True(t, apperrors.Is(err, apperrors.CategoryGeneralError))

	for _, limit := range []int{-1, db.MaxListLimit + 1} {
		_, err = f.svc.ListSubmissions(ctx, connected, limit)
		assert.True(t, apperrors.Is(err, apperrors.CategoryDataError), "limit %d", limit)
	}
}

func TestSyncService_GetSubmission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.store.EXPECT().GetSubmission(ctx, id).Return(&syncapi.Submission{ID: id}, nil).Once()
	got, err := f.svc.GetSubmission(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	missing := uuid.New()
	f.store.EXPECT().GetSubmission(ctx, missing).Return(nil, db.ErrSubmissionNotFound).Once()
	_, err = f.svc.GetSubmission(ctx, missing)
	assert.True(t, apperrors.Is(err, apperrors.CategoryResourceNotFound))
}
