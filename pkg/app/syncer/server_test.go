package syncer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/pkg/config"
	"github.com/chainsafe/vebal-sync/pkg/keys"
	"github.com/chainsafe/vebal-sync/pkg/network"
	"github.com/chainsafe/vebal-sync/pkg/syncapi"
	"github.com/chainsafe/vebal-sync/pkg/syncapi/service/mocks"
)

type fakeLoading bool

func (f fakeLoading) IsLoading() bool { return bool(f) }

func passthrough(next http.Handler) http.Handler { return next }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return rec
}

func TestRouter_HealthAndReady(t *testing.T) {
	s := NewServer(&config.Config{})

	r := s.setupRouter(mocks.NewService(t), fakeLoading(true), passthrough, zap.NewNop())
	assert.Equal(t, http.StatusOK, get(t, r, "/health").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, r, "/ready").Code)

	r = s.setupRouter(mocks.NewService(t), fakeLoading(false), passthrough, zap.NewNop())
	assert.Equal(t, http.StatusOK, get(t, r, "/ready").Code)
}

func TestRouter_Metrics(t *testing.T) {
	disabled := NewServer(&config.Config{}).setupRouter(mocks.NewService(t), fakeLoading(false), passthrough, zap.NewNop())
	assert.Equal(t, http.StatusNotFound, get(t, disabled, "/metrics").Code)

	enabled := NewServer(&config.Config{Monitoring: config.MonitoringConfig{Enabled: true}}).
		setupRouter(mocks.NewService(t), fakeLoading(false), passthrough, zap.NewNop())
	rec := get(t, enabled, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_MountsAPI(t *testing.T) {
	svc := mocks.NewService(t)
	account := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	svc.EXPECT().GetSyncStatus(mock.Anything, account).Return(&syncapi.Status{Account: account}, nil).Once()

	r := NewServer(&config.Config{}).setupRouter(svc, fakeLoading(false), passthrough, zap.NewNop())
	rec := get(t, r, "/api/v1/accounts/"+account.Hex()+"/sync")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReconcilerConfig(t *testing.T) {
	cfg := &config.Config{
		Sync: config.SyncConfig{ActiveNetwork: "mainnet"},
		Contracts: map[string]config.ContractConfig{
			"mainnet": {OmniVotingEscrow: "0xE241C6e48CA045C7f631600a0f1403b2bFea05ad"},
			"polygon": {},
		},
	}

	rc, err := reconcilerConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, network.Mainnet, rc.ActiveNetwork)
	assert.Equal(t, map[network.Network]common.Address{
		network.Mainnet: common.HexToAddress("0xE241C6e48CA045C7f631600a0f1403b2bFea05ad"),
	}, rc.Contracts)

	cfg.Sync.ActiveNetwork = "moonbeam"
	_, err = reconcilerConfig(cfg)
	assert.Error(t, err)
}

func TestConnectedAccount(t *testing.T) {
	signer := &keys.Signer{Address: common.HexToAddress("0x01")}
	cfg := &config.Config{}
	assert.Equal(t, signer.Address, connectedAccount(cfg, signer))

	cfg.Sync.Account = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	assert.Equal(t, common.HexToAddress(cfg.Sync.Account), connectedAccount(cfg, signer))
}
