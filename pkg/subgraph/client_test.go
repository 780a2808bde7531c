package subgraph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/pkg/escrow"
	"github.com/chainsafe/vebal-sync/pkg/network"
)

var testAccount = common.HexToAddress("0xAbCdEf0123456789aBcDeF0123456789AbCdEf01")

type recordedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newSubgraph(t *testing.T, status int, body string, seen *recordedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if seen != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_BridgedLocks(t *testing.T) {
	var seen recordedRequest
	srv := newSubgraph(t, http.StatusOK, `{"data":{"omniVotingEscrowLocks":[
		{"id":"0x1","localUser":"0xabcdef0123456789abcdef0123456789abcdef01","remoteUser":"0x00000000000000000000000000000000000000bb","bias":"10.5","slope":"0.000001","dstChainId":109}
	]}}`, &seen)

	client := NewClient(map[network.Network]string{network.Mainnet: srv.URL}, nil, zap.NewNop())
	locks, err := client.BridgedLocks(context.Background(), testAccount)
	require.NoError(t, err)

	assert.Equal(t, []escrow.BridgedLock{{
		Bias:       "10.5",
		Slope:      "0.000001",
		RemoteUser: "0x00000000000000000000000000000000000000bb",
	}}, locks)
	assert.Contains(t, seen.Query, "omniVotingEscrowLocks")
	assert.Equal(t, "0xabcdef0123456789abcdef0123456789abcdef01", seen.Variables["localUser"])
}

func TestClient_BridgedLocks_Empty(t *testing.T) {
	srv := newSubgraph(t, http.StatusOK, `{"data":{"omniVotingEscrowLocks":[]}}`, nil)

	client := NewClient(map[network.Network]string{network.Mainnet: srv.URL}, nil, zap.NewNop())
	locks, err := client.BridgedLocks(context.Background(), testAccount)
	require.NoError(t, err)
	assert.NotNil(t, locks)
	assert.Empty(t, locks)
}

func TestClient_VotingEscrowLocks(t *testing.T) {
	var seen recordedRequest
	srv := newSubgraph(t, http.StatusOK, `{"data":{"votingEscrowLocks":[
		{"id":"a","bias":"100","slope":"1","timestamp":1700000000},
		{"id":"b","bias":"7","slope":"0","timestamp":"1700000123"}
	]}}`, &seen)

	client := NewClient(map[network.Network]string{network.Arbitrum: srv.URL}, nil, zap.NewNop())
	locks, err := client.VotingEscrowLocks(context.Background(), network.Arbitrum, testAccount)
	require.NoError(t, err)

	assert.Equal(t, []escrow.Lock{
		{Bias: "100", Slope: "1", Timestamp: 1700000000},
		{Bias: "7", Slope: "0", Timestamp: 1700000123},
	}, locks)
	assert.Contains(t, seen.Query, "votingEscrowLocks")
	assert.Equal(t, "0xabcdef0123456789abcdef0123456789abcdef01", seen.Variables["user"])
}

func TestClient_UnknownNetwork(t *testing.T) {
	client := NewClient(map[network.Network]string{}, nil, zap.NewNop())

	_, err := client.VotingEscrowLocks(context.Background(), network.Gnosis, testAccount)
	require.ErrorIs(t, err, ErrUnknownNetwork)

	_, err = client.BridgedLocks(context.Background(), testAccount)
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestClient_GraphQLErrors(t *testing.T) {
	srv := newSubgraph(t, http.StatusOK, `{"data":null,"errors":[{"message":"indexer unavailable"},{"message":"try later"}]}`, nil)

	client := NewClient(map[network.Network]string{network.Polygon: srv.URL}, nil, zap.NewNop())
	_, err := client.VotingEscrowLocks(context.Background(), network.Polygon, testAccount)
	require.Error(t, err)

	var qe *QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, network.Polygon, qe.Network)
	assert.Equal(t, []string{"indexer unavailable", "try later"}, qe.Messages)
}

func TestClient_HTTPError(t *testing.T) {
	srv := newSubgraph(t, http.StatusBadGateway, `upstream down`, nil)

	client := NewClient(map[network.Network]string{network.Mainnet: srv.URL}, nil, zap.NewNop())
	_, err := client.BridgedLocks(context.Background(), testAccount)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestClient_MissingData(t *testing.T) {
	srv := newSubgraph(t, http.StatusOK, `{}`, nil)

	client := NewClient(map[network.Network]string{network.Mainnet: srv.URL}, nil, zap.NewNop())
	_, err := client.BridgedLocks(context.Background(), testAccount)
	require.Error(t, err)
}

func TestClient_ContextCanceled(t *testing.T) {
	srv := newSubgraph(t, http.StatusOK, `{"data":{"votingEscrowLocks":[]}}`, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(map[network.Network]string{network.Mainnet: srv.URL}, nil, zap.NewNop())
	_, err := client.VotingEscrowLocks(ctx, network.Mainnet, testAccount)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFlexInt(t *testing.T) {
	var v struct {
		A flexInt `json:"a"`
		B flexInt `json:"b"`
		C flexInt `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"34","c":null}`), &v))
	assert.Equal(t, flexInt(12), v.A)
	assert.Equal(t, flexInt(34), v.B)
	assert.Equal(t, flexInt(0), v.C)

	require.Error(t, json.Unmarshal([]byte(`{"a":"1.5x"}`), &v))
}
