package reconciler

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/vebal-sync/pkg/escrow"
	"github.com/chainsafe/vebal-sync/pkg/network"
)

// MockBridgedFetcher is a mock implementation of BridgedLockFetcher
type MockBridgedFetcher struct {
	BridgedLocksFunc func(ctx context.Context, account common.Address) ([]escrow.BridgedLock, error)

	mu    sync.Mutex
	calls []common.Address
}

func (m *MockBridgedFetcher) BridgedLocks(ctx context.Context, account common.Address) ([]escrow.BridgedLock, error) {
	m.mu.Lock()
	m.calls = append(m.calls, account)
	m.mu.Unlock()
	if m.BridgedLocksFunc != nil {
		return m.BridgedLocksFunc(ctx, account)
	}
	return []escrow.BridgedLock{}, nil
}

func (m *MockBridgedFetcher) Calls() []common.Address {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]common.Address(nil), m.calls...)
}

type lockCall struct {
	Network network.Network
	Account common.Address
}

// MockLockFetcher is a mock implementation of VotingEscrowFetcher
type MockLockFetcher struct {
	VotingEscrowLocksFunc func(ctx context.Context, n network.Network, account common.Address) ([]escrow.Lock, error)

	mu    sync.Mutex
	calls []lockCall
}

func (m *MockLockFetcher) VotingEscrowLocks(ctx context.Context, n network.Network, account common.Address) ([]escrow.Lock, error) {
	m.mu.Lock()
	m.calls = append(m.calls, lockCall{Network: n, Account: account})
	m.mu.Unlock()
	if m.VotingEscrowLocksFunc != nil {
		return m.VotingEscrowLocksFunc(ctx, n, account)
	}
	return []escrow.Lock{}, nil
}

func (m *MockLockFetcher) Calls() []lockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]lockCall(nil), m.calls...)
}

func (m *MockLockFetcher) CallsFor(n network.Network) []lockCall {
	var out []lockCall
	for _, c := range m.Calls() {
		if c.Network == n {
			out = append(out, c)
		}
	}
	return out
}

// MockBridge is a mock implementation of Bridge
type MockBridge struct {
	EstimateSendUserBalanceFunc func(ctx context.Context, contract common.Address, dstChainID uint16) (*big.Int, error)
	SendUserBalanceFunc         func(ctx context.Context, contract, user common.Address, dstChainID uint16, nativeFee *big.Int) (common.Hash, error)

	EstimateCalls int
	SendCalls     int
}

func (m *MockBridge) EstimateSendUserBalance(ctx context.Context, contract common.Address, dstChainID uint16) (*big.Int, error) {
	m.EstimateCalls++
	if m.EstimateSendUserBalanceFunc != nil {
		return m.EstimateSendUserBalanceFunc(ctx, contract, dstChainID)
	}
	return big.NewInt(0), nil
}

func (m *MockBridge) SendUserBalance(ctx context.Context, contract, user common.Address, dstChainID uint16, nativeFee *big.Int) (common.Hash, error) {
	m.SendCalls++
	if m.SendUserBalanceFunc != nil {
		return m.SendUserBalanceFunc(ctx, contract, user, dstChainID, nativeFee)
	}
	return common.Hash{}, nil
}
