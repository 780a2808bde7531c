// Package syncapi holds the request and response types of the sync API.
package syncapi

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/chainsafe/vebal-sync/pkg/escrow"
	"github.com/chainsafe/vebal-sync/pkg/network"
	"github.com/chainsafe/vebal-sync/pkg/reconciler"
)

// Submission is a sendUserBalance transaction sent on behalf of an account.
type Submission struct {
	ID            uuid.UUID       `json:"id"`
	Account       common.Address  `json:"account"`
	Network       network.Network `json:"network"`
	SourceNetwork network.Network `json:"source_network"`
	BridgeChainID uint16          `json:"bridge_chain_id"`
	Contract      common.Address  `json:"contract"`
	// NativeFee is the LayerZero fee paid, in wei.
	NativeFee string      `json:"native_fee"`
	TxHash    common.Hash `json:"tx_hash"`
	CreatedAt time.Time   `json:"created_at"`
}

// NetworkStatus is the sync state of one secondary network.
type NetworkStatus struct {
	Network network.Network  `json:"network"`
	ChainID int64            `json:"chain_id"`
	State   escrow.SyncState `json:"state"`
	// Balance is the projected veBAL balance; nil when the network has no lock record.
	Balance *string `json:"balance"`
}

// Status is the consolidated sync view of one account.
type Status struct {
	Account     common.Address       `json:"account"`
	RemoteUser  *common.Address      `json:"remote_user,omitempty"`
	Loading     bool                 `json:"loading"`
	Networks    []NetworkStatus      `json:"networks"`
	Partition   reconciler.Partition `json:"partition"`
	Errors      map[string]string    `json:"errors,omitempty"`
	LastRefetch time.Time            `json:"last_refetch"`
}

// NewStatus flattens a reconciler view. Networks are listed in the order
// given by networks.
func NewStatus(v reconciler.View, networks []network.Network) *Status {
	s := &Status{
		Account:     v.Account,
		RemoteUser:  v.RemoteUser,
		Loading:     v.Loading,
		Networks:    make([]NetworkStatus, 0, len(networks)),
		Partition:   v.Partition,
		Errors:      v.Errors,
		LastRefetch: v.LastRefetch,
	}
	for _, n := range networks {
		ns := NetworkStatus{
			Network: n,
			ChainID: n.ChainID(),
			State:   v.States[n],
		}
		if b, ok := v.Balances[n]; ok {
			ns.Balance = &b
		}
		s.Networks = append(s.Networks, ns)
	}
	return s
}
