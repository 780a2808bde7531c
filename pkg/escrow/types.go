// Package escrow models veBAL lock records and the pure functions derived from
// them: the linear-decay balance projection and the cross-chain sync state.
package escrow

// Lock is a voting-escrow point as recorded on a single chain.
// Bias is the balance at Timestamp and Slope its per-second decay.
type Lock struct {
	Bias      string `json:"bias"`
	Slope     string `json:"slope"`
	Timestamp int64  `json:"timestamp"`
}

// BridgedLock is the copy of the canonical lock held by the bridge contract.
// RemoteUser, when set, is the account that receives the balance on the
// secondary networks (smart-contract wallets may delegate it elsewhere).
type BridgedLock struct {
	Bias       string `json:"bias"`
	Slope      string `json:"slope"`
	RemoteUser string `json:"remote_user,omitempty"`
}

// SyncState describes how far the latest canonical lock has propagated to a
// secondary network.
type SyncState string

const (
	Unsynced SyncState = "unsynced"
	Syncing  SyncState = "syncing"
	Synced   SyncState = "synced"
)

func (s SyncState) String() string {
	return string(s)
}
