package reconciler

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/vebal-sync/pkg/escrow"
	"github.com/chainsafe/vebal-sync/pkg/network"
)

// Partition groups the secondary networks by sync state.
type Partition struct {
	Synced   []network.Network `json:"synced"`
	Unsynced []network.Network `json:"unsynced"`
	Syncing  []network.Network `json:"syncing"`
}

// View is the derived state of a Reconciler at one point in time.
type View struct {
	Account    common.Address                       `json:"account"`
	RemoteUser *common.Address                      `json:"remote_user,omitempty"`
	States     map[network.Network]escrow.SyncState `json:"states"`
	Partition  Partition                            `json:"partition"`
	// Balances holds the projected balance for networks that have a lock record.
	Balances    map[network.Network]string `json:"balances"`
	Loading     bool                       `json:"loading"`
	Errors      map[string]string          `json:"errors,omitempty"`
	LastRefetch time.Time                  `json:"last_refetch,omitempty"`
}

// memoView caches the derived view for one state version and wall-clock
// second. Balances depend on the clock, so a new second invalidates it.
type memoView struct {
	version uint64
	second  int64
	view    View
}

// View returns the current derived state.
func (r *Reconciler) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewLocked()
}

// IsLoading reports whether the view is still waiting on a fetch.
func (r *Reconciler) IsLoading() bool {
	return r.View().Loading
}

func (r *Reconciler) viewLocked() View {
	now := r.now()
	if m := r.memo; m != nil && m.version == r.version && m.second == now.Unix() {
		return m.view.clone()
	}

	remote := make(map[network.Network]*escrow.Lock, len(r.remote))
	for n, src := range r.remote {
		remote[n] = src.first()
	}

	v := derive(r.account, r.networks, r.bridged.records, r.bridged.fetched, r.mainnet.first(), remote, now)
	v.Loading = r.loadingLocked(r.bridged.fetched && len(r.bridged.records) == 0)
	v.Errors = r.errorsLocked()
	v.LastRefetch = r.lastSync

	r.memo = &memoView{version: r.version, second: now.Unix(), view: v}
	return v.clone()
}

// derive computes states, partition and balances from one snapshot of records.
func derive(
	account common.Address,
	networks []network.Network,
	bridged []escrow.BridgedLock,
	bridgedFetched bool,
	canonical *escrow.Lock,
	remote map[network.Network]*escrow.Lock,
	now time.Time,
) View {
	v := View{
		Account:  account,
		States:   make(map[network.Network]escrow.SyncState, len(networks)),
		Balances: make(map[network.Network]string, len(networks)),
		Partition: Partition{
			Synced:   []network.Network{},
			Unsynced: []network.Network{},
			Syncing:  []network.Network{},
		},
	}

	var bridgedLock *escrow.BridgedLock
	if len(bridged) > 0 {
		bridgedLock = &bridged[0]
	}
	if user, ok := remoteUserOf(bridgedLock); ok {
		v.RemoteUser = &user
	}

	// An account without bridged records has never synced anywhere.
	fastPath := bridgedFetched && len(bridged) == 0

	for _, n := range networks {
		state := escrow.Unsynced
		if !fastPath {
			state = escrow.Classify(bridgedLock, canonical, remote[n])
		}
		v.States[n] = state

		switch state {
		case escrow.Synced:
			v.Partition.Synced = append(v.Partition.Synced, n)
		case escrow.Syncing:
			v.Partition.Syncing = append(v.Partition.Syncing, n)
		default:
			v.Partition.Unsynced = append(v.Partition.Unsynced, n)
		}

		if lock := remote[n]; lock != nil {
			v.Balances[n] = escrow.CalculateBalanceAt(lock.Bias, lock.Slope, lock.Timestamp, now)
		}
	}
	return v
}

// loadingLocked is true while any fetch is in flight or a source the view
// depends on has never loaded. The empty-bridged fast path is never loading.
func (r *Reconciler) loadingLocked(fastPath bool) bool {
	if fastPath {
		return false
	}
	if r.bridged.inFlight > 0 || r.mainnet.inFlight > 0 {
		return true
	}
	if !r.bridged.fetched || !r.mainnet.fetched {
		return true
	}
	for _, src := range r.remote {
		if src.inFlight > 0 {
			return true
		}
	}
	if _, ok := remoteUserOf(r.bridged.first()); ok {
		for _, src := range r.remote {
			if !src.fetched {
				return true
			}
		}
	}
	return false
}

func (r *Reconciler) errorsLocked() map[string]string {
	var errs map[string]string
	add := func(name string, err error) {
		if err == nil {
			return
		}
		if errs == nil {
			errs = make(map[string]string)
		}
		errs[name] = err.Error()
	}
	add("bridged", r.bridged.err)
	add(network.Mainnet.String(), r.mainnet.err)
	for n, src := range r.remote {
		add(n.String(), src.err)
	}
	return errs
}

// clone returns a copy that shares no maps or slices with v.
func (v View) clone() View {
	out := v
	out.States = make(map[network.Network]escrow.SyncState, len(v.States))
	for n, s := range v.States {
		out.States[n] = s
	}
	out.Balances = make(map[network.Network]string, len(v.Balances))
	for n, b := range v.Balances {
		out.Balances[n] = b
	}
	if v.Errors != nil {
		out.Errors = make(map[string]string, len(v.Errors))
		for k, e := range v.Errors {
			out.Errors[k] = e
		}
	}
	if v.RemoteUser != nil {
		user := *v.RemoteUser
		out.RemoteUser = &user
	}
	out.Partition = Partition{
		Synced:   append([]network.Network{}, v.Partition.Synced...),
		Unsynced: append([]network.Network{}, v.Partition.Unsynced...),
		Syncing:  append([]network.Network{}, v.Partition.Syncing...),
	}
	return out
}
