// Package reconciler tracks how far an account's veBAL lock has propagated
// from the canonical chain, through the OmniVotingEscrow bridge, to each
// secondary network, and submits the bridge transaction that pushes it along.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/vebal-sync/internal/metrics"
	"github.com/chainsafe/vebal-sync/pkg/escrow"
	"github.com/chainsafe/vebal-sync/pkg/network"
)

var (
	// ErrMissingContractAddress means no OmniVotingEscrow address is configured for the active network.
	ErrMissingContractAddress = errors.New("omni voting escrow address not configured for active network")
	// ErrUnsupportedNetwork means the target network does not take part in cross-chain sync.
	ErrUnsupportedNetwork = errors.New("network does not take part in cross-chain sync")
)

// BridgedLockFetcher reads the bridge contract's mirror of an account's lock.
type BridgedLockFetcher interface {
	BridgedLocks(ctx context.Context, account common.Address) ([]escrow.BridgedLock, error)
}

// VotingEscrowFetcher reads an account's lock as recorded on one network.
type VotingEscrowFetcher interface {
	VotingEscrowLocks(ctx context.Context, n network.Network, account common.Address) ([]escrow.Lock, error)
}

// Bridge wraps the OmniVotingEscrow fee estimation and send calls.
type Bridge interface {
	EstimateSendUserBalance(ctx context.Context, contract common.Address, dstChainID uint16) (*big.Int, error)
	SendUserBalance(ctx context.Context, contract, user common.Address, dstChainID uint16, nativeFee *big.Int) (common.Hash, error)
}

// Config is the per-deployment input of a Reconciler.
type Config struct {
	// ActiveNetwork is the chain the connected wallet sends transactions on.
	ActiveNetwork network.Network
	// Contracts holds the OmniVotingEscrow address per network.
	Contracts map[network.Network]common.Address
	// Registry maps networks to LayerZero chain ids. Defaults to network.DefaultRegistry().
	Registry *network.Registry
	// Networks overrides the secondary networks to track. Defaults to network.Participating().
	Networks []network.Network
}

// Reconciler holds the raw lock records of one account and derives its
// per-network sync view from them. It is safe for concurrent use.
type Reconciler struct {
	account  common.Address
	cfg      Config
	networks []network.Network

	bridgedFetcher BridgedLockFetcher
	lockFetcher    VotingEscrowFetcher
	bridge         Bridge
	logger         *zap.Logger
	now            func() time.Time

	mu       sync.Mutex
	bridged  source[escrow.BridgedLock]
	mainnet  source[escrow.Lock]
	remote   map[network.Network]*source[escrow.Lock]
	version  uint64
	memo     *memoView
	subs     map[int]func(View)
	nextSub  int
	lastSync time.Time
}

// source is the fetch state of one query. Fetches are numbered as they
// start; a completion older than the last applied one is dropped.
type source[T any] struct {
	records  []T
	fetched  bool
	inFlight int
	err      error
	started  uint64
	applied  uint64
}

func (s *source[T]) start() uint64 {
	s.inFlight++
	s.started++
	return s.started
}

func (s *source[T]) finish(seq uint64, records []T, err error) {
	s.inFlight--
	if seq <= s.applied {
		return
	}
	s.applied = seq
	s.err = err
	if err == nil {
		s.records = records
		s.fetched = true
	}
}

func (s *source[T]) first() *T {
	if len(s.records) == 0 {
		return nil
	}
	return &s.records[0]
}

// New creates a Reconciler for account.
func New(
	account common.Address,
	cfg Config,
	bridgedFetcher BridgedLockFetcher,
	lockFetcher VotingEscrowFetcher,
	bridge Bridge,
	logger *zap.Logger,
) *Reconciler {
	if cfg.Registry == nil {
		cfg.Registry = network.DefaultRegistry()
	}
	networks := cfg.Networks
	if len(networks) == 0 {
		networks = network.Participating()
	}

	remote := make(map[network.Network]*source[escrow.Lock], len(networks))
	for _, n := range networks {
		remote[n] = &source[escrow.Lock]{}
	}

	return &Reconciler{
		account:        account,
		cfg:            cfg,
		networks:       networks,
		bridgedFetcher: bridgedFetcher,
		lockFetcher:    lockFetcher,
		bridge:         bridge,
		logger:         logger.With(zap.String("account", account.Hex())),
		now:            time.Now,
		remote:         remote,
		subs:           make(map[int]func(View)),
	}
}

// Account returns the connected account the reconciler tracks.
func (r *Reconciler) Account() common.Address {
	return r.account
}

// Refetch re-reads the bridge mirror and the canonical lock in parallel, then
// re-reads the secondary-network locks if the bridge mirror names a remote user.
// Errors from every fetch are joined; records from successful fetches are kept.
func (r *Reconciler) Refetch(ctx context.Context) error {
	start := r.now()

	var (
		g                      errgroup.Group
		bridgedErr, mainnetErr error
	)
	g.Go(func() error {
		bridgedErr = r.fetchBridged(ctx)
		return nil
	})
	g.Go(func() error {
		mainnetErr = r.fetchMainnet(ctx)
		return nil
	})
	_ = g.Wait()

	errs := []error{bridgedErr, mainnetErr}

	if remoteUser, ok := r.RemoteUser(); ok {
		errs = append(errs, r.fetchRemote(ctx, remoteUser))
	} else {
		r.logger.Debug("Skipping secondary network fetch, no remote user resolved")
	}

	err := errors.Join(errs...)

	r.mu.Lock()
	r.lastSync = r.now()
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn("Refetch completed with errors",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return err
	}
	r.logger.Debug("Refetch completed", zap.Duration("duration", time.Since(start)))
	return nil
}

// RemoteUser returns the account the bridge attributes the balance to on
// secondary networks, as recorded in the first bridged lock.
func (r *Reconciler) RemoteUser() (common.Address, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return remoteUserOf(r.bridged.first())
}

func remoteUserOf(lock *escrow.BridgedLock) (common.Address, bool) {
	if lock == nil || !common.IsHexAddress(lock.RemoteUser) {
		return common.Address{}, false
	}
	return common.HexToAddress(lock.RemoteUser), true
}

func (r *Reconciler) fetchBridged(ctx context.Context) error {
	var seq uint64
	r.begin(func() { seq = r.bridged.start() })
	start := time.Now()
	locks, err := r.bridgedFetcher.BridgedLocks(ctx, r.account)
	observeFetch("bridged", start, err)

	r.complete(func() { r.bridged.finish(seq, locks, err) })
	if err != nil {
		return fmt.Errorf("fetch bridged locks: %w", err)
	}
	return nil
}

func (r *Reconciler) fetchMainnet(ctx context.Context) error {
	var seq uint64
	r.begin(func() { seq = r.mainnet.start() })
	start := time.Now()
	locks, err := r.lockFetcher.VotingEscrowLocks(ctx, network.Mainnet, r.account)
	observeFetch(network.Mainnet.String(), start, err)

	r.complete(func() { r.mainnet.finish(seq, locks, err) })
	if err != nil {
		return fmt.Errorf("fetch %s locks: %w", network.Mainnet, err)
	}
	return nil
}

// fetchRemote reads the lock of user on every secondary network in parallel.
func (r *Reconciler) fetchRemote(ctx context.Context, user common.Address) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, n := range r.networks {
		src := r.remote[n]
		g.Go(func() error {
			var seq uint64
			r.begin(func() { seq = src.start() })
			start := time.Now()
			locks, err := r.lockFetcher.VotingEscrowLocks(ctx, n, user)
			observeFetch(n.String(), start, err)

			r.complete(func() { src.finish(seq, locks, err) })
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("fetch %s locks: %w", n, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// begin records the start of a fetch. Subscribers are not notified; the
// loading flag is visible through View.
func (r *Reconciler) begin(mutate func()) {
	r.mu.Lock()
	mutate()
	r.version++
	r.mu.Unlock()
}

// complete applies a fetch result and notifies subscribers with the new view.
func (r *Reconciler) complete(mutate func()) {
	r.mu.Lock()
	mutate()
	r.version++
	view := r.viewLocked()
	subs := make([]func(View), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(view)
	}
}

// Subscribe registers fn to be called with the recomputed view after every
// fetch completes. The returned function removes the subscription.
func (r *Reconciler) Subscribe(fn func(View)) (unsubscribe func()) {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

func observeFetch(source string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.FetchesTotal.WithLabelValues(source, status).Inc()
	metrics.FetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}
