// Package service implements the sync API on top of per-account reconcilers.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	apperrors "github.com/chainsafe/vebal-sync/pkg/app/errors"
	"github.com/chainsafe/vebal-sync/pkg/auth"
	"github.com/chainsafe/vebal-sync/pkg/db"
	"github.com/chainsafe/vebal-sync/pkg/network"
	"github.com/chainsafe/vebal-sync/pkg/reconciler"
	"github.com/chainsafe/vebal-sync/pkg/syncapi"
)

const (
	// DefaultListLimit is used when ListSubmissions gets no limit.
	DefaultListLimit = 50
	// DefaultCacheSize bounds the number of cached reconcilers.
	DefaultCacheSize = 1024
	// DefaultRefetchTimeout bounds a refetch shared by concurrent requests.
	DefaultRefetchTimeout = time.Minute
)

var (
	ErrNotConnectedAccount = errors.New("only the connected account can be synced")
	ErrCallerMismatch      = errors.New("caller does not own the account")
)

// Store is the narrow data-access interface of the sync service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateSubmission(ctx context.Context, s *syncapi.Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*syncapi.Submission, error)
	ListSubmissions(ctx context.Context, account common.Address, limit int) ([]*syncapi.Submission, error)
}

// Reconciler is the per-account view the service reads and drives.
//
//go:generate mockery --name Reconciler --output mocks --outpkg mocks --filename mock_reconciler.go --with-expecter
type Reconciler interface {
	Refetch(ctx context.Context) error
	View() reconciler.View
	Sync(ctx context.Context, n network.Network) (*reconciler.SyncResult, error)
}

// ReconcilerFactory builds the reconciler of an account that is not the connected one.
type ReconcilerFactory func(account common.Address) Reconciler

// Service defines the sync API business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetSyncStatus(ctx context.Context, account common.Address) (*syncapi.Status, error)
	SyncNetwork(ctx context.Context, account common.Address, n network.Network) (*syncapi.Submission, error)
	ListSubmissions(ctx context.Context, account common.Address, limit int) ([]*syncapi.Submission, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*syncapi.Submission, error)
}

// Config holds the collaborators of the sync service.
type Config struct {
	// Connected is the account whose key signs bridge transactions.
	Connected common.Address
	// ConnectedReconciler is shared with the poller so both see the same state.
	ConnectedReconciler Reconciler
	Factory             ReconcilerFactory
	Store               Store
	// Networks lists the secondary networks in response order.
	Networks  []network.Network
	CacheSize int
	// RefetchTimeout bounds a shared refetch. Defaults to DefaultRefetchTimeout.
	RefetchTimeout time.Duration
}

type syncService struct {
	connected    common.Address
	connectedRec Reconciler
	factory      ReconcilerFactory
	store        Store
	networks     []network.Network
	timeout      time.Duration
	logger       *zap.Logger

	mu        sync.Mutex
	cache     *lru.Cache[common.Address, Reconciler]
	refetches singleflight.Group
}

// NewService creates a new sync service
func NewService(cfg Config, logger *zap.Logger) (Service, error) {
	if cfg.ConnectedReconciler == nil || cfg.Factory == nil || cfg.Store == nil {
		return nil, fmt.Errorf("sync service: reconciler, factory and store are required")
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[common.Address, Reconciler](size)
	if err != nil {
		return nil, fmt.Errorf("create reconciler cache: %w", err)
	}
	networks := cfg.Networks
	if len(networks) == 0 {
		networks = network.Participating()
	}
	timeout := cfg.RefetchTimeout
	if timeout <= 0 {
		timeout = DefaultRefetchTimeout
	}

	return &syncService{
		connected:    cfg.Connected,
		connectedRec: cfg.ConnectedReconciler,
		factory:      cfg.Factory,
		store:        cfg.Store,
		networks:     networks,
		timeout:      timeout,
		logger:       logger,
		cache:        cache,
	}, nil
}

// reconcilerFor returns the cached reconciler of account, creating it on first use.
func (s *syncService) reconcilerFor(account common.Address) Reconciler {
	if account == s.connected {
		return s.connectedRec
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.cache.Get(account); ok {
		return r
	}
	r := s.factory(account)
	s.cache.Add(account, r)
	return r
}

// GetSyncStatus refetches the account's records and returns its sync view.
// Concurrent requests for one account share a single refetch, which outlives
// any one caller's context. Fetch errors are reported in the status as long
// as some data could be derived.
func (s *syncService) GetSyncStatus(ctx context.Context, account common.Address) (*syncapi.Status, error) {
	r := s.reconcilerFor(account)

	ch := s.refetches.DoChan(account.Hex(), func() (any, error) {
		refetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return nil, r.Refetch(refetchCtx)
	})

	var err error
	select {
	case res := <-ch:
		err = res.Err
	case <-ctx.Done():
		return nil, apperrors.DependencyError(ctx.Err(), "request ended before lock records were fetched")
	}

	v := r.View()
	if err != nil && v.Loading {
		return nil, apperrors.DependencyError(err, "failed to fetch lock records")
	}
	return syncapi.NewStatus(v, s.networks), nil
}

// SyncNetwork submits the bridge transaction that carries the connected
// account's balance to n. The caller must be authenticated as that account.
func (s *syncService) SyncNetwork(ctx context.Context, account common.Address, n network.Network) (*syncapi.Submission, error) {
	caller, ok := auth.CallerFromContext(ctx)
	if !ok {
		return nil, apperrors.UnAuthorizedError(nil, "authentication required")
	}
	if caller != account {
		return nil, apperrors.ForbiddenError(ErrCallerMismatch, "caller does not own the account")
	}
	if account != s.connected {
		return nil, apperrors.ForbiddenError(ErrNotConnectedAccount, "only the connected account can be synced")
	}

	res, err := s.connectedRec.Sync(ctx, n)
	switch {
	case errors.Is(err, reconciler.ErrUnsupportedNetwork):
		return nil, apperrors.BadRequestError(err, fmt.Sprintf("network %s does not take part in cross-chain sync", n))
	case errors.Is(err, reconciler.ErrMissingContractAddress):
		return nil, apperrors.GeneralError(err)
	case err != nil:
		return nil, apperrors.DependencyError(err, "failed to submit sync transaction")
	}

	sub := &syncapi.Submission{
		Account:       account,
		Network:       res.Network,
		SourceNetwork: res.SourceNetwork,
		BridgeChainID: res.BridgeChainID,
		Contract:      res.Contract,
		NativeFee:     res.NativeFee.String(),
		TxHash:        res.TxHash,
	}
	// The transaction is already broadcast; a failed insert must not make the
	// client believe it can retry.
	if err := s.store.CreateSubmission(ctx, sub); err != nil {
		s.logger.Error("Failed to record sync submission",
			zap.String("tx_hash", res.TxHash.Hex()),
			zap.Error(err))
	}
	return sub, nil
}

// ListSubmissions returns the account's submissions, newest first.
func (s *syncService) ListSubmissions(ctx context.Context, account common.Address, limit int) ([]*syncapi.Submission, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > db.MaxListLimit {
		return nil, apperrors.BadRequestError(nil, fmt.Sprintf("limit must be between 1 and %d", db.MaxListLimit))
	}

	subs, err := s.store.ListSubmissions(ctx, account, limit)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return subs, nil
}

func (s *syncService) GetSubmission(ctx context.Context, id uuid.UUID) (*syncapi.Submission, error) {
	sub, err := s.store.GetSubmission(ctx, id)
	if errors.Is(err, db.ErrSubmissionNotFound) {
		return nil, apperrors.ResourceNotFoundError(err, "submission not found")
	}
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return sub, nil
}
