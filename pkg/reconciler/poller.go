package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/internal/metrics"
	"github.com/chainsafe/vebal-sync/pkg/escrow"
)

const defaultRefetchTimeout = 2 * time.Minute

// Poller refetches a reconciler on a fixed interval and exports its view as
// metrics.
type Poller struct {
	reconciler *Reconciler
	interval   time.Duration
	timeout    time.Duration
	logger     *zap.Logger

	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	unsubscribe func()
}

// NewPoller creates a Poller. Each refetch is bounded by a two minute timeout.
func NewPoller(r *Reconciler, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		reconciler: r,
		interval:   interval,
		timeout:    defaultRefetchTimeout,
		logger:     logger,
		stopCh:     make(chan struct{}),
	}
}

// Start refetches once immediately and then on every tick until Stop.
func (p *Poller) Start() {
	account := p.reconciler.Account().Hex()
	p.unsubscribe = p.reconciler.Subscribe(func(v View) {
		exportView(account, v)
	})

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Info("Started periodic refetch",
			zap.String("account", account),
			zap.Duration("interval", p.interval))

		p.refetch()
		for {
			select {
			case <-ticker.C:
				p.refetch()
			case <-p.stopCh:
				p.logger.Info("Stopping periodic refetch")
				return
			}
		}
	}()
}

// Stop stops the loop and waits for an in-progress refetch to return.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
		p.wg.Wait()
		if p.unsubscribe != nil {
			p.unsubscribe()
		}
	})
}

func (p *Poller) refetch() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	// Abort the in-flight fetches when Stop is called.
	go func() {
		select {
		case <-p.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	err := p.reconciler.Refetch(ctx)
	metrics.LastRefetch.WithLabelValues(p.reconciler.Account().Hex()).SetToCurrentTime()
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("poller", "refetch").Inc()
		p.logger.Error("Periodic refetch failed", zap.Error(err))
		return
	}

	v := p.reconciler.View()
	p.logger.Info("Refetch cycle completed",
		zap.Int("synced", len(v.Partition.Synced)),
		zap.Int("syncing", len(v.Partition.Syncing)),
		zap.Int("unsynced", len(v.Partition.Unsynced)))
}

var allStates = []escrow.SyncState{escrow.Unsynced, escrow.Syncing, escrow.Synced}

func exportView(account string, v View) {
	for n, state := range v.States {
		for _, s := range allStates {
			value := 0.0
			if s == state {
				value = 1
			}
			metrics.SyncState.WithLabelValues(account, n.String(), s.String()).Set(value)
		}
	}
	for n, balance := range v.Balances {
		d, err := decimal.NewFromString(balance)
		if err != nil {
			continue
		}
		f, _ := d.Float64()
		metrics.ProjectedBalance.WithLabelValues(account, n.String()).Set(f)
	}
}
