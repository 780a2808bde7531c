package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/pkg/network"
	"github.com/chainsafe/vebal-sync/pkg/syncapi"
)

const serviceName = "SyncService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the sync Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", serviceName)),
	}
}

// done logs the outcome of method; success fields are only added when err is nil.
func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		ls.logger.Error(method+" failed", append(base, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", append(base, fields...)...)
}

func (ls *logService) GetSyncStatus(ctx context.Context, account common.Address) (status *syncapi.Status, err error) {
	start := time.Now()
	ls.logger.Debug("GetSyncStatus started",
		zap.String("method", "GetSyncStatus"),
		zap.String("account", account.Hex()))

	defer func() {
		var fields []zap.Field
		if status != nil {
			fields = []zap.Field{
				zap.String("account", account.Hex()),
				zap.Bool("loading", status.Loading),
				zap.Int("synced", len(status.Partition.Synced)),
				zap.Int("syncing", len(status.Partition.Syncing)),
				zap.Int("unsynced", len(status.Partition.Unsynced)),
			}
		}
		ls.done("GetSyncStatus", start, err, fields...)
	}()

	return ls.svc.GetSyncStatus(ctx, account)
}

func (ls *logService) SyncNetwork(ctx context.Context, account common.Address, n network.Network) (sub *syncapi.Submission, err error) {
	start := time.Now()
	ls.logger.Info("SyncNetwork started",
		zap.String("method", "SyncNetwork"),
		zap.String("account", account.Hex()),
		zap.String("network", n.String()))

	defer func() {
		var fields []zap.Field
		if sub != nil {
			fields = []zap.Field{
				zap.String("submission_id", sub.ID.String()),
				zap.String("tx_hash", sub.TxHash.Hex()),
				zap.Uint16("bridge_chain_id", sub.BridgeChainID),
				zap.String("native_fee", sub.NativeFee),
			}
		}
		ls.done("SyncNetwork", start, err, fields...)
	}()

	return ls.svc.SyncNetwork(ctx, account, n)
}

func (ls *logService) ListSubmissions(ctx context.Context, account common.Address, limit int) (subs []*syncapi.Submission, err error) {
	start := time.Now()
	defer func() {
		ls.done("ListSubmissions", start, err,
			zap.String("account", account.Hex()),
			zap.Int("count", len(subs)))
	}()
	return ls.svc.ListSubmissions(ctx, account, limit)
}

func (ls *logService) GetSubmission(ctx context.Context, id uuid.UUID) (sub *syncapi.Submission, err error) {
	start := time.Now()
	defer func() {
		ls.done("GetSubmission", start, err, zap.String("submission_id", id.String()))
	}()
	return ls.svc.GetSubmission(ctx, id)
}
