package reconciler

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/internal/metrics"
	"github.com/chainsafe/vebal-sync/pkg/network"
)

// SyncResult describes a submitted sendUserBalance transaction.
type SyncResult struct {
	Network       network.Network
	SourceNetwork network.Network
	BridgeChainID uint16
	Contract      common.Address
	NativeFee     *big.Int
	TxHash        common.Hash
}

// Sync estimates the bridge fee for delivering the account's balance to n
// and then submits the message with that fee. The send is never attempted
// when estimation fails. Sync does not change the view; the effect becomes
// visible once a later refetch observes the new records.
func (r *Reconciler) Sync(ctx context.Context, n network.Network) (*SyncResult, error) {
	contract, ok := r.cfg.Contracts[r.cfg.ActiveNetwork]
	if !ok || contract == (common.Address{}) {
		return nil, fmt.Errorf("%w: %s", ErrMissingContractAddress, r.cfg.ActiveNetwork)
	}

	dstChainID, ok := r.cfg.Registry.BridgeID(n)
	if !ok || !r.tracks(n) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedNetwork, n)
	}

	logger := r.logger.With(
		zap.String("network", n.String()),
		zap.Uint16("dst_chain_id", dstChainID))

	nativeFee, err := r.bridge.EstimateSendUserBalance(ctx, contract, dstChainID)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(n.String(), "estimate_failed").Inc()
		logger.Error("Failed to estimate bridge fee", zap.Error(err))
		return nil, fmt.Errorf("estimate send fee for %s: %w", n, err)
	}
	feeWei, _ := new(big.Float).SetInt(nativeFee).Float64()
	metrics.NativeFeeWei.WithLabelValues(n.String()).Set(feeWei)

	txHash, err := r.bridge.SendUserBalance(ctx, contract, r.account, dstChainID, nativeFee)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(n.String(), "send_failed").Inc()
		logger.Error("Failed to send user balance", zap.Error(err))
		return nil, fmt.Errorf("send user balance to %s: %w", n, err)
	}
	metrics.SubmissionsTotal.WithLabelValues(n.String(), "submitted").Inc()

	logger.Info("Sync transaction submitted",
		zap.String("tx_hash", txHash.Hex()),
		zap.String("native_fee", nativeFee.String()))

	return &SyncResult{
		Network:       n,
		SourceNetwork: r.cfg.ActiveNetwork,
		BridgeChainID: dstChainID,
		Contract:      contract,
		NativeFee:     nativeFee,
		TxHash:        txHash,
	}, nil
}

func (r *Reconciler) tracks(n network.Network) bool {
	for _, tracked := range r.networks {
		if tracked == n {
			return true
		}
	}
	return false
}
