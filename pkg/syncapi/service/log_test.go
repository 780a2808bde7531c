package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/vebal-sync/pkg/network"
	"github.com/chainsafe/vebal-sync/pkg/syncapi"
	"github.com/chainsafe/vebal-sync/pkg/syncapi/service"
	"github.com/chainsafe/vebal-sync/pkg/syncapi/service/mocks"
)

func TestLogService_SyncNetwork(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	inner := mocks.NewService(t)
	svc := service.NewLog(inner, zap.New(core))
	ctx := context.Background()

	id := uuid.New()
	inner.EXPECT().SyncNetwork(ctx, account, network.Optimism).
		Return(&syncapi.Submission{ID: id, BridgeChainID: 111, NativeFee: "10"}, nil).Once()

	_, err := svc.SyncNetwork(ctx, account, network.Optimism)
	require.NoError(t, err)

	completed := logs.FilterMessage("SyncNetwork completed").All()
	require.Len(t, completed, 1)
	fields := completed[0].ContextMap()
	assert.Equal(t, "SyncService", fields["service"])
	assert.Equal(t, id.String(), fields["submission_id"])
	assert.EqualValues(t, 111, fields["bridge_chain_id"])
	assert.Equal(t, 1, logs.FilterMessage("SyncNetwork started").Len())
}

func TestLogService_LogsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	inner := mocks.NewService(t)
	svc := service.NewLog(inner, zap.New(core))
	ctx := context.Background()

	boom := errors.New("boom")
	inner.EXPECT().GetSubmission(ctx, uuid.Nil).Return(nil, boom).Once()

	_, err := svc.GetSubmission(ctx, uuid.Nil)
	require.ErrorIs(t, err, boom)

	failed := logs.FilterMessage("GetSubmission failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
}
