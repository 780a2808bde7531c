// Package db persists the bridge transactions submitted by the sync service.
// Sync state itself is always derived from the subgraphs and never stored.
package db

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/chainsafe/vebal-sync/pkg/syncapi"
)

// ErrSubmissionNotFound is returned when a submission lookup finds no record.
var ErrSubmissionNotFound = errors.New("submission not found")

// Store defines submission persistence.
type Store interface {
	CreateSubmission(ctx context.Context, s *syncapi.Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*syncapi.Submission, error)
	// ListSubmissions returns the newest submissions of account first.
	ListSubmissions(ctx context.Context, account common.Address, limit int) ([]*syncapi.Submission, error)
}
