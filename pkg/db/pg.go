package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/chainsafe/vebal-sync/pkg/db/dao"
	"github.com/chainsafe/vebal-sync/pkg/network"
	"github.com/chainsafe/vebal-sync/pkg/syncapi"
)

// MaxListLimit caps ListSubmissions.
const MaxListLimit = 500

type pgStore struct {
	db *bun.DB
}

// NewStore creates a postgres implementation of Store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateSubmission(ctx context.Context, sub *syncapi.Submission) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	d := toSubmissionDao(sub)

	_, err := s.db.NewInsert().
		Model(d).
		Returning("created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	sub.CreatedAt = d.CreatedAt
	return nil
}

func (s *pgStore) GetSubmission(ctx context.Context, id uuid.UUID) (*syncapi.Submission, error) {
	d := new(dao.SubmissionDao)
	err := s.db.NewSelect().
		Model(d).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return toSubmission(d), nil
}

func (s *pgStore) ListSubmissions(ctx context.Context, account common.Address, limit int) ([]*syncapi.Submission, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	var daos []dao.SubmissionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("account = ?", addressKey(account)).
		OrderExpr("created_at DESC, id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	out := make([]*syncapi.Submission, len(daos))
	for i := range daos {
		out[i] = toSubmission(&daos[i])
	}
	return out, nil
}

// addressKey is the stored form of an address: lower-case hex, so lookups
// do not depend on checksum casing.
func addressKey(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func toSubmissionDao(s *syncapi.Submission) *dao.SubmissionDao {
	return &dao.SubmissionDao{
		ID:            s.ID,
		Account:       addressKey(s.Account),
		Network:       s.Network.ChainID(),
		SourceNetwork: s.SourceNetwork.ChainID(),
		BridgeChainID: int32(s.BridgeChainID),
		Contract:      addressKey(s.Contract),
		NativeFee:     s.NativeFee,
		TxHash:        s.TxHash.Hex(),
		CreatedAt:     s.CreatedAt,
	}
}

func toSubmission(d *dao.SubmissionDao) *syncapi.Submission {
	return &syncapi.Submission{
		ID:            d.ID,
		Account:       common.HexToAddress(d.Account),
		Network:       network.Network(d.Network),
		SourceNetwork: network.Network(d.SourceNetwork),
		BridgeChainID: uint16(d.BridgeChainID),
		Contract:      common.HexToAddress(d.Contract),
		NativeFee:     d.NativeFee,
		TxHash:        common.HexToHash(d.TxHash),
		CreatedAt:     d.CreatedAt,
	}
}
