// Package dao holds the bun models of the sync service tables.
package dao

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SubmissionDao maps to the sync_submissions table.
type SubmissionDao struct {
	bun.BaseModel `bun:"table:sync_submissions,alias:s"`

	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	Account       string    `bun:"account,notnull,type:varchar(42)"`
	Network       int64     `bun:"network,notnull"`
	SourceNetwork int64     `bun:"source_network,notnull"`
	BridgeChainID int32     `bun:"bridge_chain_id,notnull"`
	Contract      string    `bun:"contract,notnull,type:varchar(42)"`
	NativeFee     string    `bun:"native_fee,notnull,type:numeric(78,0)"`
	TxHash        string    `bun:"tx_hash,unique,notnull,type:varchar(66)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
