package subgraph

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/vebal-sync/pkg/escrow"
	"github.com/chainsafe/vebal-sync/pkg/network"
)

// The Graph stores addresses lower-cased, so where-clauses must match that.

const omniVotingEscrowLocksQuery = `query OmniVotingEscrowLocks($localUser: Bytes!) {
  omniVotingEscrowLocks(where: { localUser: $localUser }) {
    id
    localUser
    remoteUser
    bias
    slope
    dstChainId
  }
}`

const votingEscrowLocksQuery = `query VotingEscrowLocks($user: String!) {
  votingEscrowLocks(where: { user: $user }) {
    id
    bias
    slope
    timestamp
  }
}`

type omniVotingEscrowLock struct {
	ID         string  `json:"id"`
	LocalUser  string  `json:"localUser"`
	RemoteUser string  `json:"remoteUser"`
	Bias       string  `json:"bias"`
	Slope      string  `json:"slope"`
	DstChainID flexInt `json:"dstChainId"`
}

type votingEscrowLock struct {
	ID        string  `json:"id"`
	Bias      string  `json:"bias"`
	Slope     string  `json:"slope"`
	Timestamp flexInt `json:"timestamp"`
}

// BridgedLocks returns the lock records the bridge contract holds for account
// on the canonical chain. An empty slice means the account never bridged.
func (c *Client) BridgedLocks(ctx context.Context, account common.Address) ([]escrow.BridgedLock, error) {
	var data struct {
		Locks []omniVotingEscrowLock `json:"omniVotingEscrowLocks"`
	}
	vars := map[string]any{"localUser": lowerHex(account)}
	if err := c.query(ctx, network.Mainnet, omniVotingEscrowLocksQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("query omniVotingEscrowLocks: %w", err)
	}

	out := make([]escrow.BridgedLock, 0, len(data.Locks))
	for _, l := range data.Locks {
		out = append(out, escrow.BridgedLock{
			Bias:       l.Bias,
			Slope:      l.Slope,
			RemoteUser: l.RemoteUser,
		})
	}
	return out, nil
}

// VotingEscrowLocks returns the lock records for account on network n.
func (c *Client) VotingEscrowLocks(ctx context.Context, n network.Network, account common.Address) ([]escrow.Lock, error) {
	var data struct {
		Locks []votingEscrowLock `json:"votingEscrowLocks"`
	}
	vars := map[string]any{"user": lowerHex(account)}
	if err := c.query(ctx, n, votingEscrowLocksQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("query votingEscrowLocks on %s: %w", n, err)
	}

	out := make([]escrow.Lock, 0, len(data.Locks))
	for _, l := range data.Locks {
		out = append(out, escrow.Lock{
			Bias:      l.Bias,
			Slope:     l.Slope,
			Timestamp: int64(l.Timestamp),
		})
	}
	return out, nil
}

func lowerHex(a common.Address) string {
	return strings.ToLower(a.Hex())
}

// flexInt decodes both JSON numbers (Int fields) and decimal strings
// (BigInt fields), which subgraphs use interchangeably for timestamps.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", string(b), err)
	}
	*f = flexInt(v)
	return nil
}
