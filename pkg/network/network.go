// Package network enumerates the chains the sync service knows about and the
// subset of them that receive veBAL through the cross-chain bridge.
package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownNetwork is returned when a name or chain id does not map to a supported network.
var ErrUnknownNetwork = errors.New("unknown network")

// Network identifies a chain by its EVM chain id.
type Network int64

const (
	Mainnet   Network = 1
	Goerli    Network = 5
	Optimism  Network = 10
	Gnosis    Network = 100
	Polygon   Network = 137
	ZkEVM     Network = 1101
	Base      Network = 8453
	Arbitrum  Network = 42161
	Avalanche Network = 43114
	Sepolia   Network = 11155111
)

var names = map[Network]string{
	Mainnet:   "mainnet",
	Goerli:    "goerli",
	Optimism:  "optimism",
	Gnosis:    "gnosis",
	Polygon:   "polygon",
	ZkEVM:     "zkevm",
	Base:      "base",
	Arbitrum:  "arbitrum",
	Avalanche: "avalanche",
	Sepolia:   "sepolia",
}

// participating lists the secondary networks that mirror veBAL, in display order.
var participating = []Network{Polygon, Arbitrum, Gnosis, Optimism}

// Participating returns the secondary networks that take part in cross-chain sync.
// The returned slice is a copy and may be modified by the caller.
func Participating() []Network {
	out := make([]Network, len(participating))
	copy(out, participating)
	return out
}

// IsParticipating reports whether n receives veBAL through the bridge.
func IsParticipating(n Network) bool {
	for _, p := range participating {
		if p == n {
			return true
		}
	}
	return false
}

// Valid reports whether n is a supported network.
func (n Network) Valid() bool {
	_, ok := names[n]
	return ok
}

// ChainID returns the EVM chain id of the network.
func (n Network) ChainID() int64 {
	return int64(n)
}

func (n Network) String() string {
	if name, ok := names[n]; ok {
		return name
	}
	return "network(" + strconv.FormatInt(int64(n), 10) + ")"
}

// MarshalText encodes the network by name so it can be used as a JSON map key.
func (n Network) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNetwork, int64(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText accepts either a network name or a decimal chain id.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Parse resolves a network from its name ("polygon") or chain id ("137").
func Parse(s string) (Network, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		n := Network(id)
		if !n.Valid() {
			return 0, fmt.Errorf("%w: %s", ErrUnknownNetwork, s)
		}
		return n, nil
	}
	for n, name := range names {
		if name == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
}
