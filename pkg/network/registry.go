package network

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed layerzero.yaml
var layerZeroTable []byte

// Registry maps networks to the numeric chain ids used by the bridge protocol.
type Registry struct {
	Version string
	ids     map[Network]uint16
}

type registryFile struct {
	Version string `yaml:"version"`
	Chains  []struct {
		Network     string `yaml:"network"`
		LayerZeroID uint16 `yaml:"layerzero_id"`
	} `yaml:"chains"`
}

// LoadRegistry parses a bridge id table.
func LoadRegistry(data []byte) (*Registry, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse bridge registry: %w", err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("bridge registry has no version")
	}

	reg := &Registry{
		Version: file.Version,
		ids:     make(map[Network]uint16, len(file.Chains)),
	}
	seen := make(map[uint16]Network, len(file.Chains))
	for _, c := range file.Chains {
		n, err := Parse(c.Network)
		if err != nil {
			return nil, fmt.Errorf("bridge registry: %w", err)
		}
		if c.LayerZeroID == 0 {
			return nil, fmt.Errorf("bridge registry: %s has no layerzero_id", n)
		}
		if _, dup := reg.ids[n]; dup {
			return nil, fmt.Errorf("bridge registry: duplicate entry for %s", n)
		}
		if other, dup := seen[c.LayerZeroID]; dup {
			return nil, fmt.Errorf("bridge registry: id %d used by both %s and %s", c.LayerZeroID, other, n)
		}
		seen[c.LayerZeroID] = n
		reg.ids[n] = c.LayerZeroID
	}
	return reg, nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the registry embedded in the binary.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		reg, err := LoadRegistry(layerZeroTable)
		if err != nil {
			panic(err)
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// BridgeID returns the bridge chain id for n.
func (r *Registry) BridgeID(n Network) (uint16, bool) {
	id, ok := r.ids[n]
	return id, ok
}
