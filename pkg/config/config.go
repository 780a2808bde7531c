package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/chainsafe/vebal-sync/pkg/network"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig              `mapstructure:"server"`
	Database   DatabaseConfig            `mapstructure:"database"`
	Ethereum   EthereumConfig            `mapstructure:"ethereum"`
	Subgraph   SubgraphConfig            `mapstructure:"subgraph"`
	Contracts  map[string]ContractConfig `mapstructure:"contracts" validate:"dive"`
	Sync       SyncConfig                `mapstructure:"sync"`
	JWKS       JWKSConfig                `mapstructure:"jwks"`
	Monitoring MonitoringConfig          `mapstructure:"monitoring"`
	Logging    LoggingConfig             `mapstructure:"logging"`
	Shutdown   ShutdownConfig            `mapstructure:"shutdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host" default:"0.0.0.0"`
	Port         int           `mapstructure:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" default:"15s"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" default:"30s"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host" default:"localhost" validate:"required"`
	Port     int    `mapstructure:"port" default:"5432"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" default:"vebal_sync"`
	SSLMode  string `mapstructure:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	// Pool settings. The service issues one insert per submission, so the
	// defaults are small.
	MaxOpenConns    int           `mapstructure:"max_open_conns" default:"10" validate:"min=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" default:"2" validate:"min=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" default:"30m"`
}

// EthereumConfig contains settings for the chain the sync transactions are sent on
type EthereumConfig struct {
	RPCURL  string `mapstructure:"rpc_url" validate:"required,url"`
	ChainID int64  `mapstructure:"chain_id" validate:"required"`
	// SignerPrivateKey is a hex encoded secp256k1 key. Mutually exclusive with
	// EncryptedSignerKey.
	SignerPrivateKey   string `mapstructure:"signer_private_key"`
	EncryptedSignerKey string `mapstructure:"encrypted_signer_key"`
	KeyPassphrase      string `mapstructure:"key_passphrase"`
	GasLimit           uint64 `mapstructure:"gas_limit" default:"350000"`
	MaxGasPrice        string `mapstructure:"max_gas_price" validate:"omitempty,numeric"`
}

// SubgraphConfig maps network names to their GraphQL endpoint
type SubgraphConfig struct {
	URLs           map[string]string `mapstructure:"urls" validate:"required,dive,url"`
	RequestTimeout time.Duration     `mapstructure:"request_timeout" default:"15s"`
}

// ContractConfig holds the deployed contract addresses of a single network
type ContractConfig struct {
	OmniVotingEscrow string `mapstructure:"omni_voting_escrow" validate:"omitempty,eth_addr"`
}

// SyncConfig controls which account is tracked and how often
type SyncConfig struct {
	ActiveNetwork string        `mapstructure:"active_network" default:"mainnet"`
	PollInterval  time.Duration `mapstructure:"poll_interval" default:"1m" validate:"min=1s"`
	// Account overrides the tracked account. Defaults to the signer address.
	Account string `mapstructure:"account" validate:"omitempty,eth_addr"`
}

// JWKSConfig contains JWKS configuration for JWT validation.
// An empty URL leaves the sync endpoint unauthenticated.
type JWKSConfig struct {
	URL    string `mapstructure:"url" validate:"omitempty,url"`
	Issuer string `mapstructure:"issuer"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info"`
	Format     string `mapstructure:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path" default:"stdout"`
}

// ShutdownConfig contains graceful shutdown settings
type ShutdownConfig struct {
	Timeout time.Duration `mapstructure:"timeout" default:"30s"`
}

// Load loads configuration from file and environment variables.
// Environment variables use the upper-cased key path with dots replaced by
// underscores, e.g. ETHEREUM_RPC_URL.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks field constraints and the cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	hasPlain := c.Ethereum.SignerPrivateKey != ""
	hasEncrypted := c.Ethereum.EncryptedSignerKey != ""
	switch {
	case hasPlain && hasEncrypted:
		return errors.New("ethereum.signer_private_key and ethereum.encrypted_signer_key are mutually exclusive")
	case !hasPlain && !hasEncrypted:
		return errors.New("one of ethereum.signer_private_key or ethereum.encrypted_signer_key is required")
	case hasEncrypted && c.Ethereum.KeyPassphrase == "":
		return errors.New("ethereum.key_passphrase is required with ethereum.encrypted_signer_key")
	}

	if _, err := c.ActiveNetwork(); err != nil {
		return fmt.Errorf("sync.active_network: %w", err)
	}

	endpoints, err := c.Subgraph.Endpoints()
	if err != nil {
		return err
	}
	required := append([]network.Network{network.Mainnet}, network.Participating()...)
	for _, n := range required {
		if _, ok := endpoints[n]; !ok {
			return fmt.Errorf("subgraph.urls.%s is required", n)
		}
	}

	if _, err := c.ContractAddresses(); err != nil {
		return err
	}
	return nil
}

// ActiveNetwork returns the network sync transactions are submitted on.
func (c *Config) ActiveNetwork() (network.Network, error) {
	return network.Parse(c.Sync.ActiveNetwork)
}

// ContractAddresses returns the configured OmniVotingEscrow address per network.
// Networks without an address are left out.
func (c *Config) ContractAddresses() (map[network.Network]common.Address, error) {
	out := make(map[network.Network]common.Address, len(c.Contracts))
	for name, contracts := range c.Contracts {
		n, err := network.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("contracts.%s: %w", name, err)
		}
		if contracts.OmniVotingEscrow == "" {
			continue
		}
		out[n] = common.HexToAddress(contracts.OmniVotingEscrow)
	}
	return out, nil
}

// Endpoints resolves the subgraph URL map keys to networks.
func (c *SubgraphConfig) Endpoints() (map[network.Network]string, error) {
	out := make(map[network.Network]string, len(c.URLs))
	for name, url := range c.URLs {
		n, err := network.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("subgraph.urls.%s: %w", name, err)
		}
		out[n] = url
	}
	return out, nil
}
