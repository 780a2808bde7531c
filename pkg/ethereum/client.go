package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/pkg/config"
	"github.com/chainsafe/vebal-sync/pkg/ethereum/contracts"
	"github.com/chainsafe/vebal-sync/pkg/keys"
)

// Client submits OmniVotingEscrow transactions on the active network.
type Client struct {
	config  *config.EthereumConfig
	backend Backend
	closer  func()
	signer  *keys.Signer
	logger  *zap.Logger
}

// Dial connects to the configured RPC endpoint and checks that it serves the
// configured chain.
func Dial(ctx context.Context, cfg *config.EthereumConfig, signer *keys.Signer, logger *zap.Logger) (*Client, error) {
	rpc, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	chainID, err := rpc.ChainID(ctx)
	if err != nil {
		rpc.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	if chainID.Int64() != cfg.ChainID {
		rpc.Close()
		return nil, fmt.Errorf("rpc serves chain %s, configured chain is %d", chainID, cfg.ChainID)
	}

	c := NewClient(cfg, rpc, signer, logger)
	c.closer = rpc.Close

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("signer_address", signer.Address.Hex()))

	return c, nil
}

// NewClient wraps an existing backend.
func NewClient(cfg *config.EthereumConfig, backend Backend, signer *keys.Signer, logger *zap.Logger) *Client {
	return &Client{
		config:  cfg,
		backend: backend,
		signer:  signer,
		logger:  logger,
	}
}

// Close closes the RPC connection if the client owns one.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Address returns the signer account.
func (c *Client) Address() common.Address {
	return c.signer.Address
}

// GetTransactor returns a transaction signer
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	chainID := big.NewInt(c.config.ChainID)

	auth, err := bind.NewKeyedTransactorWithChainID(c.signer.PrivateKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx

	nonce, err := c.backend.PendingNonceAt(ctx, c.signer.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = c.config.GasLimit

	if c.config.MaxGasPrice != "" {
		maxGasPrice, ok := new(big.Int).SetString(c.config.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price %q", c.config.MaxGasPrice)
		}

		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// EstimateSendUserBalance returns the native fee the bridge charges to deliver
// a balance update to the LayerZero chain dstChainID.
func (c *Client) EstimateSendUserBalance(ctx context.Context, contract common.Address, dstChainID uint16) (*big.Int, error) {
	escrow, err := contracts.NewOmniVotingEscrowCaller(contract, c.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind OmniVotingEscrow: %w", err)
	}

	fees, err := escrow.EstimateSendUserBalance(&bind.CallOpts{Context: ctx, From: c.signer.Address}, dstChainID, false, adapterParams)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate send fee: %w", err)
	}

	c.logger.Debug("Estimated bridge fee",
		zap.String("contract", contract.Hex()),
		zap.Uint16("dst_chain_id", dstChainID),
		zap.String("native_fee", fees.NativeFee.String()))

	return fees.NativeFee, nil
}

// SendUserBalance pushes user's current escrow balance to dstChainID, paying
// nativeFee. Any excess fee is refunded to the signer.
func (c *Client) SendUserBalance(
	ctx context.Context,
	contract common.Address,
	user common.Address,
	dstChainID uint16,
	nativeFee *big.Int,
) (common.Hash, error) {
	c.logger.Info("Submitting user balance to bridge",
		zap.String("contract", contract.Hex()),
		zap.String("user", user.Hex()),
		zap.Uint16("dst_chain_id", dstChainID),
		zap.String("native_fee", nativeFee.String()))

	escrow, err := contracts.NewOmniVotingEscrowTransactor(contract, c.backend)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to bind OmniVotingEscrow: %w", err)
	}

	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Value = nativeFee

	tx, err := escrow.SendUserBalance(auth, user, dstChainID, c.signer.Address, zroPaymentAddress, adapterParams)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit sendUserBalance transaction: %w", err)
	}

	c.logger.Info("sendUserBalance transaction submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()))

	return tx.Hash(), nil
}
