package ethereum

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Backend is the subset of an RPC connection the client needs.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend
}

// Bridge messages are sent without the LayerZero ZRO token and with default
// adapter parameters.
var (
	zroPaymentAddress = common.Address{}
	adapterParams     = []byte{}
)
