package diagnosis

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/relaylab/convdiag/decoder"
	"github.com/relaylab/convdiag/etherman"
)

// chainReader gathers the historical reads the diagnosis relies on
type chainReader interface {
	GetTransaction(ctx context.Context, hash common.Hash) (*etherman.Transaction, error)
	CallContract(ctx context.Context, contract common.Address, descriptor *abi.ABI, method string, args []interface{}, blockNumber uint64) ([]interface{}, error)
}

type callDecoder interface {
	Decode(data []byte) (*decoder.Invocation, error)
}
