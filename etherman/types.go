package etherman

import (
	"github.com/ethereum/go-ethereum/common"
)

// Transaction is a mined transaction as needed by the diagnosis: where it was included, who sent it and its call data
type Transaction struct {
	Hash        common.Hash
	BlockNumber uint64
	BlockHash   common.Hash
	From        common.Address
	To          *common.Address
	Input       []byte
	// Status is the receipt status, types.ReceiptStatusFailed for a reverted transaction
	Status uint64
}
