package etherman

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// ParseTxHash parses a 0x prefixed 32 byte transaction hash
func ParseTxHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, errors.Wrapf(err, "invalid transaction hash %q", s)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, errors.Errorf("invalid transaction hash %q: expected %d bytes, got %d", s, common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}
