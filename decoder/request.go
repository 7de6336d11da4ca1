package decoder

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/gerror"
)

const (
	argPath = iota
	argAmount
	argMinReturn
)

// NewConversionRequest reads path, amount and minimum return out of the first three arguments
func NewConversionRequest(inv *Invocation) (*ConversionRequest, error) {
	if len(inv.Args) <= argMinReturn {
		return nil, errors.Wrapf(gerror.ErrDecode, "%s has %d arguments", inv.Method, len(inv.Args))
	}
	path, ok := inv.Args[argPath].([]common.Address)
	if !ok {
		return nil, errors.Wrapf(gerror.ErrDecode, "%s: path argument is %T", inv.Method, inv.Args[argPath])
	}
	if err := ValidatePath(path); err != nil {
		return nil, fmt.Errorf("%w: %w", gerror.ErrDecode, err)
	}
	amount, ok := inv.Args[argAmount].(*big.Int)
	if !ok {
		return nil, errors.Wrapf(gerror.ErrDecode, "%s: amount argument is %T", inv.Method, inv.Args[argAmount])
	}
	minReturn, ok := inv.Args[argMinReturn].(*big.Int)
	if !ok {
		return nil, errors.Wrapf(gerror.ErrDecode, "%s: minimum return argument is %T", inv.Method, inv.Args[argMinReturn])
	}
	return &ConversionRequest{
		Path:      path,
		Amount:    amount,
		MinReturn: minReturn,
	}, nil
}

// ValidatePath checks the path is token, relay, token[, relay, token]...
func ValidatePath(path []common.Address) error {
	if len(path) < 3 || len(path)%2 == 0 { //nolint:gomnd
		return errors.Wrapf(gerror.ErrInvalidPath, "length %d", len(path))
	}
	return nil
}
