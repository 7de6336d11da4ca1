package decoder

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Invocation is a call decoded with one of the registered schemes
type Invocation struct {
	Method string
	// Scheme is the name of the interface that decoded the call
	Scheme string
	Args   []interface{}
}

// ConversionRequest is what a conversion call asked for
type ConversionRequest struct {
	// Path alternates tokens (even positions) and relays (odd positions)
	Path      []common.Address
	Amount    *big.Int
	MinReturn *big.Int
}

// SourceToken is the token spent by the conversion
func (r *ConversionRequest) SourceToken() common.Address {
	return r.Path[0]
}

// Hops is the number of pairwise conversions along the path
func (r *ConversionRequest) Hops() int {
	return (len(r.Path) - 1) / 2 //nolint:gomnd
}
