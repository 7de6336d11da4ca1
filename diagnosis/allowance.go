package diagnosis

import (
	"context"
	"fmt"
	"math/big"

	"github.com/relaylab/convdiag/decoder"
	"github.com/relaylab/convdiag/etherman"
	"github.com/relaylab/convdiag/gerror"
)

// CheckAllowance returns a report if, at the transaction's block, the sender had approved the spender for less than
// the input amount of the source token. A nil report means the check passed.
func (d *Diagnoser) CheckAllowance(ctx context.Context, tx *etherman.Transaction, req *decoder.ConversionRequest) (*Report, error) {
	args := []interface{}{tx.From, d.spender}
	out, err := d.reader.CallContract(ctx, req.SourceToken(), d.contracts.ERC20, "allowance", args, tx.BlockNumber)
	if err != nil {
		return nil, err
	}
	allowance, ok := firstOutput[*big.Int](out)
	if !ok {
		return nil, &gerror.LookupError{Op: "allowance@" + req.SourceToken().Hex(), Err: gerror.ErrUnpackOutput}
	}

	if allowance.Cmp(req.Amount) < 0 {
		return &Report{
			FailureReason: ReasonInsufficientAllowance,
			Info:          fmt.Sprintf("The Bancor Network must be approved to spend at least %s, but the current allowance is %s", req.Amount, allowance),
		}, nil
	}
	return nil, nil
}
