package diagnosis

import (
	"context"
	"fmt"
	"math/big"

	"github.com/relaylab/convdiag/decoder"
	"github.com/relaylab/convdiag/etherman"
	"golang.org/x/sync/errgroup"
)

// CheckMinimumReturn returns a report if the conversion, replayed at the transaction's block or at the block before,
// would have returned less than the requested minimum. A nil report means the check passed.
func (d *Diagnoser) CheckMinimumReturn(ctx context.Context, tx *etherman.Transaction, req *decoder.ConversionRequest) (*Report, error) {
	prevBlock := tx.BlockNumber
	if prevBlock > 0 {
		prevBlock--
	}

	// both replays are read-only and independent
	var current, previous *big.Int
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = d.simulator.SimulateReturn(gCtx, req.Path, req.Amount, tx.BlockNumber)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = d.simulator.SimulateReturn(gCtx, req.Path, req.Amount, prevBlock)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	d.logger.Debugf("simulated return %s at block %d, %s at block %d, minimum %s", current, tx.BlockNumber, previous, prevBlock, req.MinReturn)

	breached := current
	if current.Cmp(req.MinReturn) >= 0 {
		if previous.Cmp(req.MinReturn) >= 0 {
			return nil, nil
		}
		breached = previous
	}
	return &Report{
		FailureReason: ReasonMinimumReturn,
		Info:          fmt.Sprintf("Transaction was sent with a minimum return of %s, but actual returned amount was %s", req.MinReturn, breached),
	}, nil
}
