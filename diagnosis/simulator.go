package diagnosis

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/decoder"
	"github.com/relaylab/convdiag/etherman/smartcontracts/abis"
	"github.com/relaylab/convdiag/gerror"
)

// Simulator replays a multi-hop conversion against the state of a past block
type Simulator struct {
	reader    chainReader
	contracts *abis.Descriptors
}

// NewSimulator creates a Simulator
func NewSimulator(reader chainReader, contracts *abis.Descriptors) *Simulator {
	return &Simulator{reader: reader, contracts: contracts}
}

// SimulateReturn returns the amount of the last path token that converting amount along path yields at blockNumber.
// Each relay is resolved to the converter owning it at that height, since ownership changes over time.
func (s *Simulator) SimulateReturn(ctx context.Context, path []common.Address, amount *big.Int, blockNumber uint64) (*big.Int, error) {
	if err := decoder.ValidatePath(path); err != nil {
		return nil, err
	}
	running := new(big.Int).Set(amount)
	for i := 1; i < len(path); i += 2 {
		converter, err := s.converterOf(ctx, path[i], blockNumber)
		if err != nil {
			return nil, err
		}
		running, err = s.getReturn(ctx, converter, path[i-1], path[i+1], running, blockNumber)
		if err != nil {
			return nil, err
		}
	}
	return running, nil
}

func (s *Simulator) converterOf(ctx context.Context, relay common.Address, blockNumber uint64) (common.Address, error) {
	out, err := s.reader.CallContract(ctx, relay, s.contracts.SmartToken, "owner", nil, blockNumber)
	if err != nil {
		return common.Address{}, err
	}
	owner, ok := firstOutput[common.Address](out)
	if !ok {
		return common.Address{}, &gerror.LookupError{Op: "owner@" + relay.Hex(), Err: gerror.ErrUnpackOutput}
	}
	return owner, nil
}

// getReturn quotes one hop. Legacy converters answer with a single word instead of (amount, fee).
func (s *Simulator) getReturn(ctx context.Context, converter, from, to common.Address, amount *big.Int, blockNumber uint64) (*big.Int, error) {
	args := []interface{}{from, to, amount}
	out, err := s.reader.CallContract(ctx, converter, s.contracts.Converter, "getReturn", args, blockNumber)
	if errors.Is(err, gerror.ErrUnpackOutput) {
		out, err = s.reader.CallContract(ctx, converter, s.contracts.OldConverter, "getReturn", args, blockNumber)
	}
	if err != nil {
		return nil, err
	}
	ret, ok := firstOutput[*big.Int](out)
	if !ok {
		return nil, &gerror.LookupError{Op: "getReturn@" + converter.Hex(), Err: gerror.ErrUnpackOutput}
	}
	return ret, nil
}

func firstOutput[T any](out []interface{}) (T, bool) {
	var zero T
	if len(out) == 0 {
		return zero, false
	}
	v, ok := out[0].(T)
	return v, ok
}
