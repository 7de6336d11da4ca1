package diagnosis

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/relaylab/convdiag/decoder"
	"github.com/relaylab/convdiag/etherman"
	"github.com/relaylab/convdiag/etherman/smartcontracts/abis"
	"github.com/relaylab/convdiag/gerror"
	"github.com/relaylab/convdiag/log"
	"github.com/relaylab/convdiag/metrics"
)

// Diagnoser finds why a conversion transaction reverted
type Diagnoser struct {
	reader    chainReader
	decoder   callDecoder
	contracts *abis.Descriptors
	simulator *Simulator
	// spender is the contract the sender must have approved to move the source token
	spender common.Address
	logger  *log.Logger
}

// NewDiagnoser creates a Diagnoser
func NewDiagnoser(reader chainReader, dec callDecoder, contracts *abis.Descriptors, spender common.Address) *Diagnoser {
	return &Diagnoser{
		reader:    reader,
		decoder:   dec,
		contracts: contracts,
		simulator: NewSimulator(reader, contracts),
		spender:   spender,
		logger:    log.WithFields("spender", spender.Hex()),
	}
}

// Diagnose fetches and decodes the transaction, then runs the checks in order. The first failing check is the
// diagnosis. When every check passes the report says the cause is unknown.
func (d *Diagnoser) Diagnose(ctx context.Context, txHash common.Hash) (*Report, error) {
	start := time.Now()
	report, err := d.diagnose(ctx, txHash)
	metrics.RecordDiagnosis(outcome(report, err), time.Since(start))
	return report, err
}

func (d *Diagnoser) diagnose(ctx context.Context, txHash common.Hash) (*Report, error) {
	logger := d.logger.WithFields("txHash", txHash.Hex())

	tx, err := d.reader.GetTransaction(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if tx.Status == types.ReceiptStatusSuccessful {
		logger.Warnf("transaction did not revert, diagnosing it anyway")
	}

	inv, err := d.decoder.Decode(tx.Input)
	if err != nil {
		return nil, err
	}
	req, err := decoder.NewConversionRequest(inv)
	if err != nil {
		return nil, err
	}
	logger.Debugf("decoded %s (%s) at block %d: %d hops, amount %s, minimum return %s",
		inv.Method, inv.Scheme, tx.BlockNumber, req.Hops(), req.Amount, req.MinReturn)

	checks := []struct {
		name string
		run  func(context.Context, *etherman.Transaction, *decoder.ConversionRequest) (*Report, error)
	}{
		{"allowance", d.CheckAllowance},
		{"minimum return", d.CheckMinimumReturn},
	}
	for _, check := range checks {
		report, err := check.run(ctx, tx, req)
		if err != nil {
			return nil, err
		}
		if report != nil {
			logger.Infof("%s check failed: %s", check.name, report.Info)
			return report, nil
		}
	}
	return unknownCause(), nil
}

func outcome(report *Report, err error) string {
	switch {
	case errors.Is(err, gerror.ErrDecode):
		return metrics.OutcomeDecodeError
	case err != nil:
		return metrics.OutcomeLookupError
	case report.FailureReason == ReasonInsufficientAllowance:
		return metrics.OutcomeInsufficientAllowance
	case report.FailureReason == ReasonMinimumReturn:
		return metrics.OutcomeMinimumReturn
	default:
		return metrics.OutcomeUnknown
	}
}
