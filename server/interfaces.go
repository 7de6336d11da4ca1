package server

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/relaylab/convdiag/diagnosis"
)

type diagnoser interface {
	Diagnose(ctx context.Context, txHash common.Hash) (*diagnosis.Report, error)
}
