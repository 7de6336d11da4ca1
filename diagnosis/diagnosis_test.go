package diagnosis

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/relaylab/convdiag/decoder"
	"github.com/relaylab/convdiag/etherman"
	"github.com/relaylab/convdiag/etherman/smartcontracts/abis"
	"github.com/relaylab/convdiag/log"
	"github.com/stretchr/testify/mock"
)

const txBlock = uint64(9000000)

var (
	contracts = abis.MustLoadEmbedded()

	sender  = common.HexToAddress("0x5b3256965e7c3cf26e11fcaf296dfc8807c01073")
	spender = common.HexToAddress("0x0e936b11c2e7b601055e58c7e32417187af4de4a")

	bnt       = common.HexToAddress("0x1f573d6fb3f13d689ff844b4ce37794d79a7ff1c")
	ethBnt    = common.HexToAddress("0xb1cd6e4153b2a390cf00a6556b0fc1458c4a5533")
	eth       = common.HexToAddress("0xc0829421c1d260bd3cb3e0f06cfe2d52db2ce315")
	daiBnt    = common.HexToAddress("0xee01b3ab5f6728adc137be101d99c678938e6e72")
	dai       = common.HexToAddress("0x89d24a6b4ccb1b6faa2625fe562bdd9a23260359")
	converter = common.HexToAddress("0x2222222222222222222222222222222222222222")
	upgraded  = common.HexToAddress("0x3333333333333333333333333333333333333333")
	daiConv   = common.HexToAddress("0x4444444444444444444444444444444444444444")

	ctxMatcher = mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })
)

func init() {
	log.Init(log.Config{
		Level:   "debug",
		Outputs: []string{"stderr"},
	})
}

func newTestDiagnoser(reader chainReader) *Diagnoser {
	return NewDiagnoser(reader, decoder.NewDefaultRegistry(contracts), contracts, spender)
}

func expectOwner(m *chainReaderMock, relay common.Address, blockNumber uint64, owner common.Address) {
	m.EXPECT().
		CallContract(ctxMatcher, relay, contracts.SmartToken, "owner", mock.Anything, blockNumber).
		Return([]interface{}{owner}, nil).
		Once()
}

func expectReturn(m *chainReaderMock, conv, from, to common.Address, amount *big.Int, blockNumber uint64, ret *big.Int) {
	m.EXPECT().
		CallContract(ctxMatcher, conv, contracts.Converter, "getReturn", []interface{}{from, to, amount}, blockNumber).
		Return([]interface{}{ret, big.NewInt(0)}, nil).
		Once()
}

func expectAllowance(m *chainReaderMock, token common.Address, blockNumber uint64, allowance *big.Int) {
	m.EXPECT().
		CallContract(ctxMatcher, token, contracts.ERC20, "allowance", []interface{}{sender, spender}, blockNumber).
		Return([]interface{}{allowance}, nil).
		Once()
}

func newTransaction(t *testing.T, path []common.Address, amount, minReturn *big.Int) *etherman.Transaction {
	input, err := contracts.Network.Pack("convert2", path, amount, minReturn, common.Address{}, big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	return &etherman.Transaction{
		Hash:        common.HexToHash("0xfeed"),
		BlockNumber: txBlock,
		From:        sender,
		To:          &spender,
		Input:       input,
		Status:      types.ReceiptStatusFailed,
	}
}

func singleHopRequest(amount, minReturn int64) *decoder.ConversionRequest {
	return &decoder.ConversionRequest{
		Path:      []common.Address{bnt, ethBnt, eth},
		Amount:    big.NewInt(amount),
		MinReturn: big.NewInt(minReturn),
	}
}

func txWithInput(input []byte) *etherman.Transaction {
	return &etherman.Transaction{
		Hash:        common.HexToHash("0xbeef"),
		BlockNumber: txBlock,
		From:        sender,
		Input:       input,
		Status:      types.ReceiptStatusFailed,
	}
}
