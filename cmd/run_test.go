package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/relaylab/convdiag/diagnosis"
	"github.com/relaylab/convdiag/gerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const (
	revertedTx = "0x4d9a8a3bc6e2ad1fbd9e4f2ccfc8a32bb86ce23bc8eb0b9ae21c79c1d8ab3b17"
	unknownTx  = "0x9f1c2fb0d1e44cf5a0d3f3d0b4a6f2e1c7c6e5d4b3a29180f7e6d5c4b3a29180"
)

type printedReport struct {
	TxHash        string `json:"txHash"`
	FailureReason string `json:"failureReason"`
	Info          string `json:"info"`
	Error         string `json:"error"`
}

func decodeReports(t *testing.T, out *bytes.Buffer) []printedReport {
	t.Helper()
	var reports []printedReport
	dec := json.NewDecoder(out)
	for {
		var r printedReport
		err := dec.Decode(&r)
		if err == io.EOF {
			return reports
		}
		require.NoError(t, err)
		reports = append(reports, r)
	}
}

func TestDiagnoseAll(t *testing.T) {
	d := newDiagnoserMock(t)
	d.EXPECT().Diagnose(mock.Anything, common.HexToHash(revertedTx)).Return(&diagnosis.Report{
		FailureReason: diagnosis.ReasonInsufficientAllowance,
		Info:          "The Bancor Network must be approved to spend at least 500, but the current allowance is 0",
	}, nil).Once()
	d.EXPECT().Diagnose(mock.Anything, common.HexToHash(unknownTx)).
		Return(nil, &gerror.LookupError{Op: "eth_getTransactionByHash", Err: errors.New("not found")}).Once()

	var out bytes.Buffer
	err := diagnoseAll(context.Background(), d, []string{revertedTx, "0x1234", unknownTx}, &out)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Equal(t, "2 of 3 diagnoses failed", exitErr.Error())

	reports := decodeReports(t, &out)
	require.Len(t, reports, 3)

	assert.Equal(t, common.HexToHash(revertedTx).Hex(), reports[0].TxHash)
	assert.Equal(t, diagnosis.ReasonInsufficientAllowance, reports[0].FailureReason)
	assert.Equal(t, "The Bancor Network must be approved to spend at least 500, but the current allowance is 0", reports[0].Info)
	assert.Empty(t, reports[0].Error)

	assert.Equal(t, "0x1234", reports[1].TxHash)
	assert.Contains(t, reports[1].Error, "invalid transaction hash")
	assert.Empty(t, reports[1].Info)

	assert.Equal(t, common.HexToHash(unknownTx).Hex(), reports[2].TxHash)
	assert.Equal(t, "eth_getTransactionByHash: not found", reports[2].Error)
	assert.Empty(t, reports[2].FailureReason)
}

func TestDiagnoseAllSucceeds(t *testing.T) {
	d := newDiagnoserMock(t)
	d.EXPECT().Diagnose(mock.Anything, common.HexToHash(unknownTx)).
		Return(&diagnosis.Report{Info: diagnosis.UnknownCauseInfo}, nil).Once()

	var out bytes.Buffer
	require.NoError(t, diagnoseAll(context.Background(), d, []string{unknownTx}, &out))

	reports := decodeReports(t, &out)
	require.Len(t, reports, 1)
	assert.Equal(t, diagnosis.UnknownCauseInfo, reports[0].Info)
	assert.Empty(t, reports[0].FailureReason)
	assert.Empty(t, reports[0].Error)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String(flagCfg, "", "")
	set.String(flagNetwork, "", "")
	set.String(flagURL, "", "")
	set.String(flagABIs, "", "")
	require.NoError(t, set.Parse([]string{"--" + flagNetwork, "local", "--" + flagURL, "http://archive:8545", "--" + flagABIs, "/tmp/abis"}))

	c, err := loadConfig(cli.NewContext(cli.NewApp(), set, nil))
	require.NoError(t, err)
	assert.Equal(t, "http://archive:8545", c.Etherman.URL)
	assert.Equal(t, "/tmp/abis", c.Contracts.Dir)
}
