package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/relaylab/convdiag/config"
	"github.com/relaylab/convdiag/decoder"
	"github.com/relaylab/convdiag/diagnosis"
	"github.com/relaylab/convdiag/etherman"
	"github.com/relaylab/convdiag/etherman/smartcontracts/abis"
	"github.com/relaylab/convdiag/log"
	"github.com/relaylab/convdiag/metrics"
	"github.com/relaylab/convdiag/server"
	"github.com/urfave/cli/v2"
)

type diagnoser interface {
	Diagnose(ctx context.Context, txHash common.Hash) (*diagnosis.Report, error)
}

type txReport struct {
	TxHash string `json:"txHash"`
	*diagnosis.Report
	Error string `json:"error,omitempty"`
}

func diagnose(cliCtx *cli.Context) error {
	c, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	setupLog(c.Log)
	metrics.Init(c.Metrics)

	d, err := newDiagnoser(*c)
	if err != nil {
		log.Error(err)
		return err
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return diagnoseAll(ctx, d, cliCtx.StringSlice(flagTx), cliCtx.App.Writer)
}

// diagnoseAll writes one JSON report per hash to w. Every hash is attempted even if an earlier one failed.
func diagnoseAll(ctx context.Context, d diagnoser, hashes []string, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	failed := 0
	for _, raw := range hashes {
		out := txReport{TxHash: raw}
		hash, err := etherman.ParseTxHash(raw)
		if err == nil {
			out.TxHash = hash.Hex()
			out.Report, err = d.Diagnose(ctx, hash)
		}
		if err != nil {
			log.Errorf("diagnosis of %s failed: %v", raw, err)
			out.Error = err.Error()
			failed++
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d diagnoses failed", failed, len(hashes)), 1)
	}
	return nil
}

func serve(cliCtx *cli.Context) error {
	c, err := loadConfig(cliCtx)
	if err != nil {
		return err
	}
	setupLog(c.Log)
	metrics.Init(c.Metrics)

	d, err := newDiagnoser(*c)
	if err != nil {
		log.Error(err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.RunServer(ctx, c.Server, c.Metrics, d)
}

func loadConfig(cliCtx *cli.Context) (*config.Config, error) {
	c, err := config.Load(cliCtx.String(flagCfg), cliCtx.String(flagNetwork))
	if err != nil {
		return nil, err
	}
	if url := cliCtx.String(flagURL); url != "" {
		c.Etherman.URL = url
	}
	if dir := cliCtx.String(flagABIs); dir != "" {
		c.Contracts.Dir = dir
	}
	return c, nil
}

func setupLog(c log.Config) {
	log.Init(c)
}

func newDiagnoser(c config.Config) (*diagnosis.Diagnoser, error) {
	contracts, err := abis.Load(c.Contracts)
	if err != nil {
		return nil, err
	}
	client, err := etherman.NewClient(c.Etherman)
	if err != nil {
		return nil, err
	}
	log.Infof("diagnosing against %s, network address %s", c.Etherman.URL, c.NetworkConfig.NetworkAddr.Hex())
	return diagnosis.NewDiagnoser(client, decoder.NewDefaultRegistry(contracts), contracts, c.NetworkConfig.NetworkAddr), nil
}
