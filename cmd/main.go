package main

import (
	"fmt"
	"os"

	"github.com/relaylab/convdiag"
	"github.com/urfave/cli/v2"
)

const (
	flagCfg     = "cfg"
	flagNetwork = "network"
	flagURL     = "url"
	flagTx      = "tx"
	flagABIs    = "abis"
)

const (
	// App name
	appName = "convdiag"
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Diagnose why a conversion transaction failed"
	app.Version = convdiag.Version
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     flagCfg,
			Aliases:  []string{"c"},
			Usage:    "Configuration `FILE`",
			Required: false,
		},
		&cli.StringFlag{
			Name:     flagNetwork,
			Aliases:  []string{"n"},
			Usage:    "Network: mainnet, local. By default it uses mainnet",
			Required: false,
		},
		&cli.StringFlag{
			Name:     flagURL,
			Aliases:  []string{"u"},
			Usage:    "Ethereum node JSON-RPC `URL`, overrides Etherman.URL",
			Required: false,
		},
		&cli.StringFlag{
			Name:     flagABIs,
			Usage:    "`DIR` holding <Name>.abi files that override the embedded interface descriptors",
			Required: false,
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "diagnose",
			Aliases: []string{"d"},
			Usage:   "Diagnose one or more failed conversion transactions",
			Action:  diagnose,
			Flags: append(flags, &cli.StringSliceFlag{
				Name:     flagTx,
				Aliases:  []string{"t"},
				Usage:    "Transaction `HASH` to diagnose, can be repeated",
				Required: true,
			}),
		},
		{
			Name:    "serve",
			Aliases: []string{},
			Usage:   "Run the diagnosis HTTP API",
			Action:  serve,
			Flags:   flags,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Printf("\nError: %v\n", err)
		os.Exit(1)
	}
}
