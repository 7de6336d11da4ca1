package main

import (
	"os"

	"github.com/relaylab/convdiag"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	convdiag.PrintVersion(os.Stdout)
	return nil
}
