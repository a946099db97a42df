// Command dcbordump inspects, validates, and canonicalizes CBOR documents,
// and packs or reads dcbor bundles.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dcbor/dcbor/logging"
	"github.com/urfave/cli/v2"
)

var logger logging.Logger = logging.NewSlogLogger(slog.Default())

func main() {
	app := &cli.App{
		Name:  "dcbordump",
		Usage: "inspect, validate, and pack RFC 8949 CBOR documents",
		Commands: []*cli.Command{
			inspectCommand,
			validateCommand,
			canonCommand,
			bundleCommand,
			compressStatsCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
