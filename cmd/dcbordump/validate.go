package main

import (
	"fmt"
	"os"

	"github.com/dcbor/dcbor/item"
	"github.com/urfave/cli/v2"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "validate a CBOR document, optionally in strict (deterministic) mode",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "strict", Usage: "require RFC 8949 §4.2 deterministic encoding"},
	},
	Action: runValidate,
}

func runValidate(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: dcbordump validate <file> [--strict]")
	}

	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	var n int
	if c.Bool("strict") {
		n, err = item.ValidateDeterministic(data)
	} else {
		n, err = item.Validate(data)
	}
	if err != nil {
		logger.Error("validation failed", map[string]any{"file": c.Args().Get(0), "error": err.Error()})
		return err
	}

	logger.Info("validation ok", map[string]any{"consumed": n, "trailing": len(data) - n})
	fmt.Printf("ok: %d byte(s) consumed, %d byte(s) trailing\n", n, len(data)-n)
	return nil
}
