package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dcbor/dcbor/item"
	"github.com/urfave/cli/v2"
)

var canonCommand = &cli.Command{
	Name:      "canon",
	Usage:     "round-trip a CBOR document through deterministic validation and write its canonical bytes",
	ArgsUsage: "<file>",
	Action:    runCanon,
}

func runCanon(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: dcbordump canon <file>")
	}

	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	n, err := item.ValidateDeterministic(data)
	if err != nil {
		return fmt.Errorf("not canonical: %w", err)
	}

	v := item.NewSerialized(data[:n])
	out, err := item.Marshal(v)
	if err != nil {
		return err
	}

	if !bytes.Equal(out, data[:n]) {
		return fmt.Errorf("internal inconsistency: canonical re-write did not match validated input")
	}

	logger.Info("canonicalized item", map[string]any{"bytes": len(out)})
	_, err = os.Stdout.Write(out)
	return err
}
