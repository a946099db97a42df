package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dcbor/dcbor/bundle"
	"github.com/dcbor/dcbor/format"
	"github.com/urfave/cli/v2"
)

var bundleCommand = &cli.Command{
	Name:  "bundle",
	Usage: "pack, list, and extract dcbor bundles",
	Subcommands: []*cli.Command{
		bundlePackCommand,
		bundleListCommand,
		bundleExtractCommand,
	},
}

var bundlePackCommand = &cli.Command{
	Name:      "pack",
	Usage:     "pack one or more CBOR item files into a bundle",
	ArgsUsage: "<files...>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "output bundle path"},
		&cli.StringFlag{Name: "compression", Value: "none", Usage: "none|zstd|s2|lz4"},
	},
	Action: runBundlePack,
}

func runBundlePack(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("usage: dcbordump bundle pack <files...> -o <out>")
	}

	comp, err := parseCompressionFlag(c.String("compression"))
	if err != nil {
		return err
	}

	items := make([][]byte, 0, c.Args().Len())
	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		items = append(items, data)
	}

	data, err := bundle.PackBundle(items, bundle.WithCompression(comp), bundle.WithLogger(logger))
	if err != nil {
		return err
	}

	return os.WriteFile(c.String("out"), data, 0o644)
}

var bundleListCommand = &cli.Command{
	Name:      "list",
	Usage:     "list the items a bundle contains",
	ArgsUsage: "<bundle>",
	Action:    runBundleList,
}

func runBundleList(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: dcbordump bundle list <bundle>")
	}

	b, err := openBundleFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	logger.Info("listing bundle", map[string]any{"items": b.Len(), "compression": b.Compression().String()})
	for i := 0; i < b.Len(); i++ {
		data, err := b.Item(i)
		if err != nil {
			return err
		}
		fmt.Printf("%d: %d byte(s)\n", i, len(data))
	}
	return nil
}

var bundleExtractCommand = &cli.Command{
	Name:      "extract",
	Usage:     "extract one item from a bundle",
	ArgsUsage: "<bundle> <index>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Required: true, Usage: "output file path"},
	},
	Action: runBundleExtract,
}

func runBundleExtract(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("usage: dcbordump bundle extract <bundle> <index> -o <out>")
	}

	b, err := openBundleFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", c.Args().Get(1), err)
	}

	data, err := b.Item(index)
	if err != nil {
		return err
	}

	logger.Info("extracted bundle item", map[string]any{"index": index, "bytes": len(data)})
	return os.WriteFile(c.String("out"), data, 0o644)
}

func openBundleFile(path string) (*bundle.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bundle.OpenBundle(data)
}

func parseCompressionFlag(s string) (format.CompressionType, error) {
	switch s {
	case "none", "":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q: want none, zstd, s2, or lz4", s)
	}
}
