package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dcbor/dcbor/compress"
	"github.com/dcbor/dcbor/format"
	"github.com/urfave/cli/v2"
)

var compressStatsCommand = &cli.Command{
	Name:      "compress-stats",
	Usage:     "report compression ratio and space savings for a bundle's payload across every algorithm",
	ArgsUsage: "<bundle>",
	Action:    runCompressStats,
}

var allAlgorithms = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func runCompressStats(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: dcbordump compress-stats <bundle>")
	}

	b, err := openBundleFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	payload := make([]byte, 0)
	for i := 0; i < b.Len(); i++ {
		item, err := b.Item(i)
		if err != nil {
			return err
		}
		payload = append(payload, item...)
	}

	for _, alg := range allAlgorithms {
		codec, err := compress.GetCodec(alg)
		if err != nil {
			return err
		}

		start := time.Now()
		compressed, err := codec.Compress(payload)
		if err != nil {
			return err
		}
		compressTime := time.Since(start)

		start = time.Now()
		if _, err := codec.Decompress(compressed); err != nil {
			return err
		}
		decompressTime := time.Since(start)

		stats := compress.CompressionStats{
			Algorithm:           alg,
			OriginalSize:        int64(len(payload)),
			CompressedSize:      int64(len(compressed)),
			CompressionTimeNs:   compressTime.Nanoseconds(),
			DecompressionTimeNs: decompressTime.Nanoseconds(),
		}

		logger.Info("compression benchmark", map[string]any{
			"algorithm": alg.String(),
			"ratio":     stats.CompressionRatio(),
			"savings":   stats.SpaceSavings(),
		})
		fmt.Fprintf(os.Stdout, "%-6s ratio=%.3f savings=%.1f%% compress=%s decompress=%s\n",
			alg, stats.CompressionRatio(), stats.SpaceSavings(), compressTime, decompressTime)
	}
	return nil
}
