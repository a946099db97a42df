package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/item"
	"github.com/urfave/cli/v2"
)

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "parse a single top-level CBOR item and print a structural tree",
	ArgsUsage: "<file>",
	Action:    runInspect,
}

func runInspect(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("usage: dcbordump inspect <file>")
	}

	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	n, err := item.Validate(data)
	if err != nil {
		return fmt.Errorf("not well-formed: %w", err)
	}

	v := item.NewSerialized(data[:n])
	printTree(v, 0)

	if rest := len(data) - n; rest > 0 {
		logger.Warn("trailing bytes after top-level item", map[string]any{"bytes": rest})
	}
	return nil
}

func printTree(v item.Value, depth int) {
	indent := strings.Repeat("  ", depth)

	kind, err := item.Kind(v)
	if err != nil {
		fmt.Printf("%s<error: %v>\n", indent, err)
		return
	}

	switch kind {
	case format.KindInt:
		major, arg, _ := item.Int64Parts(v)
		if major == format.NegativeInt {
			fmt.Printf("%sint: %d\n", indent, -int64(arg)-1)
		} else {
			fmt.Printf("%sint: %d\n", indent, arg)
		}
	case format.KindBytes:
		_, length, _, _ := item.StringParts(v)
		fmt.Printf("%sbytes: %d byte(s)\n", indent, length)
	case format.KindText:
		_, _, payload, _ := item.StringParts(v)
		fmt.Printf("%stext: %q\n", indent, payload)
	case format.KindBool:
		sv, _ := item.SimpleValue(v)
		fmt.Printf("%sbool: %v\n", indent, sv == format.SimpleTrue)
	case format.KindNull:
		fmt.Printf("%snull\n", indent)
	case format.KindUndefined:
		fmt.Printf("%sundefined\n", indent)
	case format.KindSimple:
		sv, _ := item.SimpleValue(v)
		switch format.AdditionalInfo(sv) {
		case format.FloatHalf:
			fmt.Printf("%sfloat16 (opaque)\n", indent)
		case format.FloatSingle:
			fmt.Printf("%sfloat32 (opaque)\n", indent)
		case format.FloatDouble:
			fmt.Printf("%sfloat64 (opaque)\n", indent)
		default:
			fmt.Printf("%ssimple(%d)\n", indent, sv)
		}
	case format.KindTag:
		tag, payload, err := item.TaggedParts(v)
		if err != nil {
			fmt.Printf("%s<tag error: %v>\n", indent, err)
			return
		}
		fmt.Printf("%stag(%d):\n", indent, tag)
		printTree(payload, depth+1)
	case format.KindArray:
		length, _ := item.ArrayLength(v)
		fmt.Printf("%sarray[%d]:\n", indent, length)
		for elem := range item.All(v) {
			printTree(elem, depth+1)
		}
	case format.KindMap:
		length, _ := item.MapLength(v)
		fmt.Printf("%smap[%d]:\n", indent, length)
		for key, val := range item.AllPairs(v) {
			fmt.Printf("%s  key:\n", indent)
			printTree(key, depth+2)
			fmt.Printf("%s  value:\n", indent)
			printTree(val, depth+2)
		}
	default:
		fmt.Printf("%s<unknown kind>\n", indent)
	}
}
