package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// nolint: gochecknoglobals
var (
	outputFormat string
	layout       string
	byteOrder    string
	lzfSize      int
	redisAddr    string
	redisKey     string

	rootCmd = &cobra.Command{
		Use:  "binreader [path]",
		Args: cobra.MaximumNArgs(1),
		Example: formatExamples([][]string{
			{"Read a big-endian header.", "binreader --layout u32,u16,cstr path/to/file.bin"},
			{"Read little-endian values from stdin.", "cat file | binreader --endian little --layout i64,align:8,bytes:4"},
			{"Read a value stored in Redis.", "binreader --redis-addr localhost:6379 --redis-key mykey --layout u8,cstr"},
		}),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := ParseLayout(layout)

			if err != nil {
				return err
			}

			writer := bufio.NewWriter(os.Stdout)
			defer writer.Flush()

			printer, err := newPrinter(writer)

			if err != nil {
				return err
			}

			opts := SourceOptions{
				Stdin:     bufio.NewReader(os.Stdin),
				RedisAddr: redisAddr,
				RedisKey:  redisKey,
				LZFSize:   lzfSize,
			}

			if len(args) > 0 {
				opts.Path = args[0]
			}

			return run(opts, steps, printer)
		},
	}
)

func formatExamples(examples [][]string) string {
	lines := make([]string, len(examples))
	indent := "  "

	for i, v := range examples {
		lines[i] = indent + "# " + v[0] + "\n" + indent + v[1]
	}

	return strings.Join(lines, "\n\n")
}

func newPrinter(w io.Writer) (Printer, error) {
	switch outputFormat {
	case "json":
		return NewJSONPrinter(w), nil
	case "text":
		return NewTextPrinter(w), nil
	}

	// nolint: goerr113
	return nil, fmt.Errorf("unsupported format %q", outputFormat)
}

func main() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputFormat, "output", "o", "json", "output format (json or text)")
	flags.StringVarP(&layout, "layout", "l", "", "comma-separated read steps")
	flags.StringVarP(&byteOrder, "endian", "e", "big", "initial byte order (big or little)")
	flags.IntVar(&lzfSize, "lzf-size", 0, "decompressed size of LZF-compressed input")
	flags.StringVar(&redisAddr, "redis-addr", "", "read the input from a Redis server")
	flags.StringVar(&redisKey, "redis-key", "", "Redis key holding the input")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts SourceOptions, steps []Step, printer Printer) error {
	switch byteOrder {
	case "big", "":
	case "little":
		steps = append([]Step{{Op: opLittle}}, steps...)
	default:
		// nolint: goerr113
		return fmt.Errorf("unsupported byte order %q", byteOrder)
	}

	r, err := OpenSource(opts)

	if err != nil {
		return err
	}

	return RunLayout(r, steps, printer)
}
