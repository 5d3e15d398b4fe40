// Command jsonl converts a compressed JSON array file into a zip archive
// containing the same data as JSON Lines, or streams stdin to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/arloliu/jsonl"
	"github.com/arloliu/jsonl/compress"
	"github.com/arloliu/jsonl/log"
	"github.com/arloliu/jsonl/pipeline"
	"github.com/arloliu/jsonl/split"
)

var (
	version  = "dev"
	revision = "none"
)

// CLI represents the command line options
var CLI struct {
	Version     kong.VersionFlag `kong:"short='v',help='Show version and exit.'"`
	Input       string           `kong:"arg,help='Input file containing one JSON array, optionally compressed. Use - for stdin.'"`
	Output      string           `kong:"arg,optional,help='Output zip archive. Unused when input is -.'"`
	Format      string           `kong:"short='f',default='auto',enum='auto,none,zstd,s2,lz4,gzip',help='Input compression format.'"`
	Entry       string           `kong:"help='Name of the zip entry. Defaults to the input file name with a .jsonl extension.'"`
	ChunkSize   int              `kong:"default='32768',help='Read chunk size in bytes.'"`
	MaxElement  int              `kong:"default='0',help='Maximum element size in bytes, 0 for unlimited.'"`
	Concurrency int              `kong:"short='j',default='0',help='Decompress on a separate goroutine with the given queue depth, 0 for single-goroutine mode.'"`
	LogLevel    string           `kong:"short='l',default='info',enum='silent,error,warn,info,debug',help='Log level.'"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("jsonl"),
		kong.Description("Convert a JSON array into JSON Lines, streaming."),
		kong.Vars{"version": fmt.Sprintf("%s (%s)", version, revision)},
		kong.UsageOnError(),
	)

	logger := log.New(log.ParseLevel(CLI.LogLevel))
	kctx.FatalIfErrorf(run(logger))
}

func run(logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if CLI.Input == "-" {
		return runStdin()
	}
	if CLI.Output == "" {
		return fmt.Errorf("output path is required unless input is -")
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(logger),
		pipeline.WithChunkSize(CLI.ChunkSize),
	}
	if CLI.Format != "auto" {
		format, err := compress.ParseFormat(CLI.Format)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithFormat(format))
	}
	if CLI.Entry != "" {
		opts = append(opts, pipeline.WithEntryName(CLI.Entry))
	}
	if CLI.MaxElement > 0 {
		opts = append(opts, pipeline.WithMaxElementSize(CLI.MaxElement))
	}
	if CLI.Concurrency > 0 {
		opts = append(opts, pipeline.WithConcurrency(CLI.Concurrency))
	}

	converter, err := pipeline.New(opts...)
	if err != nil {
		return err
	}

	stats, err := converter.Convert(ctx, CLI.Input, CLI.Output)
	if err != nil {
		return err
	}
	logger.Debugf("archive written: %s (%d elements)", CLI.Output, stats.Elements)

	return nil
}

// runStdin streams an uncompressed array from stdin to stdout as plain
// JSON Lines, without archiving.
func runStdin() error {
	opts := []split.Option{split.WithChunkSize(CLI.ChunkSize)}
	if CLI.MaxElement > 0 {
		opts = append(opts, split.WithMaxElementSize(CLI.MaxElement))
	}

	_, err := jsonl.Convert(os.Stdout, os.Stdin, opts...)

	return err
}
