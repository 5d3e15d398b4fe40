package pipeline

import (
	"fmt"

	"github.com/arloliu/jsonl/compress"
	"github.com/arloliu/jsonl/internal/options"
	"github.com/arloliu/jsonl/log"
	"github.com/arloliu/jsonl/split"
)

// Option configures a Converter.
type Option = options.Option[*Converter]

// WithFormat pins the input compression format instead of sniffing it from
// the stream's magic bytes.
func WithFormat(format compress.Format) Option {
	return options.New(func(c *Converter) error {
		if _, err := compress.GetCodec(format); err != nil {
			return err
		}
		c.format = format

		return nil
	})
}

// WithEntryName overrides the name of the zip entry the JSON Lines output is
// written to. The default derives from the input file name.
func WithEntryName(name string) Option {
	return options.New(func(c *Converter) error {
		if name == "" {
			return fmt.Errorf("entry name cannot be empty")
		}
		c.entryName = name

		return nil
	})
}

// WithLogger sets the logger for progress and timing output.
// The default logger discards everything.
func WithLogger(logger *log.Logger) Option {
	return options.New(func(c *Converter) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger

		return nil
	})
}

// WithChunkSize sets the size of the chunks read from the decompressed
// stream, in both execution modes.
func WithChunkSize(n int) Option {
	return options.New(func(c *Converter) error {
		if n <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", n)
		}
		c.chunkSize = n

		return nil
	})
}

// WithMaxElementSize bounds the size of a single array element; see
// split.WithMaxElementSize.
func WithMaxElementSize(n int) Option {
	return options.New(func(c *Converter) error {
		if n < 0 {
			return fmt.Errorf("max element size must not be negative, got %d", n)
		}
		c.maxElement = n

		return nil
	})
}

// WithConcurrency runs decompression on a producer goroutine feeding the
// splitter through a bounded channel of queueDepth chunks.
func WithConcurrency(queueDepth int) Option {
	return options.New(func(c *Converter) error {
		if queueDepth <= 0 {
			return fmt.Errorf("queue depth must be positive, got %d", queueDepth)
		}
		c.queueDepth = queueDepth

		return nil
	})
}

// splitOptions assembles the split package options matching the converter's
// configuration.
func (c *Converter) splitOptions() []split.Option {
	opts := []split.Option{split.WithChunkSize(c.chunkSize)}
	if c.maxElement > 0 {
		opts = append(opts, split.WithMaxElementSize(c.maxElement))
	}

	return opts
}
