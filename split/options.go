package split

import (
	"fmt"

	"github.com/arloliu/jsonl/internal/options"
)

// DefaultChunkSize is the read-chunk size used by Copy and Scanner unless
// overridden with WithChunkSize.
const DefaultChunkSize = 32 * 1024

// Option configures a Splitter or one of its drivers.
type Option = options.Option[*settings]

type settings struct {
	chunkSize  int
	maxElement int
}

func newSettings(opts ...Option) (settings, error) {
	cfg := settings{chunkSize: DefaultChunkSize}
	if err := options.Apply(&cfg, opts...); err != nil {
		return settings{}, err
	}

	return cfg, nil
}

// WithChunkSize sets the size of the chunks Copy and Scanner read from the
// source. It has no effect on a bare Splitter, which processes whatever
// chunks it is fed.
func WithChunkSize(n int) Option {
	return options.New(func(cfg *settings) error {
		if n <= 0 {
			return fmt.Errorf("chunk size must be positive, got %d", n)
		}
		cfg.chunkSize = n

		return nil
	})
}

// WithMaxElementSize bounds the accumulated size of a single element.
//
// The splitter itself imposes no memory cap; its element buffer grows with
// element size. This option is the external guard for callers that need
// bounded memory: exceeding the limit fails the job with ErrElementTooLarge.
// A limit of 0 (the default) means unlimited.
func WithMaxElementSize(n int) Option {
	return options.New(func(cfg *settings) error {
		if n < 0 {
			return fmt.Errorf("max element size must not be negative, got %d", n)
		}
		cfg.maxElement = n

		return nil
	})
}
