package pipeline

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/jsonl/split"
)

// copyConcurrent is the two-goroutine variant of the streaming pass: a
// producer decompresses the source into a bounded channel of chunks, the
// consumer feeds them to the splitter and the zip entry.
//
// A closed channel signals normal end of input; an error on either side
// cancels the group context, which unblocks the other side.
func (c *Converter) copyConcurrent(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	g, ctx := errgroup.WithContext(ctx)
	chunks := make(chan []byte, c.queueDepth)

	g.Go(func() error {
		defer close(chunks)

		for {
			// The consumer may hold on to the chunk until it is fully fed,
			// so every read gets its own buffer.
			buf := make([]byte, c.chunkSize)
			n, err := src.Read(buf)
			if n > 0 {
				select {
				case chunks <- buf[:n]:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}
		}
	})

	var elements int64
	g.Go(func() error {
		sp, err := split.NewSplitter(func(element []byte) error {
			if _, err := dst.Write(element); err != nil {
				return fmt.Errorf("write element: %w", err)
			}
			if _, err := dst.Write([]byte{'\n'}); err != nil {
				return fmt.Errorf("write newline: %w", err)
			}

			return nil
		}, c.splitOptions()...)
		if err != nil {
			return err
		}
		defer sp.Close()
		defer func() { elements = sp.Elements() }()

		for chunk := range chunks {
			if err := sp.Feed(chunk); err != nil {
				return err
			}
		}

		return sp.Finish()
	})

	if err := g.Wait(); err != nil {
		return elements, err
	}

	return elements, nil
}
