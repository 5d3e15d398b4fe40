package pipeline

import (
	"archive/zip"
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/flate"

	"github.com/arloliu/jsonl/compress"
	"github.com/arloliu/jsonl/internal/options"
	"github.com/arloliu/jsonl/log"
	"github.com/arloliu/jsonl/split"
)

// Stats summarizes one completed conversion.
type Stats struct {
	// Format is the input compression format, after detection.
	Format compress.Format

	// Elements is the number of JSON Lines written.
	Elements int64

	// BytesWritten is the uncompressed size of the JSON Lines output,
	// newlines included.
	BytesWritten int64

	// Checksum is the xxHash64 digest of the JSON Lines output.
	Checksum uint64

	// Duration is the wall-clock time of the conversion.
	Duration time.Duration
}

// Converter runs the decompress -> split -> re-archive pipeline.
// Create one with New; the zero value is not usable.
type Converter struct {
	logger     *log.Logger
	entryName  string
	format     compress.Format // zero means auto-detect
	chunkSize  int
	maxElement int
	queueDepth int // zero means single-goroutine mode
}

// New creates a Converter with the given options.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		logger:    log.Discard,
		chunkSize: split.DefaultChunkSize,
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert reads the compressed JSON array at inputPath and writes a zip
// archive at resultPath whose single entry holds the JSON Lines output.
//
// The conversion is one streaming pass; the input is never fully buffered.
// On any failure the partially written archive is removed and the first
// error is returned. Cancel ctx to abort between reads.
func (c *Converter) Convert(ctx context.Context, inputPath, resultPath string) (Stats, error) {
	start := time.Now()

	in, err := os.Open(inputPath)
	if err != nil {
		return Stats{}, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	br := bufio.NewReaderSize(in, c.chunkSize)
	format := c.format
	if format == 0 {
		if format, err = compress.Detect(br); err != nil {
			return Stats{}, err
		}
		c.logger.Debugf("detected input compression: %s", format)
	}

	src, err := compress.NewReader(format, br)
	if err != nil {
		return Stats{}, err
	}
	defer src.Close()

	stats, err := c.archive(ctx, src, inputPath, resultPath)
	if err != nil {
		// A half-written archive is useless; a failed job leaves nothing behind.
		os.Remove(resultPath)

		return Stats{}, err
	}

	stats.Format = format
	stats.Duration = time.Since(start)
	c.logger.Infof("converted %d elements (%d bytes, xxh64 %016x) in %s",
		stats.Elements, stats.BytesWritten, stats.Checksum, stats.Duration)

	return stats, nil
}

// archive streams src through the splitter into a single zip entry at
// resultPath.
func (c *Converter) archive(ctx context.Context, src io.Reader, inputPath, resultPath string) (Stats, error) {
	out, err := os.Create(resultPath)
	if err != nil {
		return Stats{}, fmt.Errorf("create result: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestSpeed)
	})

	entryName := c.entryName
	if entryName == "" {
		entryName = defaultEntryName(inputPath)
	}
	entry, err := zw.CreateHeader(&zip.FileHeader{
		Name:     entryName,
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return Stats{}, fmt.Errorf("create zip entry: %w", err)
	}

	digest := xxhash.New()
	counter := &countingWriter{w: io.MultiWriter(entry, digest)}

	var elements int64
	if c.queueDepth > 0 {
		elements, err = c.copyConcurrent(ctx, counter, src)
	} else {
		elements, err = split.Copy(counter, &contextReader{ctx: ctx, r: src}, c.splitOptions()...)
	}
	if err != nil {
		return Stats{}, err
	}

	checksum := digest.Sum64()
	if err := zw.SetComment(fmt.Sprintf("xxh64:%016x", checksum)); err != nil {
		return Stats{}, fmt.Errorf("set archive comment: %w", err)
	}
	if err := zw.Close(); err != nil {
		return Stats{}, fmt.Errorf("close archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return Stats{}, fmt.Errorf("close result: %w", err)
	}

	return Stats{
		Elements:     elements,
		BytesWritten: counter.n,
		Checksum:     checksum,
	}, nil
}

// defaultEntryName derives the zip entry name from the input file name:
// the compression extension is stripped and the data extension replaced
// with .jsonl.
func defaultEntryName(inputPath string) string {
	name := filepath.Base(inputPath)
	for _, ext := range []string{".zst", ".gz", ".lz4", ".s2"} {
		name = strings.TrimSuffix(name, ext)
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." {
		name = "output"
	}

	return name + ".jsonl"
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)

	return n, err
}

// contextReader aborts the streaming pass between reads once ctx is
// canceled.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}

	return cr.r.Read(p)
}
