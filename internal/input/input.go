// Package input reads solver input in the text format: an integer count n
// followed by n whitespace-separated tokens, each token one string.
//
// Input may be plain, zstd- or gzip-compressed; the encoding is detected
// from the leading magic bytes.
package input

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	sserrors "github.com/tamirms/superstring/errors"
)

const (
	// MaxTokenSize is the longest token Parse accepts.
	MaxTokenSize = 1 << 20

	// maxPrealloc caps the up-front slice allocation so a bogus count
	// cannot force a huge allocation before any token is read.
	maxPrealloc = 1 << 16

	sniffBufferSize = 64 << 10
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

// Parse reads a count followed by that many tokens. Tokens after the
// declared count are ignored. Returned strings do not alias r's buffers.
func Parse(r io.Reader) ([][]byte, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxTokenSize)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read count: %w", scanError(err))
		}
		return nil, fmt.Errorf("%w: input is empty", sserrors.ErrInvalidCount)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", sserrors.ErrInvalidCount, sc.Text())
	}

	strs := make([][]byte, 0, min(n, maxPrealloc))
	for i := range n {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read token %d: %w", i+1, scanError(err))
			}
			return nil, fmt.Errorf("%w: token %d of %d", sserrors.ErrMissingToken, i+1, n)
		}
		strs = append(strs, bytes.Clone(sc.Bytes()))
	}
	return strs, nil
}

// scanError maps scanner errors to package sentinels where one applies.
func scanError(err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: limit %d bytes", sserrors.ErrTokenTooLong, MaxTokenSize)
	}
	return err
}

// NewReader returns a reader that yields the decoded contents of r,
// decompressing zstd or gzip streams and passing anything else through.
// The caller must Close the result; closing does not close r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, sniffBufferSize)
	magic, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("peek input: %w", err)
	}

	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		d, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return d.IOReadCloser(), nil
	case bytes.HasPrefix(magic, gzipMagic):
		z, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return z, nil
	default:
		return io.NopCloser(br), nil
	}
}

// Read decodes r with NewReader and parses the result.
func Read(r io.Reader) ([][]byte, error) {
	rc, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	strs, err := Parse(rc)
	if cerr := rc.Close(); cerr != nil && err == nil {
		return nil, fmt.Errorf("close decoder: %w", cerr)
	}
	return strs, err
}
