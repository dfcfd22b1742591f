package input

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadFile memory-maps the file at path read-only and parses it with Read.
// The mapping is released before returning; the returned strings are copies.
func ReadFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input file: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("input file %s is a directory", path)
	}
	// Zero-length files cannot be mapped.
	if stat.Size() == 0 {
		return Read(bytes.NewReader(nil))
	}

	fadviseSequential(int(f.Fd()), 0, stat.Size())

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap input file: %w", err)
	}
	madviseSequential(mm)

	strs, err := Read(bytes.NewReader(mm))
	if uerr := mm.Unmap(); uerr != nil {
		return nil, errors.Join(err, fmt.Errorf("unmap input file: %w", uerr))
	}
	return strs, err
}
