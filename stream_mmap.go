// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// MappedStream is a read-only Stream over the whole of a memory-mapped
// file. ReadExact copies the requested bytes out of the mapping. It has no
// sub-range view, and Model.ReadFromStream parses from offset 0, so the
// mapped file must begin with the VS_VERSIONINFO blob. It does not parse
// PE or .res containers.
type MappedStream struct {
	data mmap.MMap
	f    *os.File
	pos  int64
}

// NewMappedStream memory-maps path read-only and returns a Stream over its
// full contents.
func NewMappedStream(path string) (*MappedStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	return &MappedStream{data: data, f: f}, nil
}

// Close unmaps the region and closes the underlying file.
func (s *MappedStream) Close() error {
	if err := s.data.Unmap(); err != nil {
		s.f.Close()
		return fmt.Errorf("unmapping: %w", err)
	}
	return s.f.Close()
}

func (s *MappedStream) ReadExact(n int) ([]byte, error) {
	if n < 0 || s.pos+int64(n) > int64(len(s.data)) {
		return nil, fmt.Errorf("reading %d bytes at %d: %w", n, s.pos, ErrCorrupt)
	}
	b := make([]byte, n)
	copy(b, s.data[s.pos:s.pos+int64(n)])
	s.pos += int64(n)
	return b, nil
}

// WriteExact always fails: a mapped region is fixed-size and read-only by
// contract for this adapter.
func (s *MappedStream) WriteExact(b []byte) error {
	return fmt.Errorf("writing to mapped stream: %w", ErrCorrupt)
}

func (s *MappedStream) Pos() (int64, error) { return s.pos, nil }

func (s *MappedStream) Seek(offset int64) error {
	if offset < 0 || offset > int64(len(s.data)) {
		return fmt.Errorf("seeking to %d: %w", offset, ErrCorrupt)
	}
	s.pos = offset
	return nil
}

func (s *MappedStream) Size() (int64, error) { return int64(len(s.data)), nil }
