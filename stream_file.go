// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"fmt"
	"io"
	"os"
)

// FileStream adapts an *os.File to Stream. Used by the vibin CLI in cmd/, and
// by any host that already has an open file handle rather than an
// in-memory blob.
type FileStream struct {
	f *os.File
}

// NewFileStream wraps an already-open file. The caller owns the file's
// lifetime and must close it.
func NewFileStream(f *os.File) *FileStream {
	return &FileStream{f: f}
}

func (s *FileStream) ReadExact(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(s.f, b); err != nil {
		return nil, fmt.Errorf("reading %d bytes: %w", n, err)
	}
	return b, nil
}

func (s *FileStream) WriteExact(b []byte) error {
	if _, err := s.f.Write(b); err != nil {
		return fmt.Errorf("writing %d bytes: %w", len(b), err)
	}
	return nil
}

func (s *FileStream) Pos() (int64, error) {
	return s.f.Seek(0, io.SeekCurrent)
}

func (s *FileStream) Seek(offset int64) error {
	_, err := s.f.Seek(offset, io.SeekStart)
	if err != nil {
		return fmt.Errorf("seeking to %d: %w", offset, err)
	}
	return nil
}

func (s *FileStream) Size() (int64, error) {
	fi, err := s.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat: %w", err)
	}
	return fi.Size(), nil
}
