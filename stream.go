// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"fmt"
	"io"
)

// Stream is the seekable byte-oriented abstraction both the codec and the
// model consume. Concrete streams (in-memory, file, mmap) are injected by
// the host; the codec never reaches for os or io directly.
type Stream interface {
	// ReadExact reads exactly n bytes at the current position, advancing
	// it by n. It fails if fewer than n bytes remain.
	ReadExact(n int) ([]byte, error)

	// WriteExact writes b at the current position, advancing it by
	// len(b), growing the underlying storage if necessary.
	WriteExact(b []byte) error

	// Pos returns the current position.
	Pos() (int64, error)

	// Seek moves to an absolute offset.
	Seek(offset int64) error

	// Size returns the total size of the stream's backing storage.
	Size() (int64, error)
}

// ByteStream is an in-memory Stream backed by a growable byte slice. It is
// the stream most tests exercise directly.
type ByteStream struct {
	buf []byte
	pos int64
}

// NewByteStream wraps b (or starts empty if b is nil) as a Stream. The
// stream works on b's backing array directly: writes within its current
// length modify b in place, and the first write past its end copies the
// contents into a new, larger array.
func NewByteStream(b []byte) *ByteStream {
	return &ByteStream{buf: b}
}

// Bytes returns the stream's current contents.
func (s *ByteStream) Bytes() []byte {
	return s.buf
}

func (s *ByteStream) ReadExact(n int) ([]byte, error) {
	if n < 0 || s.pos+int64(n) > int64(len(s.buf)) {
		return nil, fmt.Errorf("reading %d bytes at %d: %w", n, s.pos, io.ErrUnexpectedEOF)
	}
	b := make([]byte, n)
	copy(b, s.buf[s.pos:s.pos+int64(n)])
	s.pos += int64(n)
	return b, nil
}

func (s *ByteStream) WriteExact(b []byte) error {
	end := s.pos + int64(len(b))
	if end > int64(len(s.buf)) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:end], b)
	s.pos = end
	return nil
}

func (s *ByteStream) Pos() (int64, error) { return s.pos, nil }

func (s *ByteStream) Seek(offset int64) error {
	if offset < 0 {
		return fmt.Errorf("seeking to negative offset %d: %w", offset, ErrCorrupt)
	}
	s.pos = offset
	return nil
}

func (s *ByteStream) Size() (int64, error) { return int64(len(s.buf)), nil }
