// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"encoding/binary"
	"fmt"
)

func writeUint16(s Stream, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return s.WriteExact(b[:])
}

func readUint16(s Stream) (uint16, error) {
	b, err := s.ReadExact(2)
	if err != nil {
		return 0, fmt.Errorf("reading u16: %w", ErrCorrupt)
	}
	return binary.LittleEndian.Uint16(b), nil
}

func writeZeroPad(s Stream, n int) error {
	if n <= 0 {
		return nil
	}
	return s.WriteExact(make([]byte, n))
}
