// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import "fmt"

// encodeKey returns the NUL-terminated on-wire bytes for the node's name,
// in its dialect's encoding.
func (n *VarRec) encodeKey() ([]byte, error) {
	switch n.dialect {
	case DialectAnsi16:
		b, err := encodeAnsi(n.name)
		if err != nil {
			return nil, err
		}
		return append(b, 0), nil
	case DialectWide32:
		b, err := encodeUTF16(n.name)
		if err != nil {
			return nil, err
		}
		return append(b, 0, 0), nil
	default:
		return nil, fmt.Errorf("unknown dialect %v: %w", n.dialect, ErrCorrupt)
	}
}

// valueLengthField computes the wValueLength this node should write, per
// §4.2.2 step 2: a code-unit count (including the terminator) for Text
// nodes in the wide dialect, a byte count otherwise.
func (n *VarRec) valueLengthField() uint16 {
	if n.dialect == DialectWide32 && n.dataType == Text {
		return uint16(len(n.value) / 2)
	}
	return uint16(len(n.value))
}

// WriteTo serializes n and its descendants to s starting at the stream's
// current position, patches its own wLength, and leaves the stream
// positioned at the end of what it wrote. It returns the patched wLength
// so a caller iterating over siblings can compute the correct trailing
// padding without re-deriving it.
func (n *VarRec) WriteTo(s Stream) (uint16, error) {
	startOff, err := s.Pos()
	if err != nil {
		return 0, err
	}

	// 1. placeholder wLength.
	if err := writeUint16(s, 0); err != nil {
		return 0, err
	}

	// 2. wValueLength.
	if err := writeUint16(s, n.valueLengthField()); err != nil {
		return 0, err
	}

	// 3. wType, wide dialect only.
	if n.dialect == DialectWide32 {
		if err := writeUint16(s, uint16(n.dataType)); err != nil {
			return 0, err
		}
	}

	// 4. key.
	keyBytes, err := n.encodeKey()
	if err != nil {
		return 0, err
	}
	if err := s.WriteExact(keyBytes); err != nil {
		return 0, err
	}

	// 5. pad header to 4-byte alignment.
	pos, err := s.Pos()
	if err != nil {
		return 0, err
	}
	headerLen := int(pos - startOff)
	if err := writeZeroPad(s, padLen(headerLen)); err != nil {
		return 0, err
	}

	// 6. value bytes verbatim.
	if err := s.WriteExact(n.value); err != nil {
		return 0, err
	}

	// 7. pad (header+value) to 4-byte alignment.
	pos, err = s.Pos()
	if err != nil {
		return 0, err
	}
	soFar := int(pos - startOff)
	if err := writeZeroPad(s, padLen(soFar)); err != nil {
		return 0, err
	}

	// 8. children, each followed by its own trailing padding.
	for _, c := range n.children {
		childLen, err := c.WriteTo(s)
		if err != nil {
			return 0, err
		}
		if err := writeZeroPad(s, padLen(int(childLen))); err != nil {
			return 0, err
		}
	}

	// 9. patch wLength with header+value+inter-value padding+children
	// (excludes any padding trailing this whole record, which is the
	// caller's responsibility).
	endOff, err := s.Pos()
	if err != nil {
		return 0, err
	}
	total := endOff - startOff
	if total > 0xFFFF {
		return 0, fmt.Errorf("record %q: serialized length %d overflows wLength: %w", n.name, total, ErrCorrupt)
	}
	n.wLength = uint16(total)

	if err := s.Seek(startOff); err != nil {
		return 0, err
	}
	if err := writeUint16(s, n.wLength); err != nil {
		return 0, err
	}
	if err := s.Seek(endOff); err != nil {
		return 0, err
	}

	return n.wLength, nil
}
