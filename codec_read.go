// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import "fmt"

// readKey reads a NUL-terminated key in the node's dialect encoding,
// returning the decoded name and the number of raw bytes consumed
// (including the terminator).
func readKey(s Stream, dialect Dialect) (name string, rawLen int, err error) {
	switch dialect {
	case DialectAnsi16:
		var raw []byte
		for {
			b, err := s.ReadExact(1)
			if err != nil {
				return "", 0, fmt.Errorf("reading ansi key: %w", ErrCorrupt)
			}
			rawLen++
			if b[0] == 0 {
				break
			}
			raw = append(raw, b[0])
		}
		name, err = decodeAnsi(raw)
		if err != nil {
			return "", 0, err
		}
		return name, rawLen, nil

	case DialectWide32:
		var raw []byte
		for {
			b, err := s.ReadExact(2)
			if err != nil {
				return "", 0, fmt.Errorf("reading wide key: %w", ErrCorrupt)
			}
			rawLen += 2
			if b[0] == 0 && b[1] == 0 {
				break
			}
			raw = append(raw, b...)
		}
		name, err = decodeUTF16(raw)
		if err != nil {
			return "", 0, err
		}
		return name, rawLen, nil

	default:
		return "", 0, fmt.Errorf("unknown dialect %v: %w", dialect, ErrCorrupt)
	}
}

// readTextValue reads a Text node's value one UTF-16 code unit at a time
// until a NUL code unit, per §4.2.3's producer-quirk tolerance: the
// declared wValueLength for Text nodes is not trustworthy, so the real
// extent is found by scanning for the terminator instead. The returned
// buffer includes the terminator, matching §3.1's invariant for Text
// values.
func readTextValue(s Stream, logger Logger, declaredUnits uint16) ([]byte, error) {
	var buf []byte
	for {
		unit, err := s.ReadExact(2)
		if err != nil {
			return nil, fmt.Errorf("reading text value: %w", ErrCorrupt)
		}
		buf = append(buf, unit...)
		if unit[0] == 0 && unit[1] == 0 {
			break
		}
	}
	actualUnits := uint16(len(buf) / 2)
	if actualUnits != declaredUnits {
		logger.Warnf("text value declared %d code units, actual %d", declaredUnits, actualUnits)
	}
	return buf, nil
}

// readVarRec parses one node, and recursively its children, starting at
// the stream's current position. It returns the node and the node's own
// wLength, and leaves the stream positioned after the record's trailing
// padding (wLength rounded up to a 4-byte boundary) so siblings can be
// read back to back.
func readVarRec(s Stream, dialect Dialect, parent *VarRec, logger Logger) (*VarRec, uint16, error) {
	startPos, err := s.Pos()
	if err != nil {
		return nil, 0, err
	}

	wLength, err := readUint16(s)
	if err != nil {
		return nil, 0, err
	}
	wValueLength, err := readUint16(s)
	if err != nil {
		return nil, 0, err
	}

	var dataType DataType
	if dialect == DialectWide32 {
		wType, err := readUint16(s)
		if err != nil {
			return nil, 0, err
		}
		dataType = DataType(wType)
	} else {
		dataType = Binary
	}

	name, _, err := readKey(s, dialect)
	if err != nil {
		return nil, 0, err
	}

	pos, err := s.Pos()
	if err != nil {
		return nil, 0, err
	}
	headerLen := int(pos - startPos)
	headerPad := padLen(headerLen)
	if headerPad > 0 {
		if _, err := s.ReadExact(headerPad); err != nil {
			return nil, 0, fmt.Errorf("reading header padding: %w", ErrCorrupt)
		}
	}
	headerSize := headerLen + headerPad

	node := newVarRec(dialect, name, dataType, parent)

	var valueByteSize int
	if dataType == Text {
		buf, err := readTextValue(s, logger, wValueLength)
		if err != nil {
			return nil, 0, err
		}
		node.value = buf
		valueByteSize = len(buf)
	} else {
		valueByteSize = int(wValueLength)
		if valueByteSize > 0 {
			b, err := s.ReadExact(valueByteSize)
			if err != nil {
				return nil, 0, fmt.Errorf("reading value (%d bytes): %w", valueByteSize, ErrCorrupt)
			}
			node.value = b
		}
	}

	valuePad := padLen(valueByteSize)
	if valuePad > 0 {
		if _, err := s.ReadExact(valuePad); err != nil {
			return nil, 0, fmt.Errorf("reading value padding: %w", ErrCorrupt)
		}
	}

	// Text nodes never have children: the wValueLength-is-untrustworthy
	// workaround only works because, in this schema, Text appears solely
	// on leaf String records. See the design notes' open question.
	if dataType != Text {
		childrenOffset := headerSize + valueByteSize + valuePad
		childrenSize := int(wLength) - childrenOffset
		if childrenSize < 0 {
			return nil, 0, fmt.Errorf("record %q: children region underflows wLength: %w", name, ErrCorrupt)
		}
		if childrenSize > 0 {
			if err := s.Seek(startPos + int64(childrenOffset)); err != nil {
				return nil, 0, err
			}
			accumulated := 0
			for accumulated < childrenSize {
				child, childWLength, err := readVarRec(s, dialect, node, logger)
				if err != nil {
					return nil, 0, err
				}
				node.children = append(node.children, child)
				accumulated += int(childWLength) + padLen(int(childWLength))
			}
			if accumulated != childrenSize {
				return nil, 0, fmt.Errorf("record %q: children region size mismatch: %w", name, ErrCorrupt)
			}
		}
	}

	node.wLength = wLength
	outer := int(wLength) + padLen(int(wLength))
	if err := s.Seek(startPos + int64(outer)); err != nil {
		return nil, 0, err
	}

	return node, wLength, nil
}
