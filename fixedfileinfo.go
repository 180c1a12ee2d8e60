// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// fixedFileInfoSignature is stamped into dwSignature on every
// SetFixedFileInfo call, regardless of the caller-supplied value.
const fixedFileInfoSignature uint32 = 0xFEEF04BD

// fixedFileInfoStructVersion is stamped into dwStrucVersion on every
// SetFixedFileInfo call.
const fixedFileInfoStructVersion uint32 = 0x00010000

// fixedFileInfoSize is the wire size of FixedFileInfo: 13 little-endian
// uint32 fields.
const fixedFileInfoSize = 52

// FixedFileInfo is the 52-byte VS_FIXEDFILEINFO payload stored as the
// value of the VS_VERSION_INFO root node. It is language and code-page
// independent.
type FixedFileInfo struct {
	Signature        uint32
	StructVersion    uint32
	FileVersionMS    uint32
	FileVersionLS    uint32
	ProductVersionMS uint32
	ProductVersionLS uint32
	FileFlagsMask    uint32
	FileFlags        uint32
	FileOS           uint32
	FileType         uint32
	FileSubtype      uint32
	FileDateMS       uint32
	FileDateLS       uint32
}

func stampFixedFileInfo(f *FixedFileInfo) {
	f.Signature = fixedFileInfoSignature
	f.StructVersion = fixedFileInfoStructVersion
}

func (f FixedFileInfo) bytes() []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, f)
	return buf.Bytes()
}

func parseFixedFileInfo(b []byte) (FixedFileInfo, error) {
	var f FixedFileInfo
	padded := b
	if len(padded) < fixedFileInfoSize {
		padded = make([]byte, fixedFileInfoSize)
		copy(padded, b)
	}
	if err := binary.Read(bytes.NewReader(padded[:fixedFileInfoSize]), binary.LittleEndian, &f); err != nil {
		return FixedFileInfo{}, fmt.Errorf("parsing fixed file info: %w", ErrCorrupt)
	}
	return f, nil
}

// GetFixedFileInfo returns the root node's fixed file info with the
// signature and struct version stamped over whatever the value holds, or
// a zero-valued, stamped record if the root carries no value yet.
func (m *Model) GetFixedFileInfo() FixedFileInfo {
	if len(m.root.Value()) == 0 {
		f := FixedFileInfo{}
		stampFixedFileInfo(&f)
		return f
	}
	// parseFixedFileInfo cannot fail here: it pads any short input to
	// fixedFileInfoSize before reading.
	f, _ := parseFixedFileInfo(m.root.Value())
	stampFixedFileInfo(&f)
	return f
}

// SetFixedFileInfo stamps the signature and struct version, then stores f
// as the root node's value.
func (m *Model) SetFixedFileInfo(f FixedFileInfo) {
	stampFixedFileInfo(&f)
	m.root.SetValue(f.bytes())
}
