// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

// Dialect selects the on-wire framing of a VarRec tree. A single tree is
// always homogeneous in dialect; converting between dialects is done with
// Model.Assign, never by mixing dialects within one tree.
type Dialect int

const (
	// DialectAnsi16 is the legacy 16-bit dialect: no wType field,
	// single-byte ANSI keys and string values.
	DialectAnsi16 Dialect = iota

	// DialectWide32 is the modern 32-bit dialect: explicit wType field,
	// UTF-16 keys and string values.
	DialectWide32
)

func (d Dialect) String() string {
	switch d {
	case DialectAnsi16:
		return "ansi16"
	case DialectWide32:
		return "wide32"
	default:
		return "unknown"
	}
}

// DataType discriminates a VarRec's value payload. The 16-bit dialect
// never writes this field on the wire and implicitly behaves as Binary.
type DataType uint16

const (
	// Binary marks a node whose wValueLength is trusted as a byte count.
	Binary DataType = 0

	// Text marks a node carrying a NUL-terminated UTF-16 string (32-bit
	// dialect only). Text nodes never have children (see codec_read.go).
	Text DataType = 1
)

func (t DataType) String() string {
	switch t {
	case Binary:
		return "binary"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}
