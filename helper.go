// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// padLen returns how many zero bytes are needed to round n up to a
// 4-byte boundary.
func padLen(n int) int {
	return (4 - (n % 4)) % 4
}

// asciiEqualFold reports whether a and b are equal under an ASCII-only
// case fold. VarRec keys are ASCII by format convention; a full-Unicode
// fold would be both unnecessary and, for this format, wrong.
func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeUTF16 returns the little-endian UTF-16 code units of s.
func encodeUTF16(s string) ([]byte, error) {
	b, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding utf-16 value: %w", err)
	}
	return b, nil
}

// decodeUTF16 decodes little-endian UTF-16 code units, excluding any
// trailing NUL terminator the caller has already stripped.
func decodeUTF16(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	s, err := utf16LE.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding utf-16 value: %w", err)
	}
	return string(s), nil
}

// encodeAnsi returns the single-byte Windows-1252 encoding of s. This is
// the documented compatibility hazard from the design notes: the legacy
// dialect carries no code-page tag of its own, so a fixed code page is
// assumed the way producers historically relied on.
func encodeAnsi(s string) ([]byte, error) {
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding ansi value: %w", err)
	}
	return b, nil
}

func decodeAnsi(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding ansi value: %w", err)
	}
	return string(s), nil
}

// formatTransString renders a translation code as an 8-hex-digit string,
// language first then charset, per the VS_VERSIONINFO string-table naming
// convention.
func formatTransString(lang, charset uint16) string {
	return fmt.Sprintf("%04X%04X", lang, charset)
}

// parseTransString parses the first 4 hex digits as the language ID and
// the next 4 as the charset, case-insensitively.
func parseTransString(s string) (lang, charset uint16, err error) {
	if len(s) != 8 {
		return 0, 0, fmt.Errorf("translation string %q: %w", s, ErrCorrupt)
	}
	l, err := strconv.ParseUint(s[0:4], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("translation string %q: %w", s, ErrCorrupt)
	}
	c, err := strconv.ParseUint(s[4:8], 16, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("translation string %q: %w", s, ErrCorrupt)
	}
	return uint16(l), uint16(c), nil
}

// indexOfNulUnit returns the byte offset of the first 0x0000 UTF-16 code
// unit in b (checking even offsets only), or -1 if none is present.
func indexOfNulUnit(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return i
		}
	}
	return -1
}

// indexOfNulByte returns the index of the first zero byte in b, or -1.
func indexOfNulByte(b []byte) int {
	return bytes.IndexByte(b, 0)
}
