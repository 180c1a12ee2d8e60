// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

// Fuzz is a go-fuzz entry point: it treats data as a 32-bit-dialect
// VS_VERSIONINFO blob and attempts to parse and re-serialize it. It
// returns 1 only on a successful round trip, giving the corpus-fuzzing
// toolchain a target against the codec's untrusted-input boundary.
func Fuzz(data []byte) int {
	m := New(DialectWide32)
	if err := m.ReadFromStream(NewByteStream(data)); err != nil {
		return 0
	}
	if err := m.WriteToStream(NewByteStream(nil)); err != nil {
		return 0
	}
	return 1
}
