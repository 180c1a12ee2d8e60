// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"encoding/binary"
	"fmt"
)

// unchangedSentinel marks "leave this half unchanged" in SetTranslation
// and "treat as zero" in AddTranslation, per §4.3.2.
const unchangedSentinel uint16 = 0xFFFF

func packTranslation(lang, charset uint16) uint32 {
	return uint32(charset)<<16 | uint32(lang)
}

func unpackTranslation(code uint32) (lang, charset uint16) {
	return uint16(code & 0xFFFF), uint16(code >> 16)
}

// TranslationCount returns the number of translation codes stored in
// VarFileInfo/Translation.
func (m *Model) TranslationCount() int {
	return len(m.translationNode().Value()) / 4
}

func (m *Model) translationAt(i int) (uint32, error) {
	count := m.TranslationCount()
	if i < 0 || i >= count {
		return 0, fmt.Errorf("translation %d: %w", i, ErrIndexOutOfBounds)
	}
	v := m.translationNode().Value()
	return binary.LittleEndian.Uint32(v[i*4 : i*4+4]), nil
}

// TranslationLanguageID returns the language ID half of translation i.
func (m *Model) TranslationLanguageID(i int) (uint16, error) {
	code, err := m.translationAt(i)
	if err != nil {
		return 0, err
	}
	lang, _ := unpackTranslation(code)
	return lang, nil
}

// TranslationCharset returns the charset half of translation i.
func (m *Model) TranslationCharset(i int) (uint16, error) {
	code, err := m.translationAt(i)
	if err != nil {
		return 0, err
	}
	_, cs := unpackTranslation(code)
	return cs, nil
}

// TranslationString returns translation i as an 8-hex-digit string,
// language first.
func (m *Model) TranslationString(i int) (string, error) {
	code, err := m.translationAt(i)
	if err != nil {
		return "", err
	}
	lang, cs := unpackTranslation(code)
	return formatTransString(lang, cs), nil
}

// SetTranslation overwrites translation i. A sentinel value of 0xFFFF in
// either half means "leave that half unchanged".
func (m *Model) SetTranslation(i int, lang, charset uint16) error {
	code, err := m.translationAt(i)
	if err != nil {
		return err
	}
	curLang, curCharset := unpackTranslation(code)
	if lang != unchangedSentinel {
		curLang = lang
	}
	if charset != unchangedSentinel {
		curCharset = charset
	}
	v := m.translationNode().Value()
	binary.LittleEndian.PutUint32(v[i*4:i*4+4], packTranslation(curLang, curCharset))
	return nil
}

// AddTranslation appends a new translation code and returns its index. A
// sentinel value of 0xFFFF in either half is treated as zero.
func (m *Model) AddTranslation(lang, charset uint16) (int, error) {
	if lang == unchangedSentinel {
		lang = 0
	}
	if charset == unchangedSentinel {
		charset = 0
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], packTranslation(lang, charset))
	node := m.translationNode()
	node.SetValue(append(node.Value(), b[:]...))
	return m.TranslationCount() - 1, nil
}

// DeleteTranslation removes translation i, shifting subsequent entries
// down by one index.
func (m *Model) DeleteTranslation(i int) error {
	count := m.TranslationCount()
	if i < 0 || i >= count {
		return fmt.Errorf("translation %d: %w", i, ErrIndexOutOfBounds)
	}
	node := m.translationNode()
	v := node.Value()
	v = append(v[:i*4], v[i*4+4:]...)
	node.SetValue(v)
	return nil
}

// IndexOfTranslation returns the index of the first translation matching
// (lang, charset), or -1 if none does.
func (m *Model) IndexOfTranslation(lang, charset uint16) int {
	want := packTranslation(lang, charset)
	count := m.TranslationCount()
	for i := 0; i < count; i++ {
		code, err := m.translationAt(i)
		if err != nil {
			return -1
		}
		if code == want {
			return i
		}
	}
	return -1
}
