// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import "fmt"

// StringTableCount returns the number of string tables under
// StringFileInfo.
func (m *Model) StringTableCount() int {
	return m.stringFileInfoNode().ChildCount()
}

func (m *Model) stringTableAt(t int) (*VarRec, error) {
	node, err := m.stringFileInfoNode().ChildAt(t)
	if err != nil {
		return nil, fmt.Errorf("string table %d: %w", t, ErrIndexOutOfBounds)
	}
	return node, nil
}

// StringTableTransString returns string table t's name, the 8-hex-digit
// translation string that identifies it.
func (m *Model) StringTableTransString(t int) (string, error) {
	node, err := m.stringTableAt(t)
	if err != nil {
		return "", err
	}
	return node.Name(), nil
}

// StringTableLanguageID returns the language half of string table t's
// name.
func (m *Model) StringTableLanguageID(t int) (uint16, error) {
	s, err := m.StringTableTransString(t)
	if err != nil {
		return 0, err
	}
	lang, _, err := parseTransString(s)
	return lang, err
}

// StringTableCharset returns the charset half of string table t's name.
func (m *Model) StringTableCharset(t int) (uint16, error) {
	s, err := m.StringTableTransString(t)
	if err != nil {
		return 0, err
	}
	_, cs, err := parseTransString(s)
	return cs, err
}

// AddStringTable appends a new, empty string table named transStr and
// returns its index.
func (m *Model) AddStringTable(transStr string) (int, error) {
	m.stringFileInfoNode().AddChild(transStr, Binary)
	return m.StringTableCount() - 1, nil
}

// AddStringTableByTrans appends a new, empty string table named after
// (lang, charset) and returns its index.
func (m *Model) AddStringTableByTrans(lang, charset uint16) (int, error) {
	return m.AddStringTable(formatTransString(lang, charset))
}

// DeleteStringTable removes string table t.
func (m *Model) DeleteStringTable(t int) error {
	if _, err := m.stringTableAt(t); err != nil {
		return err
	}
	return m.stringFileInfoNode().RemoveChildAt(t)
}

// IndexOfStringTable returns the index of the string table named
// transStr (case-insensitive), or -1 if none exists.
func (m *Model) IndexOfStringTable(transStr string) int {
	return m.stringFileInfoNode().IndexOfChild(transStr)
}

// IndexOfStringTableByTrans returns the index of the string table named
// after (lang, charset), or -1 if none exists.
func (m *Model) IndexOfStringTableByTrans(lang, charset uint16) int {
	return m.IndexOfStringTable(formatTransString(lang, charset))
}
