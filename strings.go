// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import "fmt"

// encodeStringValue returns the NUL-terminated on-wire bytes for a string
// entry's value, and the data type it should be tagged with, in the
// model's dialect.
func (m *Model) encodeStringValue(value string) ([]byte, DataType, error) {
	switch m.dialect {
	case DialectAnsi16:
		b, err := encodeAnsi(value)
		if err != nil {
			return nil, Binary, err
		}
		return append(b, 0), Binary, nil
	case DialectWide32:
		b, err := encodeUTF16(value)
		if err != nil {
			return nil, Text, err
		}
		return append(b, 0, 0), Text, nil
	default:
		return nil, Binary, fmt.Errorf("unknown dialect %v: %w", m.dialect, ErrCorrupt)
	}
}

// decodeStringValue decodes a string entry's raw, NUL-terminated value
// buffer in the model's dialect.
func (m *Model) decodeStringValue(raw []byte) (string, error) {
	switch m.dialect {
	case DialectAnsi16:
		if n := indexOfNulByte(raw); n >= 0 {
			raw = raw[:n]
		}
		return decodeAnsi(raw)
	case DialectWide32:
		if n := indexOfNulUnit(raw); n >= 0 {
			raw = raw[:n]
		}
		return decodeUTF16(raw)
	default:
		return "", fmt.Errorf("unknown dialect %v: %w", m.dialect, ErrCorrupt)
	}
}

// StringCount returns the number of strings in string table t.
func (m *Model) StringCount(t int) (int, error) {
	table, err := m.stringTableAt(t)
	if err != nil {
		return 0, err
	}
	return table.ChildCount(), nil
}

func (m *Model) stringAt(t, s int) (*VarRec, error) {
	table, err := m.stringTableAt(t)
	if err != nil {
		return nil, err
	}
	entry, err := table.ChildAt(s)
	if err != nil {
		return nil, fmt.Errorf("string %d of table %d: %w", s, t, ErrIndexOutOfBounds)
	}
	return entry, nil
}

// StringName returns the name of string s in table t.
func (m *Model) StringName(t, s int) (string, error) {
	entry, err := m.stringAt(t, s)
	if err != nil {
		return "", err
	}
	return entry.Name(), nil
}

// StringValue returns the decoded value of string s in table t.
func (m *Model) StringValue(t, s int) (string, error) {
	entry, err := m.stringAt(t, s)
	if err != nil {
		return "", err
	}
	return m.decodeStringValue(entry.Value())
}

// IndexOfString returns the index of the string named name
// (case-insensitive) in table t, or -1 if none exists. t must itself be a
// valid table index.
func (m *Model) IndexOfString(t int, name string) (int, error) {
	table, err := m.stringTableAt(t)
	if err != nil {
		return 0, err
	}
	return table.IndexOfChild(name), nil
}

// StringValueByName returns the value of the string named name in table
// t.
func (m *Model) StringValueByName(t int, name string) (string, error) {
	i, err := m.IndexOfString(t, name)
	if err != nil {
		return "", err
	}
	if i < 0 {
		return "", fmt.Errorf("string %q: %w", name, ErrUnknownName)
	}
	return m.StringValue(t, i)
}

// AddString appends a new string entry to table t. It fails with
// ErrDuplicateName if name already exists there.
func (m *Model) AddString(t int, name, value string) (int, error) {
	table, err := m.stringTableAt(t)
	if err != nil {
		return 0, err
	}
	if table.IndexOfChild(name) >= 0 {
		return 0, fmt.Errorf("string %q: %w", name, ErrDuplicateName)
	}
	raw, dataType, err := m.encodeStringValue(value)
	if err != nil {
		return 0, err
	}
	entry := table.AddChild(name, dataType)
	entry.SetValue(raw)
	return table.ChildCount() - 1, nil
}

// AddOrUpdateString adds name/value to table t, or updates it in place if
// name already exists.
func (m *Model) AddOrUpdateString(t int, name, value string) (int, error) {
	i, err := m.IndexOfString(t, name)
	if err != nil {
		return 0, err
	}
	if i >= 0 {
		if err := m.SetStringValue(t, i, value); err != nil {
			return 0, err
		}
		return i, nil
	}
	return m.AddString(t, name, value)
}

// SetStringValue replaces the value of string s in table t.
func (m *Model) SetStringValue(t, s int, value string) error {
	entry, err := m.stringAt(t, s)
	if err != nil {
		return err
	}
	raw, dataType, err := m.encodeStringValue(value)
	if err != nil {
		return err
	}
	entry.SetDataType(dataType)
	entry.SetValue(raw)
	return nil
}

// SetStringValueByName replaces the value of the string named name in
// table t.
func (m *Model) SetStringValueByName(t int, name, value string) error {
	i, err := m.IndexOfString(t, name)
	if err != nil {
		return err
	}
	if i < 0 {
		return fmt.Errorf("string %q: %w", name, ErrUnknownName)
	}
	return m.SetStringValue(t, i, value)
}

// DeleteString removes string s from table t.
func (m *Model) DeleteString(t, s int) error {
	table, err := m.stringTableAt(t)
	if err != nil {
		return err
	}
	if s < 0 || s >= table.ChildCount() {
		return fmt.Errorf("string %d of table %d: %w", s, t, ErrIndexOutOfBounds)
	}
	return table.RemoveChildAt(s)
}

// DeleteStringByName removes the string named name from table t.
func (m *Model) DeleteStringByName(t int, name string) error {
	i, err := m.IndexOfString(t, name)
	if err != nil {
		return err
	}
	if i < 0 {
		return fmt.Errorf("string %q: %w", name, ErrUnknownName)
	}
	return m.DeleteString(t, i)
}
