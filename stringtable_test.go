// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStringTableByTransRoundTripsLanguageAndCharset(t *testing.T) {
	m := New(DialectWide32)
	ti, err := m.AddStringTableByTrans(0x0409, 0x04B0)
	require.NoError(t, err)

	lang, err := m.StringTableLanguageID(ti)
	require.NoError(t, err)
	assert.EqualValues(t, 0x0409, lang)

	cs, err := m.StringTableCharset(ti)
	require.NoError(t, err)
	assert.EqualValues(t, 0x04B0, cs)
}

func TestIndexOfStringTableIsCaseInsensitive(t *testing.T) {
	m := New(DialectWide32)
	_, err := m.AddStringTable("080904B0")
	require.NoError(t, err)

	assert.Equal(t, 0, m.IndexOfStringTable("080904b0"))
	assert.Equal(t, -1, m.IndexOfStringTable("040904B0"))
}

func TestDeleteStringTable(t *testing.T) {
	m := New(DialectWide32)
	_, err := m.AddStringTable("080904B0")
	require.NoError(t, err)
	_, err = m.AddStringTable("040904B0")
	require.NoError(t, err)

	require.NoError(t, m.DeleteStringTable(0))
	assert.Equal(t, 1, m.StringTableCount())
	remaining, err := m.StringTableTransString(0)
	require.NoError(t, err)
	assert.Equal(t, "040904B0", remaining)

	assert.ErrorIs(t, m.DeleteStringTable(5), ErrIndexOutOfBounds)
}

func TestAddStringRejectsDuplicateName(t *testing.T) {
	m := New(DialectWide32)
	ti, err := m.AddStringTable("080904B0")
	require.NoError(t, err)

	_, err = m.AddString(ti, "CompanyName", "Acme")
	require.NoError(t, err)

	_, err = m.AddString(ti, "companyname", "Other")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestStringValueByNameUnknown(t *testing.T) {
	m := New(DialectWide32)
	ti, err := m.AddStringTable("080904B0")
	require.NoError(t, err)

	_, err = m.StringValueByName(ti, "Missing")
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestAddOrUpdateStringUpdatesInPlace(t *testing.T) {
	m := New(DialectWide32)
	ti, err := m.AddStringTable("080904B0")
	require.NoError(t, err)

	i0, err := m.AddOrUpdateString(ti, "FileVersion", "1.0.0.0")
	require.NoError(t, err)

	i1, err := m.AddOrUpdateString(ti, "FileVersion", "2.0.0.0")
	require.NoError(t, err)
	assert.Equal(t, i0, i1)

	v, err := m.StringValueByName(ti, "FileVersion")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0.0", v)

	n, err := m.StringCount(ti)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteStringByName(t *testing.T) {
	m := New(DialectWide32)
	ti, err := m.AddStringTable("080904B0")
	require.NoError(t, err)
	_, err = m.AddString(ti, "CompanyName", "Acme")
	require.NoError(t, err)

	require.NoError(t, m.DeleteStringByName(ti, "companyname"))
	n, err := m.StringCount(ti)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.ErrorIs(t, m.DeleteStringByName(ti, "CompanyName"), ErrUnknownName)
}

func TestAnsiDialectStringsAreBinaryTagged(t *testing.T) {
	m := New(DialectAnsi16)
	ti, err := m.AddStringTable("04090000")
	require.NoError(t, err)
	_, err = m.AddString(ti, "CompanyName", "Acme")
	require.NoError(t, err)

	entry, err := m.stringAt(ti, 0)
	require.NoError(t, err)
	assert.Equal(t, Binary, entry.DataType())
}

func TestWideDialectStringsAreTextTagged(t *testing.T) {
	m := New(DialectWide32)
	ti, err := m.AddStringTable("04090000")
	require.NoError(t, err)
	_, err = m.AddString(ti, "CompanyName", "Acme")
	require.NoError(t, err)

	entry, err := m.stringAt(ti, 0)
	require.NoError(t, err)
	assert.Equal(t, Text, entry.DataType())
}
