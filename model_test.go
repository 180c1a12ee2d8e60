// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasRequiredShape(t *testing.T) {
	m := New(DialectWide32)
	assert.Equal(t, rootName, m.root.Name())

	varFileInfo, ok := m.root.FindChild(varFileInfoName)
	require.True(t, ok)
	_, ok = varFileInfo.FindChild(translationName)
	assert.True(t, ok)

	_, ok = m.root.FindChild(stringFileInfoName)
	assert.True(t, ok)

	assert.Equal(t, 0, m.TranslationCount())
	assert.Equal(t, 0, m.StringTableCount())
}

func TestResetPreservesShapeAndStampsFixedFileInfo(t *testing.T) {
	m := New(DialectAnsi16)
	_, err := m.AddTranslation(0x0409, 0x04E4)
	require.NoError(t, err)

	m.Reset()

	assert.Equal(t, 0, m.TranslationCount())
	assert.Equal(t, 0, m.StringTableCount())

	f := m.GetFixedFileInfo()
	assert.Equal(t, uint32(0xFEEF04BD), f.Signature)
	assert.Equal(t, uint32(0x00010000), f.StructVersion)
}

func TestSetAndGetFixedFileInfoStampsSignature(t *testing.T) {
	m := New(DialectWide32)
	m.SetFixedFileInfo(FixedFileInfo{
		Signature:     0, // caller-supplied garbage must be overwritten
		StructVersion: 0,
		FileVersionMS: 0x00040000,
		FileVersionLS: 0x00000001,
	})

	f := m.GetFixedFileInfo()
	assert.Equal(t, uint32(0xFEEF04BD), f.Signature)
	assert.Equal(t, uint32(0x00010000), f.StructVersion)
	assert.Equal(t, uint32(0x00040000), f.FileVersionMS)
	assert.Equal(t, uint32(0x00000001), f.FileVersionLS)
}

func TestGetFixedFileInfoOnEmptyModelIsStampedZero(t *testing.T) {
	m := New(DialectWide32)
	f := m.GetFixedFileInfo()
	assert.Equal(t, uint32(0xFEEF04BD), f.Signature)
	assert.Equal(t, uint32(0x00010000), f.StructVersion)
	assert.Zero(t, f.FileVersionMS)
}

func TestDialectIsImmutableAfterConstruction(t *testing.T) {
	m := New(DialectAnsi16)
	assert.Equal(t, DialectAnsi16, m.Dialect())
	m2 := New(DialectWide32)
	assert.Equal(t, DialectWide32, m2.Dialect())
}

func TestSetLoggerAcceptsNil(t *testing.T) {
	m := New(DialectWide32)
	m.SetLogger(nil)
	assert.Equal(t, noopLogger{}, m.logger)
}
