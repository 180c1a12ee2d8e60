// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTranslationTreatsSentinelAsZero(t *testing.T) {
	m := New(DialectWide32)
	i, err := m.AddTranslation(unchangedSentinel, 0x04B0)
	require.NoError(t, err)

	lang, err := m.TranslationLanguageID(i)
	require.NoError(t, err)
	assert.EqualValues(t, 0, lang)
}

func TestSetTranslationSentinelLeavesHalfUnchanged(t *testing.T) {
	m := New(DialectWide32)
	i, err := m.AddTranslation(0x0409, 0x04B0)
	require.NoError(t, err)

	require.NoError(t, m.SetTranslation(i, unchangedSentinel, 0x0000))

	lang, err := m.TranslationLanguageID(i)
	require.NoError(t, err)
	assert.EqualValues(t, 0x0409, lang)

	cs, err := m.TranslationCharset(i)
	require.NoError(t, err)
	assert.EqualValues(t, 0x0000, cs)
}

func TestTranslationAtOutOfBounds(t *testing.T) {
	m := New(DialectWide32)
	_, err := m.TranslationLanguageID(0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	err = m.SetTranslation(0, 1, 1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	err = m.DeleteTranslation(0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestPackUnpackTranslationOrdersCharsetHigh(t *testing.T) {
	code := packTranslation(0x0409, 0x04B0)
	assert.Equal(t, uint32(0x04B00409), code)
	lang, cs := unpackTranslation(code)
	assert.EqualValues(t, 0x0409, lang)
	assert.EqualValues(t, 0x04B0, cs)
}
