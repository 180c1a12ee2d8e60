// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteStreamReadWrite(t *testing.T) {
	s := NewByteStream(nil)
	require.NoError(t, s.WriteExact([]byte{1, 2, 3, 4}))
	pos, err := s.Pos()
	require.NoError(t, err)
	assert.EqualValues(t, 4, pos)

	require.NoError(t, s.Seek(0))
	b, err := s.ReadExact(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	size, err := s.Size()
	require.NoError(t, err)
	assert.EqualValues(t, 4, size)
}

func TestByteStreamReadPastEndFails(t *testing.T) {
	s := NewByteStream([]byte{1, 2})
	_, err := s.ReadExact(3)
	assert.Error(t, err)
}

func TestByteStreamWriteGrows(t *testing.T) {
	s := NewByteStream([]byte{1, 2, 3, 4})
	require.NoError(t, s.Seek(2))
	require.NoError(t, s.WriteExact([]byte{9, 9, 9, 9}))
	assert.Equal(t, []byte{1, 2, 9, 9, 9, 9}, s.Bytes())
}
