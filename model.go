// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import (
	"errors"
	"fmt"
)

// Required node names, case-insensitive per §6.2.
const (
	rootName           = "VS_VERSION_INFO"
	varFileInfoName    = "VarFileInfo"
	translationName    = "Translation"
	stringFileInfoName = "StringFileInfo"
)

// Model is the semantic overlay over a VarRec tree rooted at
// VS_VERSION_INFO. It enforces the presence of the required interior
// nodes and exposes typed operations on fixed file info, translations,
// string tables, and individual named strings.
type Model struct {
	dialect Dialect
	root    *VarRec
	logger  Logger
}

// New constructs an empty model in the given dialect. The required shape
// (VarFileInfo/Translation, StringFileInfo) is created with empty values;
// the fixed file info is left unset (GetFixedFileInfo reports a
// zero-stamped record until SetFixedFileInfo or Reset is called).
func New(dialect Dialect) *Model {
	m := &Model{dialect: dialect, logger: noopLogger{}}
	m.root = newVarRec(dialect, rootName, Binary, nil)
	m.ensureShape()
	return m
}

// SetLogger installs a non-default Logger for non-fatal diagnostics.
func (m *Model) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	m.logger = l
}

// Dialect returns the model's dialect.
func (m *Model) Dialect() Dialect { return m.dialect }

// ensureShape creates any missing canonical interior nodes. Called on
// construction, on Reset, and after every successful ReadFromStream.
func (m *Model) ensureShape() {
	m.root.SetName(rootName)
	varFileInfo := m.root.findOrCreateChild(varFileInfoName, Binary)
	varFileInfo.findOrCreateChild(translationName, Binary)
	m.root.findOrCreateChild(stringFileInfoName, Binary)
}

// Reset clears the root's children and writes a zeroed, stamped fixed
// file info, then recreates the required shape.
func (m *Model) Reset() {
	m.root.children = nil
	zero := FixedFileInfo{}
	stampFixedFileInfo(&zero)
	m.root.SetValue(zero.bytes())
	m.ensureShape()
}

func (m *Model) varFileInfoNode() *VarRec {
	n, _ := m.root.FindChild(varFileInfoName)
	return n
}

func (m *Model) translationNode() *VarRec {
	n, _ := m.varFileInfoNode().FindChild(translationName)
	return n
}

func (m *Model) stringFileInfoNode() *VarRec {
	n, _ := m.root.FindChild(stringFileInfoName)
	return n
}

// ReadFromStream replaces the model's tree by parsing s. On failure the
// model is left in its pre-call state.
func (m *Model) ReadFromStream(s Stream) error {
	size, err := s.Size()
	if err != nil {
		return fmt.Errorf("sizing stream: %w: %w", ErrCorrupt, err)
	}
	if size == 0 {
		return ErrEmpty
	}
	if err := s.Seek(0); err != nil {
		return fmt.Errorf("seeking to start: %w: %w", ErrCorrupt, err)
	}
	root, _, err := readVarRec(s, m.dialect, nil, m.logger)
	if err != nil {
		if !errors.Is(err, ErrCorrupt) {
			err = fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		return fmt.Errorf("parsing version info: %w", err)
	}
	m.root = root
	m.ensureShape()
	return nil
}

// WriteToStream serializes the model's tree to s starting at its current
// position, and leaves s positioned at the end of the written data.
func (m *Model) WriteToStream(s Stream) error {
	if _, err := m.root.WriteTo(s); err != nil {
		if !errors.Is(err, ErrCorrupt) {
			err = fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		return fmt.Errorf("writing version info: %w", err)
	}
	return nil
}

// Assign replaces the receiver's contents with a full copy of src: fixed
// file info, all translations in order, then all string tables and their
// strings in order. This is the dialect-conversion primitive: src and the
// receiver may be in different dialects, and each string is re-encoded in
// the receiver's own dialect as it is copied.
func (m *Model) Assign(src *Model) error {
	m.Reset()
	m.SetFixedFileInfo(src.GetFixedFileInfo())

	n := src.TranslationCount()
	for i := 0; i < n; i++ {
		lang, err := src.TranslationLanguageID(i)
		if err != nil {
			return err
		}
		cs, err := src.TranslationCharset(i)
		if err != nil {
			return err
		}
		if _, err := m.AddTranslation(lang, cs); err != nil {
			return err
		}
	}

	tableCount := src.StringTableCount()
	for t := 0; t < tableCount; t++ {
		transStr, err := src.StringTableTransString(t)
		if err != nil {
			return err
		}
		dstTable, err := m.AddStringTable(transStr)
		if err != nil {
			return err
		}
		stringCount, err := src.StringCount(t)
		if err != nil {
			return err
		}
		for s := 0; s < stringCount; s++ {
			name, err := src.StringName(t, s)
			if err != nil {
				return err
			}
			value, err := src.StringValue(t, s)
			if err != nil {
				return err
			}
			if _, err := m.AddString(dstTable, name, value); err != nil {
				return err
			}
		}
	}
	return nil
}
