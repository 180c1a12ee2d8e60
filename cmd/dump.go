// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/saferwall/vibin"
)

func parseDialect(s string) (vibin.Dialect, error) {
	switch s {
	case "ansi16":
		return vibin.DialectAnsi16, nil
	case "wide32":
		return vibin.DialectWide32, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q, want ansi16 or wide32", s)
	}
}

type dumpTable struct {
	TransString string            `json:"trans_string"`
	Strings     map[string]string `json:"strings"`
}

type dumpOutput struct {
	FixedFileInfo vibin.FixedFileInfo `json:"fixed_file_info"`
	Translations  []string            `json:"translations"`
	StringTables  []dumpTable         `json:"string_tables"`
}

func loadModel(path string, dialect vibin.Dialect) (*vibin.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	m := vibin.New(dialect)
	if err := m.ReadFromStream(vibin.NewFileStream(f)); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

func runDump(path, dialectName string) error {
	dialect, err := parseDialect(dialectName)
	if err != nil {
		return err
	}
	m, err := loadModel(path, dialect)
	if err != nil {
		return err
	}

	out := dumpOutput{FixedFileInfo: m.GetFixedFileInfo()}

	for i := 0; i < m.TranslationCount(); i++ {
		s, err := m.TranslationString(i)
		if err != nil {
			return err
		}
		out.Translations = append(out.Translations, s)
	}

	for t := 0; t < m.StringTableCount(); t++ {
		transStr, err := m.StringTableTransString(t)
		if err != nil {
			return err
		}
		table := dumpTable{TransString: transStr, Strings: map[string]string{}}
		n, err := m.StringCount(t)
		if err != nil {
			return err
		}
		for s := 0; s < n; s++ {
			name, err := m.StringName(t, s)
			if err != nil {
				return err
			}
			value, err := m.StringValue(t, s)
			if err != nil {
				return err
			}
			table.Strings[name] = value
		}
		out.StringTables = append(out.StringTables, table)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "\t")
	return enc.Encode(out)
}
