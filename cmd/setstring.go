// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/saferwall/vibin"
)

func runSet(path, dialectName, table, name, value string) error {
	dialect, err := parseDialect(dialectName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	m := vibin.New(dialect)
	if err := m.ReadFromStream(vibin.NewByteStream(data)); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	ti := m.IndexOfStringTable(table)
	if ti < 0 {
		ti, err = m.AddStringTable(table)
		if err != nil {
			return err
		}
	}
	if _, err := m.AddOrUpdateString(ti, name, value); err != nil {
		return fmt.Errorf("setting %s/%s: %w", table, name, err)
	}

	out := vibin.NewByteStream(nil)
	if err := m.WriteToStream(out); err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}

	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
