// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/saferwall/vibin"
)

func runConvert(inPath, outPath, srcDialectName, dstDialectName string) error {
	srcDialect, err := parseDialect(srcDialectName)
	if err != nil {
		return err
	}
	dstDialect, err := parseDialect(dstDialectName)
	if err != nil {
		return err
	}

	src, err := loadModel(inPath, srcDialect)
	if err != nil {
		return err
	}

	dst := vibin.New(dstDialect)
	if err := dst.Assign(src); err != nil {
		return fmt.Errorf("converting %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if err := dst.WriteToStream(vibin.NewFileStream(out)); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
