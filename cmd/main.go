// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "vibin",
		Short: "A VS_VERSIONINFO resource inspector and editor",
		Long:  "vibin reads, converts, and edits Windows VS_VERSIONINFO version resources.",
	}

	var dialectFlag string

	var dumpCmd = &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump a VS_VERSIONINFO blob as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], dialectFlag)
		},
	}
	dumpCmd.Flags().StringVar(&dialectFlag, "dialect", "wide32", "source dialect: ansi16 or wide32")

	var inDialectFlag, outDialectFlag string
	var convertCmd = &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a VS_VERSIONINFO blob between dialects",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1], inDialectFlag, outDialectFlag)
		},
	}
	convertCmd.Flags().StringVar(&inDialectFlag, "dialect", "ansi16", "source dialect: ansi16 or wide32")
	convertCmd.Flags().StringVar(&outDialectFlag, "to", "wide32", "destination dialect: ansi16 or wide32")

	var (
		setDialect string
		setTable   string
		setName    string
		setValue   string
	)
	var setCmd = &cobra.Command{
		Use:   "set <file>",
		Short: "Add or update a named string in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], setDialect, setTable, setName, setValue)
		},
	}
	setCmd.Flags().StringVar(&setDialect, "dialect", "wide32", "dialect: ansi16 or wide32")
	setCmd.Flags().StringVar(&setTable, "table", "", "8-hex-digit string table name, e.g. 040904B0")
	setCmd.Flags().StringVar(&setName, "name", "", "string name, e.g. FileDescription")
	setCmd.Flags().StringVar(&setValue, "value", "", "string value")
	setCmd.MarkFlagRequired("table")
	setCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(dumpCmd, convertCmd, setCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
