// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import "errors"

// Errors holds the error taxonomy returned by this package. Every failure
// a caller can usefully branch on is one of these sentinels; wrapping
// functions attach positional context with fmt.Errorf("...: %w", ...) so
// errors.Is still matches against the sentinel below.
var (
	// ErrEmpty is returned when ReadFromStream is called against a
	// stream that has zero length.
	ErrEmpty = errors.New("vibin: empty stream")

	// ErrCorrupt is returned for any underlying I/O failure during
	// read/write, or any structural inconsistency found while parsing
	// (child bytes overflowing the parent, a string value missing its
	// NUL terminator before end of stream, and similar).
	ErrCorrupt = errors.New("vibin: corrupt version information")

	// ErrIndexOutOfBounds is returned by any enumeration accessor when
	// the supplied index falls outside [0, count).
	ErrIndexOutOfBounds = errors.New("vibin: index out of bounds")

	// ErrUnknownName is returned by a named lookup (delete/set/get by
	// name) when the name is not present in the target table.
	ErrUnknownName = errors.New("vibin: unknown name")

	// ErrDuplicateName is returned by AddString when a string with the
	// requested name already exists in the target table.
	ErrDuplicateName = errors.New("vibin: duplicate name")
)
