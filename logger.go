// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

// Logger receives non-fatal diagnostics the codec tolerates by design,
// such as a producer-quirky wValueLength being recovered from the
// NUL-terminator scan rather than trusted outright. Genuine format
// violations are never routed through here — they are returned as errors.
type Logger interface {
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warnf(string, ...any) {}
