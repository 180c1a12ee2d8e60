// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package vibin reads, manipulates, and writes Windows VS_VERSIONINFO
// resources in their raw binary form.
//
// The on-disk layout is a recursive, variable-length record tree (VarRec)
// used by Windows to store application version metadata: fixed file info,
// translations, and localized string tables. Two dialects exist: a legacy
// 16-bit dialect with ANSI keys/strings, and a modern 32-bit dialect with
// UTF-16 keys/strings and an explicit type discriminator.
//
// Package vibin consumes and produces a single contiguous VS_VERSIONINFO
// byte blob through the Stream interface. It does not parse PE or .res
// containers; hosts that need to pull a VS_VERSIONINFO blob out of a PE
// resource directory are expected to locate the bytes themselves and hand
// them to ReadFromStream.
package vibin
