/*
Copyright 2021 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handler

import (
	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
)

// Transcode reads every code point from sc using src and re-encodes it
// into dc using dst, stopping at the first source read failure, the first
// destination write failure, or source exhaustion. It returns the number
// of code points copied and the bitwise OR of every diagnostic raised
// along the way.
//
// A code point unencodable in dst (flags.Failed() on the Set side) halts
// the copy rather than silently dropping it or substituting U+FFFD — a
// caller wanting replacement-character behavior should pre-filter sc with
// src.Validate and UseReplacementCharacter before calling Transcode.
func Transcode(dst *Handler, dc *cursor.Cursor, src *Handler, sc *cursor.Cursor) (codepoints uint32, flags diag.Flags) {
	for sc.Remaining() > 0 {
		cp, getBytes, getFlags := src.Get(sc)
		flags |= getFlags
		if getBytes == 0 {
			break
		}
		sc.Offset += getBytes
		if getFlags.Failed() {
			break
		}

		setBytes, setFlags := dst.Set(dc, cp)
		flags |= setFlags
		if setBytes == 0 || setFlags.Failed() {
			break
		}
		dc.Offset += setBytes
		codepoints++
	}
	return codepoints, flags
}
