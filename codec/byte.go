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

// Package codec implements the per-code-point encode/decode functions for
// every variant family: BYTE, UTF-8 (including the fixed-length and CESU
// forms), UTF-16, UTF-32 and CP1252. Every function here is a pure
// function over a caller-owned cursor.Cursor: no allocation, no I/O.
package codec

import (
	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
	"github.com/Icabod66/LibUTF/scalar"
)

// EncodeBYTE writes cp as a single raw byte. cp must fit in [0,0xFF].
func EncodeBYTE(c *cursor.Cursor, cp scalar.CodePoint) (bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 0); f != 0 {
		return 0, f
	}
	if cp < 0 || cp > 0xFF {
		return 0, diag.Failed | diag.NotEncodable | diag.NotEnoughBits
	}
	if c.Offset >= c.Length {
		return 0, diag.Failed | diag.WriteOverflow
	}
	c.Buffer[c.Offset] = byte(cp)
	return 1, 0
}

// DecodeBYTE reads a single raw byte. With useASCII, bytes >= 0x80 are
// reported as DisallowedByte but still returned as the decoded scalar.
func DecodeBYTE(c *cursor.Cursor, useASCII bool) (cp scalar.CodePoint, bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 0); f != 0 {
		return 0, 0, f
	}
	if c.Remaining() == 0 {
		return 0, 0, diag.ReadExhausted
	}
	b := c.Buffer[c.Offset]
	cp = scalar.CodePoint(b)
	if useASCII && b >= 0x80 {
		return cp, 1, diag.Failed | diag.NotDecodable | diag.DisallowedByte
	}
	return cp, 1, 0
}
