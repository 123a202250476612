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

package codec

import (
	"github.com/Icabod66/LibUTF/cp1252"
	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
	"github.com/Icabod66/LibUTF/scalar"
)

// EncodeCP1252 writes cp as a single CP1252 byte via the reverse C1 map.
func EncodeCP1252(c *cursor.Cursor, cp scalar.CodePoint, strict cp1252.Strictness) (bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 0); f != 0 {
		return 0, f
	}
	b, ok := cp1252.FromUnicode(cp, strict)
	if !ok {
		return 0, diag.Failed | diag.NotEncodable
	}
	if c.Remaining() < 1 {
		return 0, diag.Failed | diag.WriteOverflow
	}
	c.Buffer[c.Offset] = b
	return 1, 0
}

// DecodeCP1252 reads a single CP1252 byte via the C1 translation table.
func DecodeCP1252(c *cursor.Cursor, strict cp1252.Strictness) (cp scalar.CodePoint, bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 0); f != 0 {
		return 0, 0, f
	}
	if c.Remaining() == 0 {
		return 0, 0, diag.ReadExhausted
	}
	b := c.Buffer[c.Offset]
	mapped, ok := cp1252.ToUnicode(b, strict)
	if !ok {
		return scalar.CodePoint(b), 1, diag.Failed | diag.NotDecodable | diag.DisallowedByte
	}
	return mapped, 1, 0
}
