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
	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
)

func writeConst(c *cursor.Cursor, alignMask uint32, bytes []byte) (uint32, diag.Flags) {
	if f := cursor.Check(c, alignMask); f != 0 {
		return 0, f
	}
	n := uint32(len(bytes))
	if c.Remaining() < n {
		return 0, diag.Failed | diag.WriteOverflow
	}
	copy(c.Buffer[c.Offset:], bytes)
	return n, 0
}

// EncodeUTF8BOM writes the 3-byte UTF-8 byte order mark EF BB BF.
func EncodeUTF8BOM(c *cursor.Cursor) (uint32, diag.Flags) {
	return writeConst(c, 0, []byte{0xEF, 0xBB, 0xBF})
}

// EncodeUTF16BOM writes the 2-byte UTF-16 BOM for the given endianness.
func EncodeUTF16BOM(c *cursor.Cursor, littleEndian bool) (uint32, diag.Flags) {
	if littleEndian {
		return writeConst(c, 1, []byte{0xFF, 0xFE})
	}
	return writeConst(c, 1, []byte{0xFE, 0xFF})
}

// EncodeUTF32BOM writes the 4-byte UTF-32 BOM for the given endianness.
func EncodeUTF32BOM(c *cursor.Cursor, littleEndian bool) (uint32, diag.Flags) {
	if littleEndian {
		return writeConst(c, 3, []byte{0xFF, 0xFE, 0x00, 0x00})
	}
	return writeConst(c, 3, []byte{0x00, 0x00, 0xFE, 0xFF})
}

// EncodeCP1252BOM is a no-op: CP1252 has no byte order mark.
func EncodeCP1252BOM(c *cursor.Cursor) (uint32, diag.Flags) {
	if f := cursor.Check(c, 0); f != 0 {
		return 0, f
	}
	return 0, 0
}

// EncodeUTF8NULL writes the single-byte UTF-8 NUL.
func EncodeUTF8NULL(c *cursor.Cursor) (uint32, diag.Flags) {
	return writeConst(c, 0, []byte{0x00})
}

// EncodeUTF16NULL writes the 2-byte UTF-16 NUL.
func EncodeUTF16NULL(c *cursor.Cursor) (uint32, diag.Flags) {
	return writeConst(c, 1, []byte{0x00, 0x00})
}

// EncodeUTF32NULL writes the 4-byte UTF-32 NUL.
func EncodeUTF32NULL(c *cursor.Cursor) (uint32, diag.Flags) {
	return writeConst(c, 3, []byte{0x00, 0x00, 0x00, 0x00})
}
