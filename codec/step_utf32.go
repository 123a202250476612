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
	"github.com/Icabod66/LibUTF/scalar"
)

// StepUTF32 advances the cursor forward by up to n code points.
func StepUTF32(c *cursor.Cursor, n uint32, littleEndian, useUCS4, useCesu bool) (codepoints uint32, flags diag.Flags) {
	for i := uint32(0); i < n; i++ {
		if c.Remaining() == 0 {
			flags |= diag.ReadExhausted
			break
		}
		_, bytes, f := DecodeUTF32(c, littleEndian, useUCS4, useCesu)
		flags |= f
		if bytes == 0 {
			break
		}
		c.Offset += bytes
		codepoints++
	}
	return codepoints, flags
}

// BackUTF32 steps the cursor backward by up to n code points, recognizing
// a CESU-32 surrogate pair written as two adjacent 32-bit units.
func BackUTF32(c *cursor.Cursor, n uint32, littleEndian, useUCS4, useCesu bool) (codepoints uint32, flags diag.Flags) {
	for i := uint32(0); i < n; i++ {
		if c.Offset < 4 {
			flags |= diag.ReadExhausted
			break
		}
		step := uint32(4)
		if useCesu && c.Offset >= 8 {
			lo := scalar.CodePoint(readUnit32(c.Buffer[c.Offset-4:c.Offset], littleEndian))
			hi := scalar.CodePoint(readUnit32(c.Buffer[c.Offset-8:c.Offset-4], littleEndian))
			if scalar.IsHighSurrogate(hi) && scalar.IsLowSurrogate(lo) {
				step = 8
			}
		}
		c.Offset -= step
		codepoints++
	}
	return codepoints, flags
}
