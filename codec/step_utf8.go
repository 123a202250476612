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

// StepUTF8 advances the cursor forward by up to n code points, classifying
// bytes with the same DecodeUTF8 rules so byte consumption always matches
// what n successive decodes would have produced.
func StepUTF8(c *cursor.Cursor, n uint32, useCesu, useJava, strict, coalesce bool) (codepoints uint32, flags diag.Flags) {
	for i := uint32(0); i < n; i++ {
		if c.Remaining() == 0 {
			flags |= diag.ReadExhausted
			break
		}
		_, bytes, f := DecodeUTF8(c, useCesu, useJava, strict, coalesce)
		flags |= f
		if bytes == 0 {
			break
		}
		c.Offset += bytes
		codepoints++
	}
	return codepoints, flags
}

// BackUTF8 steps the cursor backward by up to n code points. It locates
// each preceding code point by scanning back over bytes that cannot start
// a new sequence, then re-decoding forward from each candidate start until
// one lands exactly on the current offset — guaranteeing the same byte
// count a forward decode from that position would report.
func BackUTF8(c *cursor.Cursor, n uint32, useCesu, useJava, strict, coalesce bool) (codepoints uint32, flags diag.Flags) {
	for i := uint32(0); i < n; i++ {
		if c.Offset == 0 {
			flags |= diag.ReadExhausted
			break
		}
		pos, f := backOneUTF8(c, useCesu, useJava, strict, coalesce)
		flags |= f
		c.Offset = pos
		codepoints++
	}
	return codepoints, flags
}

func backOneUTF8(c *cursor.Cursor, useCesu, useJava, strict, coalesce bool) (newOffset uint32, flags diag.Flags) {
	limit := c.Offset
	contStart := limit - 1
	for contStart > 0 && !isUTF8LeadOrASCII(c.Buffer[contStart]) {
		contStart--
	}
	for pos := contStart; pos < limit; pos++ {
		probe := &cursor.Cursor{Buffer: c.Buffer, Length: c.Length, Offset: pos}
		_, bytes, f := DecodeUTF8(probe, useCesu, useJava, strict, coalesce)
		if bytes > 0 && pos+bytes == limit {
			return pos, f
		}
	}
	return limit - 1, diag.Failed | diag.NotDecodable | diag.UnexpectedByte
}
