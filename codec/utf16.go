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

func readUnit16(b []byte, littleEndian bool) uint16 {
	if littleEndian {
		return uint16(b[0]) | uint16(b[1])<<8
	}
	return uint16(b[0])<<8 | uint16(b[1])
}

func writeUnit16(b []byte, v uint16, littleEndian bool) {
	if littleEndian {
		b[0], b[1] = byte(v), byte(v>>8)
		return
	}
	b[0], b[1] = byte(v>>8), byte(v)
}

// EncodeUTF16 encodes cp as one or two 16-bit units of the chosen
// endianness. useUCS2 rejects supplementary scalars instead of pairing
// them into surrogates.
func EncodeUTF16(c *cursor.Cursor, cp scalar.CodePoint, littleEndian, useUCS2 bool) (bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 1); f != 0 {
		return 0, f
	}
	if cp < 0 || cp > scalar.MaxUnicode {
		return 0, diag.Failed | diag.NotEncodable | diag.InvalidPoint | diag.NotEnoughBits
	}

	var f diag.Flags
	if scalar.IsNonCharacter(cp) {
		f |= diag.NonCharacter
	}

	switch {
	case scalar.IsSurrogate(cp):
		if scalar.IsHighSurrogate(cp) {
			f |= diag.HighSurrogate
		} else {
			f |= diag.LowSurrogate
		}
		f |= diag.IrregularForm
		if c.Remaining() < 2 {
			return 0, f | diag.Failed | diag.WriteOverflow
		}
		writeUnit16(c.Buffer[c.Offset:], uint16(cp), littleEndian)
		return 2, f

	case cp > 0xFFFF:
		f |= diag.Supplementary
		if useUCS2 {
			return 0, f | diag.Failed | diag.NotEnoughBits
		}
		if c.Remaining() < 4 {
			return 0, f | diag.Failed | diag.WriteOverflow
		}
		hi, lo := surrogatePairFor(cp)
		f |= diag.SurrogatePair
		writeUnit16(c.Buffer[c.Offset:], uint16(hi), littleEndian)
		writeUnit16(c.Buffer[c.Offset+2:], uint16(lo), littleEndian)
		return 4, f

	default:
		if c.Remaining() < 2 {
			return 0, f | diag.Failed | diag.WriteOverflow
		}
		writeUnit16(c.Buffer[c.Offset:], uint16(cp), littleEndian)
		return 2, f
	}
}

// DecodeUTF16 decodes one code point from one or two 16-bit units.
func DecodeUTF16(c *cursor.Cursor, littleEndian, useUCS2 bool) (cp scalar.CodePoint, bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 1); f != 0 {
		return 0, 0, f
	}
	if c.Remaining() == 0 {
		return 0, 0, diag.ReadExhausted
	}
	if c.Remaining() < 2 {
		return 0, c.Remaining(), diag.Failed | diag.NotDecodable | diag.ReadTruncated
	}
	rest := c.Rest()
	u0 := readUnit16(rest, littleEndian)
	cp = scalar.CodePoint(u0)
	bytes = 2

	switch {
	case scalar.IsHighSurrogate(cp):
		flags |= diag.HighSurrogate
		if useUCS2 {
			flags |= diag.IrregularForm
			return cp, bytes, flags
		}
		if uint32(len(rest)) < 4 {
			flags |= diag.TruncatedPair | diag.IrregularForm
			return cp, bytes, flags
		}
		u1 := readUnit16(rest[2:], littleEndian)
		lo := scalar.CodePoint(u1)
		if !scalar.IsLowSurrogate(lo) {
			flags |= diag.IrregularForm
			return cp, bytes, flags
		}
		v := uint32(0x10000) + (uint32(cp-scalar.SurrogateMin) << 10) + uint32(lo-scalar.SurrogateMid)
		cp = scalar.CodePoint(v)
		bytes = 4
		flags = diag.SurrogatePair | diag.Supplementary
		if scalar.IsNonCharacter(cp) {
			flags |= diag.NonCharacter
		}
	case scalar.IsLowSurrogate(cp):
		flags |= diag.LowSurrogate | diag.IrregularForm
	case scalar.IsNonCharacter(cp):
		flags |= diag.NonCharacter
	}
	return cp, bytes, flags
}
