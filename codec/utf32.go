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

func readUnit32(b []byte, littleEndian bool) uint32 {
	if littleEndian {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func writeUnit32(b []byte, v uint32, littleEndian bool) {
	if littleEndian {
		b[0], b[1], b[2], b[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		return
	}
	b[0], b[1], b[2], b[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
}

// EncodeUTF32 encodes cp as one 32-bit code unit, or two (CESU-32) when
// useCesu pairs a supplementary scalar into raw surrogate values.
func EncodeUTF32(c *cursor.Cursor, cp scalar.CodePoint, littleEndian, useUCS4, useCesu bool) (bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 3); f != 0 {
		return 0, f
	}
	if cp < 0 {
		return 0, diag.Failed | diag.NotEncodable | diag.InvalidPoint | diag.NotEnoughBits
	}

	var f diag.Flags
	if cp > scalar.MaxUnicode {
		f |= diag.ExtendedUCS4
		if !useUCS4 {
			f |= diag.IrregularForm
		}
	}
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
	case cp > 0xFFFF && cp <= scalar.MaxUnicode:
		f |= diag.Supplementary
	}

	cesuPair := useCesu && cp >= scalar.SupplementaryMin && cp <= scalar.MaxUnicode
	if cesuPair {
		f |= diag.SurrogatePair
	}

	want := uint32(4)
	if cesuPair {
		want = 8
	}
	if c.Remaining() < want {
		return 0, f | diag.Failed | diag.WriteOverflow
	}
	buf := c.Buffer[c.Offset:]
	if cesuPair {
		hi, lo := surrogatePairFor(cp)
		writeUnit32(buf[0:4], uint32(hi), littleEndian)
		writeUnit32(buf[4:8], uint32(lo), littleEndian)
	} else {
		writeUnit32(buf[0:4], uint32(cp), littleEndian)
	}
	return want, f
}

// DecodeUTF32 decodes one code point from one or two 32-bit code units.
func DecodeUTF32(c *cursor.Cursor, littleEndian, useUCS4, useCesu bool) (cp scalar.CodePoint, bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 3); f != 0 {
		return 0, 0, f
	}
	if c.Remaining() == 0 {
		return 0, 0, diag.ReadExhausted
	}
	if c.Remaining() < 4 {
		return 0, c.Remaining(), diag.Failed | diag.NotDecodable | diag.ReadTruncated
	}
	rest := c.Rest()
	v := readUnit32(rest, littleEndian)
	cp = scalar.CodePoint(v)
	bytes = 4

	if cp < 0 {
		return cp, bytes, diag.Failed | diag.NotDecodable | diag.InvalidPoint
	}
	if cp > scalar.MaxUnicode {
		flags |= diag.ExtendedUCS4
		if !useUCS4 {
			flags |= diag.IrregularForm
		}
	}
	if scalar.IsNonCharacter(cp) {
		flags |= diag.NonCharacter
	}

	switch {
	case scalar.IsHighSurrogate(cp):
		flags |= diag.HighSurrogate
		switch {
		case !useCesu:
			flags |= diag.IrregularForm
		case uint32(len(rest)) < 8:
			flags |= diag.TruncatedPair | diag.IrregularForm
		default:
			lo := scalar.CodePoint(readUnit32(rest[4:], littleEndian))
			if !scalar.IsLowSurrogate(lo) {
				flags |= diag.IrregularForm
				break
			}
			val := uint32(0x10000) + (uint32(cp-scalar.SurrogateMin) << 10) + uint32(lo-scalar.SurrogateMid)
			cp = scalar.CodePoint(val)
			bytes = 8
			flags = diag.SurrogatePair | diag.Supplementary
			if scalar.IsNonCharacter(cp) {
				flags |= diag.NonCharacter
			}
		}
	case scalar.IsLowSurrogate(cp):
		flags |= diag.LowSurrogate | diag.IrregularForm
	case cp > 0xFFFF && cp <= scalar.MaxUnicode:
		flags |= diag.Supplementary
	}
	return cp, bytes, flags
}
