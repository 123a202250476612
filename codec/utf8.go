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

// EncodeUTF8 encodes cp under the library's generalized UTF-8 model:
// standard 1-4 byte forms, Java modified-NUL, CESU-8 surrogate pairing for
// supplementary scalars, and 5/6-byte extended forms beyond U+10FFFF.
func EncodeUTF8(c *cursor.Cursor, cp scalar.CodePoint, useCesu, useJava bool) (bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 0); f != 0 {
		return 0, f
	}
	f := classifyUTF8Scalar(cp, useCesu, useJava)
	if f.Error() {
		return 0, f
	}

	cesuPair := useCesu && cp >= scalar.SupplementaryMin && cp <= scalar.MaxUnicode
	var want uint32
	switch {
	case f&diag.ModifiedUTF8 != 0:
		want = 2
	case cesuPair:
		want = 6
	default:
		want = LenUTF8(cp, false, false)
	}

	if c.Remaining() < want {
		return 0, f | diag.Failed | diag.WriteOverflow
	}
	buf := c.Buffer[c.Offset:]

	switch {
	case f&diag.ModifiedUTF8 != 0:
		buf[0], buf[1] = 0xC0, 0x80
	case cesuPair:
		hi, lo := surrogatePairFor(cp)
		encodeUTF8Surrogate3(buf[0:3], hi)
		encodeUTF8Surrogate3(buf[3:6], lo)
	default:
		switch want {
		case 1:
			buf[0] = byte(cp)
		case 2:
			buf[0] = 0xC0 | byte(cp>>6)
			buf[1] = 0x80 | byte(cp)&0x3F
		case 3:
			encodeUTF8Surrogate3(buf[:3], cp)
		case 4:
			buf[0] = 0xF0 | byte(cp>>18)
			buf[1] = 0x80 | byte(cp>>12)&0x3F
			buf[2] = 0x80 | byte(cp>>6)&0x3F
			buf[3] = 0x80 | byte(cp)&0x3F
		case 5:
			buf[0] = 0xF8 | byte(cp>>24)
			buf[1] = 0x80 | byte(cp>>18)&0x3F
			buf[2] = 0x80 | byte(cp>>12)&0x3F
			buf[3] = 0x80 | byte(cp>>6)&0x3F
			buf[4] = 0x80 | byte(cp)&0x3F
		case 6:
			buf[0] = 0xFC | byte(cp>>30)
			buf[1] = 0x80 | byte(cp>>24)&0x3F
			buf[2] = 0x80 | byte(cp>>18)&0x3F
			buf[3] = 0x80 | byte(cp>>12)&0x3F
			buf[4] = 0x80 | byte(cp>>6)&0x3F
			buf[5] = 0x80 | byte(cp)&0x3F
		}
	}
	return want, f
}

// surrogatePairFor computes the UTF-16 surrogate pair for a supplementary
// scalar in [0x10000, 0x10FFFF].
func surrogatePairFor(cp scalar.CodePoint) (hi, lo scalar.CodePoint) {
	v := uint32(cp) - 0x10000
	hi = scalar.CodePoint(0xD800 + (v >> 10))
	lo = scalar.CodePoint(0xDC00 + (v & 0x3FF))
	return
}

// encodeUTF8Surrogate3 writes the standard 3-byte UTF-8 encoding of a
// value in the surrogate range, used to build the two halves of a CESU-8
// supplementary pair.
func encodeUTF8Surrogate3(buf []byte, cp scalar.CodePoint) {
	buf[0] = 0xE0 | byte(cp>>12)
	buf[1] = 0x80 | byte(cp>>6)&0x3F
	buf[2] = 0x80 | byte(cp)&0x3F
}

// DecodeUTF8 decodes one code point under the library's generalized UTF-8
// model. strict rejects irregular forms, clamping to a single lead byte;
// coalesce merges consecutive invalid bytes into one reported run.
func DecodeUTF8(c *cursor.Cursor, useCesu, useJava, strict, coalesce bool) (cp scalar.CodePoint, bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 0); f != 0 {
		return 0, 0, f
	}
	rest := c.Rest()
	cp, bytes, flags = fetchUTF8(rest, coalesce)
	if flags&diag.ReadExhausted != 0 {
		return cp, bytes, flags
	}
	if flags.Error() {
		if strict && bytes > 1 {
			bytes = 1
		}
		return cp, bytes, flags
	}

	flags |= rangeOverlay(cp)

	if useCesu && scalar.IsHighSurrogate(cp) {
		lo, loN, loFlags := fetchUTF8(rest[bytes:], coalesce)
		if !loFlags.Error() && scalar.IsLowSurrogate(lo) {
			v := uint32(0x10000) + (uint32(cp-scalar.SurrogateMin) << 10) + uint32(lo-scalar.SurrogateMid)
			cp = scalar.CodePoint(v)
			bytes += loN
			flags &^= diag.HighSurrogate | diag.LowSurrogate | diag.NonCharacter
			flags |= loFlags.WarningsOnly()
			flags |= diag.SurrogatePair | diag.Supplementary
			if scalar.IsNonCharacter(cp) {
				flags |= diag.NonCharacter
			}
		} else {
			flags |= diag.TruncatedPair
		}
	}

	if flags&(diag.OverlongUTF8|diag.ExtendedUTF8|diag.ExtendedUCS4|diag.HighSurrogate|diag.LowSurrogate) != 0 ||
		(!useJava && flags&diag.ModifiedUTF8 != 0) {
		flags |= diag.IrregularForm
	}

	if cp == 0 {
		flags |= diag.DelimitString
	}

	if strict && flags&diag.IrregularForm != 0 {
		flags |= diag.Failed | diag.NotDecodable
		cp = scalar.CodePoint(rest[0])
		bytes = 1
	}

	return cp, bytes, flags
}
