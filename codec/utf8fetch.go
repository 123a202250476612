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
	"github.com/Icabod66/LibUTF/diag"
	"github.com/Icabod66/LibUTF/scalar"
)

// fetchUTF8 is the raw lead+continuation reader shared by DecodeUTF8 and
// the UTF-8 steppers. It classifies bytes only; CESU surrogate joining and
// strict-mode collapsing are layered above it by the caller.
func fetchUTF8(rest []byte, coalesce bool) (cp scalar.CodePoint, n uint32, flags diag.Flags) {
	if len(rest) == 0 {
		return 0, 0, diag.ReadExhausted
	}
	b0 := rest[0]

	if b0 <= 0x7F {
		return scalar.CodePoint(b0), 1, 0
	}

	if b0 <= 0xBF || b0 >= 0xFE {
		kind := diag.UnexpectedByte
		if b0 >= 0xFE {
			kind = diag.DisallowedByte
		}
		flags = diag.Failed | diag.NotDecodable | kind
		n = 1
		if coalesce {
			for n < uint32(len(rest)) && !isUTF8LeadOrASCII(rest[n]) {
				n++
			}
		}
		return scalar.CodePoint(b0), n, flags
	}

	var count uint32
	var extended bool
	switch {
	case b0 <= 0xDF:
		count = 2
	case b0 <= 0xEF:
		count = 3
	case b0 <= 0xF7:
		count = 4
	case b0 <= 0xFB:
		count = 5
		extended = true
	default: // 0xFC, 0xFD
		count = 6
		extended = true
	}

	avail := count
	if uint32(len(rest)) < count {
		avail = uint32(len(rest))
	}

	for i := uint32(1); i < avail; i++ {
		bi := rest[i]
		if bi < 0x80 || bi > 0xBF {
			kind := diag.UnexpectedByte
			if bi >= 0xFE {
				kind = diag.DisallowedByte
			}
			f := (diag.Failed | diag.NotDecodable | kind).WithByteIndex(i)
			return scalar.CodePoint(b0), i, f
		}
	}

	if avail < count {
		return scalar.CodePoint(b0), avail, diag.Failed | diag.NotDecodable | diag.ReadTruncated
	}

	var v uint32
	switch count {
	case 2:
		v = uint32(b0&0x1F)<<6 | uint32(rest[1]&0x3F)
	case 3:
		v = uint32(b0&0x0F)<<12 | uint32(rest[1]&0x3F)<<6 | uint32(rest[2]&0x3F)
	case 4:
		v = uint32(b0&0x07)<<18 | uint32(rest[1]&0x3F)<<12 | uint32(rest[2]&0x3F)<<6 | uint32(rest[3]&0x3F)
	case 5:
		v = uint32(b0&0x03)<<24 | uint32(rest[1]&0x3F)<<18 | uint32(rest[2]&0x3F)<<12 | uint32(rest[3]&0x3F)<<6 | uint32(rest[4]&0x3F)
	case 6:
		v = uint32(b0&0x01)<<30 | uint32(rest[1]&0x3F)<<24 | uint32(rest[2]&0x3F)<<18 | uint32(rest[3]&0x3F)<<12 | uint32(rest[4]&0x3F)<<6 | uint32(rest[5]&0x3F)
	}
	cp = scalar.CodePoint(v)
	if extended {
		flags |= diag.ExtendedUTF8
	}
	if LenUTF8(cp, false, false) < count {
		if cp == 0 && count == 2 {
			flags |= diag.ModifiedUTF8
		} else {
			flags |= diag.OverlongUTF8
		}
	}
	return cp, count, flags
}

// isUTF8LeadOrASCII reports whether b can start a new UTF-8 sequence (or
// stand alone as ASCII); used by fetchUTF8's coalescing scan.
func isUTF8LeadOrASCII(b byte) bool {
	return b <= 0x7F || (b >= 0xC0 && b <= 0xFD)
}

// classifyUTF8Scalar computes the encode-side diagnostic for cp, per the
// range rules shared by EncodeUTF8 and EncodeUTF8n.
func classifyUTF8Scalar(cp scalar.CodePoint, useCesu, useJava bool) diag.Flags {
	if cp < 0 {
		return diag.Failed | diag.NotEncodable | diag.InvalidPoint | diag.NotEnoughBits
	}
	var f diag.Flags
	if cp == 0 {
		if useJava {
			f |= diag.ModifiedUTF8
		} else {
			f |= diag.DelimitString
		}
	}
	if cp > scalar.MaxUnicode {
		f |= diag.ExtendedUCS4 | diag.IrregularForm
		if cp > 0x1FFFFF {
			f |= diag.ExtendedUTF8 | diag.IrregularForm
		}
	}
	if scalar.IsNonCharacter(cp) {
		f |= diag.NonCharacter
	}
	if cp > 0xFFFF {
		f |= diag.Supplementary
		if useCesu {
			f |= diag.SurrogatePair
		}
	}
	if scalar.IsHighSurrogate(cp) {
		f |= diag.HighSurrogate | diag.IrregularForm
	} else if scalar.IsLowSurrogate(cp) {
		f |= diag.LowSurrogate | diag.IrregularForm
	}
	return f
}

// rangeOverlay computes the decode-side range classification for an
// already-decoded scalar: the warning bits EncodeUTF8 would have computed
// from the same value, minus the cp==0 and error branches fetchUTF8 and
// DecodeUTF8 already handle themselves.
func rangeOverlay(cp scalar.CodePoint) diag.Flags {
	var f diag.Flags
	if cp > scalar.MaxUnicode {
		f |= diag.ExtendedUCS4
	}
	if scalar.IsNonCharacter(cp) {
		f |= diag.NonCharacter
	}
	if scalar.IsSupplementary(cp) {
		f |= diag.Supplementary
	}
	if scalar.IsHighSurrogate(cp) {
		f |= diag.HighSurrogate
	} else if scalar.IsLowSurrogate(cp) {
		f |= diag.LowSurrogate
	}
	return f
}
