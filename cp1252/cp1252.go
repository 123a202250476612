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

// Package cp1252 implements the Windows-1252 C1-block translation table,
// grounded on the 8-bit charset tables in vitess's
// go/mysql/collations/internal/charset package (UnicodeMapping / 8bit.go).
package cp1252

import "github.com/Icabod66/LibUTF/scalar"

// Strictness selects how the five undefined C1 code points (0x81, 0x8D,
// 0x8F, 0x90, 0x9D) are handled.
type Strictness int

const (
	// WindowsCompatible maps undefined C1 bytes to their own byte value
	// (identity), matching what Windows itself does when asked to render
	// them.
	WindowsCompatible Strictness = iota
	// StrictUndefined rejects the five undefined C1 bytes/scalars outright.
	StrictUndefined
)

// translate is the 32-entry C1 (0x80-0x9F) to Unicode table. A zero entry
// marks one of the five undefined holes.
var translate = [32]uint16{
	0x20AC, 0, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0, 0x017D, 0,
	0, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0, 0x017E, 0x0178,
}

func isUndefinedByte(b byte) bool {
	switch b {
	case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
		return true
	default:
		return false
	}
}

// ToUnicode maps a CP1252 byte to its Unicode scalar. ok is false when the
// byte is one of the five undefined holes under StrictUndefined.
func ToUnicode(b byte, strict Strictness) (cp scalar.CodePoint, ok bool) {
	if b < 0x80 || b >= 0xA0 {
		return scalar.CodePoint(b), true
	}
	if isUndefinedByte(b) {
		if strict == StrictUndefined {
			return 0, false
		}
		return scalar.CodePoint(b), true
	}
	return scalar.CodePoint(translate[b-0x80]), true
}

// FromUnicode maps a Unicode scalar back to its CP1252 byte via the 27
// named reverse mappings plus identity for [0x00,0x7F] and [0xA0,0xFF].
func FromUnicode(cp scalar.CodePoint, strict Strictness) (b byte, ok bool) {
	if cp < 0 || cp > 0xFFFF {
		return 0, false
	}
	u := uint16(cp)
	if u < 0x80 || (u >= 0xA0 && u <= 0xFF) {
		return byte(u), true
	}
	switch u {
	case 0x20AC:
		return 0x80, true
	case 0x201A:
		return 0x82, true
	case 0x0192:
		return 0x83, true
	case 0x201E:
		return 0x84, true
	case 0x2026:
		return 0x85, true
	case 0x2020:
		return 0x86, true
	case 0x2021:
		return 0x87, true
	case 0x02C6:
		return 0x88, true
	case 0x2030:
		return 0x89, true
	case 0x0160:
		return 0x8A, true
	case 0x2039:
		return 0x8B, true
	case 0x0152:
		return 0x8C, true
	case 0x017D:
		return 0x8E, true
	case 0x2018:
		return 0x91, true
	case 0x2019:
		return 0x92, true
	case 0x201C:
		return 0x93, true
	case 0x201D:
		return 0x94, true
	case 0x2022:
		return 0x95, true
	case 0x2013:
		return 0x96, true
	case 0x2014:
		return 0x97, true
	case 0x02DC:
		return 0x98, true
	case 0x2122:
		return 0x99, true
	case 0x0161:
		return 0x9A, true
	case 0x203A:
		return 0x9B, true
	case 0x0153:
		return 0x9C, true
	case 0x017E:
		return 0x9E, true
	case 0x0178:
		return 0x9F, true
	}
	if strict != StrictUndefined && u >= 0x80 && u <= 0x9F && isUndefinedByte(byte(u)) {
		return byte(u), true
	}
	return 0, false
}
