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

// Package overlong implements the bijection between overlong UTF-8
// (unicode, byte-length) pairs and a dense index space, for compact
// diagnostic logging.
package overlong

import "github.com/Icabod66/LibUTF/scalar"

type band struct {
	bytes     uint32
	unicodeLo scalar.CodePoint
	unicodeHi scalar.CodePoint
	indexLo   uint32
	size      uint32
}

var bands = [5]band{
	{bytes: 2, unicodeHi: 0x7F, indexLo: 0x0, size: 0x80},
	{bytes: 3, unicodeHi: 0x7FF, indexLo: 0x80, size: 0x800},
	{bytes: 4, unicodeHi: 0xFFFF, indexLo: 0x880, size: 0x10000},
	{bytes: 5, unicodeHi: 0x1FFFFF, indexLo: 0x10880, size: 0x200000},
	{bytes: 6, unicodeHi: 0x3FFFFFF, indexLo: 0x210880, size: 0x4000000},
}

// Total is the number of entries in the bijection.
const Total = 0x4210880

// ToIndex maps an overlong (unicode, bytes) pair to its dense index. ok is
// false when bytes is not in [2,6] or unicode exceeds that band's range.
func ToIndex(unicode scalar.CodePoint, bytes uint32) (index uint32, ok bool) {
	for _, b := range bands {
		if b.bytes != bytes {
			continue
		}
		if unicode < b.unicodeLo || unicode > b.unicodeHi {
			return 0, false
		}
		return b.indexLo + uint32(unicode-b.unicodeLo), true
	}
	return 0, false
}

// FromIndex is the inverse of ToIndex. ok is false when index is out of
// [0, Total).
func FromIndex(index uint32) (unicode scalar.CodePoint, bytes uint32, ok bool) {
	for _, b := range bands {
		if index < b.indexLo || index >= b.indexLo+b.size {
			continue
		}
		return b.unicodeLo + scalar.CodePoint(index-b.indexLo), b.bytes, true
	}
	return 0, 0, false
}
