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

// EncodeUTF8n encodes cp using a caller-chosen byte length in [1,6],
// producing an overlong form when length exceeds the value's natural
// length, or failing when length is too small to hold it.
func EncodeUTF8n(c *cursor.Cursor, cp scalar.CodePoint, length uint32, useJava bool) (bytes uint32, flags diag.Flags) {
	if f := cursor.Check(c, 0); f != 0 {
		return 0, f
	}
	if length < 1 || length > 6 {
		return 0, diag.Failed | diag.NotEncodable | diag.BadSizeUTF8
	}
	if cp < 0 {
		return 0, diag.Failed | diag.NotEncodable | diag.InvalidPoint | diag.NotEnoughBits
	}

	f := classifyUTF8Scalar(cp, false, useJava) &^ (diag.ModifiedUTF8 | diag.DelimitString)
	natural := LenUTF8(cp, false, false)

	switch {
	case cp == 0 && length == 2:
		f |= diag.ModifiedUTF8
		if !useJava {
			f |= diag.IrregularForm
		}
	case cp == 0:
		if length > 1 {
			f |= diag.OverlongUTF8 | diag.IrregularForm
		}
	case length < natural:
		return 0, f | diag.Failed | diag.NotEncodable | diag.NotEnoughBits
	case length > natural:
		f |= diag.OverlongUTF8 | diag.IrregularForm
	}

	if c.Remaining() < length {
		return 0, f | diag.Failed | diag.WriteOverflow
	}
	encodeUTF8AtLength(c.Buffer[c.Offset:], cp, length)
	return length, f
}

// encodeUTF8AtLength writes cp using exactly n bytes of UTF-8-shaped
// output (1 <= n <= 6), regardless of whether n is cp's natural length.
func encodeUTF8AtLength(buf []byte, cp scalar.CodePoint, n uint32) {
	if n == 1 {
		buf[0] = byte(cp)
		return
	}
	leadPayloadBits := 7 - n
	contBits := 6 * (n - 1)
	leadPrefix := byte(0xFF << (8 - n))
	buf[0] = leadPrefix | byte(uint32(cp)>>contBits)&((1<<leadPayloadBits)-1)
	for i := uint32(1); i < n; i++ {
		shift := contBits - 6*i
		buf[i] = 0x80 | byte(uint32(cp)>>shift)&0x3F
	}
}
