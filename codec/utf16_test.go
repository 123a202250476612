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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
	"github.com/Icabod66/LibUTF/scalar"
)

func TestEncodeUTF16SupplementaryLittleEndian(t *testing.T) {
	buf := make([]byte, 4)
	c := cursor.New(buf)
	n, f := EncodeUTF16(c, scalar.CodePoint(0x10000), true, false)
	assert.Equal(t, uint32(4), n)
	assert.Equal(t, []byte{0x00, 0xD8, 0x00, 0xDC}, buf)
	assert.True(t, f&diag.Supplementary != 0)
	assert.True(t, f&diag.SurrogatePair != 0)
	assert.False(t, f.Failed())
}

func TestDecodeUTF16SupplementaryLittleEndian(t *testing.T) {
	c := cursor.New([]byte{0x00, 0xD8, 0x00, 0xDC})
	cp, n, f := DecodeUTF16(c, true, false)
	assert.Equal(t, scalar.CodePoint(0x10000), cp)
	assert.Equal(t, uint32(4), n)
	assert.Equal(t, diag.SurrogatePair|diag.Supplementary, f)
}

func TestEncodeUTF16UCS2RejectsSupplementary(t *testing.T) {
	buf := make([]byte, 4)
	c := cursor.New(buf)
	n, f := EncodeUTF16(c, scalar.CodePoint(0x10000), true, true)
	assert.Equal(t, uint32(0), n)
	assert.True(t, f.Failed())
	assert.True(t, f&diag.NotEnoughBits != 0)
}

func TestDecodeUTF16LoneHighSurrogateUCS2(t *testing.T) {
	c := cursor.New([]byte{0x00, 0xD8})
	cp, n, f := DecodeUTF16(c, true, true)
	assert.Equal(t, scalar.CodePoint(0xD800), cp)
	assert.Equal(t, uint32(2), n)
	assert.True(t, f&diag.HighSurrogate != 0)
	assert.True(t, f&diag.IrregularForm != 0)
}

func TestStepBackUTF16SurrogatePair(t *testing.T) {
	data := []byte{0x41, 0x00, 0x00, 0xD8, 0x00, 0xDC}
	c := cursor.New(data)
	c.Offset = 2
	cps, _ := StepUTF16(c, 1, true, false)
	assert.Equal(t, uint32(1), cps)
	assert.Equal(t, uint32(len(data)), c.Offset)

	back, _ := BackUTF16(c, 1, true, false)
	assert.Equal(t, uint32(1), back)
	assert.Equal(t, uint32(2), c.Offset)
}
