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

func TestEncodeDecodeUTF32RoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	c := cursor.New(buf)
	n, f := EncodeUTF32(c, scalar.CodePoint(0x10000), false, false, false)
	assert.Equal(t, uint32(4), n)
	assert.Equal(t, diag.Supplementary, f)
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x00}, buf)

	c.Offset = 0
	cp, n, f := DecodeUTF32(c, false, false, false)
	assert.Equal(t, scalar.CodePoint(0x10000), cp)
	assert.Equal(t, uint32(4), n)
	assert.Equal(t, diag.Supplementary, f)
}

func TestEncodeUTF32CesuPairing(t *testing.T) {
	buf := make([]byte, 8)
	c := cursor.New(buf)
	n, f := EncodeUTF32(c, scalar.CodePoint(0x1F600), true, false, true)
	assert.Equal(t, uint32(8), n)
	assert.True(t, f&diag.SurrogatePair != 0)

	c.Offset = 0
	cp, n, f := DecodeUTF32(c, true, false, true)
	assert.Equal(t, scalar.CodePoint(0x1F600), cp)
	assert.Equal(t, uint32(8), n)
	assert.Equal(t, diag.SurrogatePair|diag.Supplementary, f)
}

func TestDecodeUTF32Truncated(t *testing.T) {
	c := cursor.New([]byte{0x00, 0x01})
	_, n, f := DecodeUTF32(c, false, false, false)
	assert.Equal(t, uint32(2), n)
	assert.True(t, f&diag.ReadTruncated != 0)
}

func TestDecodeUTF32ExtendedUCS4(t *testing.T) {
	buf := []byte{0x00, 0x20, 0x00, 0x00} // big-endian 0x00200000 > MaxUnicode
	c := cursor.New(buf)
	cp, n, f := DecodeUTF32(c, false, false, false)
	assert.Equal(t, scalar.CodePoint(0x00200000), cp)
	assert.Equal(t, uint32(4), n)
	assert.True(t, f&diag.ExtendedUCS4 != 0)
	assert.True(t, f&diag.IrregularForm != 0)
}
