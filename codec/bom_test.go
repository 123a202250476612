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
)

func TestEncodeUTF8BOM(t *testing.T) {
	buf := make([]byte, 3)
	c := cursor.New(buf)
	n, f := EncodeUTF8BOM(c)
	assert.Equal(t, uint32(3), n)
	assert.Zero(t, f)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, buf)
}

func TestEncodeUTF16BOMBothEndian(t *testing.T) {
	buf := make([]byte, 2)
	c := cursor.New(buf)
	_, _ = EncodeUTF16BOM(c, true)
	assert.Equal(t, []byte{0xFF, 0xFE}, buf)

	c.Offset = 0
	_, _ = EncodeUTF16BOM(c, false)
	assert.Equal(t, []byte{0xFE, 0xFF}, buf)
}

func TestEncodeUTF32BOMBothEndian(t *testing.T) {
	buf := make([]byte, 4)
	c := cursor.New(buf)
	_, _ = EncodeUTF32BOM(c, true)
	assert.Equal(t, []byte{0xFF, 0xFE, 0x00, 0x00}, buf)

	c.Offset = 0
	_, _ = EncodeUTF32BOM(c, false)
	assert.Equal(t, []byte{0x00, 0x00, 0xFE, 0xFF}, buf)
}

func TestEncodeCP1252BOMIsNoOp(t *testing.T) {
	c := cursor.New([]byte{})
	n, f := EncodeCP1252BOM(c)
	assert.Equal(t, uint32(0), n)
	assert.Zero(t, f)
}

func TestEncodeNULLWriters(t *testing.T) {
	buf8 := make([]byte, 1)
	n, _ := EncodeUTF8NULL(cursor.New(buf8))
	assert.Equal(t, uint32(1), n)
	assert.Equal(t, []byte{0x00}, buf8)

	buf16 := make([]byte, 2)
	n, _ = EncodeUTF16NULL(cursor.New(buf16))
	assert.Equal(t, uint32(2), n)

	buf32 := make([]byte, 4)
	n, _ = EncodeUTF32NULL(cursor.New(buf32))
	assert.Equal(t, uint32(4), n)
}
