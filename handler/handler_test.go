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

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
	"github.com/Icabod66/LibUTF/scalar"
	"github.com/Icabod66/LibUTF/variant"
)

func TestUnitSizes(t *testing.T) {
	assert.EqualValues(t, 1, New(variant.UTF8).UnitSize())
	assert.EqualValues(t, 2, New(variant.UTF16le).UnitSize())
	assert.EqualValues(t, 4, New(variant.UTF32be).UnitSize())
	assert.EqualValues(t, 1, New(variant.CP1252).UnitSize())
}

func TestReadWriteRoundTrip(t *testing.T) {
	h := New(variant.UTF8)
	buf := make([]byte, 8)
	c := cursor.New(buf)
	f := h.Write(c, scalar.CodePoint(0x20AC))
	assert.False(t, f.Failed())
	assert.EqualValues(t, 3, c.Offset)

	c.Offset = 0
	cp, f := h.Read(c)
	assert.Equal(t, scalar.CodePoint(0x20AC), cp)
	assert.False(t, f.Failed())
	assert.EqualValues(t, 3, c.Offset)
}

func TestSetNullUsesJavaModifiedFormWhenConfigured(t *testing.T) {
	h := New(variant.JUTF8)
	buf := make([]byte, 2)
	c := cursor.New(buf)
	n, f := h.SetNull(c)
	assert.EqualValues(t, 2, n)
	assert.False(t, f.Failed())
	assert.Equal(t, []byte{0xC0, 0x80}, buf)
}

func TestSetNullPlainUTF8(t *testing.T) {
	h := New(variant.UTF8)
	buf := make([]byte, 1)
	c := cursor.New(buf)
	n, _ := h.SetNull(c)
	assert.EqualValues(t, 1, n)
	assert.Equal(t, byte(0x00), buf[0])
}

func TestValidateFlagsOverlongRun(t *testing.T) {
	h := New(variant.UTF8)
	c := cursor.New([]byte{0xC0, 0xAF, 0x41})
	f := h.Validate(c)
	assert.True(t, f&diag.OverlongUTF8 != 0)
	assert.EqualValues(t, 0, c.Offset)
}

func TestValidateCleanBufferHasNoErrors(t *testing.T) {
	h := New(variant.UTF8)
	c := cursor.New([]byte("hello"))
	f := h.Validate(c)
	assert.False(t, f.Error())
}

func TestDefaultFallbackHandler(t *testing.T) {
	h := Default()
	assert.Equal(t, variant.JUTF8st, h.Variant)
	assert.True(t, h.Config.Strict)
	assert.True(t, h.Config.UseJava)
}

func TestLookupByNameAndVariant(t *testing.T) {
	assert.NotNil(t, LookupByName("CESU8"))
	assert.Nil(t, LookupByName("nonexistent"))
	assert.Equal(t, variant.CESU8, LookupByName("CESU8").Variant)
	assert.Equal(t, LookupByVariant(variant.UTF16le), LookupByName("UTF16le"))
}

func TestAllReturnsEveryVariant(t *testing.T) {
	assert.Len(t, All(), int(variant.Count))
}
