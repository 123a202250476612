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
	"github.com/Icabod66/LibUTF/scalar"
	"github.com/Icabod66/LibUTF/variant"
)

func TestGetNLFFoldsCRLFPair(t *testing.T) {
	h := New(variant.UTF8)
	c := cursor.New([]byte{0x0D, 0x0A, 'x'})
	cp, bytes, f := h.GetNLF(c)
	assert.Equal(t, scalar.CodePoint(0x0A), cp)
	assert.EqualValues(t, 2, bytes)
	assert.False(t, f.Failed())
}

func TestGetLineStopsAtNLF(t *testing.T) {
	h := New(variant.UTF8)
	c := cursor.New([]byte("abc\ndef"))
	line, bytes, f := h.GetLine(c)
	assert.False(t, f.Failed())
	assert.Equal(t, []byte("abc"), line.Buffer[line.Offset:line.Length])
	assert.EqualValues(t, 4, bytes)
}

func TestGetLineStopsAtNUL(t *testing.T) {
	h := New(variant.UTF8)
	c := cursor.New([]byte{'a', 'b', 0x00, 'c', 'd'})
	line, bytes, f := h.GetLine(c)
	assert.False(t, f.Failed())
	assert.Equal(t, []byte("ab"), line.Buffer[line.Offset:line.Length])
	assert.EqualValues(t, 3, bytes)
}

func TestReadLineAdvancesPastNULTerminator(t *testing.T) {
	h := New(variant.UTF8)
	c := cursor.New([]byte{'a', 'b', 0x00, 'c', 'd'})
	line, f := h.ReadLine(c)
	assert.False(t, f.Failed())
	assert.Equal(t, []byte("ab"), line.Buffer[line.Offset:line.Length])
	assert.EqualValues(t, 3, c.Offset)
}

func TestGetLineRunsToEndOfBufferWithNoTerminator(t *testing.T) {
	h := New(variant.UTF8)
	c := cursor.New([]byte("nolf"))
	line, bytes, f := h.GetLine(c)
	assert.False(t, f.Failed())
	assert.Equal(t, []byte("nolf"), line.Buffer[line.Offset:line.Length])
	assert.EqualValues(t, 4, bytes)
}
