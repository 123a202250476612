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

// Package handler exposes a uniform Handler over every Variant, wrapping
// the family-specific codec functions behind one get/set/step/back/read/
// write contract, plus a name/id registry and line-oriented helpers built
// on top of it.
package handler

import (
	"github.com/Icabod66/LibUTF/codec"
	"github.com/Icabod66/LibUTF/cp1252"
	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
	"github.com/Icabod66/LibUTF/scalar"
	"github.com/Icabod66/LibUTF/variant"
)

// Handler binds a Variant to its resolved Config and dispatches the
// uniform contract to the matching family of codec functions.
type Handler struct {
	Variant variant.Variant
	Config  variant.Config
}

// New builds the Handler for v.
func New(v variant.Variant) *Handler {
	return &Handler{Variant: v, Config: variant.ConfigOf(v)}
}

func (h *Handler) isCP1252() bool {
	return h.Variant == variant.CP1252 || h.Variant == variant.CP1252ns || h.Variant == variant.CP1252st
}

func (h *Handler) cp1252Strictness() cp1252.Strictness {
	if h.Variant == variant.CP1252st {
		return cp1252.StrictUndefined
	}
	return cp1252.WindowsCompatible
}

// UnitSize returns the fixed code-unit width in bytes: 2 for UTF-16, 4 for
// UTF-32, 1 otherwise.
func (h *Handler) UnitSize() uint32 {
	switch h.Config.Family {
	case variant.UTF16Family:
		return 2
	case variant.UTF32Family:
		return 4
	default:
		return 1
	}
}

// Len returns the byte count Set would use to encode cp.
func (h *Handler) Len(cp scalar.CodePoint) uint32 {
	switch h.Config.Family {
	case variant.UTF8Family:
		return codec.LenUTF8(cp, h.Config.UseCesu, h.Config.UseJava)
	case variant.UTF16Family:
		if cp < 0 || cp > scalar.MaxUnicode {
			return 0
		}
		if cp > 0xFFFF {
			if h.Config.UseUCS2 {
				return 0
			}
			return 4
		}
		return 2
	case variant.UTF32Family:
		if cp < 0 {
			return 0
		}
		if h.Config.UseCesu && cp >= scalar.SupplementaryMin && cp <= scalar.MaxUnicode {
			return 8
		}
		return 4
	default:
		return 1
	}
}

// LenBOM returns the byte length of this variant's byte order mark, 0 if
// it has none.
func (h *Handler) LenBOM() uint32 {
	switch h.Config.Family {
	case variant.UTF8Family:
		return 3
	case variant.UTF16Family:
		return 2
	case variant.UTF32Family:
		return 4
	default:
		return 0
	}
}

// LenNull returns the byte length of this variant's string terminator.
func (h *Handler) LenNull() uint32 {
	switch h.Config.Family {
	case variant.UTF8Family:
		if h.Config.UseJava {
			return 2
		}
		return 1
	case variant.UTF16Family:
		return 2
	case variant.UTF32Family:
		return 4
	default:
		return 1
	}
}

// Get decodes one code point without advancing c.Offset.
func (h *Handler) Get(c *cursor.Cursor) (cp scalar.CodePoint, bytes uint32, flags diag.Flags) {
	switch h.Config.Family {
	case variant.UTF8Family:
		return codec.DecodeUTF8(c, h.Config.UseCesu, h.Config.UseJava, h.Config.Strict, h.Config.Coalesce)
	case variant.UTF16Family:
		return codec.DecodeUTF16(c, h.Config.LittleEndian, h.Config.UseUCS2)
	case variant.UTF32Family:
		return codec.DecodeUTF32(c, h.Config.LittleEndian, h.Config.UseUCS4, h.Config.UseCesu)
	default:
		if h.isCP1252() {
			return codec.DecodeCP1252(c, h.cp1252Strictness())
		}
		return codec.DecodeBYTE(c, h.Config.UseASCII)
	}
}

// Set encodes cp without advancing c.Offset.
func (h *Handler) Set(c *cursor.Cursor, cp scalar.CodePoint) (bytes uint32, flags diag.Flags) {
	switch h.Config.Family {
	case variant.UTF8Family:
		return codec.EncodeUTF8(c, cp, h.Config.UseCesu, h.Config.UseJava)
	case variant.UTF16Family:
		return codec.EncodeUTF16(c, cp, h.Config.LittleEndian, h.Config.UseUCS2)
	case variant.UTF32Family:
		return codec.EncodeUTF32(c, cp, h.Config.LittleEndian, h.Config.UseUCS4, h.Config.UseCesu)
	default:
		if h.isCP1252() {
			return codec.EncodeCP1252(c, cp, h.cp1252Strictness())
		}
		return codec.EncodeBYTE(c, cp)
	}
}

// SetBOM writes this variant's byte order mark, or does nothing for
// variants with none.
func (h *Handler) SetBOM(c *cursor.Cursor) (bytes uint32, flags diag.Flags) {
	switch h.Config.Family {
	case variant.UTF8Family:
		return codec.EncodeUTF8BOM(c)
	case variant.UTF16Family:
		return codec.EncodeUTF16BOM(c, h.Config.LittleEndian)
	case variant.UTF32Family:
		return codec.EncodeUTF32BOM(c, h.Config.LittleEndian)
	default:
		return codec.EncodeCP1252BOM(c)
	}
}

// SetNull writes this variant's string terminator: a Java modified-NUL
// pair for the Java UTF-8 variants, one or more zero units otherwise.
func (h *Handler) SetNull(c *cursor.Cursor) (bytes uint32, flags diag.Flags) {
	switch h.Config.Family {
	case variant.UTF8Family:
		return codec.EncodeUTF8(c, 0, h.Config.UseCesu, h.Config.UseJava)
	case variant.UTF16Family:
		return codec.EncodeUTF16NULL(c)
	case variant.UTF32Family:
		return codec.EncodeUTF32NULL(c)
	default:
		return codec.EncodeUTF8NULL(c)
	}
}

// Step advances c forward by up to n code points.
func (h *Handler) Step(c *cursor.Cursor, n uint32) (codepoints uint32, flags diag.Flags) {
	switch h.Config.Family {
	case variant.UTF8Family:
		return codec.StepUTF8(c, n, h.Config.UseCesu, h.Config.UseJava, h.Config.Strict, h.Config.Coalesce)
	case variant.UTF16Family:
		return codec.StepUTF16(c, n, h.Config.LittleEndian, h.Config.UseUCS2)
	case variant.UTF32Family:
		return codec.StepUTF32(c, n, h.Config.LittleEndian, h.Config.UseUCS4, h.Config.UseCesu)
	default:
		if h.isCP1252() {
			return codec.StepCP1252(c, n)
		}
		return codec.StepBYTE(c, n, h.Config.UseASCII, h.Config.Coalesce)
	}
}

// Back steps c backward by up to n code points.
func (h *Handler) Back(c *cursor.Cursor, n uint32) (codepoints uint32, flags diag.Flags) {
	switch h.Config.Family {
	case variant.UTF8Family:
		return codec.BackUTF8(c, n, h.Config.UseCesu, h.Config.UseJava, h.Config.Strict, h.Config.Coalesce)
	case variant.UTF16Family:
		return codec.BackUTF16(c, n, h.Config.LittleEndian, h.Config.UseUCS2)
	case variant.UTF32Family:
		return codec.BackUTF32(c, n, h.Config.LittleEndian, h.Config.UseUCS4, h.Config.UseCesu)
	default:
		if h.isCP1252() {
			return codec.BackCP1252(c, n)
		}
		return codec.BackBYTE(c, n, h.Config.UseASCII, h.Config.Coalesce)
	}
}

// Read decodes one code point and advances c.Offset by the bytes consumed.
func (h *Handler) Read(c *cursor.Cursor) (cp scalar.CodePoint, flags diag.Flags) {
	cp, bytes, flags := h.Get(c)
	c.Offset += bytes
	return cp, flags
}

// Write encodes cp and advances c.Offset by the bytes written.
func (h *Handler) Write(c *cursor.Cursor, cp scalar.CodePoint) diag.Flags {
	bytes, flags := h.Set(c, cp)
	c.Offset += bytes
	return flags
}

// Validate walks the whole of c from its current offset without moving it,
// accumulating warnings but aborting at the first error. A well-formed
// buffer reports ReadExhausted exactly once, at end of input.
func (h *Handler) Validate(c *cursor.Cursor) (flags diag.Flags) {
	probe := &cursor.Cursor{Buffer: c.Buffer, Length: c.Length, Offset: c.Offset}
	for {
		_, bytes, f := h.Get(probe)
		flags |= f
		if f.Error() || bytes == 0 {
			break
		}
		probe.Offset += bytes
	}
	return flags
}
