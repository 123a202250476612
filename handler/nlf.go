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
	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
	"github.com/Icabod66/LibUTF/scalar"
)

// isNLF reports whether cp is one of the seven scalars this library
// normalizes to a single line feed: 0x0A, 0x0B, 0x0C, 0x0D, NEL (0x85),
// LINE SEPARATOR (0x2028) and PARAGRAPH SEPARATOR (0x2029). CR/LF and
// LF/CR pairs are folded into the single NLF they represent by GetNLF.
func isNLF(cp scalar.CodePoint) bool {
	switch cp {
	case 0x0A, 0x0B, 0x0C, 0x0D, 0x85, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// GetNLF decodes one code point without advancing c, normalizing any
// recognized line terminator (including a CR/LF or LF/CR pair, consumed
// together) to a bare 0x0A.
func (h *Handler) GetNLF(c *cursor.Cursor) (cp scalar.CodePoint, bytes uint32, flags diag.Flags) {
	cp, bytes, flags = h.Get(c)
	if flags.Failed() || bytes == 0 || !isNLF(cp) {
		return cp, bytes, flags
	}
	if cp == 0x0D || cp == 0x0A {
		probe := &cursor.Cursor{Buffer: c.Buffer, Length: c.Length, Offset: c.Offset + bytes}
		cp2, bytes2, f2 := h.Get(probe)
		if !f2.Failed() && bytes2 > 0 && ((cp == 0x0D && cp2 == 0x0A) || (cp == 0x0A && cp2 == 0x0D)) {
			bytes += bytes2
			flags |= f2
		}
	}
	return scalar.CodePoint(0x0A), bytes, flags
}

// ReadNLF is GetNLF plus advancing c.Offset by the bytes consumed.
func (h *Handler) ReadNLF(c *cursor.Cursor) (cp scalar.CodePoint, flags diag.Flags) {
	cp, bytes, flags := h.GetNLF(c)
	c.Offset += bytes
	return cp, flags
}

// GetLine returns a Cursor view over the text from c's current offset up
// to (excluding) the next normalized line terminator or NUL, or to the
// end of the buffer if neither is found. bytes is the total advance —
// including the terminator itself — that ReadLine would apply to c.
func (h *Handler) GetLine(c *cursor.Cursor) (line *cursor.Cursor, bytes uint32, flags diag.Flags) {
	pos := c.Offset
	for pos < c.Length {
		probe := &cursor.Cursor{Buffer: c.Buffer, Length: c.Length, Offset: pos}
		cp, n, f := h.Get(probe)
		flags |= f
		if n == 0 {
			break
		}
		if cp == 0 {
			return &cursor.Cursor{Buffer: c.Buffer, Length: pos, Offset: c.Offset}, pos + n - c.Offset, flags
		}
		if isNLF(cp) {
			lineEnd := pos
			total := pos + n - c.Offset
			if cp == 0x0D || cp == 0x0A {
				probe2 := &cursor.Cursor{Buffer: c.Buffer, Length: c.Length, Offset: pos + n}
				cp2, n2, f2 := h.Get(probe2)
				if !f2.Failed() && n2 > 0 && ((cp == 0x0D && cp2 == 0x0A) || (cp == 0x0A && cp2 == 0x0D)) {
					total += n2
				}
			}
			return &cursor.Cursor{Buffer: c.Buffer, Length: lineEnd, Offset: c.Offset}, total, flags
		}
		pos += n
	}
	return &cursor.Cursor{Buffer: c.Buffer, Length: pos, Offset: c.Offset}, pos - c.Offset, flags
}

// ReadLine is GetLine plus advancing c.Offset past the returned line and
// its terminator.
func (h *Handler) ReadLine(c *cursor.Cursor) (line *cursor.Cursor, flags diag.Flags) {
	line, bytes, flags := h.GetLine(c)
	c.Offset += bytes
	return line, flags
}
