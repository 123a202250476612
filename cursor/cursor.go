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

// Package cursor implements the non-owning byte-range view every codec in
// this module reads from and writes to.
package cursor

import "github.com/Icabod66/LibUTF/diag"

// Cursor is a borrowed view over a caller-owned byte buffer. Length is kept
// separate from len(Buffer) so callers can exercise buffer/length/offset
// precondition failures without allocating a buffer of the exact wrong
// size. Offset is mutated in place by read/write/step/back.
type Cursor struct {
	Buffer []byte
	Length uint32
	Offset uint32
}

// New wraps buf in a Cursor positioned at offset 0.
func New(buf []byte) *Cursor {
	return &Cursor{Buffer: buf, Length: uint32(len(buf))}
}

// Remaining returns the number of unread bytes, or 0 if Offset has run past
// Length.
func (c *Cursor) Remaining() uint32 {
	if c.Offset >= c.Length {
		return 0
	}
	return c.Length - c.Offset
}

// Rest returns the unread tail of the buffer, bounded by Length.
func (c *Cursor) Rest() []byte {
	if c.Buffer == nil || c.Offset >= c.Length {
		return nil
	}
	end := c.Length
	if end > uint32(len(c.Buffer)) {
		end = uint32(len(c.Buffer))
	}
	if c.Offset >= end {
		return nil
	}
	return c.Buffer[c.Offset:end]
}

// Check derives a structural-precondition diagnostic from c. alignMask is 0
// for byte streams, 1 for UTF-16 and 3 for UTF-32. Every codec entry point
// calls this first and returns immediately if the result is non-zero.
func Check(c *Cursor, alignMask uint32) diag.Flags {
	var f diag.Flags
	if c == nil || c.Buffer == nil {
		return diag.Failed | diag.InvalidBuffer
	}
	if c.Offset > c.Length {
		f |= diag.Failed | diag.InvalidOffset
	}
	if alignMask != 0 {
		if c.Offset&alignMask != 0 {
			f |= diag.Failed | diag.MisalignedOffset
		}
		if c.Length&alignMask != 0 {
			f |= diag.Failed | diag.MisalignedLength
		}
	}
	return f
}
