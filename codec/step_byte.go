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
)

// StepBYTE advances the cursor forward by up to n code points. Under
// useASCII, a run of consecutive bytes >= 0x80 either merges into a
// single invalid code point (coalesce) or is walked one byte at a time.
func StepBYTE(c *cursor.Cursor, n uint32, useASCII, coalesce bool) (codepoints uint32, flags diag.Flags) {
	for i := uint32(0); i < n; i++ {
		if c.Remaining() == 0 {
			flags |= diag.ReadExhausted
			break
		}
		b := c.Buffer[c.Offset]
		if useASCII && b >= 0x80 {
			adv := uint32(1)
			if coalesce {
				for c.Offset+adv < c.Length && c.Buffer[c.Offset+adv] >= 0x80 {
					adv++
				}
			}
			flags |= diag.Failed | diag.NotDecodable | diag.DisallowedByte
			c.Offset += adv
		} else {
			c.Offset++
		}
		codepoints++
	}
	return codepoints, flags
}

// BackBYTE steps the cursor backward by up to n code points, mirroring
// StepBYTE's run-merging behavior for disallowed bytes.
func BackBYTE(c *cursor.Cursor, n uint32, useASCII, coalesce bool) (codepoints uint32, flags diag.Flags) {
	for i := uint32(0); i < n; i++ {
		if c.Offset == 0 {
			flags |= diag.ReadExhausted
			break
		}
		adv := uint32(1)
		if useASCII && coalesce && c.Buffer[c.Offset-1] >= 0x80 {
			for c.Offset-adv > 0 && c.Buffer[c.Offset-adv-1] >= 0x80 {
				adv++
			}
		}
		c.Offset -= adv
		codepoints++
	}
	return codepoints, flags
}
