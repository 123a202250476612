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

// StepCP1252 advances the cursor forward by up to n code points. Every
// CP1252 byte stands for exactly one code point, so this is a plain
// bounded advance.
func StepCP1252(c *cursor.Cursor, n uint32) (codepoints uint32, flags diag.Flags) {
	avail := c.Remaining()
	if avail == 0 && n > 0 {
		return 0, diag.ReadExhausted
	}
	adv := n
	if adv > avail {
		adv = avail
		flags |= diag.ReadExhausted
	}
	c.Offset += adv
	return adv, flags
}

// BackCP1252 steps the cursor backward by up to n code points.
func BackCP1252(c *cursor.Cursor, n uint32) (codepoints uint32, flags diag.Flags) {
	adv := n
	if adv > c.Offset {
		adv = c.Offset
		flags |= diag.ReadExhausted
	}
	c.Offset -= adv
	return adv, flags
}
