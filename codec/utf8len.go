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

import "github.com/Icabod66/LibUTF/scalar"

// LenUTF8 returns the byte count the library's generalized UTF-8 model
// would use to encode cp, or 0 if cp is not encodable at all.
func LenUTF8(cp scalar.CodePoint, useCesu, useJava bool) uint32 {
	switch {
	case cp < 0 || cp > scalar.MaxUCS4:
		return 0
	case cp == 0:
		if useJava {
			return 2
		}
		return 1
	case cp <= 0x7F:
		return 1
	case cp <= 0x7FF:
		return 2
	case cp <= 0xFFFF:
		return 3
	case cp <= 0x10FFFF:
		if useCesu {
			return 6
		}
		return 4
	case cp <= 0x1FFFFF:
		return 4
	case cp <= 0x3FFFFFF:
		return 5
	default:
		return 6
	}
}
