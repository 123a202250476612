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
	"fmt"

	"github.com/Icabod66/LibUTF/variant"
)

var byName = make(map[string]*Handler, variant.Count)
var byID = make(map[variant.Variant]*Handler, variant.Count)

func register(h *Handler) {
	name := h.Variant.String()
	if old, found := byName[name]; found {
		panic(fmt.Sprintf("duplicated handler: %s[%d] (existing handler is %s[%d])",
			name, h.Variant, old.Variant.String(), old.Variant))
	}
	byName[name] = h
	byID[h.Variant] = h
}

func init() {
	for v := variant.Variant(0); v < variant.Count; v++ {
		register(New(v))
	}
	// Aliases resolve to an existing handler; they are not listed by All.
	byName["ISO8859_1"] = byID[variant.BYTE]
	byName["Ascii"] = byID[variant.ASCII]
}

// LookupByName returns the registered Handler whose Variant name (or one
// of the aliases "ISO8859_1" and "Ascii") matches name exactly, or nil.
func LookupByName(name string) *Handler {
	return byName[name]
}

// LookupByVariant returns the registered Handler for v, or nil.
func LookupByVariant(v variant.Variant) *Handler {
	return byID[v]
}

// Default returns the fallback handler: strict, Java-modified-NUL UTF-8.
// LookupByName and LookupByVariant do not substitute it; they return nil
// when a name or variant fails to resolve.
func Default() *Handler {
	return byID[variant.JUTF8st]
}

// All returns every registered Handler, in Variant order.
func All() []*Handler {
	all := make([]*Handler, 0, len(byID))
	for v := variant.Variant(0); v < variant.Count; v++ {
		if h, ok := byID[v]; ok {
			all = append(all, h)
		}
	}
	return all
}
