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

// Package variant enumerates the 31 concrete encoding sub-types this
// library supports and the orthogonal switch settings each one turns on:
// CESU-8/32 surrogate pairing, Java modified-NUL, UCS-2/UCS-4 restriction,
// strictness, coalescing and endianness.
package variant

// Family groups variants by the code unit they share.
type Family int

const (
	UTF8Family Family = iota
	UTF16Family
	UTF32Family
	OtherFamily
)

func (f Family) String() string {
	switch f {
	case UTF8Family:
		return "UTF8"
	case UTF16Family:
		return "UTF16"
	case UTF32Family:
		return "UTF32"
	default:
		return "Other"
	}
}

// Variant is one of the 31 concrete encoding sub-types, matching the
// ordinal values of the original toolkit's UTF_SUB_TYPE enumeration.
type Variant int32

const (
	UTF8 Variant = iota
	UTF8ns
	UTF8st
	JUTF8
	JUTF8ns
	JUTF8st
	CESU8
	CESU8ns
	CESU8st
	JCESU8
	JCESU8ns
	JCESU8st
	UTF16le
	UTF16be
	UCS2le
	UCS2be
	UTF32le
	UTF32be
	UCS4le
	UCS4be
	CESU32le
	CESU32be
	CESU4le
	CESU4be
	BYTE
	BYTEns
	ASCII
	ASCIIns
	CP1252
	CP1252ns
	CP1252st
	Count
)

var names = [Count]string{
	"UTF8", "UTF8ns", "UTF8st",
	"JUTF8", "JUTF8ns", "JUTF8st",
	"CESU8", "CESU8ns", "CESU8st",
	"JCESU8", "JCESU8ns", "JCESU8st",
	"UTF16le", "UTF16be", "UCS2le", "UCS2be",
	"UTF32le", "UTF32be", "UCS4le", "UCS4be",
	"CESU32le", "CESU32be", "CESU4le", "CESU4be",
	"BYTE", "BYTEns", "ASCII", "ASCIIns",
	"CP1252", "CP1252ns", "CP1252st",
}

func (v Variant) String() string {
	if v < 0 || v >= Count {
		return "Unknown"
	}
	return names[v]
}

// Config is the fully resolved set of switches a Variant turns on. Codec
// functions take these as plain booleans; Config is how the handler layer
// and CLI translate a Variant into those booleans.
type Config struct {
	Family       Family
	UseCesu      bool // CESU-8/CESU-32 surrogate pairing for supplementary scalars
	UseJava      bool // Java modified-NUL (C0 80 / two zero units) instead of a bare NUL
	UseUCS2      bool // UTF-16 restricted to the basic multilingual plane
	UseUCS4      bool // UTF-32 accepts the extended UCS4 range as regular: ExtendedUCS4 is reported without IrregularForm
	UseASCII     bool // BYTE family restricted to 7-bit ASCII
	Strict       bool // irregular forms fail and clamp to a single unit
	Coalesce     bool // consecutive invalid bytes merge into one reported run
	LittleEndian bool
}

var configs = [Count]Config{
	UTF8:     {Family: UTF8Family, Coalesce: true},
	UTF8ns:   {Family: UTF8Family, Coalesce: false},
	UTF8st:   {Family: UTF8Family, Strict: true},
	JUTF8:    {Family: UTF8Family, UseJava: true, Coalesce: true},
	JUTF8ns:  {Family: UTF8Family, UseJava: true, Coalesce: false},
	JUTF8st:  {Family: UTF8Family, UseJava: true, Strict: true},
	CESU8:    {Family: UTF8Family, UseCesu: true, Coalesce: true},
	CESU8ns:  {Family: UTF8Family, UseCesu: true, Coalesce: false},
	CESU8st:  {Family: UTF8Family, UseCesu: true, Strict: true},
	JCESU8:   {Family: UTF8Family, UseCesu: true, UseJava: true, Coalesce: true},
	JCESU8ns: {Family: UTF8Family, UseCesu: true, UseJava: true, Coalesce: false},
	JCESU8st: {Family: UTF8Family, UseCesu: true, UseJava: true, Strict: true},

	UTF16le: {Family: UTF16Family, LittleEndian: true},
	UTF16be: {Family: UTF16Family, LittleEndian: false},
	UCS2le:  {Family: UTF16Family, LittleEndian: true, UseUCS2: true},
	UCS2be:  {Family: UTF16Family, LittleEndian: false, UseUCS2: true},

	UTF32le:  {Family: UTF32Family, LittleEndian: true},
	UTF32be:  {Family: UTF32Family, LittleEndian: false},
	UCS4le:   {Family: UTF32Family, LittleEndian: true, UseUCS4: true},
	UCS4be:   {Family: UTF32Family, LittleEndian: false, UseUCS4: true},
	CESU32le: {Family: UTF32Family, LittleEndian: true, UseCesu: true},
	CESU32be: {Family: UTF32Family, LittleEndian: false, UseCesu: true},
	CESU4le:  {Family: UTF32Family, LittleEndian: true, UseCesu: true, UseUCS4: true},
	CESU4be:  {Family: UTF32Family, LittleEndian: false, UseCesu: true, UseUCS4: true},

	BYTE:    {Family: OtherFamily, Coalesce: true},
	BYTEns:  {Family: OtherFamily, Coalesce: false},
	ASCII:   {Family: OtherFamily, UseASCII: true, Coalesce: true},
	ASCIIns: {Family: OtherFamily, UseASCII: true, Coalesce: false},

	CP1252:   {Family: OtherFamily, Coalesce: true},
	CP1252ns: {Family: OtherFamily, Coalesce: false},
	CP1252st: {Family: OtherFamily, Strict: true},
}

// ConfigOf returns the switch settings for v.
func ConfigOf(v Variant) Config {
	if v < 0 || v >= Count {
		return Config{}
	}
	return configs[v]
}
