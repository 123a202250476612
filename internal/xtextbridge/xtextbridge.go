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

// Package xtextbridge cross-checks this module's UTF-16 handler against
// golang.org/x/text/encoding/unicode, an independent implementation of the
// same codec. It is never imported by the core codec/handler packages —
// only by the CLI's "validate" subcommand and by cross-check tests, so a
// bug shared between this module and its own hand-written tests would
// still be caught against a second, unrelated implementation.
package xtextbridge

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeUTF16 decodes buf as UTF-16 of the given endianness using
// golang.org/x/text, returning the UTF-8 bytes it produces.
func DecodeUTF16(buf []byte, littleEndian bool) ([]byte, error) {
	endian := unicode.BigEndian
	if littleEndian {
		endian = unicode.LittleEndian
	}
	enc := unicode.UTF16(endian, unicode.IgnoreBOM)
	out, _, err := transform.Bytes(enc.NewDecoder(), buf)
	if err != nil {
		return nil, errors.Wrap(err, "xtextbridge: decode UTF-16")
	}
	return out, nil
}

// EncodeUTF16 encodes the UTF-8 bytes in src as UTF-16 of the given
// endianness using golang.org/x/text.
func EncodeUTF16(src []byte, littleEndian bool) ([]byte, error) {
	endian := unicode.BigEndian
	if littleEndian {
		endian = unicode.LittleEndian
	}
	enc := unicode.UTF16(endian, unicode.IgnoreBOM)
	out, _, err := transform.Bytes(enc.NewEncoder(), src)
	if err != nil {
		return nil, errors.Wrap(err, "xtextbridge: encode UTF-16")
	}
	return out, nil
}
