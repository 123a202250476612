package cp1252

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictUndefinedRejectsHoles(t *testing.T) {
	_, ok := ToUnicode(0x81, StrictUndefined)
	assert.False(t, ok)
	_, ok = ToUnicode(0x8D, StrictUndefined)
	assert.False(t, ok)
}

func TestWindowsCompatibleAcceptsHoles(t *testing.T) {
	cp, ok := ToUnicode(0x81, WindowsCompatible)
	assert.True(t, ok)
	assert.EqualValues(t, 0x81, cp)
}

func TestEuroSignRoundTrip(t *testing.T) {
	cp, ok := ToUnicode(0x80, WindowsCompatible)
	assert.True(t, ok)
	assert.EqualValues(t, 0x20AC, cp)

	b, ok := FromUnicode(0x20AC, WindowsCompatible)
	assert.True(t, ok)
	assert.EqualValues(t, 0x80, b)
}

func TestIdentityRanges(t *testing.T) {
	for _, b := range []byte{0x00, 0x41, 0x7F, 0xA0, 0xFF} {
		cp, ok := ToUnicode(b, WindowsCompatible)
		assert.True(t, ok)
		assert.EqualValues(t, b, cp)
	}
}

func TestFromUnicodeUnmappable(t *testing.T) {
	_, ok := FromUnicode(0x1F600, WindowsCompatible)
	assert.False(t, ok)
}
