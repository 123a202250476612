package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUnicode(t *testing.T) {
	assert.True(t, IsUnicode(0))
	assert.True(t, IsUnicode(0x10FFFF))
	assert.False(t, IsUnicode(0x110000))
	assert.False(t, IsUnicode(-1))
	assert.False(t, IsUnicode(0xD800))
}

func TestSurrogateRanges(t *testing.T) {
	assert.True(t, IsHighSurrogate(0xD800))
	assert.True(t, IsHighSurrogate(0xDBFF))
	assert.False(t, IsHighSurrogate(0xDC00))
	assert.True(t, IsLowSurrogate(0xDC00))
	assert.True(t, IsLowSurrogate(0xDFFF))
	assert.False(t, IsLowSurrogate(0xDBFF))
	assert.True(t, IsSurrogate(0xD900))
	assert.False(t, IsSurrogate(0x10000))
}

func TestIsNonCharacter(t *testing.T) {
	assert.True(t, IsNonCharacter(0xFDD0))
	assert.True(t, IsNonCharacter(0xFDEF))
	assert.False(t, IsNonCharacter(0xFDF0))
	assert.True(t, IsNonCharacter(0xFFFE))
	assert.True(t, IsNonCharacter(0xFFFF))
	assert.True(t, IsNonCharacter(0x1FFFE))
	assert.False(t, IsNonCharacter(0x1FFFD))
}

func TestIsSupplementary(t *testing.T) {
	assert.False(t, IsSupplementary(0xFFFF))
	assert.True(t, IsSupplementary(0x10000))
	assert.True(t, IsSupplementary(0x10FFFF))
}
