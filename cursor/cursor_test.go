package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Icabod66/LibUTF/diag"
)

func TestCheckAbsentBuffer(t *testing.T) {
	f := Check(&Cursor{}, 0)
	assert.True(t, f.Failed())
	assert.NotZero(t, f&diag.InvalidBuffer)
}

func TestCheckOffsetPastLength(t *testing.T) {
	c := &Cursor{Buffer: []byte("ab"), Length: 1, Offset: 2}
	f := Check(c, 0)
	assert.True(t, f.Failed())
	assert.NotZero(t, f&diag.InvalidOffset)
}

func TestCheckMisalignment(t *testing.T) {
	c := &Cursor{Buffer: make([]byte, 5), Length: 5, Offset: 1}
	f := Check(c, 3)
	assert.NotZero(t, f&diag.MisalignedOffset)
	assert.NotZero(t, f&diag.MisalignedLength)
}

func TestCheckWellFormed(t *testing.T) {
	c := &Cursor{Buffer: make([]byte, 8), Length: 8, Offset: 4}
	assert.Zero(t, Check(c, 3))
}

func TestRemainingAndRest(t *testing.T) {
	c := &Cursor{Buffer: []byte("hello"), Length: 5, Offset: 2}
	assert.EqualValues(t, 3, c.Remaining())
	assert.Equal(t, []byte("llo"), c.Rest())
}
