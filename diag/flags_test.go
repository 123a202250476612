package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservedMaskCoversAllFourLowBits(t *testing.T) {
	assert.Equal(t, Flags(0xF), ReservedMask)
	assert.Equal(t, ^Flags(0xF), NonReservedMask)
	assert.Zero(t, uint32(ReservedMask)&uint32(NonReservedMask))
}

func TestFailedImpliesError(t *testing.T) {
	f := Failed | NotDecodable
	assert.True(t, f.Failed())
	assert.True(t, f.Error())
	assert.False(t, f.NoError())
}

func TestErrorsAndWarningsArePartitioned(t *testing.T) {
	assert.Zero(t, uint32(ErrorsMask)&uint32(WarningsMask))
}

func TestModifiedAndOverlongAreDistinctBits(t *testing.T) {
	assert.NotEqual(t, ModifiedUTF8, OverlongUTF8)
	assert.Zero(t, uint32(ModifiedUTF8)&uint32(OverlongUTF8))
}

func TestByteIndexRoundTrip(t *testing.T) {
	f := NotDecodable.WithByteIndex(5)
	assert.EqualValues(t, 5, f.ByteIndex())
	assert.True(t, f.Error())
}

func TestUseReplacementCharacter(t *testing.T) {
	assert.True(t, NotDecodable.UseReplacementCharacter())
	assert.True(t, NonCharacter.UseReplacementCharacter())
	assert.True(t, IrregularForm.UseReplacementCharacter())
	assert.False(t, ReadExhausted.UseReplacementCharacter())
}

func TestIsStrictRune(t *testing.T) {
	assert.True(t, Flags(0).IsStrictRune(false))
	assert.True(t, Supplementary.IsStrictRune(false))
	assert.False(t, OverlongUTF8.IsStrictRune(false))
	assert.False(t, SurrogatePair.IsStrictRune(false))
	assert.True(t, SurrogatePair.IsStrictRune(true))
}

func TestFiltersOnlyKeepTheirPartition(t *testing.T) {
	f := Failed | NotDecodable | OverlongUTF8 | IrregularForm
	assert.Equal(t, Failed|NotDecodable, f.ErrorsOnly())
	assert.Equal(t, OverlongUTF8|IrregularForm, f.WarningsOnly())
}

func TestStringRendersSetBits(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	s := (Failed | NotDecodable).String()
	assert.Contains(t, s, "Failed")
	assert.Contains(t, s, "NotDecodable")
}
