package uca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImplicitCommonCJKBlock(t *testing.T) {
	ce := Implicit(0x4E2D) // 中, common CJK Unified Ideographs
	assert.Equal(t, uint16(0xFB40), ce.Primary)
	assert.Equal(t, uint16(0x0020), ce.Secondary)
	assert.Equal(t, uint16(0x0002), ce.Tertiary)
	assert.False(t, ce.Variable)
}

func TestImplicitRareCJKExtensionABlock(t *testing.T) {
	ce := Implicit(0x3400) // first code point of CJK Ext. A ("rare")
	assert.Equal(t, uint16(0xFB80), ce.Primary)
}

func TestImplicitPairSecondCEIsCodePointDerived(t *testing.T) {
	pair := ImplicitPair(0x4E2D)
	assert.Equal(t, uint16(0x0000), pair[1].Secondary)
	assert.Equal(t, uint16(0x0000), pair[1].Tertiary)
	assert.NotZero(t, pair[1].Primary)
}

func TestImplicitOrdersCommonBeforeRareCJK(t *testing.T) {
	common := Implicit(0x4E2D)
	rare := Implicit(0x3400)
	assert.Less(t, common.Primary, rare.Primary)
}

func TestImplicitIncludedUnassignedException(t *testing.T) {
	// 0x2B73A falls inside the CJK Extension C/D range but is listed as
	// actually unassigned; it must get the generic unassigned base, not
	// the CJK Extension base.
	ce := Implicit(0x2B73A)
	assert.Equal(t, uint16(0xFBC0+uint16(0x2B73A>>15)), ce.Primary)
}

func TestImplicitDistinctCodePointsGetDistinctWeights(t *testing.T) {
	a := Implicit(0x4E2D)
	b := Implicit(0x4E2E)
	pairA := ImplicitPair(0x4E2D)
	pairB := ImplicitPair(0x4E2E)
	if a.Primary == b.Primary {
		assert.NotEqual(t, pairA[1].Primary, pairB[1].Primary)
	}
}
