package uca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContractions() *Contractions {
	return newContractions([]Contraction{
		{Path: []rune{'c', 'h'}, CEs: []CE{{Primary: 0x1234}}},
		{Path: []rune{'c', 'h', 'x'}, CEs: []CE{{Primary: 0x1235}}},
		{Path: []rune{'a', 0x0301, 0x0302}, CEs: []CE{{Primary: 0x5678}}},
	})
}

func TestContractionsMatchPrefersLongestContiguous(t *testing.T) {
	c := testContractions()

	ces, consumed, ok := c.Match([]rune("chx"))
	require.True(t, ok)
	assert.Equal(t, 3, consumed)
	assert.Equal(t, []CE{{Primary: 0x1235}}, ces)
}

func TestContractionsMatchShorterWhenLongerAbsent(t *testing.T) {
	c := testContractions()

	ces, consumed, ok := c.Match([]rune("cha"))
	require.True(t, ok)
	assert.Equal(t, 2, consumed)
	assert.Equal(t, []CE{{Primary: 0x1234}}, ces)
}

func TestContractionsMatchNoRoot(t *testing.T) {
	c := testContractions()

	_, _, ok := c.Match([]rune("xyz"))
	assert.False(t, ok)
}

func TestContractionsMatchEmptyInput(t *testing.T) {
	c := testContractions()
	_, _, ok := c.Match(nil)
	assert.False(t, ok)
}

func TestContractionsHasRoot(t *testing.T) {
	c := testContractions()
	assert.True(t, c.HasRoot('c'))
	assert.True(t, c.HasRoot('a'))
	assert.False(t, c.HasRoot('z'))
}

func TestContractionsMatchDiscontiguousAcrossBlockedMark(t *testing.T) {
	c := testContractions()

	// 'a', then a cedilla (ccc=202) that the contraction a+0301+0302
	// does not care about, then the acute (0301, ccc=230) and
	// circumflex (0302, ccc=230) it does. The cedilla's CCC (202) is
	// strictly lower than 0301's (230), so it may be skipped over.
	cps := []rune{'a', 0x0327, 0x0301, 0x0302}
	ccc := []uint8{0, 202, 230, 230}

	ces, used, ok := c.MatchDiscontiguous(cps, ccc)
	require.True(t, ok)
	assert.Equal(t, []CE{{Primary: 0x5678}}, ces)
	assert.Equal(t, []int{0, 2, 3}, used)
}

func TestContractionsMatchDiscontiguousRefusesEqualOrHigherCCCSkip(t *testing.T) {
	c := testContractions()

	// Now the mark between 'a' and 0301 has CCC 230 (equal to 0301's own
	// CCC) — not strictly lower, so it may not be skipped, and no
	// discontiguous match is legal.
	cps := []rune{'a', 0x030A, 0x0301, 0x0302}
	ccc := []uint8{0, 230, 230, 230}

	_, _, ok := c.MatchDiscontiguous(cps, ccc)
	assert.False(t, ok)
}

func TestContractionsAllRoundTrips(t *testing.T) {
	c := testContractions()
	all := c.all()
	assert.Len(t, all, 3)
}
