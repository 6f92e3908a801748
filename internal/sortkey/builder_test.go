package sortkey

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildOrdinaryCEs(t *testing.T) {
	ces := []CE{
		{Primary: 0x1000, Secondary: 0x0020, Tertiary: 0x0002},
		{Primary: 0x1008, Secondary: 0x0020, Tertiary: 0x0002},
	}
	got := Build(ces, NonIgnorable)
	want := []byte{
		0x10, 0x00, 0x10, 0x08, // L1
		0x00, 0x00,
		0x00, 0x20, 0x00, 0x20, // L2
		0x00, 0x00,
		0x00, 0x02, 0x00, 0x02, // L3
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNonIgnorableHasNoLevel4(t *testing.T) {
	ces := []CE{{Primary: 1, Variable: true}}
	got := Build(ces, NonIgnorable)
	// Variable flag is irrelevant under NonIgnorable: emitted as ordinary.
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, got)
}

func TestBuildShiftedMovesVariableToLevel4(t *testing.T) {
	ces := []CE{
		{Primary: 0x1000, Secondary: 0x0020, Tertiary: 0x0002},             // 'a', ordinary
		{Primary: 0x0014, Secondary: 0x0020, Tertiary: 0x0002, Variable: true}, // '-', variable
		{Primary: 0x1008, Secondary: 0x0020, Tertiary: 0x0002},             // 'b', ordinary
	}
	got := Build(ces, Shifted)

	wantL1 := []byte{0x10, 0x00, 0x10, 0x08}
	wantL2 := []byte{0x00, 0x20, 0x00, 0x20}
	wantL3 := []byte{0x00, 0x02, 0x00, 0x02}
	wantL4 := []byte{0xFF, 0xFF, 0x00, 0x14, 0xFF, 0xFF}

	var want []byte
	want = append(want, wantL1...)
	want = append(want, 0x00, 0x00)
	want = append(want, wantL2...)
	want = append(want, 0x00, 0x00)
	want = append(want, wantL3...)
	want = append(want, 0x00, 0x00)
	want = append(want, wantL4...)

	assert.Equal(t, want, got)
}

func TestBuildShiftedAndNonIgnorableAgreeThroughLevel3WhenVariablePresent(t *testing.T) {
	ces := []CE{
		{Primary: 0x1000, Secondary: 0x0020, Tertiary: 0x0002},
		{Primary: 0x0014, Secondary: 0x0020, Tertiary: 0x0002, Variable: true},
		{Primary: 0x1008, Secondary: 0x0020, Tertiary: 0x0002},
	}
	plain := []CE{
		{Primary: 0x1000, Secondary: 0x0020, Tertiary: 0x0002},
		{Primary: 0x1008, Secondary: 0x0020, Tertiary: 0x0002},
	}

	shiftedWithPunct := Build(ces, Shifted)
	shiftedPlain := Build(plain, Shifted)

	// Through level 3 (i.e. stripping the trailing L4 section), the two
	// must be byte-identical under Shifted: that is the entire point of
	// shifting variable weights out of the primary comparison.
	l3End := bytes.LastIndex(shiftedWithPunct, []byte{0x00, 0x00})
	l3EndPlain := bytes.LastIndex(shiftedPlain, []byte{0x00, 0x00})
	assert.Equal(t, shiftedWithPunct[:l3End], shiftedPlain[:l3EndPlain])

	nonIgnorableWithPunct := Build(ces, NonIgnorable)
	nonIgnorablePlain := Build(plain, NonIgnorable)
	assert.NotEqual(t, nonIgnorableWithPunct, nonIgnorablePlain)
}

func TestBuildAfterVariableShadowSuppressesZeroPrimaryCE(t *testing.T) {
	ces := []CE{
		{Primary: 0x0014, Secondary: 0x0020, Tertiary: 0x0002, Variable: true}, // variable
		{Primary: 0, Secondary: 0x002B, Tertiary: 0x0002},                      // mark, in shadow
	}

	gotShifted := Build(ces, Shifted)
	// L1-L3 are empty (the variable suppresses itself; the shadowed mark
	// suppresses too); L4 gets the variable's primary, then 0 for the
	// shadowed mark.
	wantShifted := []byte{0, 0, 0, 0, 0, 0, 0x00, 0x14, 0x00, 0x00}
	assert.Equal(t, wantShifted, gotShifted)

	gotNonIgnorable := Build(ces, NonIgnorable)
	// Under NonIgnorable the variable's own primary still lands in L1,
	// and the shadowed mark still contributes (0, s, t) to L2/L3.
	wantNonIgnorable := []byte{
		0x00, 0x14, // L1
		0x00, 0x00,
		0x00, 0x20, 0x00, 0x2B, // L2
		0x00, 0x00,
		0x00, 0x02, 0x00, 0x02, // L3
	}
	assert.Equal(t, wantNonIgnorable, gotNonIgnorable)
}

func TestBuildCompletelyIgnorableCEContributesNothing(t *testing.T) {
	ces := []CE{
		{Primary: 0x1000, Secondary: 0x0020, Tertiary: 0x0002},
		{}, // completely ignorable
		{Primary: 0x1008, Secondary: 0x0020, Tertiary: 0x0002},
	}
	withIgnorable := Build(ces, NonIgnorable)
	without := Build([]CE{ces[0], ces[2]}, NonIgnorable)
	assert.Equal(t, without, withIgnorable)
}

func TestBuildEmpty(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0}, Build(nil, NonIgnorable))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, Build(nil, Shifted))
}
