// Package sortkey builds the flat, memcmp-comparable byte string from a
// collation-element array, per §4.4: one run of 2-byte big-endian
// weights per level, each level separated by a 0x0000 marker written at
// a fixed position by Build itself, never searched for. Levels 1-3 never
// contain a zero weight (zero means "ignorable, omit it" there); level 4,
// when present, is the final stream and may legitimately contain a zero
// entry, which is harmless since nothing follows it to disambiguate.
package sortkey

// Shifting selects how variable-primary collation elements are folded
// into the sort key, per §4.4. It mirrors collate.Shifting one level up;
// this package keeps its own copy to stay independent of collate.
type Shifting int

const (
	NonIgnorable Shifting = iota
	Shifted
)

// CE is the minimal view of a collation element this package needs. It
// is structurally identical to uca.CE; duplicating the four fields here
// (rather than importing internal/uca) keeps sortkey a leaf package with
// no dependency on the collation-element generator it serves.
type CE struct {
	Primary   uint16
	Secondary uint16
	Tertiary  uint16
	Variable  bool
}

func (ce CE) ignorable() bool {
	return ce.Primary == 0 && ce.Secondary == 0 && ce.Tertiary == 0
}

// Build produces the sort key for ces under the given shifting strategy,
// following §4.4's four-way case table exactly:
//
//   - a variable CE contributes its (p, s, t) normally under
//     NonIgnorable, or suppresses them and contributes p to L4 under
//     Shifted, and opens an "after-variable" shadow;
//   - a non-variable, zero-primary, non-ignorable CE seen while that
//     shadow is open (e.g. a combining mark trailing a variable-weight
//     space) still contributes (0, s, t) under NonIgnorable, but is
//     fully suppressed under Shifted, with L4 ← 0;
//   - any other non-ignorable CE is "ordinary": it contributes (p, s, t)
//     normally, contributes 0xFFFF to L4 under Shifted, and closes the
//     after-variable shadow;
//   - a completely ignorable CE (all three weights zero) contributes
//     nothing at any level and leaves the shadow state untouched.
func Build(ces []CE, shifting Shifting) []byte {
	var l1, l2, l3, l4 []uint16
	afterVariable := false

	for _, ce := range ces {
		switch {
		case ce.Variable:
			if shifting == Shifted {
				l4 = append(l4, ce.Primary)
			} else {
				appendTriple(&l1, &l2, &l3, ce)
			}
			afterVariable = true

		case ce.Primary == 0 && afterVariable && !ce.ignorable():
			if shifting == Shifted {
				l4 = append(l4, 0)
			} else {
				if ce.Secondary != 0 {
					l2 = append(l2, ce.Secondary)
				}
				if ce.Tertiary != 0 {
					l3 = append(l3, ce.Tertiary)
				}
			}
			// shadow persists until an ordinary CE closes it

		case ce.ignorable():
			// skip; shadow state untouched

		default:
			appendTriple(&l1, &l2, &l3, ce)
			if shifting == Shifted {
				l4 = append(l4, 0xFFFF)
			}
			afterVariable = false
		}
	}

	out := make([]byte, 0, 2*(len(l1)+len(l2)+len(l3)+len(l4))+8)
	out = appendLevel(out, l1)
	out = append(out, 0x00, 0x00)
	out = appendLevel(out, l2)
	out = append(out, 0x00, 0x00)
	out = appendLevel(out, l3)
	if shifting == Shifted {
		out = append(out, 0x00, 0x00)
		out = appendLevel(out, l4)
	}
	return out
}

func appendTriple(l1, l2, l3 *[]uint16, ce CE) {
	if ce.Primary != 0 {
		*l1 = append(*l1, ce.Primary)
	}
	if ce.Secondary != 0 {
		*l2 = append(*l2, ce.Secondary)
	}
	if ce.Tertiary != 0 {
		*l3 = append(*l3, ce.Tertiary)
	}
}

func appendLevel(out []byte, weights []uint16) []byte {
	for _, w := range weights {
		out = append(out, byte(w>>8), byte(w))
	}
	return out
}
