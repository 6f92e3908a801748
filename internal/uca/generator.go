package uca

import "github.com/collate-go/uca/internal/norm"

// Generate walks an already-normalized (NFD, canonically reordered)
// code-point sequence and produces the flat collation-element array for
// it, per §4.3: CEA := generate(S). At each position it prefers the
// longest contraction match — contiguous first, then discontiguous
// across any intervening blocked combining marks — and falls back to a
// single-code-point lookup, and from there to the implicit-weight rule
// for code points the table doesn't assign.
//
// This mirrors the walk in the collator this module is grounded on,
// generalized from that collator's closed, hand-enumerated set of
// discontiguous cases to an arbitrary trie-driven walk (see
// Contractions.MatchDiscontiguous).
func Generate(t *Table, cps []rune) []CE {
	if len(cps) == 0 {
		return nil
	}
	ccc := norm.CCCOf(cps)

	out := make([]CE, 0, len(cps)+2)
	for i := 0; i < len(cps); {
		consumed := stepOne(t, cps, ccc, i, &out)
		i += consumed
	}
	return out
}

// stepOne resolves exactly one "unit" — a contraction match or a single
// code point — starting at position i, appends its CEs to out, and
// returns the number of input code points consumed.
func stepOne(t *Table, cps []rune, ccc []uint8, i int, out *[]CE) int {
	tail := cps[i:]

	contigCEs, contigLen, contigOK := t.Contractions.Match(tail)

	if t.Contractions.HasRoot(cps[i]) {
		discCEs, discUsed, discOK := t.Contractions.MatchDiscontiguous(tail, ccc[i:])
		if discOK && (!contigOK || discUsed[len(discUsed)-1]+1 > contigLen) {
			*out = append(*out, discCEs...)
			appendSkippedMarks(t, tail, discUsed, out)
			return discUsed[len(discUsed)-1] + 1
		}
	}

	if contigOK {
		*out = append(*out, contigCEs...)
		return contigLen
	}

	return stepSingle(t, cps[i], out)
}

// appendSkippedMarks emits the standalone CEs for every code point in
// [1, used[last]] that a discontiguous match skipped over, in their
// original relative order, immediately after the contraction's own CEs.
// This is what makes the match "discontiguous" rather than lossy: the
// blocked combining marks still contribute their own weights, they are
// just logically pulled out of the way so the base and its continuation
// can be matched as a unit.
func appendSkippedMarks(t *Table, tail []rune, used []int, out *[]CE) {
	usedSet := make(map[int]bool, len(used))
	for _, u := range used {
		usedSet[u] = true
	}
	last := used[len(used)-1]
	for k := 1; k < last; k++ {
		if usedSet[k] {
			continue
		}
		stepSingle(t, tail[k], out)
	}
}

// stepSingle resolves one bare code point via table lookup, falling
// back to the implicit-weight rule, and always consumes exactly one
// code point.
func stepSingle(t *Table, cp rune, out *[]CE) int {
	if ces := t.Lookup(cp); ces != nil {
		*out = append(*out, ces...)
		return 1
	}
	pair := ImplicitPair(cp)
	*out = append(*out, pair[0], pair[1])
	return 1
}
