package norm

// Normalize converts cps to canonical decomposition with canonical
// ordering (NFD), per §4.2: every code point is recursively decomposed,
// Hangul syllables are split into their jamo, and each maximal run of
// combining marks following a starter is stably sorted by CCC.
//
// If cps contains nothing that can decompose or reorder, Normalize
// returns cps unchanged without allocating — the FCD-style fast path
// that makes the common case (plain ASCII, or any script with no
// combining marks and no decomposable precomposed forms) cheap.
func Normalize(cps []rune) []rune {
	fast := true
	for _, cp := range cps {
		if NeedsDecomposition(cp) {
			fast = false
			break
		}
	}
	if fast {
		return cps
	}

	out := make([]rune, 0, len(cps)+4)
	for _, cp := range cps {
		out = appendDecomposed(out, cp)
	}

	reorder(out)
	return out
}

func appendDecomposed(out []rune, cp rune) []rune {
	if IsHangul(cp) {
		return append(out, DecomposeHangul(cp)...)
	}
	if d, ok := decomposition[cp]; ok {
		for _, sub := range d {
			out = appendDecomposed(out, sub)
		}
		return out
	}
	return append(out, cp)
}

// reorder stably sorts each maximal run of non-starter (CCC > 0) code
// points in place by ascending CCC, leaving starters (CCC 0) fixed as
// run boundaries. It uses insertion sort: combining-mark runs are always
// short (the corpus this module targets has none longer than four or
// five code points), so the quadratic worst case never matters and the
// stability insertion sort gives for free is exactly what canonical
// ordering requires for marks that share a CCC.
func reorder(cps []rune) {
	i := 0
	for i < len(cps) {
		if CCC(cps[i]) == 0 {
			i++
			continue
		}
		start := i
		for i < len(cps) && CCC(cps[i]) != 0 {
			i++
		}
		insertionSortByCCC(cps[start:i])
	}
}

func insertionSortByCCC(run []rune) {
	for i := 1; i < len(run); i++ {
		cp := run[i]
		c := CCC(cp)
		j := i - 1
		for j >= 0 && CCC(run[j]) > c {
			run[j+1] = run[j]
			j--
		}
		run[j+1] = cp
	}
}

// CCCOf returns the CCC of every code point in cps, in the same order.
// The generator uses this to drive discontiguous contraction matching,
// which needs each candidate code point's CCC alongside its identity.
func CCCOf(cps []rune) []uint8 {
	out := make([]uint8, len(cps))
	for i, cp := range cps {
		if IsHangul(cp) {
			continue // Hangul syllables are starters: CCC 0
		}
		out[i] = CCC(cp)
	}
	return out
}
