// Package norm implements the normalizer stage of the collation
// pipeline: canonical decomposition to NFD and canonical reordering of
// combining marks by Canonical Combining Class (CCC), per §4.2.
package norm

// decomposition maps a precomposed code point to its canonical
// decomposition. Every entry here is already fully decomposed (none of
// the right-hand sides themselves have a further decomposition), but
// appendDecomposed still recurses, since that is what the algorithm specifies
// and a larger, fully generated table would not have this property.
//
// This table is deliberately a representative excerpt — the Latin-1
// Supplement's accented letters, which is what this module's end-to-end
// and boundary tests exercise — rather than the full Unicode
// decomposition table. §1 places "packaging and distribution of the
// static Unicode data tables" out of scope as an external collaborator;
// in production this map would be generated from UnicodeData.txt the
// same way vitess's tools/makecolldata generates its weight tables from
// allkeys.txt, and swapped in here without any change to appendDecomposed or
// the canonical-reordering logic that consumes it.
var decomposition = map[rune][]rune{
	0x00C0: {0x0041, 0x0300}, // À
	0x00C1: {0x0041, 0x0301}, // Á
	0x00C2: {0x0041, 0x0302}, // Â
	0x00C3: {0x0041, 0x0303}, // Ã
	0x00C4: {0x0041, 0x0308}, // Ä
	0x00C5: {0x0041, 0x030A}, // Å
	0x00C7: {0x0043, 0x0327}, // Ç
	0x00C8: {0x0045, 0x0300}, // È
	0x00C9: {0x0045, 0x0301}, // É
	0x00CA: {0x0045, 0x0302}, // Ê
	0x00CB: {0x0045, 0x0308}, // Ë
	0x00CC: {0x0049, 0x0300}, // Ì
	0x00CD: {0x0049, 0x0301}, // Í
	0x00CE: {0x0049, 0x0302}, // Î
	0x00CF: {0x0049, 0x0308}, // Ï
	0x00D1: {0x004E, 0x0303}, // Ñ
	0x00D2: {0x004F, 0x0300}, // Ò
	0x00D3: {0x004F, 0x0301}, // Ó
	0x00D4: {0x004F, 0x0302}, // Ô
	0x00D5: {0x004F, 0x0303}, // Õ
	0x00D6: {0x004F, 0x0308}, // Ö
	0x00D9: {0x0055, 0x0300}, // Ù
	0x00DA: {0x0055, 0x0301}, // Ú
	0x00DB: {0x0055, 0x0302}, // Û
	0x00DC: {0x0055, 0x0308}, // Ü
	0x00DD: {0x0059, 0x0301}, // Ý
	0x00E0: {0x0061, 0x0300}, // à
	0x00E1: {0x0061, 0x0301}, // á
	0x00E2: {0x0061, 0x0302}, // â
	0x00E3: {0x0061, 0x0303}, // ã
	0x00E4: {0x0061, 0x0308}, // ä
	0x00E5: {0x0061, 0x030A}, // å
	0x00E7: {0x0063, 0x0327}, // ç
	0x00E8: {0x0065, 0x0300}, // è
	0x00E9: {0x0065, 0x0301}, // é
	0x00EA: {0x0065, 0x0302}, // ê
	0x00EB: {0x0065, 0x0308}, // ë
	0x00EC: {0x0069, 0x0300}, // ì
	0x00ED: {0x0069, 0x0301}, // í
	0x00EE: {0x0069, 0x0302}, // î
	0x00EF: {0x0069, 0x0308}, // ï
	0x00F1: {0x006E, 0x0303}, // ñ
	0x00F2: {0x006F, 0x0300}, // ò
	0x00F3: {0x006F, 0x0301}, // ó
	0x00F4: {0x006F, 0x0302}, // ô
	0x00F5: {0x006F, 0x0303}, // õ
	0x00F6: {0x006F, 0x0308}, // ö
	0x00F9: {0x0075, 0x0300}, // ù
	0x00FA: {0x0075, 0x0301}, // ú
	0x00FB: {0x0075, 0x0302}, // û
	0x00FC: {0x0075, 0x0308}, // ü
	0x00FD: {0x0079, 0x0301}, // ý
	0x00FF: {0x0079, 0x0308}, // ÿ
}

// ccc maps a combining mark to its Canonical Combining Class. Code
// points absent from this map (and not a Hangul jamo) are starters
// (CCC 0).
var ccc = map[rune]uint8{
	0x0300: 230, // combining grave accent
	0x0301: 230, // combining acute accent
	0x0302: 230, // combining circumflex accent
	0x0303: 230, // combining tilde
	0x0304: 230, // combining macron
	0x0306: 230, // combining breve
	0x0307: 230, // combining dot above
	0x0308: 230, // combining diaeresis
	0x0309: 230, // combining hook above
	0x030A: 230, // combining ring above
	0x030B: 230, // combining double acute accent
	0x030C: 230, // combining caron
	0x0323: 220, // combining dot below
	0x0325: 220, // combining ring below
	0x0326: 220, // combining comma below
	0x0327: 202, // combining cedilla
	0x0328: 202, // combining ogonek
}

// CCC returns the Canonical Combining Class of cp.
func CCC(cp rune) uint8 {
	return ccc[cp]
}

// HasDecomposition reports whether cp has a canonical decomposition
// (Hangul syllables are handled separately by IsHangul/DecomposeHangul).
func HasDecomposition(cp rune) bool {
	_, ok := decomposition[cp]
	return ok
}

const (
	hangulBase  = 0xAC00
	hangulEnd   = 0xD7A3
	jamoLBase   = 0x1100
	jamoVBase   = 0x1161
	jamoTBase   = 0x11A7
	jamoTCount  = 28
	jamoVCount  = 21
)

// IsHangul reports whether cp is a precomposed Hangul syllable in
// [0xAC00, 0xD7A3].
func IsHangul(cp rune) bool {
	return cp >= hangulBase && cp <= hangulEnd
}

// DecomposeHangul algorithmically decomposes a Hangul syllable into its
// L, V, and (if present) T jamo, per §4.2.
func DecomposeHangul(cp rune) []rune {
	s := cp - hangulBase
	t := s % jamoTCount
	s /= jamoTCount
	v := s % jamoVCount
	l := s / jamoVCount

	out := []rune{jamoLBase + l, jamoVBase + v}
	if t != 0 {
		out = append(out, jamoTBase+t)
	}
	return out
}

// NeedsDecomposition reports whether cp is "interesting" for
// normalization purposes: it either decomposes, is a combining mark
// (nonzero CCC), or is a Hangul syllable. Code points for which this is
// false can never participate in reordering or decomposition, which is
// the basis of Normalize's fast path.
func NeedsDecomposition(cp rune) bool {
	return ccc[cp] != 0 || HasDecomposition(cp) || IsHangul(cp)
}
