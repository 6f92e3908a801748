package uca

// Tailoring selects a locale rewrite applied on top of the CLDR-root
// table, per §4.5. It mirrors collate.Tailoring one level up; this
// package keeps its own copy so that it has no dependency on the
// collate package, which depends on this one.
type Tailoring int

const (
	TailoringNone Tailoring = iota
	TailoringArabicScriptFirst
	TailoringArabicInterleavedWithLatin
)

// Tailor returns a Table reflecting the requested tailoring on top of
// base, which must be the CLDR-root table. TailoringNone returns base
// itself. The DUCET table has no tailoring defined for it at all; the
// collate package is responsible for rejecting that combination before
// ever calling Tailor.
//
// Both tailorings work by rewriting the primary weight of every Arabic
// base letter in arabicLetters, leaving secondary, tertiary, and
// variable weights untouched: script reordering is purely a primary-
// level concern. Only the first CE of a (possibly multi-CE) single
// carries a nonzero primary under this data set's convention, so only
// that CE is rewritten.
func Tailor(base *Table, t Tailoring) *Table {
	switch t {
	case TailoringArabicScriptFirst:
		return rewriteArabicPrimaries(base, arabicScriptFirstBase, arabicScriptFirstStep)
	case TailoringArabicInterleavedWithLatin:
		return rewriteArabicInterleaved(base)
	default:
		return base
	}
}

// arabicRelatedBase maps an Arabic mark, ligature, or presentation-form
// code point to the base letter it must move together with under
// tailoring: whatever delta a tailoring applies to the base letter's
// primary, the related code point's own primary shifts by the identical
// delta, so the two stay adjacent in sort order exactly as they were
// before tailoring. The bundled table carries one such entry (see
// buildArabicPresentationSingles in data.go); a fuller table would list
// every ligature and presentation form here the same way.
var arabicRelatedBase = map[rune]rune{
	0xFEFC: arabicLetters[26], // lam-alef ligature, final form: tracks ل
}

func rewriteArabicPrimaries(base *Table, primaryBase uint16, step uint16) *Table {
	extra := make(map[rune][]CE, len(arabicLetters))
	oldPrimary := make(map[rune]uint16, len(arabicLetters))
	for i, cp := range arabicLetters {
		ces := base.Lookup(cp)
		if ces == nil {
			continue
		}
		oldPrimary[cp] = ces[0].Primary
		rewritten := append([]CE(nil), ces...)
		rewritten[0].Primary = primaryBase + uint16(i)*step
		extra[cp] = rewritten
	}
	shiftArabicRelated(base, extra, oldPrimary)
	return base.Extend(extra, nil, nil)
}

// rewriteArabicInterleaved places arabicLetters[i] at the midpoint
// between Latin letter i and Latin letter i+1's primary weight (ا after
// A before B, ب after B before C, and so on), per the Glossary's
// canonical pairing. Arabic letters beyond the 26th continue the same
// progression past Z rather than wrapping.
func rewriteArabicInterleaved(base *Table) *Table {
	extra := make(map[rune][]CE, len(arabicLetters))
	oldPrimary := make(map[rune]uint16, len(arabicLetters))
	for i, cp := range arabicLetters {
		ces := base.Lookup(cp)
		if ces == nil {
			continue
		}
		oldPrimary[cp] = ces[0].Primary
		rewritten := append([]CE(nil), ces...)
		rewritten[0].Primary = uint16(latinPrimaryBase + i*latinPrimaryStep + latinPrimaryStep/2)
		extra[cp] = rewritten
	}
	shiftArabicRelated(base, extra, oldPrimary)
	return base.Extend(extra, nil, nil)
}

// shiftArabicRelated applies, to every code point in arabicRelatedBase,
// the same primary-weight delta rewriteArabicPrimaries/Interleaved just
// applied to that code point's base letter, adding the result to extra.
func shiftArabicRelated(base *Table, extra map[rune][]CE, oldPrimary map[rune]uint16) {
	for related, letter := range arabicRelatedBase {
		newLetterCEs, rewritten := extra[letter]
		oldLetterPrimary, hadOldPrimary := oldPrimary[letter]
		if !rewritten || !hadOldPrimary {
			continue
		}
		relatedCEs := base.Lookup(related)
		if relatedCEs == nil {
			continue
		}
		delta := int32(newLetterCEs[0].Primary) - int32(oldLetterPrimary)

		shifted := append([]CE(nil), relatedCEs...)
		shifted[0].Primary = uint16(int32(shifted[0].Primary) + delta)
		extra[related] = shifted
	}
}
