package uca

// Implicit computes the collation element for a code point that has no
// entry in the active Table. The block boundaries and base offsets below
// follow UTS #10 §10.1.3: CJK Unified Ideographs split into a "common"
// sub-block (the original Unicode 1.1-era assignment) and a "rare"
// remainder, CJK Compatibility Ideographs share the common block's base,
// and Tangut, Nushu, and Khitan Small Script each get their own fixed
// base (0xFB00, 0xFB01, 0xFB02), below the CJK bases.
func Implicit(cp rune) CE {
	return ImplicitPair(cp)[0]
}

// ImplicitPair returns the two collation elements implicit weights
// actually occupy: the first carries the AAAA primary (block-derived) and
// the conventional secondary/tertiary; the second carries the BBBB
// primary (code-point-derived) with zero secondary/tertiary, per UTS #10.
// Most callers only need the first CE (Implicit); ImplicitPair is used by
// the generator, which must emit both.
func ImplicitPair(cp rune) [2]CE {
	aaaa := implicitBase(cp)
	bbbb := (implicitOffset(cp) & 0x7FFF) | 0x8000

	return [2]CE{
		{Primary: uint16(aaaa), Secondary: 0x0020, Tertiary: 0x0002},
		{Primary: uint16(bbbb), Secondary: 0x0000, Tertiary: 0x0000},
	}
}

// includedUnassigned lists code points that fall inside one of the block
// ranges below but are not in fact assigned to that block — a handful of
// reserved code points inside the CJK Extension ranges that must still be
// treated as plain-unassigned.
var includedUnassigned = map[rune]bool{
	0x2B73A: true,
	0x2B81E: true,
	0x2CEA2: true,
	0x2EBE1: true,
}

func implicitBase(cp rune) uint32 {
	if includedUnassigned[cp] {
		return 0xFBC0 + uint32(cp>>15)
	}

	switch {
	case cp >= 0x3400 && cp <= 0x4DBF: // CJK Unified Ideographs Extension A ("rare")
		return 0xFB80 + uint32(cp>>15)
	case cp >= 0x4E00 && cp <= 0x9FFF: // CJK Unified Ideographs ("common")
		return 0xFB40 + uint32(cp>>15)
	case cp >= 0xF900 && cp <= 0xFAFF: // CJK Compatibility Ideographs
		return 0xFB40 + uint32(cp>>15)
	case cp >= 0x17000 && cp <= 0x18AFF: // Tangut
		return 0xFB00
	case cp >= 0x18B00 && cp <= 0x18CFF: // Khitan Small Script
		return 0xFB02
	case cp >= 0x18D00 && cp <= 0x18D8F: // Tangut Supplement
		return 0xFB00
	case cp >= 0x1B170 && cp <= 0x1B2FF: // Nushu
		return 0xFB01
	case cp >= 0x20000 && cp <= 0x2A6DF, // CJK Unified Ideographs Extension B
		cp >= 0x2A700 && cp <= 0x2B73F, // Extensions C/D
		cp >= 0x2B740 && cp <= 0x2B81F, // Extension D/E
		cp >= 0x2B820 && cp <= 0x2CEAF, // Extension E/F
		cp >= 0x2CEB0 && cp <= 0x2EBEF, // Extension F/I
		cp >= 0x30000 && cp <= 0x3134F: // Extension G/H
		return 0xFB80 + uint32(cp>>15)
	default:
		return 0xFBC0 + uint32(cp>>15) // unassigned
	}
}

func implicitOffset(cp rune) uint32 {
	if includedUnassigned[cp] {
		return uint32(cp) & 0x7FFF
	}

	switch {
	case cp >= 0x3400 && cp <= 0x4DBF:
		return uint32(cp) & 0x7FFF
	case cp >= 0x4E00 && cp <= 0x9FFF:
		return uint32(cp) & 0x7FFF
	case cp >= 0xF900 && cp <= 0xFAFF:
		return uint32(cp) & 0x7FFF
	case cp >= 0x17000 && cp <= 0x18AFF:
		return uint32(cp) - 0x17000
	case cp >= 0x18B00 && cp <= 0x18CFF:
		return uint32(cp) - 0x18B00
	case cp >= 0x18D00 && cp <= 0x18D8F:
		return uint32(cp) - 0x17000
	case cp >= 0x1B170 && cp <= 0x1B2FF:
		return uint32(cp) - 0x1B170
	default:
		return uint32(cp) & 0x7FFF
	}
}
