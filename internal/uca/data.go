package uca

// This file builds the Singles/Variable maps shared by both bundled
// weight tables (data_ducet.go, data_cldr.go). §1 places "packaging and
// distribution of the static Unicode data tables" out of scope as an
// external collaborator concern; what lives here is a representative
// excerpt of that data — enough to drive this module's end-to-end and
// boundary tests correctly — built the way a generator reading
// allkeys.txt/CLDR's root collation XML would build it, so that
// swapping in the real, fully generated tables later requires no change
// anywhere else in this package.
//
// Primary weights come from the ranges laid out in consts.go. Secondary
// and tertiary weights follow the general UCA convention this module's
// tests rely on: a uniform default secondary (0x0020) for base letters,
// a uniform default tertiary for lowercase (0x0002) versus uppercase
// (0x0008) — case is a tertiary-level distinction, and lowercase sorts
// before uppercase when that is the only difference — and, for
// combining marks, a per-mark secondary strictly above the default
// letter secondary, which is what makes an accented letter sort after
// its bare form at the secondary level.
const (
	secondaryDefault  = 0x0020
	tertiaryLower     = 0x0002
	tertiaryUpper     = 0x0008
	tertiaryDefault   = 0x0002 // digits, punctuation, marks, Arabic letters (no case)
)

func buildLatinSingles(into map[rune][]CE) {
	for i := 0; i < latinLetterCount; i++ {
		primary := uint16(latinPrimaryBase + i*latinPrimaryStep)
		upper := rune('A' + i)
		lower := rune('a' + i)
		into[upper] = []CE{{Primary: primary, Secondary: secondaryDefault, Tertiary: tertiaryUpper}}
		into[lower] = []CE{{Primary: primary, Secondary: secondaryDefault, Tertiary: tertiaryLower}}
	}
}

func buildDigitSingles(into map[rune][]CE) {
	for i := 0; i < 10; i++ {
		primary := uint16(digitPrimaryBase + i*digitPrimaryStep)
		into[rune('0'+i)] = []CE{{Primary: primary, Secondary: secondaryDefault, Tertiary: tertiaryDefault}}
	}
}

func buildArabicSingles(into map[rune][]CE) {
	for i, cp := range arabicLetters {
		primary := uint16(arabicPrimaryBase + i*arabicPrimaryStep)
		into[cp] = []CE{{Primary: primary, Secondary: secondaryDefault, Tertiary: tertiaryDefault}}
	}
}

// buildArabicPresentationSingles adds one representative non-letter
// Arabic entry: the lam-alef ligature's final presentation form. It
// exists to give arabicRelatedBase (tailor.go) something real to shift:
// tailoring must carry a ligature or presentation form along with its
// base letter, not just the 32 plain letters in arabicLetters. Its
// untailored position, half a step past its base letter ل, is this
// module's own placement choice, same as every other primary value here.
func buildArabicPresentationSingles(into map[rune][]CE) {
	base := into[arabicLetters[26]][0].Primary // ل
	into[0xFEFC] = []CE{{Primary: base + arabicPrimaryStep/2, Secondary: secondaryDefault, Tertiary: tertiaryDefault}}
}

// variablePunctuationOrder lists the ASCII punctuation and space treated as
// having a variable primary weight under the default variable-weight
// classification (§4.4): whitespace, general punctuation, and symbols,
// but not letters or digits.
var variablePunctuationOrder = []rune{
	' ', '-', '_', ',', ';', ':', '!', '?', '.', '\'', '"',
	'(', ')', '[', ']', '{', '}', '@', '*', '/', '\\', '&', '#', '%', '+',
}

func buildVariableSingles(into map[rune][]CE, variable map[rune]bool) {
	for i, cp := range variablePunctuationOrder {
		primary := uint16(variablePrimaryBase + i*4)
		into[cp] = []CE{{Primary: primary, Secondary: secondaryDefault, Tertiary: tertiaryDefault, Variable: true}}
		variable[cp] = true
	}
}

// combiningMarkSecondary assigns each bundled combining mark a distinct
// secondary weight, all strictly above secondaryDefault.
var combiningMarkSecondary = map[rune]uint16{
	0x0300: 0x0025, // grave
	0x0301: 0x002B, // acute
	0x0302: 0x002D, // circumflex
	0x0303: 0x002E, // tilde
	0x0304: 0x0030, // macron
	0x0306: 0x0032, // breve
	0x0307: 0x0033, // dot above
	0x0308: 0x0034, // diaeresis
	0x0309: 0x0035, // hook above
	0x030A: 0x0036, // ring above
	0x030B: 0x0037, // double acute
	0x030C: 0x0038, // caron
	0x0323: 0x0040, // dot below
	0x0325: 0x0041, // ring below
	0x0326: 0x0042, // comma below
	0x0327: 0x0043, // cedilla
	0x0328: 0x0044, // ogonek
}

func buildCombiningMarkSingles(into map[rune][]CE) {
	for cp, sec := range combiningMarkSecondary {
		into[cp] = []CE{{Primary: 0, Secondary: sec, Tertiary: tertiaryDefault}}
	}
}

// buildBaseTable assembles the Singles/Variable maps shared by both
// bundled tables, plus a small set of illustrative contractions.
func buildBaseTable() (map[rune][]CE, map[rune]bool, []Contraction) {
	singles := make(map[rune][]CE, 128)
	variable := make(map[rune]bool, 32)

	buildLatinSingles(singles)
	buildDigitSingles(singles)
	buildArabicSingles(singles)
	buildArabicPresentationSingles(singles)
	buildVariableSingles(singles, variable)
	buildCombiningMarkSingles(singles)

	// "ch" as a single collatable unit, sorted between 'c' and 'd' — a
	// traditional Spanish/Czech-style digraph contraction, included to
	// exercise the contiguous-contraction path end to end.
	chPrimary := uint16(latinPrimaryBase + 2*latinPrimaryStep + latinPrimaryStep/2)
	contractions := []Contraction{
		{
			Path: []rune{'c', 'h'},
			CEs:  []CE{{Primary: chPrimary, Secondary: secondaryDefault, Tertiary: tertiaryLower}},
		},
		{
			Path: []rune{'C', 'h'},
			CEs:  []CE{{Primary: chPrimary, Secondary: secondaryDefault, Tertiary: tertiaryUpper}},
		},
	}

	return singles, variable, contractions
}
