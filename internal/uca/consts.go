package uca

// Primary-weight layout for the bundled DUCET/CLDR-root data. UCA never
// mandates specific numeric values, only their relative order; this
// module lays variable punctuation at the bottom, then digits, then
// Latin letters, then other scripts in roughly block order, then
// implicit weights at the top.
const (
	variablePrimaryBase = 0x0010
	digitPrimaryBase    = 0x0B00
	digitPrimaryStep    = 0x0004

	latinPrimaryBase = 0x1000
	latinPrimaryStep = 0x0008
	latinLetterCount = 26
	latinPrimaryMax  = latinPrimaryBase + (latinLetterCount-1)*latinPrimaryStep

	arabicPrimaryBase = 0x2000 // default (untailored) position: after Latin
	arabicPrimaryStep = 0x0008

	arabicScriptFirstBase = 0x0400 // ArabicScriptFirst: below digits, above punctuation
	arabicScriptFirstStep = 0x0008
)

// arabicLetters is the canonical letter order this module tailors
// against for both ArabicScriptFirst and ArabicInterleavedWithLatin: the
// Arabic alphabet in its traditional order, with the Persian additions
// پ، چ، ژ، گ inserted at their conventional phonetic positions next to
// ب، ج، ز، ک respectively.
var arabicLetters = []rune{
	'ا', 'ب', 'پ', 'ت', 'ث', 'ج', 'چ', 'ح', 'خ', 'د', 'ذ',
	'ر', 'ز', 'ژ', 'س', 'ش', 'ص', 'ض', 'ط', 'ظ', 'ع', 'غ',
	'ف', 'ق', 'ک', 'گ', 'ل', 'م', 'ن', 'و', 'ه', 'ی',
}
