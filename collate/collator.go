package collate

import (
	"bytes"
	"unicode/utf8"

	"github.com/collate-go/uca/internal/norm"
	"github.com/collate-go/uca/internal/sortkey"
	"github.com/collate-go/uca/internal/uca"
)

// Collate compares a and b and returns a negative number, zero, or a
// positive number as a sorts before, the same as, or after b, per §4.6.
// Malformed UTF-8 is tolerated, never panics: each invalid byte decodes
// to U+FFFD and consumption advances by one byte, matching
// unicode/utf8's own DecodeRune contract.
func (c *Collator) Collate(a, b []byte) int {
	if bytes.Equal(a, b) {
		return 0
	}

	ra := decode(a)
	rb := decode(b)

	if result, ok := asciiFastPath(ra, rb, c.table); ok {
		return result
	}

	na := norm.Normalize(ra)
	nb := norm.Normalize(rb)

	ta, tb := prefixTrim(na, nb, c.table)

	if result, decided := firstPrimaryShortCircuit(ta, tb, c.table); decided {
		return result
	}

	cea := uca.Generate(c.table, ta)
	ceb := uca.Generate(c.table, tb)

	keyA := sortkey.Build(toSortkeyCEs(cea), c.shifting)
	keyB := sortkey.Build(toSortkeyCEs(ceb), c.shifting)

	if result := bytes.Compare(keyA, keyB); result != 0 {
		return result
	}

	if c.tiebreaker {
		return bytes.Compare(a, b)
	}
	return 0
}

// CollateString is Collate for strings, avoiding a caller-side []byte
// conversion.
func (c *Collator) CollateString(a, b string) int {
	return c.Collate([]byte(a), []byte(b))
}

func decode(b []byte) []rune {
	out := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return out
}

func toSortkeyCEs(ces []uca.CE) []sortkey.CE {
	out := make([]sortkey.CE, len(ces))
	for i, ce := range ces {
		out[i] = sortkey.CE{
			Primary:   ce.Primary,
			Secondary: ce.Secondary,
			Tertiary:  ce.Tertiary,
			Variable:  ce.Variable,
		}
	}
	return out
}

// asciiFastPath implements §9's all-ASCII optimization: if both operands
// are entirely ASCII letters and digits, the full decode/normalize/
// generate/sort-key pipeline is unnecessary — a direct case-folded
// comparison, tiebroken by case, gives the identical result far more
// cheaply. It is restricted to letters and digits over the operands'
// *entire* length (not merely a shared prefix), none of which starts a
// contraction in t, which is what keeps it exact: neither operand can
// contain a combining mark, contraction, or variable-weight punctuation
// that the full pipeline would have treated specially.
func asciiFastPath(a, b []rune, t *uca.Table) (result int, ok bool) {
	if !isASCIIAlnum(a) || !isASCIIAlnum(b) {
		return 0, false
	}
	for _, cps := range [][]rune{a, b} {
		for _, cp := range cps {
			if t.Contractions.HasRoot(cp) {
				return 0, false
			}
		}
	}

	n, m := len(a), len(b)
	lim := n
	if m < lim {
		lim = m
	}
	for i := 0; i < lim; i++ {
		al, bl := lowerASCII(a[i]), lowerASCII(b[i])
		if al != bl {
			return cmpRune(al, bl), true
		}
	}
	if n != m {
		return cmpInt(n, m), true
	}

	for i := 0; i < n; i++ {
		af, bf := fixedASCII(a[i]), fixedASCII(b[i])
		if af != bf {
			return cmpRune(af, bf), true
		}
	}
	return 0, true
}

func isASCIIAlnum(cps []rune) bool {
	for _, cp := range cps {
		if !(cp >= '0' && cp <= '9') && !(cp >= 'A' && cp <= 'Z') && !(cp >= 'a' && cp <= 'z') {
			return false
		}
	}
	return true
}

func lowerASCII(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + 32
	}
	return c
}

func fixedASCII(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c * 2
	}
	return c
}

func cmpRune(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// prefixTrim implements §9's prefix-trimming optimization: a shared
// leading run of code points that cannot possibly behave differently
// once CEs are generated — not a contraction root, not a combining mark,
// and mapped to exactly one non-variable, non-ignorable CE — contributes
// an identical run of CEs to both operands and so can never affect which
// one sorts first. Trimming it saves generating and comparing those CEs
// at all, without changing the result.
func prefixTrim(a, b []rune, t *uca.Table) ([]rune, []rune) {
	n, m := len(a), len(b)
	lim := n
	if m < lim {
		lim = m
	}

	i := 0
	for i < lim && a[i] == b[i] && safeToTrim(a[i], t) {
		i++
	}
	return a[i:], b[i:]
}

func safeToTrim(cp rune, t *uca.Table) bool {
	if t.Contractions.HasRoot(cp) {
		return false
	}
	if t.Variable[cp] {
		return false
	}
	ces := t.Lookup(cp)
	if len(ces) != 1 {
		return false
	}
	return ces[0].Primary != 0
}

// firstPrimaryShortCircuit implements §9's other transparent
// optimization: if the very first CE each operand generates has a
// distinct, non-variable, non-zero primary weight, that single
// comparison already decides level 1, and level 1 alone decides the
// whole comparison — levels 2-4 are never consulted unless level 1 ties.
// This lets two operands that differ in their very first letter skip
// generating the rest of their CE arrays entirely.
func firstPrimaryShortCircuit(a, b []rune, t *uca.Table) (result int, decided bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}

	ceA, variableA, okA := firstCE(a, t)
	ceB, variableB, okB := firstCE(b, t)
	if !okA || !okB {
		return 0, false
	}
	if variableA || variableB || ceA.Primary == 0 || ceB.Primary == 0 {
		return 0, false
	}
	if ceA.Primary == ceB.Primary {
		return 0, false
	}
	if ceA.Primary < ceB.Primary {
		return -1, true
	}
	return 1, true
}

// firstCE returns the first collation element cps would generate,
// without generating the rest of the array, whether that code point is
// classified as variable-weight per the table's own Variable set (the
// authoritative source for that question — cheaper to consult than
// looking at the CE and matching how safeToTrim checks it above), and
// whether the CE could be determined cheaply at all (a contraction root
// makes this unsafe, since the first CE then depends on how many further
// code points it consumes).
func firstCE(cps []rune, t *uca.Table) (ce uca.CE, variable bool, ok bool) {
	if t.Contractions.HasRoot(cps[0]) {
		return uca.CE{}, false, false
	}
	if ces := t.Lookup(cps[0]); len(ces) > 0 {
		return ces[0], t.Variable[cps[0]], true
	}
	return uca.Implicit(cps[0]), false, true
}
