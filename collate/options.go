// Package collate implements Unicode-correct string comparison: decode,
// normalize to NFD, generate collation elements against a weight table,
// build a level-separated sort key, and compare — the five-stage
// pipeline of UTS #10, §2.
package collate

import (
	"errors"

	"github.com/collate-go/uca/internal/sortkey"
	"github.com/collate-go/uca/internal/uca"
)

// Table selects the weight table a Collator is built against.
type Table int

const (
	// CLDR is the CLDR-root table: DUCET plus the root collation's own
	// reordering, and the only table any Tailoring may be layered on.
	CLDR Table = iota
	// DUCET is the Default Unicode Collation Element Table, untailored.
	DUCET
)

// Shifting selects how variable-primary code points (punctuation,
// symbols, whitespace, under the default variable-weight
// classification) affect the sort key, per §4.4.
type Shifting int

const (
	// Shifted moves variable-weight primaries to a fourth, quaternary
	// level, so that "ab" and "a b" compare equal through level 3.
	Shifted Shifting = iota
	// NonIgnorable treats variable-weight code points exactly like any
	// other: their primary weight participates at level 1 as normal.
	NonIgnorable
)

// Tailoring selects a locale-specific rewrite of the CLDR-root table,
// per §4.5. None may be used with either Table; ArabicScriptFirst and
// ArabicInterleavedWithLatin require Table == CLDR.
type Tailoring int

const (
	None Tailoring = iota
	ArabicScriptFirst
	ArabicInterleavedWithLatin
)

// Options configures a Collator. The zero value (CLDR, Shifted, None,
// Tiebreaker false) is a valid, usable configuration.
type Options struct {
	Table      Table
	Shifting   Shifting
	Tailoring  Tailoring
	Tiebreaker bool
}

// ErrDUCETTailoring is returned by NewCollator when Options pairs
// Table: DUCET with a non-None Tailoring. DUCET is, by definition, the
// untailored table; tailoring only ever layers on top of CLDR root.
var ErrDUCETTailoring = errors.New("collate: tailoring requires Table: CLDR, not DUCET")

// Collator compares strings according to a fixed Options configuration.
// A Collator is safe for concurrent use by any number of goroutines: it
// holds no mutable state, only a pointer to an immutable weight table.
type Collator struct {
	table      *uca.Table
	shifting   sortkey.Shifting
	tiebreaker bool
}

// NewCollator builds a Collator for opts, or returns an error if opts
// describes an invalid configuration (§7: this is the one place
// construction-time validation happens; Collate itself never fails).
func NewCollator(opts Options) (*Collator, error) {
	if opts.Table == DUCET && opts.Tailoring != None {
		return nil, ErrDUCETTailoring
	}

	var base *uca.Table
	switch opts.Table {
	case DUCET:
		base = uca.DUCET
	default:
		base = uca.CLDRRoot
	}

	table := uca.Tailor(base, toUCATailoring(opts.Tailoring))

	return &Collator{
		table:      table,
		shifting:   toSortkeyShifting(opts.Shifting),
		tiebreaker: opts.Tiebreaker,
	}, nil
}

func toUCATailoring(t Tailoring) uca.Tailoring {
	switch t {
	case ArabicScriptFirst:
		return uca.TailoringArabicScriptFirst
	case ArabicInterleavedWithLatin:
		return uca.TailoringArabicInterleavedWithLatin
	default:
		return uca.TailoringNone
	}
}

func toSortkeyShifting(s Shifting) sortkey.Shifting {
	if s == NonIgnorable {
		return sortkey.NonIgnorable
	}
	return sortkey.Shifted
}
