package uca

// Table is an immutable mapping from code points (and contraction
// sequences) to collation elements, per the data model's WeightTable. At
// most one Table is active per comparison: either DUCET or CLDR-root.
//
// A Table is built once (typically by a package-level var initializer)
// and is safe for concurrent read access from any number of goroutines;
// nothing in this package ever mutates a Table after construction.
type Table struct {
	// Singles maps one code point to its collation-element list. Nearly
	// every code point with an entry in the table has exactly one CE;
	// a few expand to two or three (e.g. certain precomposed Latin
	// letters with diacritics that the table chooses not to decompose
	// further).
	Singles map[rune][]CE

	// Contractions resolves multi-code-point sequences, selecting the
	// longest match rooted at a given starter code point, including
	// discontiguous matches across intervening combining marks.
	Contractions *Contractions

	// Variable reports whether a code point's collation element(s) are
	// marked as having a variable primary weight (punctuation, symbols,
	// and whitespace, under the default variable-weight classification).
	// It is kept as a separate set, rather than folded into CE.Variable
	// alone, so that the collate package's prefix trimming and
	// first-primary short circuit can ask the question per code point;
	// the sort-key builder itself reads each CE's own Variable flag.
	Variable map[rune]bool
}

// Lookup returns the CE list for a bare code point, or nil if cp has no
// entry (the caller should then fall back to implicit weights).
func (t *Table) Lookup(cp rune) []CE {
	return t.Singles[cp]
}

// NewTable constructs a Table from a singles map and a set of
// contractions. It is used by the package-level DUCET/CLDR initializers
// and by tailoring extension (§4.5), which layers an extra singles map
// and an extra contraction set on top of the CLDR root.
func NewTable(singles map[rune][]CE, variable map[rune]bool, contractions []Contraction) *Table {
	return &Table{
		Singles:      singles,
		Variable:     variable,
		Contractions: newContractions(contractions),
	}
}

// Extend returns a new Table that overlays extra singles/contractions on
// top of t, without mutating t. Locale tailorings (§4.5) use this to
// build e.g. the Arabic-script table as CLDR root plus a small patch,
// rather than duplicating the entire root table.
func (t *Table) Extend(extraSingles map[rune][]CE, extraVariable map[rune]bool, extraContractions []Contraction) *Table {
	singles := make(map[rune][]CE, len(t.Singles)+len(extraSingles))
	for k, v := range t.Singles {
		singles[k] = v
	}
	for k, v := range extraSingles {
		singles[k] = v
	}

	variable := make(map[rune]bool, len(t.Variable)+len(extraVariable))
	for k, v := range t.Variable {
		variable[k] = v
	}
	for k, v := range extraVariable {
		variable[k] = v
	}

	contractions := t.Contractions.all()
	contractions = append(contractions, extraContractions...)

	return NewTable(singles, variable, contractions)
}
