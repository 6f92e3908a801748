package uca

// CLDRRoot is the bundled CLDR-root table: in real CLDR, root collation
// starts from DUCET and applies a handful of root-level reordering and
// script-grouping differences. This bundled subset has no such
// differences to model at the scale it covers, so it is built from the
// identical base data as DUCET; CLDRRoot is kept as a distinct Table
// value (rather than an alias) so that any future divergence — and
// locale tailoring, which only ever layers on top of CLDRRoot — has
// somewhere to live without touching DUCET.
var CLDRRoot = buildCLDRRoot()

func buildCLDRRoot() *Table {
	singles, variable, contractions := buildBaseTable()
	return NewTable(singles, variable, contractions)
}
