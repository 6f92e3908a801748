package uca

// DUCET is the bundled Default Unicode Collation Element Table. Real
// DUCET has no locale tailoring layered on it; the collate package
// enforces that by rejecting any construction that pairs Table.DUCET
// with a non-None tailoring before this table is ever used.
var DUCET = buildDUCET()

func buildDUCET() *Table {
	singles, variable, contractions := buildBaseTable()
	return NewTable(singles, variable, contractions)
}
