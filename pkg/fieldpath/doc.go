// Package fieldpath implements the dotted/bracketed address space used to
// reach individual answers inside the nested, array-containing section
// records, e.g. "section11.residences[2].dates.from.date". The wizard and the
// answers codec write through Set, which grows repeating-entry slices on
// demand via the owning section's EntryFactory so new entries keep their
// fixed PDF identifiers.
package fieldpath
