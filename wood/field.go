package wood

// Field is an ordered, random-access collection of fastener records.
// Insertion order carries no meaning, but enumeration order is deterministic
// for a fixed random seed, which is what reproducibility (spec.md §4.2,
// §8 Determinism) actually depends on.
type Field []Fastener

// removeAt deletes the fastener at index i, preserving the relative order of
// the rest (a plain slice delete — candidate sets are already computed
// before any removal happens within a single pick, so index stability
// within that pass is all that's required).
func (f Field) removeAt(i int) Field {
	return append(f[:i], f[i+1:]...)
}

// CountAfter returns, per spec.md §4.3's missed_fasteners query, a histogram
// over Kind of records whose position exceeds afterPos.
func (f Field) CountAfter(afterPos float64) map[Kind]int {
	counts := make(map[Kind]int, numKinds)
	for _, fastener := range f {
		if fastener.Position > afterPos {
			counts[fastener.Kind]++
		}
	}
	return counts
}
