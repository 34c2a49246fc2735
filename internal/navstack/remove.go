package navstack

// holdAndRestore removes the topmost entry matching match from entries.
// Entries above the match are lifted into a holding list, the match is
// popped, and the held entries are put back in their original order. held is
// the number of entries that sat above the match. When nothing matches,
// entries is returned unchanged and ok is false.
//
// The input slice is never modified.
func holdAndRestore[T any](entries []T, match func(T) bool) (rest []T, removed T, held int, ok bool) {
	work := make([]T, len(entries))
	copy(work, entries)

	holding := make([]T, 0, len(work))
	for len(work) > 0 {
		top := work[len(work)-1]
		work = work[:len(work)-1]
		if match(top) {
			removed = top
			ok = true
			break
		}
		holding = append(holding, top)
	}
	if !ok {
		return entries, removed, 0, false
	}
	held = len(holding)
	for len(holding) > 0 {
		work = append(work, holding[len(holding)-1])
		holding = holding[:len(holding)-1]
	}
	return work, removed, held, true
}
