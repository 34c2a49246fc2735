package state

import (
	"strings"

	"github.com/atomicstack/menu-stack/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}

// FilterItems keeps the items whose label fuzzily matches query, in their
// original order. When nothing matches fuzzily, a plain substring match on
// label or id is tried instead.
func FilterItems(items []menu.Item, query string) []menu.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneItems(items)
	}
	hits := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(query, labels(items)) {
		hits[rank.OriginalIndex] = struct{}{}
	}
	if len(hits) == 0 {
		lower := strings.ToLower(query)
		for i, item := range items {
			if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
				hits[i] = struct{}{}
			}
		}
	}
	out := make([]menu.Item, 0, len(hits))
	for i, item := range items {
		if _, ok := hits[i]; ok {
			out = append(out, item)
		}
	}
	return out
}

// BestMatchIndex picks the item the cursor should land on for query. Exact
// matches win over prefixes, prefixes over substrings, and substrings over
// the closest fuzzy match. It returns -1 only for an empty list.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0
	}
	lower := strings.ToLower(query)
	tiers := []func(menu.Item) bool{
		func(it menu.Item) bool { return strings.EqualFold(it.Label, query) || strings.EqualFold(it.ID, query) },
		func(it menu.Item) bool { return strings.HasPrefix(strings.ToLower(it.Label), lower) },
		func(it menu.Item) bool { return strings.HasPrefix(strings.ToLower(it.ID), lower) },
		func(it menu.Item) bool { return strings.Contains(strings.ToLower(it.ID), lower) },
		func(it menu.Item) bool { return strings.Contains(strings.ToLower(it.Label), lower) },
	}
	for _, match := range tiers {
		for i, item := range items {
			if match(item) {
				return i
			}
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	return best.OriginalIndex
}

func labels(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
