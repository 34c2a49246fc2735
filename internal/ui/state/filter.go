package state

import (
	"strings"
	"unicode"
)

// SetFilter replaces the filter query and moves the filter cursor to the
// given rune offset. Starting a filter remembers the menu cursor; clearing it
// puts the cursor back.
func (l *Level) SetFilter(query string, cursor int) {
	was := strings.TrimSpace(l.Filter)
	now := strings.TrimSpace(query)
	l.Filter = query
	l.FilterCursor = clampRange(cursor, 0, len([]rune(query)))

	switch {
	case now != "" && was == "":
		l.LastCursor = l.Cursor
		l.Cursor = 0
	case now != "":
		l.Cursor = 0
	}
	restore := l.LastCursor
	l.applyFilter()

	if now != "" {
		if idx := BestMatchIndex(l.Items, now); idx >= 0 {
			l.Cursor = idx
		}
		return
	}
	if was == "" {
		return
	}
	switch {
	case restore >= 0 && restore < len(l.Items):
		l.Cursor = restore
	case len(l.Items) > 0:
		l.Cursor = len(l.Items) - 1
	}
	l.LastCursor = -1
}

// ClearFilter drops the query. It reports whether there was one.
func (l *Level) ClearFilter() bool {
	if l.Filter == "" {
		return false
	}
	l.SetFilter("", 0)
	return true
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	n := len(l.Items)
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	if l.Cursor < 0 || l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset > n-1 {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the filter cursor clamped to the query length.
func (l *Level) FilterCursorPos() int {
	return clampRange(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilterText inserts text at the filter cursor.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes, pos := l.filterRunes()
	out := make([]rune, 0, len(runes)+len(insert))
	out = append(append(append(out, runes[:pos]...), insert...), runes[pos:]...)
	l.SetFilter(string(out), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward removes the rune before the filter cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	_, pos := l.filterRunes()
	if pos == 0 {
		return false
	}
	return l.cutFilter(pos-1, pos)
}

// DeleteFilterWordBackward removes the word before the filter cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	runes, pos := l.filterRunes()
	if pos == 0 {
		return false
	}
	return l.cutFilter(wordStart(runes, pos), pos)
}

func (l *Level) cutFilter(from, to int) bool {
	runes := []rune(l.Filter)
	out := append(append([]rune{}, runes[:from]...), runes[to:]...)
	l.SetFilter(string(out), from)
	return true
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (l *Level) MoveFilterCursorStart() bool {
	return l.placeFilterCursor(0)
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.placeFilterCursor(len([]rune(l.Filter)))
}

// MoveFilterCursorWordBackward moves the filter cursor to the previous word
// start.
func (l *Level) MoveFilterCursorWordBackward() bool {
	runes, pos := l.filterRunes()
	return l.placeFilterCursor(wordStart(runes, pos))
}

// MoveFilterCursorWordForward moves the filter cursor past the next word.
func (l *Level) MoveFilterCursorWordForward() bool {
	runes, pos := l.filterRunes()
	return l.placeFilterCursor(wordEnd(runes, pos))
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.placeFilterCursor(l.FilterCursorPos() - 1)
}

// MoveFilterCursorRuneForward moves the filter cursor one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.placeFilterCursor(l.FilterCursorPos() + 1)
}

func (l *Level) placeFilterCursor(pos int) bool {
	pos = clampRange(pos, 0, len([]rune(l.Filter)))
	if pos == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = pos
	return true
}

func (l *Level) filterRunes() ([]rune, int) {
	return []rune(l.Filter), l.FilterCursorPos()
}

// wordStart skips spaces then a word, scanning left from pos.
func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// wordEnd skips a word then spaces, scanning right from pos.
func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
