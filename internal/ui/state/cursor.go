package state

// Step moves the cursor by delta, wrapping around either end of the list.
func (l *Level) Step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	next := (l.clampedCursor() + delta) % n
	if next < 0 {
		next += n
	}
	l.Cursor = next
	return old != next
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.jump(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.jump(len(l.Items) - 1)
}

// MoveCursorPageUp moves the cursor up one page without wrapping.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.jump(l.clampedCursor() - l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down one page without wrapping.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.jump(l.clampedCursor() + l.pageSize(maxVisible))
}

// jump places the cursor at idx, clamped to the item range.
func (l *Level) jump(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clampIndex(idx, len(l.Items))
	return old != l.Cursor
}

func (l *Level) clampedCursor() int {
	if len(l.Items) == 0 {
		return 0
	}
	return clampIndex(l.Cursor, len(l.Items))
}

func (l *Level) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Items) {
		maxVisible = len(l.Items)
	}
	if maxVisible < 1 {
		return 1
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport so the cursor row is on screen.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clampIndex(l.Cursor, n)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := l.ViewportOffset
	switch {
	case l.Cursor < offset:
		offset = l.Cursor
	case l.Cursor >= offset+maxVisible:
		offset = l.Cursor - maxVisible + 1
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	l.ViewportOffset = offset
}

// Window returns the half-open range of visible item indexes.
func (l *Level) Window(maxVisible int) (start, end int) {
	n := len(l.Items)
	if maxVisible <= 0 || maxVisible >= n {
		return 0, n
	}
	start = l.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start > n-maxVisible {
		start = n - maxVisible
	}
	return start, start + maxVisible
}

func clampIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
