package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atomicstack/menu-stack/internal/format/table"
	"github.com/atomicstack/menu-stack/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	// slideColumns is how far a panel starts from its resting column while
	// opening.
	slideColumns = 8
	infoLifetime = 5 * time.Second
	footerHint   = "↑/↓ move  enter select  esc back  ctrl+r close below  ctrl+x close all  ctrl+c quit"
	submenuMark  = "›"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	p := m.displayPanel()
	if p == nil {
		if m.errMsg != "" {
			return render(styles.Error, "Error: "+m.errMsg)
		}
		return ""
	}
	width := m.innerWidth()
	lines := make([]styledLine, 0, 16)
	lines = append(lines, m.headerLine(p))

	if current := levelOf(p); current != nil {
		m.syncViewport(current)
		indent := strings.Repeat(" ", m.slideOffset(p))
		start, end := current.Window(m.maxVisibleItems())
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: indent + msg, style: styles.Info})
		}
		labels := itemColumns(current, start, end)
		for idx := start; idx < end; idx++ {
			lines = append(lines, buildItemLine(current, idx, labels[idx-start], indent, width))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerHint, style: styles.Footer})
	}
	lines = limitHeight(lines, m.innerHeight()-2, width)
	lines = applyWidth(lines, width)

	status := styledLine{}
	if m.errMsg != "" {
		status = styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	}
	body := renderLines(append(lines, applyWidth([]styledLine{status}, width)...)) + "\n" + m.filterPrompt()
	if m.backdrop && styles.Backdrop != nil {
		return styles.Backdrop.Render(body)
	}
	return body
}

// displayPanel is the top of the stack, or the last panel while it animates
// away after the stack emptied.
func (m *Model) displayPanel() *panel.Panel {
	if top := m.stack.Peek(); top != nil {
		return top
	}
	if m.leaving != nil && m.leaving.State() == panel.StateClosing {
		return m.leaving
	}
	return nil
}

func (m *Model) slideOffset(p *panel.Panel) int {
	if m.animator == nil {
		return 0
	}
	progress := m.animator.Progress(p.ID())
	return int(math.Round((1 - progress) * slideColumns))
}

// headerLine renders the breadcrumb of stacked titles with the top title
// emphasised.
func (m *Model) headerLine(top *panel.Panel) styledLine {
	titles := make([]string, 0, m.stack.Len())
	for _, p := range m.stack.Panels() {
		titles = append(titles, p.Title())
	}
	if len(titles) == 0 {
		titles = append(titles, top.Title())
	}
	trail := ""
	if len(titles) > 1 {
		trail = strings.Join(titles[:len(titles)-1], menuHeaderSeparator) + menuHeaderSeparator
	}
	return styledLine{
		text:          trail + titles[len(titles)-1],
		style:         styles.Header,
		prefixStyle:   styles.HeaderTrail,
		highlightFrom: len([]rune(trail)),
	}
}

// itemColumns lays out the visible rows so submenu markers share a column.
func itemColumns(current *level, start, end int) []string {
	if end <= start {
		return nil
	}
	rows := make([][]string, 0, end-start)
	for _, item := range current.Items[start:end] {
		hint := ""
		if item.Target != "" {
			hint = submenuMark
		}
		rows = append(rows, []string{item.Label, hint})
	}
	return table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
}

func buildItemLine(current *level, idx int, label, indent string, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	text := indent + "▌ " + label
	if width > 0 {
		if pad := width - table.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: len([]rune(indent)) + 1,
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

func (m *Model) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width
	if m.backdrop && styles.Backdrop != nil {
		w -= styles.Backdrop.GetHorizontalFrameSize()
	}
	if w < 1 {
		return 1
	}
	return w
}

func (m *Model) innerHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height
	if m.backdrop && styles.Backdrop != nil {
		h -= styles.Backdrop.GetVerticalFrameSize()
	}
	return h
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header, status, filter prompt
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.innerHeight() - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := append([]styledLine{}, lines[:height-1]...)
	return append(trimmed, styledLine{text: truncateText("…", width)})
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	out := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		out[i] = line
	}
	return out
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		runes := []rune(line.text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			out[i] = render(line.prefixStyle, string(runes[:line.highlightFrom])) +
				render(line.style, string(runes[line.highlightFrom:]))
			continue
		}
		out[i] = render(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
