package popover

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// The box style keeps one border row above the items and one border cell plus
// one padding cell left of them. Hit testing and overlay math rely on these.
const (
	boxFrameTop  = 1
	boxFrameLeft = 2
)

// menuView renders the item list inside the menu box. All rows are padded to
// a uniform width so the box measures the same on every line.
func menuView(items []MenuItem, cursor int, styles Styles) string {
	width := 0
	rows := make([]string, len(items))

	for i, item := range items {
		row := ""
		if item.Icon != "" {
			row += styles.Icon.Render(item.Icon) + " "
		}
		row += item.Label
		if item.Kind == KindArrow {
			row += " " + styles.Arrow.Render("▸")
		}
		rows[i] = row
		if w := lipgloss.Width(row); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		if w := lipgloss.Width(row); w < width {
			row += strings.Repeat(" ", width-w)
		}

		style := styles.Item
		selected := i == cursor
		switch {
		case items[i].Kind == KindDanger && selected:
			style = styles.DangerSelected
		case items[i].Kind == KindDanger:
			style = styles.Danger
		case selected:
			style = styles.ItemSelected
		}

		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(style.Render(row))
	}

	return styles.Box.Render(sb.String())
}

// composite paints overlay content onto base at (top, left), splicing each
// overlay row into the corresponding base row with ANSI-aware truncation so
// styled base content keeps its alignment. Rows that fall outside the base
// are dropped rather than extending it.
func composite(base, overlay string, top, left int) string {
	if overlay == "" {
		return base
	}
	if left < 0 {
		left = 0
	}

	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		row := top + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		baseLine := baseLines[row]
		if pad := left - ansi.StringWidth(baseLine); pad > 0 {
			baseLine += strings.Repeat(" ", pad)
		}

		prefix := ansi.Truncate(baseLine, left, "")
		suffix := ansi.TruncateLeft(baseLine, left+ansi.StringWidth(overlayLine), "")
		baseLines[row] = prefix + overlayLine + suffix
	}

	return strings.Join(baseLines, "\n")
}
