package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string, rows joined with "\n".
// Consecutive cells sharing a StyleKey are merged into one run and pushed
// through a single Style.Render call, which is far cheaper than styling
// cell by cell. Keys absent from the style map render as plain text. An
// empty buffer returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	var sb strings.Builder
	chunk := make([]rune, 0, b.W)

	for y := 0; y < b.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := b.cells[y*b.W : (y+1)*b.W]

		for x := 0; x < b.W; {
			style := row[x].Style
			chunk = chunk[:0]
			for x < b.W && row[x].Style == style {
				chunk = append(chunk, row[x].Ch)
				x++
			}
			if s, ok := styles[style]; ok {
				sb.WriteString(s.Render(string(chunk)))
			} else {
				sb.WriteString(string(chunk))
			}
		}
	}
	return sb.String()
}
