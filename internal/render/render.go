// Package render formats clipboard state for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cumulus13/xcp-go/internal/clipboard"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[96m"
	ColorYellow = "\033[93m"
	ColorGreen  = "\033[92m"
	ColorGray   = "\033[90m"
	ColorBold   = "\033[1m"
	ColorRed    = "\033[91m"
)

// Palette holds the escape codes used for output. The zero Palette prints
// plain text.
type Palette struct {
	Reset, Cyan, Yellow, Green, Gray, Bold, Red string
}

// ANSI is the palette for color terminals.
var ANSI = Palette{
	Reset:  ColorReset,
	Cyan:   ColorCyan,
	Yellow: ColorYellow,
	Green:  ColorGreen,
	Gray:   ColorGray,
	Bold:   ColorBold,
	Red:    ColorRed,
}

// NewPalette returns ANSI when color is true and the plain palette otherwise.
func NewPalette(color bool) Palette {
	if color {
		return ANSI
	}
	return Palette{}
}

// FormatSize formats a byte count in human-readable form.
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

const (
	nameWidth = 40
	slotWidth = 7
	timeWidth = 19
	sizeWidth = 10
)

func border(p Palette, left, mid, right string) string {
	cols := []string{
		strings.Repeat("─", nameWidth+2),
		strings.Repeat("─", slotWidth+2),
		strings.Repeat("─", timeWidth+2),
		strings.Repeat("─", sizeWidth+2),
	}
	return p.Gray + left + strings.Join(cols, mid) + right + p.Reset + "\n"
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// Table writes entries as a boxed table with a numbered name column.
func Table(w io.Writer, p Palette, root string, entries []clipboard.Entry) {
	backups := 0
	for _, e := range entries {
		if e.Slot == clipboard.SlotBackup {
			backups++
		}
	}

	fmt.Fprintf(w, "\n%s📋 Clipboard at '%s%s%s%s'%s\n",
		p.Cyan, p.Bold, root, p.Reset, p.Cyan, p.Reset)
	fmt.Fprintf(w, "%sTotal: %d item(s), %d backup(s)%s\n\n",
		p.Gray, len(entries), backups, p.Reset)

	if len(entries) == 0 {
		fmt.Fprintf(w, "%sThe clipboard is empty.%s\n\n", p.Gray, p.Reset)
		return
	}

	fmt.Fprint(w, border(p, "┌", "┬", "┐"))
	fmt.Fprintf(w, "%s│%s %s%s%-*s%s %s│%s %s%s%-*s%s %s│%s %s%s%-*s%s %s│%s %s%s%*s%s %s│%s\n",
		p.Gray, p.Reset,
		p.Bold, p.Yellow, nameWidth, "Name", p.Reset,
		p.Gray, p.Reset,
		p.Bold, p.Yellow, slotWidth, "Slot", p.Reset,
		p.Gray, p.Reset,
		p.Bold, p.Yellow, timeWidth, "Modified", p.Reset,
		p.Gray, p.Reset,
		p.Bold, p.Yellow, sizeWidth, "Size", p.Reset,
		p.Gray, p.Reset)
	fmt.Fprint(w, border(p, "├", "┼", "┤"))

	// Room for the "NN. " prefix.
	maxNameLen := nameWidth - 5
	for i, e := range entries {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		name = truncate(name, maxNameLen)

		color := p.Green
		if e.Slot == clipboard.SlotBackup {
			color = ""
		}

		size := FormatSize(e.Size)
		if e.IsDir {
			size = "-"
		}

		fmt.Fprintf(w, "%s│%s %s%3d. %-*s%s %s│%s %-*s %s│%s %-*s %s│%s %*s %s│%s\n",
			p.Gray, p.Reset,
			color, i+1, maxNameLen, name, p.Reset,
			p.Gray, p.Reset,
			slotWidth, e.Slot,
			p.Gray, p.Reset,
			timeWidth, e.ModTime.Format("2006-01-02 15:04:05"),
			p.Gray, p.Reset,
			sizeWidth, size,
			p.Gray, p.Reset)
	}

	fmt.Fprint(w, border(p, "└", "┴", "┘"))
	fmt.Fprintln(w)
}
