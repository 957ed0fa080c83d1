package tui

import (
	"strings"
	"time"

	"github.com/azyu/scriptweaver/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastError
)

// toastDuration is how long a copy or save result stays on screen.
const toastDuration = 3 * time.Second

// Toast is a short notification drawn over the top-right corner of the view.
type Toast struct {
	Message string
	Level   ToastLevel
	Visible bool

	id int
}

// clearToastMsg hides the toast with the matching id. A newer toast has a
// higher id, so clears scheduled for an older one leave it alone.
type clearToastMsg struct {
	id int
}

type toastLook struct {
	icon  string
	style lipgloss.Style
}

var toastBaseStyle = lipgloss.NewStyle().
	Padding(0, 1).
	BorderStyle(lipgloss.RoundedBorder())

var toastLooks = map[ToastLevel]toastLook{
	ToastInfo:    {"ℹ", toastBaseStyle.BorderForeground(styles.Primary).Foreground(styles.Primary)},
	ToastSuccess: {"✓", toastBaseStyle.BorderForeground(styles.Secondary).Foreground(styles.Secondary)},
	ToastError:   {"✗", toastBaseStyle.BorderForeground(styles.Error).Foreground(styles.Error)},
}

// show replaces t with a visible toast and returns the command that hides it
// again after duration.
func (t *Toast) show(msg string, level ToastLevel, duration time.Duration) tea.Cmd {
	id := t.id + 1
	*t = Toast{Message: msg, Level: level, Visible: true, id: id}
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return clearToastMsg{id: id}
	})
}

func (t *Toast) Update(msg tea.Msg) {
	if c, ok := msg.(clearToastMsg); ok && c.id == t.id {
		*t = Toast{id: t.id}
	}
}

// View renders the toast no wider than maxWidth cells.
func (t Toast) View(maxWidth int) string {
	if !t.Visible || t.Message == "" {
		return ""
	}

	look, ok := toastLooks[t.Level]
	if !ok {
		look = toastLooks[ToastInfo]
	}

	// Border, padding and icon take ten cells.
	msg := t.Message
	if maxWidth > 10 && ansi.PrintableRuneWidth(msg) > maxWidth-10 {
		msg = truncate.StringWithTail(msg, uint(maxWidth-10), "...")
	}
	return look.style.Render(look.icon + " " + msg)
}

func widestLine(lines []string) int {
	widest := 0
	for _, l := range lines {
		widest = max(widest, ansi.PrintableRuneWidth(l))
	}
	return widest
}

// placeOverlay draws fg over bg with its top-left corner at (x, y), clamped
// so fg stays inside bg.
func placeOverlay(x, y int, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	fgWidth, bgWidth := widestLine(fgLines), widestLine(bgLines)

	if fgWidth >= bgWidth && len(fgLines) >= len(bgLines) {
		return fg
	}

	x = max(0, min(x, bgWidth-fgWidth))
	y = max(0, min(y, len(bgLines)-len(fgLines)))

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i < y || i >= y+len(fgLines) {
			b.WriteString(bgLine)
			continue
		}

		left := truncate.String(bgLine, uint(x))
		pos := ansi.PrintableRuneWidth(left)
		b.WriteString(left)
		if pos < x {
			b.WriteString(strings.Repeat(" ", x-pos))
			pos = x
		}

		fgLine := fgLines[i-y]
		b.WriteString(fgLine)
		pos += ansi.PrintableRuneWidth(fgLine)

		if pos < ansi.PrintableRuneWidth(bgLine) {
			b.WriteString(skipCells(bgLine, pos))
		}
	}
	return b.String()
}

// skipCells drops the first n display cells of s.
func skipCells(s string, n int) string {
	width := 0
	for i, r := range s {
		if width >= n {
			return s[i:]
		}
		width += ansi.PrintableRuneWidth(string(r))
	}
	return ""
}

func renderToastTopRight(toast, background string, padding int) string {
	if toast == "" {
		return background
	}
	x := lipgloss.Width(background) - lipgloss.Width(toast) - padding
	return placeOverlay(x, padding, toast, background)
}
