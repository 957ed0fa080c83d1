// Package tui provides the interactive script preview using Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/azyu/scriptweaver/internal/brief"
	"github.com/azyu/scriptweaver/internal/export"
	"github.com/azyu/scriptweaver/internal/script"
	"github.com/azyu/scriptweaver/internal/storage"
	"github.com/azyu/scriptweaver/internal/tui/styles"
	"github.com/azyu/scriptweaver/pkg/types"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// chromeHeight is the number of lines used by the header, status bar and help.
const chromeHeight = 5

// Model is the preview TUI model. It rebuilds the document whenever one of
// the brief's options changes.
type Model struct {
	brief     types.Brief
	doc       types.ScriptDocument
	format    export.Format
	workspace *storage.Workspace
	briefPath string
	copyFn    func(string) error

	width    int
	height   int
	ready    bool
	err      error
	viewport viewport.Model
	toast    Toast
}

// New creates a preview model for b. Saved files go to ws in format.
func New(b types.Brief, ws *storage.Workspace, format export.Format) *Model {
	m := &Model{
		brief:     b,
		format:    format,
		workspace: ws,
		copyFn:    clipboard.WriteAll,
	}
	m.rebuild()
	return m
}

// SetClipboard replaces the function used by the copy key.
func (m *Model) SetClipboard(fn func(string) error) {
	m.copyFn = fn
}

// SetBriefPath sets the file the write-brief key saves the current options to.
func (m *Model) SetBriefPath(path string) {
	m.briefPath = path
}

// Brief returns the brief with any options changed during the session.
func (m *Model) Brief() types.Brief {
	return m.brief
}

// Document returns the document currently shown.
func (m *Model) Document() types.ScriptDocument {
	return m.doc
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-chromeHeight, 1))
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-chromeHeight, 1)
		}
		m.updateViewport()
		return m, nil

	case copiedMsg:
		m.err = nil
		return m, m.toast.show("Copied script to clipboard", ToastSuccess, toastDuration)

	case savedMsg:
		m.err = nil
		return m, m.toast.show("Saved "+msg.path, ToastSuccess, toastDuration)

	case briefWrittenMsg:
		m.err = nil
		return m, m.toast.show("Wrote brief "+msg.path, ToastSuccess, toastDuration)

	case errMsg:
		m.err = msg.err
		return m, m.toast.show(msg.err.Error(), ToastError, toastDuration)

	case clearToastMsg:
		m.toast.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyMsg handles the option and action keys. Unhandled keys fall
// through to the viewport for scrolling.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit, true

	case "l":
		m.brief.Language = cycle(types.AllLanguages, m.brief.Language)
	case "n":
		m.brief.Length = cycle(types.AllLengths, m.brief.Length)
	case "g":
		m.brief.Genre = cycle(types.AllGenres, m.brief.Genre)
	case "t":
		m.brief.Tone = cycle(types.AllTones, m.brief.Tone)

	case "c":
		return m.copyCmd(), true
	case "s":
		return m.saveCmd(), true
	case "w":
		return m.writeBriefCmd(), true

	default:
		return nil, false
	}

	m.rebuild()
	m.updateViewport()
	m.viewport.GotoTop()
	return nil, true
}

// cycle returns the entry after cur in all, wrapping around. An unknown cur
// selects the first entry.
func cycle[T comparable](all []T, cur T) T {
	for i, v := range all {
		if v == cur {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func (m *Model) rebuild() {
	m.doc = script.Build(m.brief)
}

func (m *Model) copyCmd() tea.Cmd {
	text := export.Text(m.doc, m.brief.Language)
	copyFn := m.copyFn
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return errMsg{err: fmt.Errorf("copy failed: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *Model) saveCmd() tea.Cmd {
	doc, lang, format, ws := m.doc, m.brief.Language, m.format, m.workspace
	return func() tea.Msg {
		if ws == nil {
			return errMsg{err: fmt.Errorf("save failed: no output directory")}
		}
		content, err := export.Render(doc, lang, format)
		if err != nil {
			return errMsg{err: fmt.Errorf("save failed: %w", err)}
		}
		path, err := ws.Write(export.Filename(doc.TitlePage.Title, format), content)
		if err != nil {
			return errMsg{err: fmt.Errorf("save failed: %w", err)}
		}
		return savedMsg{path: path}
	}
}

func (m *Model) writeBriefCmd() tea.Cmd {
	b, path := m.brief, m.briefPath
	return func() tea.Msg {
		if path == "" {
			return errMsg{err: fmt.Errorf("write brief failed: no brief file")}
		}
		if err := brief.Save(path, brief.FromBrief(b)); err != nil {
			return errMsg{err: fmt.Errorf("write brief failed: %w", err)}
		}
		return briefWrittenMsg{path: path}
	}
}

// updateViewport renders the document into the viewport.
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderScript())
}

// renderScript renders the plain-text export with section headings styled
// and lines wrapped to the terminal width.
func (m *Model) renderScript() string {
	text := export.Text(m.doc, m.brief.Language)
	if w := styles.Width(m.width); w > 0 {
		text = wordwrap.String(text, w)
	}

	h := script.HeadingsFor(m.brief.Language)
	headings := map[string]bool{h.Summary: true, h.Structure: true, h.Scenes: true, h.FinalNote: true}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if headings[line] {
			lines[i] = styles.SectionHeading.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// View renders the TUI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var sb strings.Builder

	sb.WriteString(styles.Header.Render("SCRIPT WEAVER - " + m.doc.TitlePage.Title))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n\n")

	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(styles.ErrorText.Render("Error: " + m.err.Error()))
	}
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.renderHelp()))

	return renderToastTopRight(m.toast.View(m.width), sb.String(), 1)
}

func (m *Model) renderStatus() string {
	field := func(key, value string) string {
		return styles.StatusKey.Render(key) + " " + styles.StatusValue.Render(value)
	}
	status := strings.Join([]string{
		field("Language", string(m.brief.Language)),
		field("Length", fmt.Sprintf("%s (%d acts)", m.brief.Length, m.brief.Length.ActCount())),
		field("Genre", string(m.brief.Genre)),
		field("Tone", string(m.brief.Tone)),
		field("Format", string(m.format)),
	}, "  ")
	return styles.StatusBar.Render(status)
}

func (m *Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"l", "language"},
		{"n", "length"},
		{"g", "genre"},
		{"t", "tone"},
		{"c", "copy"},
		{"s", "save"},
		{"w", "write brief"},
		{"q", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = styles.HelpKey.Render(k.key) + styles.HelpDesc.Render(" "+k.desc)
	}
	return strings.Join(parts, "  ")
}

type copiedMsg struct{}

type savedMsg struct {
	path string
}

type briefWrittenMsg struct {
	path string
}

type errMsg struct {
	err error
}
