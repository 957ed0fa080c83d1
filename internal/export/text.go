// Package export renders script documents into standalone artifacts.
package export

import (
	"strings"

	"github.com/azyu/scriptweaver/internal/script"
	"github.com/azyu/scriptweaver/pkg/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleSeparator joins genre and tone on the title block.
const titleSeparator = " · "

// Text renders doc as plain, line-oriented text with headings in lang.
// The first line is always the title. Sections, acts and scenes are
// separated by a blank line and the result ends with a single newline.
func Text(doc types.ScriptDocument, lang types.Language) string {
	h := script.HeadingsFor(lang)
	upper := cases.Upper(language.Und)

	var sections []string

	sections = append(sections, lines(
		doc.TitlePage.Title,
		doc.TitlePage.Genre+titleSeparator+doc.TitlePage.Tone,
	))
	sections = append(sections, doc.TitlePage.Logline)
	sections = append(sections, lines(h.Summary, doc.Summary))

	acts := make([]string, 0, len(doc.Structure))
	for _, act := range doc.Structure {
		acts = append(acts, lines(act.Act, act.Focus, act.Stakes))
	}
	sections = append(sections, h.Structure+"\n"+strings.Join(acts, "\n\n"))

	scenes := make([]string, 0, len(doc.Scenes))
	for _, scene := range doc.Scenes {
		block := []string{scene.Heading, scene.Description}
		for _, beat := range scene.Beats {
			if beat.IsDialogue() {
				block = append(block, upper.String(beat.Speaker)+": "+beat.Content)
				continue
			}
			block = append(block, beat.Content)
		}
		scenes = append(scenes, lines(block...))
	}
	sections = append(sections, h.Scenes+"\n"+strings.Join(scenes, "\n\n"))

	sections = append(sections, lines(h.FinalNote, doc.Closing))

	return strings.Join(sections, "\n\n") + "\n"
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}
