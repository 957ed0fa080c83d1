package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/azyu/scriptweaver/internal/script"
	"github.com/azyu/scriptweaver/pkg/types"
	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// markdownEscaper escapes characters that would otherwise turn brief text into markup.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
)

// Markdown renders doc in the same section order as Text, using headings,
// emphasis and bold speaker names.
func Markdown(doc types.ScriptDocument, lang types.Language) string {
	h := script.HeadingsFor(lang)
	upper := cases.Upper(language.Und)
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", md(doc.TitlePage.Title))
	fmt.Fprintf(&sb, "*%s%s%s*\n\n", md(doc.TitlePage.Genre), titleSeparator, md(doc.TitlePage.Tone))
	fmt.Fprintf(&sb, "> %s\n\n", md(doc.TitlePage.Logline))

	fmt.Fprintf(&sb, "## %s\n\n%s\n\n", md(h.Summary), md(doc.Summary))

	fmt.Fprintf(&sb, "## %s\n\n", md(h.Structure))
	for _, act := range doc.Structure {
		fmt.Fprintf(&sb, "### %s\n\n%s\n\n*%s*\n\n", md(act.Act), md(act.Focus), md(act.Stakes))
	}

	fmt.Fprintf(&sb, "## %s\n\n", md(h.Scenes))
	for _, scene := range doc.Scenes {
		fmt.Fprintf(&sb, "### %s\n\n*%s*\n\n", md(scene.Heading), md(scene.Description))
		for _, beat := range scene.Beats {
			if beat.IsDialogue() {
				fmt.Fprintf(&sb, "**%s:** %s\n\n", md(upper.String(beat.Speaker)), md(beat.Content))
				continue
			}
			fmt.Fprintf(&sb, "%s\n\n", md(beat.Content))
		}
	}

	fmt.Fprintf(&sb, "## %s\n\n%s\n", md(h.FinalNote), md(doc.Closing))
	return sb.String()
}

// HTML converts the Markdown rendering of doc to an HTML fragment.
func HTML(doc types.ScriptDocument, lang types.Language) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(doc, lang)), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

func md(s string) string {
	return markdownEscaper.Replace(s)
}
