package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/azyu/scriptweaver/pkg/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Format selects a renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON}

var formatAliases = map[string]Format{
	"text":     FormatText,
	"txt":      FormatText,
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
	"html":     FormatHTML,
	"json":     FormatJSON,
}

// ParseFormat resolves a format name or file extension.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, s, strings.Join(names, ", "))
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// JSON returns the indented JSON encoding of doc.
func JSON(doc types.ScriptDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return append(data, '\n'), nil
}

// Render dispatches doc to the renderer for format.
func Render(doc types.ScriptDocument, lang types.Language, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(Text(doc, lang)), nil
	case FormatMarkdown:
		return []byte(Markdown(doc, lang)), nil
	case FormatHTML:
		html, err := HTML(doc, lang)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	case FormatJSON:
		return JSON(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeChars   = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]+`)
	multiUnder    = regexp.MustCompile(`_{2,}`)
)

// Filename derives a download filename from a script title: whitespace runs
// become underscores and the result is lower-cased. Path-unsafe characters
// are removed and a blank title becomes "untitled".
func Filename(title string, format Format) string {
	name := norm.NFKC.String(strings.TrimSpace(title))
	name = unsafeChars.ReplaceAllString(name, "")
	name = whitespaceRun.ReplaceAllString(name, "_")
	name = multiUnder.ReplaceAllString(name, "_")
	name = cases.Lower(language.Und).String(strings.Trim(name, "_."))
	if name == "" {
		name = "untitled"
	}
	return name + format.Extension()
}
