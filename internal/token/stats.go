package token

import (
	"strings"
	"unicode/utf8"

	"github.com/azyu/scriptweaver/internal/export"
	"github.com/azyu/scriptweaver/pkg/types"
)

// Stats summarises a piece of rendered text.
type Stats struct {
	Lines     int `json:"lines"`
	Words     int `json:"words"`
	Runes     int `json:"runes"`
	Estimated int `json:"estimatedTokens"`
	// Tokens is the exact count, or -1 when no counter was available.
	Tokens int `json:"tokens"`
}

// SceneStats summarises one scene of a document.
type SceneStats struct {
	Heading  string `json:"heading"`
	Actions  int    `json:"actions"`
	Dialogue int    `json:"dialogue"`
	Stats
}

// DocumentStats summarises a whole document as rendered to plain text.
type DocumentStats struct {
	Encoding string       `json:"encoding,omitempty"`
	Acts     int          `json:"acts"`
	Total    Stats        `json:"total"`
	Scenes   []SceneStats `json:"scenes"`
}

// Measure computes Stats for text. counter may be nil.
func Measure(text string, counter *Counter) Stats {
	s := Stats{
		Words:     len(strings.Fields(text)),
		Runes:     utf8.RuneCountInString(text),
		Estimated: EstimateTokens(text),
		Tokens:    -1,
	}
	if text != "" {
		s.Lines = strings.Count(strings.TrimSuffix(text, "\n"), "\n") + 1
	}
	if counter != nil {
		s.Tokens = counter.Count(text)
	}
	return s
}

// MeasureDocument renders doc as text in lang and measures it along with
// each scene. counter may be nil.
func MeasureDocument(doc types.ScriptDocument, lang types.Language, counter *Counter) DocumentStats {
	ds := DocumentStats{
		Acts:   len(doc.Structure),
		Total:  Measure(export.Text(doc, lang), counter),
		Scenes: make([]SceneStats, 0, len(doc.Scenes)),
	}
	if counter != nil {
		ds.Encoding = counter.Encoding()
	}

	for _, scene := range doc.Scenes {
		ss := SceneStats{Heading: scene.Heading}

		parts := []string{scene.Heading, scene.Description}
		for _, beat := range scene.Beats {
			if beat.IsDialogue() {
				ss.Dialogue++
				parts = append(parts, beat.Speaker+": "+beat.Content)
			} else {
				ss.Actions++
				parts = append(parts, beat.Content)
			}
		}
		ss.Stats = Measure(strings.Join(parts, "\n"), counter)
		ds.Scenes = append(ds.Scenes, ss)
	}
	return ds
}
