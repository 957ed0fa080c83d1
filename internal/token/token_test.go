package token

import (
	"strings"
	"testing"

	"github.com/azyu/scriptweaver/internal/script"
	"github.com/azyu/scriptweaver/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCounter skips when the BPE ranks cannot be loaded, e.g. offline.
func newCounter(t *testing.T, encoding string) *Counter {
	t.Helper()
	counter, err := NewCounter(encoding)
	if err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}
	return counter
}

func TestNewCounter(t *testing.T) {
	tests := []struct {
		name         string
		encoding     string
		wantEncoding string
	}{
		{name: "default encoding", encoding: "", wantEncoding: "cl100k_base"},
		{name: "explicit encoding", encoding: "cl100k_base", wantEncoding: "cl100k_base"},
		{name: "falls back for unknown encoding", encoding: "invalid_encoding", wantEncoding: "cl100k_base"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := newCounter(t, tt.encoding)
			assert.Equal(t, tt.wantEncoding, counter.Encoding())
		})
	}
}

func TestCounter_Count(t *testing.T) {
	counter := newCounter(t, "cl100k_base")

	assert.Equal(t, 0, counter.Count(""))

	text := strings.Repeat("The rooftop studio hums with ideas. ", 20)
	total := counter.Count(text)
	assert.Greater(t, total, 20)
	assert.Less(t, total, len(text))
	assert.Equal(t, total, counter.Count(text))
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"abcd", 1},
		{"abcde", 2},
		{"दिल से", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateTokens(tt.text), tt.text)
	}
}

func TestMeasure(t *testing.T) {
	s := Measure("one two\nthree\n", nil)

	assert.Equal(t, 2, s.Lines)
	assert.Equal(t, 3, s.Words)
	assert.Equal(t, 14, s.Runes)
	assert.Equal(t, 4, s.Estimated)
	assert.Equal(t, -1, s.Tokens)

	assert.Equal(t, Stats{Tokens: -1}, Measure("", nil))
}

func TestMeasureDocument(t *testing.T) {
	doc := script.Build(types.Brief{
		Title:      "Night Shift",
		Genre:      types.GenreThriller,
		Tone:       types.ToneGritty,
		Language:   types.LangEnglish,
		Characters: []types.Character{{Name: "Vik", Trait: "tired detective"}, {Name: "Noor"}},
		Length:     types.LengthShort,
	})

	ds := MeasureDocument(doc, types.LangEnglish, nil)

	assert.Equal(t, 3, ds.Acts)
	assert.Empty(t, ds.Encoding)
	require.Len(t, ds.Scenes, 3)
	assert.Greater(t, ds.Total.Words, 0)

	sceneWords := 0
	for i, ss := range ds.Scenes {
		assert.Equal(t, doc.Scenes[i].Heading, ss.Heading)
		assert.Equal(t, 2, ss.Dialogue)
		assert.Equal(t, len(doc.Scenes[i].Beats), ss.Actions+ss.Dialogue)
		sceneWords += ss.Words
	}
	assert.Less(t, sceneWords, ds.Total.Words)
}

func TestMeasureDocument_WithCounter(t *testing.T) {
	counter := newCounter(t, "")
	doc := script.Build(types.Brief{Title: "Tiny", Length: types.LengthShort})

	ds := MeasureDocument(doc, types.LangHindi, counter)
	assert.Equal(t, "cl100k_base", ds.Encoding)
	assert.Greater(t, ds.Total.Tokens, 0)
}
