package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Genre
		wantErr bool
	}{
		{name: "exact match", input: "Drama", want: GenreDrama},
		{name: "lowercase", input: "comedy", want: GenreComedy},
		{name: "hyphenated without hyphen", input: "scifi", want: GenreSciFi},
		{name: "spaced sci fi", input: "Sci Fi", want: GenreSciFi},
		{name: "multi word with underscores", input: "slice_of_life", want: GenreSliceOfLife},
		{name: "surrounding whitespace", input: "  Mystery ", want: GenreMystery},
		{name: "unknown genre", input: "Western", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGenre(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidGenre)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestParseTone(t *testing.T) {
	got, err := ParseTone("melancholic")
	require.NoError(t, err)
	assert.Equal(t, ToneMelancholic, got)

	_, err = ParseTone("Angry")
	assert.ErrorIs(t, err, ErrInvalidTone)
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{"english", LangEnglish},
		{"EN", LangEnglish},
		{"hindi", LangHindi},
		{"hi", LangHindi},
		{"हिंदी", LangHindi},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLanguage("tamil")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestLengthActCount(t *testing.T) {
	tests := []struct {
		length Length
		want   int
	}{
		{LengthShort, 3},
		{LengthMedium, 4},
		{LengthLong, 5},
		{Length(""), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.length), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.length.ActCount())
		})
	}
}

func TestParseLength(t *testing.T) {
	got, err := ParseLength("5")
	require.NoError(t, err)
	assert.Equal(t, LengthLong, got)

	got, err = ParseLength("Short")
	require.NoError(t, err)
	assert.Equal(t, LengthShort, got)

	_, err = ParseLength("epic")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestEnumValid(t *testing.T) {
	assert.False(t, Genre("").Valid())
	assert.False(t, Tone("Sad").Valid())
	assert.False(t, Language("french").Valid())
	assert.False(t, Length("tiny").Valid())

	for _, g := range AllGenres {
		assert.True(t, g.Valid(), g)
	}
	for _, tone := range AllTones {
		assert.True(t, tone.Valid(), tone)
	}
}

func TestBeatConstructors(t *testing.T) {
	action := ActionBeat("The door swings open.")
	assert.Equal(t, BeatAction, action.Type)
	assert.Empty(t, action.Speaker)
	assert.False(t, action.IsDialogue())

	line := DialogueBeat("Kabir", "We still have time.")
	assert.Equal(t, BeatDialogue, line.Type)
	assert.Equal(t, "Kabir", line.Speaker)
	assert.True(t, line.IsDialogue())
}

func TestCharacterString(t *testing.T) {
	assert.Equal(t, "Aarzoo - spirited dreamer", Character{Name: "Aarzoo", Trait: "spirited dreamer"}.String())
	assert.Equal(t, "Kabir", Character{Name: "Kabir"}.String())
}

func TestDefaultGlobalConfig(t *testing.T) {
	cfg := DefaultGlobalConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, LangEnglish, cfg.Defaults.Language)
	assert.Equal(t, LengthMedium, cfg.Defaults.Length)
	assert.Equal(t, GenreDrama, cfg.Defaults.Genre)
	assert.Equal(t, ToneHopeful, cfg.Defaults.Tone)
	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "cl100k_base", cfg.TokenEncoding)
}
