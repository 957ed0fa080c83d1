// Package types provides shared data models for scriptweaver.
package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidGenre    = errors.New("invalid genre")
	ErrInvalidTone     = errors.New("invalid tone")
	ErrInvalidLanguage = errors.New("invalid language")
	ErrInvalidLength   = errors.New("invalid length")
)

// Genre is the story genre of a brief.
type Genre string

const (
	GenreDrama       Genre = "Drama"
	GenreComedy      Genre = "Comedy"
	GenreThriller    Genre = "Thriller"
	GenreRomance     Genre = "Romance"
	GenreSciFi       Genre = "Sci-Fi"
	GenreMystery     Genre = "Mystery"
	GenreSliceOfLife Genre = "Slice of Life"
)

// AllGenres lists the genres in display order.
var AllGenres = []Genre{
	GenreDrama,
	GenreComedy,
	GenreThriller,
	GenreRomance,
	GenreSciFi,
	GenreMystery,
	GenreSliceOfLife,
}

// Tone is the emotional register of a brief.
type Tone string

const (
	ToneHopeful       Tone = "Hopeful"
	ToneGritty        Tone = "Gritty"
	TonePlayful       Tone = "Playful"
	ToneMelancholic   Tone = "Melancholic"
	ToneInspirational Tone = "Inspirational"
)

// AllTones lists the tones in display order.
var AllTones = []Tone{
	ToneHopeful,
	ToneGritty,
	TonePlayful,
	ToneMelancholic,
	ToneInspirational,
}

// Language selects the phrase tables and headings used for output.
type Language string

const (
	LangEnglish Language = "english"
	LangHindi   Language = "hindi"
)

// AllLanguages lists the supported output languages.
var AllLanguages = []Language{LangEnglish, LangHindi}

// Length controls how many acts a script has.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// AllLengths lists the lengths from shortest to longest.
var AllLengths = []Length{LengthShort, LengthMedium, LengthLong}

// Character is one entry of the cast list: a display name and an optional trait.
type Character struct {
	Name  string `yaml:"name" json:"name"`
	Trait string `yaml:"trait,omitempty" json:"trait,omitempty"`
}

// String returns the descriptor form "Name - trait".
func (c Character) String() string {
	if c.Trait == "" {
		return c.Name
	}
	return c.Name + " - " + c.Trait
}

// Brief is the structured input the document builder expands.
type Brief struct {
	Title      string      `yaml:"title" json:"title"`
	Genre      Genre       `yaml:"genre" json:"genre"`
	Tone       Tone        `yaml:"tone" json:"tone"`
	Language   Language    `yaml:"language" json:"language"`
	Setting    string      `yaml:"setting" json:"setting"`
	Logline    string      `yaml:"logline" json:"logline"`
	Characters []Character `yaml:"characters" json:"characters"`
	Length     Length      `yaml:"length" json:"length"`
}

// TitlePage holds the front matter of a script.
type TitlePage struct {
	Title   string `json:"title"`
	Genre   string `json:"genre"`
	Tone    string `json:"tone"`
	Logline string `json:"logline"`
}

// Act is one entry of the dramatic structure.
type Act struct {
	Act    string `json:"act"`
	Focus  string `json:"focus"`
	Stakes string `json:"stakes"`
}

// BeatType tags the variant of a Beat.
type BeatType string

const (
	BeatAction   BeatType = "action"
	BeatDialogue BeatType = "dialogue"
)

// Beat is a single action line or dialogue line inside a scene.
// Speaker is only set for dialogue beats.
type Beat struct {
	Type    BeatType `json:"type"`
	Speaker string   `json:"speaker,omitempty"`
	Content string   `json:"content"`
}

// ActionBeat returns an action beat.
func ActionBeat(content string) Beat {
	return Beat{Type: BeatAction, Content: content}
}

// DialogueBeat returns a dialogue beat spoken by speaker.
func DialogueBeat(speaker, content string) Beat {
	return Beat{Type: BeatDialogue, Speaker: speaker, Content: content}
}

// IsDialogue reports whether the beat is a dialogue line.
func (b Beat) IsDialogue() bool {
	return b.Type == BeatDialogue
}

// Scene is a located unit of the script with ordered beats.
type Scene struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	Beats       []Beat `json:"beats"`
}

// ScriptDocument is the fully built script.
type ScriptDocument struct {
	TitlePage TitlePage `json:"titlePage"`
	Summary   string    `json:"summary"`
	Structure []Act     `json:"structure"`
	Scenes    []Scene   `json:"scenes"`
	Closing   string    `json:"closing"`
}

// GlobalConfig is the user-wide configuration at ~/.config/scriptweaver/config.yaml.
type GlobalConfig struct {
	Version       int            `yaml:"version"`
	OutputDir     string         `yaml:"output_dir"`
	Defaults      DefaultsConfig `yaml:"defaults"`
	Logging       LoggingConfig  `yaml:"logging"`
	TokenEncoding string         `yaml:"token_encoding"`
}

// DefaultsConfig fills brief fields and the export format when the caller omits them.
type DefaultsConfig struct {
	Language Language `yaml:"language"`
	Length   Length   `yaml:"length"`
	Genre    Genre    `yaml:"genre"`
	Tone     Tone     `yaml:"tone"`
	Format   string   `yaml:"format"`
}

// LoggingConfig specifies logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultGlobalConfig returns a new GlobalConfig with sensible defaults.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Version:   1,
		OutputDir: ".",
		Defaults: DefaultsConfig{
			Language: LangEnglish,
			Length:   LengthMedium,
			Genre:    GenreDrama,
			Tone:     ToneHopeful,
			Format:   "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		TokenEncoding: "cl100k_base",
	}
}

// ParseGenre matches s case-insensitively against the known genres.
func ParseGenre(s string) (Genre, error) {
	key := normalizeKey(s)
	for _, g := range AllGenres {
		if normalizeKey(string(g)) == key {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGenre, s)
}

// Valid reports whether g is one of the known genres.
func (g Genre) Valid() bool {
	for _, known := range AllGenres {
		if g == known {
			return true
		}
	}
	return false
}

// ParseTone matches s case-insensitively against the known tones.
func ParseTone(s string) (Tone, error) {
	key := normalizeKey(s)
	for _, t := range AllTones {
		if normalizeKey(string(t)) == key {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTone, s)
}

// Valid reports whether t is one of the known tones.
func (t Tone) Valid() bool {
	for _, known := range AllTones {
		if t == known {
			return true
		}
	}
	return false
}

// ParseLanguage accepts the language name, its ISO code, or the Hindi endonym.
func ParseLanguage(s string) (Language, error) {
	switch normalizeKey(s) {
	case "english", "en":
		return LangEnglish, nil
	case "hindi", "hi", "हिंदी", "हिन्दी":
		return LangHindi, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
}

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LangEnglish || l == LangHindi
}

// ParseLength accepts a length name or its act count ("3", "4", "5").
func ParseLength(s string) (Length, error) {
	switch normalizeKey(s) {
	case "short", "3":
		return LengthShort, nil
	case "medium", "4":
		return LengthMedium, nil
	case "long", "5":
		return LengthLong, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLength, s)
}

// Valid reports whether l is a known length.
func (l Length) Valid() bool {
	return l == LengthShort || l == LengthMedium || l == LengthLong
}

// ActCount maps the length to its number of acts. Unknown lengths count as medium.
func (l Length) ActCount() int {
	switch l {
	case LengthShort:
		return 3
	case LengthLong:
		return 5
	default:
		return 4
	}
}

// normalizeKey lowercases s and drops spaces, hyphens and underscores so that
// "sci fi", "SCI-FI" and "slice_of_life" all match their enum values.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
