// Package brief loads, validates and saves brief files.
//
// A brief file is either YAML or Markdown with YAML frontmatter. In the
// Markdown form the H1 heading supplies the title and the remaining body
// supplies the logline when the frontmatter leaves them out.
package brief

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/azyu/scriptweaver/internal/script"
	"github.com/azyu/scriptweaver/internal/storage"
	"github.com/azyu/scriptweaver/pkg/types"
	"gopkg.in/yaml.v3"
)

var (
	ErrBriefNotFound = errors.New("brief file not found")
	ErrEmptyTitle    = errors.New("title is required")
)

// File is the on-disk form of a brief. Enum fields are kept as plain strings
// so that validation can report every bad field at once.
type File struct {
	Title          string   `yaml:"title"`
	Genre          string   `yaml:"genre"`
	Tone           string   `yaml:"tone"`
	Language       string   `yaml:"language"`
	Setting        string   `yaml:"setting"`
	Logline        string   `yaml:"logline"`
	Characters     []string `yaml:"characters,omitempty"`
	CharacterNotes string   `yaml:"character_notes,omitempty"`
	Length         string   `yaml:"length"`
}

// Sample returns the brief the original tool opens with.
func Sample() *File {
	return &File{
		Title:          "Dil Se Digital",
		Genre:          string(types.GenreDrama),
		Tone:           string(types.ToneHopeful),
		Language:       string(types.LangHindi),
		Setting:        "Mumbai coworking studio",
		Logline:        "A spirited creator races to shoot a viral short before the sun sets on her rooftop studio.",
		CharacterNotes: "Aarzoo - spirited dreamer, Kabir - loyal friend, Rhea - bold rival",
		Length:         string(types.LengthMedium),
	}
}

// Load reads a brief file from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBriefNotFound, path)
		}
		return nil, fmt.Errorf("failed to read brief: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return parseMarkdown(string(data))
	default:
		return parseYAML(data)
	}
}

func parseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse brief: %w", err)
	}
	return &f, nil
}

func parseMarkdown(content string) (*File, error) {
	frontmatter, body := storage.ParseMarkdownFrontmatter(content)

	f := &File{}
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), f); err != nil {
			return nil, fmt.Errorf("failed to parse brief frontmatter: %w", err)
		}
	}

	if f.Title == "" {
		f.Title = storage.ParseMarkdownTitle(body)
	}
	if f.Logline == "" {
		f.Logline = strings.Join(strings.Fields(storage.StripMarkdownTitle(body)), " ")
	}
	return f, nil
}

// Save writes f as YAML to path atomically.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal brief: %w", err)
	}

	if err := storage.AtomicWriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write brief: %w", err)
	}
	return nil
}

// ToBrief validates f and converts it to a Brief. All invalid fields are
// reported together in a joined error.
func (f *File) ToBrief() (types.Brief, error) {
	var errs []error

	title := strings.TrimSpace(f.Title)
	if title == "" {
		errs = append(errs, ErrEmptyTitle)
	}

	genre, err := types.ParseGenre(f.Genre)
	if err != nil {
		errs = append(errs, err)
	}
	tone, err := types.ParseTone(f.Tone)
	if err != nil {
		errs = append(errs, err)
	}
	lang, err := types.ParseLanguage(f.Language)
	if err != nil {
		errs = append(errs, err)
	}
	length, err := types.ParseLength(f.Length)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return types.Brief{}, errors.Join(errs...)
	}

	return types.Brief{
		Title:      title,
		Genre:      genre,
		Tone:       tone,
		Language:   lang,
		Setting:    strings.TrimSpace(f.Setting),
		Logline:    strings.TrimSpace(f.Logline),
		Characters: f.characters(),
		Length:     length,
	}, nil
}

// characters merges the list form and the free-text notes, list first.
func (f *File) characters() []types.Character {
	var cast []types.Character
	for _, descriptor := range f.Characters {
		if strings.TrimSpace(descriptor) == "" {
			continue
		}
		cast = append(cast, script.ParseCharacter(descriptor))
	}
	return append(cast, script.ParseCharacters(f.CharacterNotes)...)
}

// FromBrief converts a Brief back to its file form.
func FromBrief(b types.Brief) *File {
	descriptors := make([]string, len(b.Characters))
	for i, c := range b.Characters {
		descriptors[i] = c.String()
	}

	return &File{
		Title:      b.Title,
		Genre:      string(b.Genre),
		Tone:       string(b.Tone),
		Language:   string(b.Language),
		Setting:    b.Setting,
		Logline:    b.Logline,
		Characters: descriptors,
		Length:     string(b.Length),
	}
}

// ApplyDefaults fills empty enum fields from defaults.
func (f *File) ApplyDefaults(defaults types.DefaultsConfig) {
	if f.Genre == "" {
		f.Genre = string(defaults.Genre)
	}
	if f.Tone == "" {
		f.Tone = string(defaults.Tone)
	}
	if f.Language == "" {
		f.Language = string(defaults.Language)
	}
	if f.Length == "" {
		f.Length = string(defaults.Length)
	}
}
