// Package script expands a brief into a structured screenplay document.
//
// Build is pure and deterministic: the same brief always produces a deeply
// equal document. All wording comes from the per-language phrasebooks in
// phrases.go; the act slicing and beat composition below are shared by both
// languages.
package script

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/azyu/scriptweaver/pkg/types"
)

// maxDialoguePerScene caps how many characters speak in a single scene.
const maxDialoguePerScene = 3

// summaryCastSize is how many character names the summary mentions.
const summaryCastSize = 3

// Build turns a brief into a complete script document.
//
// Zero-valued enums fall back to Drama, Hopeful, english and medium. Blank
// free-text fields and character names are replaced with language-specific
// defaults, so no field of the result is ever empty.
func Build(brief types.Brief) types.ScriptDocument {
	b := newBuilder(brief)

	return types.ScriptDocument{
		TitlePage: b.titlePage(),
		Summary:   b.summary(),
		Structure: b.structure(),
		Scenes:    b.scenes(),
		Closing:   b.closing(),
	}
}

type builder struct {
	brief types.Brief
	pb    phrasebook
	cast  []types.Character
	vars  map[string]string
}

func newBuilder(brief types.Brief) *builder {
	brief = normalizeBrief(brief)
	pb := phrasesFor(brief.Language)

	b := &builder{
		brief: brief,
		pb:    pb,
		cast:  cleanCast(brief.Characters),
	}

	lead := pb.FallbackLead
	if len(b.cast) > 0 {
		lead = b.cast[0].Name
	}

	b.vars = map[string]string{
		"title":   orDefault(brief.Title, pb.FallbackTitle),
		"genre":   pb.Genres[brief.Genre],
		"a_tone":  pb.Tones[brief.Tone],
		"mood":    pb.Moods[brief.Tone],
		"setting": orDefault(brief.Setting, pb.FallbackSetting),
		"logline": ensureSentence(orDefault(brief.Logline, pb.FallbackLogline)),
		"lead":    lead,
		"cast":    b.castPhrase(),
	}
	return b
}

// normalizeBrief replaces zero-valued enums with their defaults.
func normalizeBrief(brief types.Brief) types.Brief {
	if !brief.Genre.Valid() {
		brief.Genre = types.GenreDrama
	}
	if !brief.Tone.Valid() {
		brief.Tone = types.ToneHopeful
	}
	if !brief.Language.Valid() {
		brief.Language = types.LangEnglish
	}
	if !brief.Length.Valid() {
		brief.Length = types.LengthMedium
	}
	return brief
}

// cleanCast trims names and traits and drops characters without a name.
func cleanCast(characters []types.Character) []types.Character {
	cast := make([]types.Character, 0, len(characters))
	for _, c := range characters {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		cast = append(cast, types.Character{Name: name, Trait: strings.TrimSpace(c.Trait)})
	}
	return cast
}

func (b *builder) titlePage() types.TitlePage {
	return types.TitlePage{
		Title:   b.vars["title"],
		Genre:   string(b.brief.Genre),
		Tone:    string(b.brief.Tone),
		Logline: b.vars["logline"],
	}
}

func (b *builder) summary() string {
	return b.fill(b.pb.Summary)
}

func (b *builder) closing() string {
	return b.fill(b.pb.Closing)
}

// castPhrase joins the first few character names, e.g. "A, B and C".
func (b *builder) castPhrase() string {
	if len(b.cast) == 0 {
		return b.pb.FallbackCast
	}

	n := len(b.cast)
	if n > summaryCastSize {
		n = summaryCastSize
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = b.cast[i].Name
	}

	if n == 1 {
		return names[0]
	}
	return strings.Join(names[:n-1], ", ") + " " + b.pb.Conjunction + " " + names[n-1]
}

// archetypesFor slices the five-step arc to n acts. Act i takes archetype
// round(i*4/(n-1)), which keeps the first act on setup, the last act on
// resolution and spreads the middle acts evenly in between.
func archetypesFor(n int) []archetype {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []archetype{archResolution}
	}

	last := archetypeCount - 1
	arcs := make([]archetype, n)
	for i := 0; i < n; i++ {
		num := 2*i*last + (n - 1)
		arcs[i] = archetype(num / (2 * (n - 1)))
	}
	return arcs
}

func (b *builder) structure() []types.Act {
	arcs := archetypesFor(b.brief.Length.ActCount())
	acts := make([]types.Act, len(arcs))
	for i, arc := range arcs {
		phrases := b.pb.Archetypes[arc]
		acts[i] = types.Act{
			Act:    b.pb.ActLabels[i],
			Focus:  b.fill(phrases.Focus),
			Stakes: b.fill(phrases.Stakes),
		}
	}
	return acts
}

// scenes builds one scene per act. Speakers are drawn from a cursor that
// walks the cast in input order and carries over from scene to scene.
func (b *builder) scenes() []types.Scene {
	arcs := archetypesFor(b.brief.Length.ActCount())
	scenes := make([]types.Scene, len(arcs))
	introduced := make(map[int]bool, len(b.cast))
	cursor := 0

	for i, arc := range arcs {
		phrases := b.pb.Archetypes[arc]

		beats := []types.Beat{types.ActionBeat(b.fill(phrases.Opening))}

		speakers := b.speakersFor(&cursor)
		for _, idx := range speakers {
			if idx < 0 || introduced[idx] {
				continue
			}
			introduced[idx] = true
			if trait := b.cast[idx].Trait; trait != "" {
				beats = append(beats, types.ActionBeat(b.fillWith(b.pb.Introduction, map[string]string{
					"name":  b.cast[idx].Name,
					"trait": trait,
				})))
			}
		}

		for j, idx := range speakers {
			speaker := b.pb.Placeholder
			if idx >= 0 {
				speaker = b.cast[idx].Name
			}
			beats = append(beats, types.DialogueBeat(speaker, b.line(i, j)))
		}

		beats = append(beats, types.ActionBeat(b.fill(phrases.Closing)))

		scenes[i] = types.Scene{
			Heading:     b.heading(i),
			Description: b.fill(phrases.Description),
			Beats:       beats,
		}
	}
	return scenes
}

// speakersFor returns cast indexes for the next scene and advances cursor.
// A single -1 stands for the placeholder speaker when the cast is empty.
func (b *builder) speakersFor(cursor *int) []int {
	if len(b.cast) == 0 {
		return []int{-1}
	}

	n := len(b.cast)
	if n > maxDialoguePerScene {
		n = maxDialoguePerScene
	}
	idxs := make([]int, n)
	for j := range idxs {
		idxs[j] = *cursor % len(b.cast)
		*cursor++
	}
	return idxs
}

// line composes the dialogue for beat j of scene i from a tone line and a genre hook.
func (b *builder) line(scene, beat int) string {
	toneLines := b.pb.ToneLines[b.brief.Tone]
	hooks := b.pb.GenreHooks[b.brief.Genre]
	k := scene + beat
	return toneLines[k%len(toneLines)] + " " + hooks[k%len(hooks)]
}

func (b *builder) heading(i int) string {
	place := b.pb.Interior
	if i%2 == 1 {
		place = b.pb.Exterior
	}
	setting := b.vars["setting"]
	if b.pb.UpperHeadings {
		setting = strings.ToUpper(setting)
	}
	return fmt.Sprintf("%d. %s. %s - %s", i+1, place, setting, b.pb.TimesOfDay[i%archetypeCount])
}

func (b *builder) fill(tmpl string) string {
	return b.fillWith(tmpl, nil)
}

// fillWith substitutes {key} placeholders from the builder vars and extra.
// Keys are sorted so the replacer is built the same way on every call.
func (b *builder) fillWith(tmpl string, extra map[string]string) string {
	merged := make(map[string]string, len(b.vars)+len(extra))
	for k, v := range b.vars {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", merged[k])
	}
	return capitalizeFirst(strings.NewReplacer(pairs...).Replace(tmpl))
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

// ensureSentence appends a full stop unless s already ends a sentence.
func ensureSentence(s string) string {
	r, _ := utf8.DecodeLastRuneInString(s)
	switch r {
	case '.', '!', '?', '।', '"', '\'', '…':
		return s
	}
	return s + "."
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
