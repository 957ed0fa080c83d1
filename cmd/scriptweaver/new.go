package main

import (
	"fmt"
	"strings"

	"github.com/azyu/scriptweaver/internal/brief"
	"github.com/azyu/scriptweaver/internal/storage"
	"github.com/azyu/scriptweaver/pkg/types"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <brief.yaml>",
	Short: "Create a brief file interactively",
	Args:  cobra.ExactArgs(1),
	RunE:  runNewCmd,
}

type formStrings struct {
	Title         string
	Genre         string
	Tone          string
	Setting       string
	Logline       string
	Characters    string
	CharactersTip string
	Length        string
	Lengths       map[types.Length]string
	Created       string
	RunToBuild    string
}

var translations = map[types.Language]formStrings{
	types.LangEnglish: {
		Title:         "Title",
		Genre:         "Genre",
		Tone:          "Tone",
		Setting:       "Setting",
		Logline:       "Logline",
		Characters:    "Characters",
		CharactersTip: "One per line or comma separated, e.g. Aarzoo - spirited dreamer",
		Length:        "Length",
		Lengths: map[types.Length]string{
			types.LengthShort:  "Short (3 acts)",
			types.LengthMedium: "Medium (4 acts)",
			types.LengthLong:   "Long (5 acts)",
		},
		Created:    "Created brief %s",
		RunToBuild: "Run 'scriptweaver build %s' to generate the script.",
	},
	types.LangHindi: {
		Title:         "शीर्षक",
		Genre:         "शैली",
		Tone:          "भाव",
		Setting:       "स्थान",
		Logline:       "लॉगलाइन",
		Characters:    "पात्र",
		CharactersTip: "हर पंक्ति में एक पात्र, जैसे Aarzoo - spirited dreamer",
		Length:        "लंबाई",
		Lengths: map[types.Length]string{
			types.LengthShort:  "छोटा (3 अंक)",
			types.LengthMedium: "मध्यम (4 अंक)",
			types.LengthLong:   "लंबा (5 अंक)",
		},
		Created:    "ब्रीफ़ बनाया गया: %s",
		RunToBuild: "स्क्रिप्ट बनाने के लिए 'scriptweaver build %s' चलाएँ।",
	},
}

func runNewCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	force, _ := cmd.Flags().GetBool("force")

	if storage.NewWorkspace(".").Exists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	f := brief.Sample()
	if sample, _ := cmd.Flags().GetBool("sample"); !sample {
		var err error
		if f, err = runBriefForm(f); err != nil {
			return err
		}
	}

	if err := brief.Save(path, f); err != nil {
		return err
	}

	lang, err := types.ParseLanguage(f.Language)
	if err != nil {
		lang = types.LangEnglish
	}
	t := translations[lang]
	fmt.Fprintf(cmd.OutOrStdout(), t.Created+"\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), t.RunToBuild+"\n", path)
	return nil
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return brief.ErrEmptyTitle
	}
	return nil
}

// runBriefForm asks for the output language first so the remaining
// questions can be shown in it.
func runBriefForm(seed *brief.File) (*brief.File, error) {
	lang, err := types.ParseLanguage(seed.Language)
	if err != nil {
		lang = types.LangEnglish
	}

	langForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[types.Language]().
				Title("Language / भाषा").
				Options(
					huh.NewOption("English", types.LangEnglish),
					huh.NewOption("हिंदी", types.LangHindi),
				).
				Value(&lang),
		),
	)
	if err := langForm.Run(); err != nil {
		return nil, fmt.Errorf("language selection failed: %w", err)
	}

	t := translations[lang]
	f := *seed
	f.Language = string(lang)

	genre, _ := types.ParseGenre(seed.Genre)
	tone, _ := types.ParseTone(seed.Tone)
	length, _ := types.ParseLength(seed.Length)

	genres := make([]huh.Option[types.Genre], len(types.AllGenres))
	for i, g := range types.AllGenres {
		genres[i] = huh.NewOption(string(g), g)
	}
	tones := make([]huh.Option[types.Tone], len(types.AllTones))
	for i, tn := range types.AllTones {
		tones[i] = huh.NewOption(string(tn), tn)
	}
	lengths := make([]huh.Option[types.Length], len(types.AllLengths))
	for i, l := range types.AllLengths {
		lengths[i] = huh.NewOption(t.Lengths[l], l)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(t.Title).
				Value(&f.Title).
				Validate(validateTitle),
			huh.NewInput().
				Title(t.Setting).
				Value(&f.Setting),
			huh.NewText().
				Title(t.Logline).
				CharLimit(400).
				Value(&f.Logline),
		),
		huh.NewGroup(
			huh.NewSelect[types.Genre]().
				Title(t.Genre).
				Options(genres...).
				Value(&genre),
			huh.NewSelect[types.Tone]().
				Title(t.Tone).
				Options(tones...).
				Value(&tone),
			huh.NewSelect[types.Length]().
				Title(t.Length).
				Options(lengths...).
				Value(&length),
		),
		huh.NewGroup(
			huh.NewText().
				Title(t.Characters).
				Description(t.CharactersTip).
				Value(&f.CharacterNotes),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("brief form failed: %w", err)
	}

	f.Genre = string(genre)
	f.Tone = string(tone)
	f.Length = string(length)
	f.Characters = nil
	return &f, nil
}
