package script

import (
	"regexp"
	"strings"

	"github.com/azyu/scriptweaver/pkg/types"
)

// noteSeparator splits free-text character notes into descriptors.
var noteSeparator = regexp.MustCompile(`[,\n]`)

// traitSeparators divide a descriptor into name and trait, first match wins.
var traitSeparators = []string{" - ", " – ", " — ", ": "}

// ParseCharacters splits character notes on commas and newlines, trims each
// entry and drops empty ones. Each entry becomes a Character via ParseCharacter.
func ParseCharacters(notes string) []types.Character {
	var characters []types.Character
	for _, chunk := range noteSeparator.Split(notes, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		characters = append(characters, ParseCharacter(chunk))
	}
	return characters
}

// ParseCharacter reads a descriptor such as "Aarzoo - spirited dreamer".
// Without a separator the whole descriptor is the name.
func ParseCharacter(descriptor string) types.Character {
	descriptor = strings.TrimSpace(descriptor)

	cut := -1
	sepLen := 0
	for _, sep := range traitSeparators {
		if i := strings.Index(descriptor, sep); i >= 0 && (cut < 0 || i < cut) {
			cut, sepLen = i, len(sep)
		}
	}
	if cut < 0 {
		return types.Character{Name: descriptor}
	}

	name := strings.TrimSpace(descriptor[:cut])
	trait := strings.TrimSpace(descriptor[cut+sepLen:])
	if name == "" {
		return types.Character{Name: descriptor}
	}
	return types.Character{Name: name, Trait: trait}
}
