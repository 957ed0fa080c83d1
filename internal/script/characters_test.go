package script

import (
	"testing"

	"github.com/azyu/scriptweaver/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestParseCharacters(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  []types.Character
	}{
		{
			name:  "comma separated with traits",
			notes: "Aarzoo - spirited dreamer, Kabir - loyal friend, Rhea - bold rival",
			want: []types.Character{
				{Name: "Aarzoo", Trait: "spirited dreamer"},
				{Name: "Kabir", Trait: "loyal friend"},
				{Name: "Rhea", Trait: "bold rival"},
			},
		},
		{
			name:  "newline separated without traits",
			notes: "Meera\nDev\n",
			want: []types.Character{
				{Name: "Meera"},
				{Name: "Dev"},
			},
		},
		{
			name:  "drops empty entries and trims",
			notes: " ,  Ira  ,,\n\n Sam: the fixer ",
			want: []types.Character{
				{Name: "Ira"},
				{Name: "Sam", Trait: "the fixer"},
			},
		},
		{
			name:  "hyphenated names stay whole",
			notes: "Jean-Luc, Mary-Kate - twin",
			want: []types.Character{
				{Name: "Jean-Luc"},
				{Name: "Mary-Kate", Trait: "twin"},
			},
		},
		{
			name:  "empty input",
			notes: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCharacters(tt.notes))
		})
	}
}

func TestParseCharacter(t *testing.T) {
	assert.Equal(t, types.Character{Name: "Kabir", Trait: "loyal friend"}, ParseCharacter("Kabir — loyal friend"))
	assert.Equal(t, types.Character{Name: "Rhea", Trait: "bold rival"}, ParseCharacter("Rhea – bold rival"))
	assert.Equal(t, types.Character{Name: "- nameless"}, ParseCharacter(" - nameless"))
}
