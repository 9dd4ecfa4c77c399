package searchkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	testCases := []struct {
		name     string
		title    string
		override string
		expected string
	}{
		{
			name:     "english article moved",
			title:    "The Witcher 3: Wild Hunt",
			expected: "witcher 3: wild hunt, the",
		},
		{
			name:     "indefinite article",
			title:    "A Plague Tale: Innocence",
			expected: "plague tale: innocence, a",
		},
		{
			name:     "italian article",
			title:    "Gli Eroi del Tempo",
			expected: "eroi del tempo, gli",
		},
		{
			name:     "apostrophe article is dropped by the second pass",
			title:    "L'Amica Geniale",
			expected: "amica geniale",
		},
		{
			name:     "article needs a following word",
			title:    "The",
			expected: "the",
		},
		{
			name:     "accents stripped",
			title:    "Pokémon Ōkami",
			expected: "pokemon okami",
		},
		{
			name:     "trademark symbol removed",
			title:    "Tetris™ Effect",
			expected: "tetris effect",
		},
		{
			name:     "registered mark removed",
			title:    "Brand(R) Racing",
			expected: "brand racing",
		},
		{
			name:     "override used verbatim before cleanup",
			title:    "The Witcher",
			override: "Witcher 1(TM)",
			expected: "witcher 1(tm)",
		},
		{
			name:     "override cleanup strips lower case marks",
			title:    "Anything",
			override: "sorted name(tm)",
			expected: "sorted name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Canonical(tc.title, tc.override))
		})
	}
}

func TestGenerate_Witcher(t *testing.T) {
	keys := Generate("The Witcher 3: Wild Hunt", "")

	assert.True(t, strings.HasSuffix(keys.Canonical, ", the"))
	assert.Equal(t, []string{
		"the witcher 3: wild hunt",
		"witcher 3: wild hunt, the",
		"witcher 3: wild hunt the",
		"witcher 3 wild hunt the",
	}, keys.Search)
}

func TestGenerate_SeedsAlwaysPresent(t *testing.T) {
	keys := Generate("Doom", "")

	require.NotEmpty(t, keys.Search)
	assert.Contains(t, keys.Search, "doom")
	assert.Contains(t, keys.Search, keys.Canonical)
	assert.Len(t, keys.Search, 1)
}

func TestGenerate_BigNumbers(t *testing.T) {
	keys := Generate("Warhammer 40,000: Dawn of War", "")

	assert.Contains(t, keys.Search, "warhammer 40000 dawn of war")
	assert.Contains(t, keys.Search, "warhammer 40k dawn of war")
}

func TestGenerate_RomanNumerals(t *testing.T) {
	keys := Generate("Final Fantasy VII", "")

	assert.Equal(t, "final fantasy vii", keys.Canonical)
	assert.Contains(t, keys.Search, "final fantasy 7")
}

func TestGenerate_Punctuation(t *testing.T) {
	keys := Generate("Half-Life 2: Episode One (Deluxe)", "")

	assert.Contains(t, keys.Search, "halflife 2 episode one deluxe")
	for _, key := range keys.Search {
		assert.NotEmpty(t, key)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate("The Elder Scrolls V: Skyrim", "")
	second := Generate("The Elder Scrolls V: Skyrim", "")

	assert.Equal(t, first, second)
	assert.Contains(t, first.Search, "elder scrolls 5 skyrim the")
	assert.LessOrEqual(t, len(first.Search), 6)
}

func TestGenerate_EmptyTitle(t *testing.T) {
	keys := Generate("", "")

	assert.Equal(t, "", keys.Canonical)
	assert.Empty(t, keys.Search)
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "aeon flux", Transliterate("Æon Flux"))
	assert.Equal(t, "strasse...", Transliterate("Straße…"))
	assert.Equal(t, "it's - fine", Transliterate("It’s – Fine"))
	assert.Equal(t, "tetris(tm) effect", Transliterate("Tetris™ Effect"))
}

func TestTransliterate_OtherScripts(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "cyrillic", input: "Ведьмак", expected: "ved'mak"},
		{name: "katakana with voicing marks", input: "ポケモン", expected: "pokemon"},
		{name: "macron", input: "Ōkami", expected: "okami"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Transliterate(tc.input)
			assert.Equal(t, tc.expected, got)
			for _, r := range got {
				require.Less(t, r, rune(128), "non-ASCII rune %q in %q", r, got)
			}
		})
	}
}

func TestCanonical_IsASCII(t *testing.T) {
	for _, title := range []string{"Ведьмак 3", "ポケモン", "Pokémon Ōkami", "Straße…"} {
		canonical := Canonical(title, "")
		for _, r := range canonical {
			assert.Less(t, r, rune(128), "non-ASCII rune %q in canonical %q", r, canonical)
		}
	}
}
