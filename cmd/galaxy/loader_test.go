package galaxy

import (
	"testing"

	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/config"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/csvutil"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/errors"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/markup"
	"github.com/Varstahl/GOG-Galaxy-HTML5-exporter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	opts := config.NewOptions()

	rec, err := parseRow(csvutil.Row{
		"title":           "Tom & Jerry...",
		"summary":         "Cat and mouse.",
		"releaseDate":     "1999-01-01",
		"criticsScore":    "70",
		"gameMins":        "90",
		"developers":      "['Dev A', 'Dev B']",
		"platformList":    "['Steam']",
		"dlcs":            "",
		"verticalCover":   "",
		"backgroundImage": "https://cdn.example.com/bg/tom.png?v=2",
		"squareIcon":      "https://cdn.example.com/icon/tom.png",
	}, opts)
	require.NoError(t, err)

	assert.Equal(t, "Tom &amp; Jerry…", rec.Title)
	assert.Equal(t, "https://cdn.example.com/bg/tom.png?v=2", rec.DefaultImage)
	assert.Equal(t, []string{"images/tom.png", "images/tom.png@v=2"}, rec.DefaultImagePaths)
	assert.Equal(t, []string{"Dev A", "Dev B"}, rec.Developers)
	assert.Equal(t, []string{"Steam"}, rec.PlatformList)
	assert.Empty(t, rec.DLCs)
	assert.Equal(t, "tom &amp; jerry...", rec.CanonicalTitle)
	assert.Contains(t, rec.SearchKeys, "tom &amp; jerry…")
}

func TestParseRow_Skipped(t *testing.T) {
	opts := config.NewOptions()
	opts.IgnoreGames = []string{"Hidden"}

	tests := []struct {
		name string
		row  csvutil.Row
	}{
		{name: "no image", row: csvutil.Row{"title": "Doom"}},
		{name: "unusable image url", row: csvutil.Row{"title": "Doom", "verticalCover": "cover.jpg"}},
		{name: "ignored", row: csvutil.Row{"title": "Hidden", "verticalCover": "https://x/h.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRow(tt.row, opts)
			assert.ErrorIs(t, err, csvutil.ErrSkipRow)
		})
	}
}

func TestParseRow_RenameAndSortAs(t *testing.T) {
	opts := config.NewOptions()
	opts.Rename = map[string]string{"Witcher EE": "The Witcher"}
	opts.SortAs = map[string]string{"The Witcher": "witcher 1"}
	opts.Normalize(func(s string) string { return markup.Clean(s, true) })

	rec, err := parseRow(csvutil.Row{"title": "Witcher EE", "verticalCover": "https://x/w.jpg"}, opts)
	require.NoError(t, err)

	assert.Equal(t, "The Witcher", rec.Title)
	assert.Equal(t, "witcher 1", rec.CanonicalTitle)
	assert.Contains(t, rec.SearchKeys, "the witcher")
}

func TestLoadRecords_MissingImageColumns(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteCSV("gameDB.csv", ';', [][]string{
		{"title", "verticalCover", "backgroundImage", "squareIcon"},
		{"Doom", "https://x/doom.jpg", "", ""},
	})

	_, err := LoadRecords(env.Path("gameDB.csv"), ',', config.NewOptions())
	require.Error(t, err)
	assert.True(t, errors.IsMissingColumnError(err))

	records, err := LoadRecords(env.Path("gameDB.csv"), ';', config.NewOptions())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Doom", records[0].Title)
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: "", want: ','},
		{in: ";", want: ';'},
		{in: `\t`, want: '\t'},
		{in: "|", want: '|'},
		{in: ";;", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDelimiter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
