package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestStructure(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single paragraph",
			in:   "A game about knights.",
			want: "<p>A game about knights.</p>",
		},
		{
			name: "escaped line breaks",
			in:   `First line.\nSecond line.`,
			want: "<p>First line.</p><p>Second line.</p>",
		},
		{
			name: "blank line adds spacing class",
			in:   "First.\n\nSecond.",
			want: `<p>First.</p><p class="spaced-1">Second.</p>`,
		},
		{
			name: "many blank lines clamp to one",
			in:   "First.\n\n\n\nSecond.",
			want: `<p>First.</p><p class="spaced-1">Second.</p>`,
		},
		{
			name: "bullets wrapped once",
			in:   `Features:\n* Swords\n• Shields\n- Horses\nThe end.`,
			want: "<p>Features:</p><ul><li>Swords</li><li>Shields</li><li>Horses</li></ul><p>The end.</p>",
		},
		{
			name: "list at end is closed",
			in:   "Intro\n\n* One\n* Two",
			want: `<p>Intro</p><ul><li class="spaced-1">One</li><li>Two</li></ul>`,
		},
		{
			name: "blank line inside list keeps it open",
			in:   "* One\n\n* Two",
			want: `<ul><li>One</li><li class="spaced-1">Two</li></ul>`,
		},
		{
			name: "existing paragraph tags collapse into lines",
			in:   "<p>One</p><p>Two</p>",
			want: "<p>One</p><p>Two</p>",
		},
		{
			name: "paragraph attributes are kept",
			in:   `<p class="lead" id="intro">Hello</p>`,
			want: `<p class="lead" id="intro">Hello</p>`,
		},
		{
			name: "blank lines before an explicit tag are absorbed",
			in:   "Intro\n\n<p class=\"lead big\">Hello</p>",
			want: `<p>Intro</p><p class="lead big">Hello</p>`,
		},
		{
			name: "spaced hyphen after a real line break is a dash",
			in:   "Intro\n- not a bullet",
			want: "<p>Intro – not a bullet</p>",
		},
		{
			name: "value with double quote uses single quotes",
			in:   `<p title='say "hi"'>Hello</p>`,
			want: `<p title='say "hi"'>Hello</p>`,
		},
		{
			name: "wrapping quotes stripped",
			in:   `"A quoted summary."`,
			want: "<p>A quoted summary.</p>",
		},
		{
			name: "inner quotes kept",
			in:   `"One" and "two"`,
			want: `<p>"One" and "two"</p>`,
		},
		{
			name: "typographic fixups",
			in:   "Wait... what - really\u0092s",
			want: "<p>Wait… what – really’s</p>",
		},
		{
			name: "pre tag is not a paragraph",
			in:   "<pre>code</pre>",
			want: "<p><pre>code</pre></p>",
		},
		{
			name: "empty input",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Structure(tt.in))
		})
	}
}

func TestStructure_Idempotent(t *testing.T) {
	inputs := []string{
		"Just one paragraph of text.",
		"First.\n\nSecond.",
		`<p class="lead">Hello</p>`,
	}

	for _, in := range inputs {
		once := Structure(in)
		assert.Equal(t, once, Structure(once), "input %q", in)
	}
}

func TestParse(t *testing.T) {
	got := Parse("Intro\n\n* Item\n<p class=\"x\">Tail</p>")

	want := []Block{
		Paragraph{Tag: "p", Attrs: []Attr{{Key: "class"}}, Text: "Intro"},
		ListItem{Classes: []string{"spaced-1"}, Text: "Item"},
		Paragraph{Tag: "p", Attrs: []Attr{{Key: "class", Val: "x"}}, Classes: []string{"x"}, Text: "Tail"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseParagraph_MergesSpacing(t *testing.T) {
	p := parseParagraph(`<p class="lead big lead">Hello`, "spaced-1")
	assert.Equal(t, `<p class="lead big spaced-1">Hello</p>`, p.HTML())

	p = parseParagraph(`<p id="x">Hello`, "spaced-1")
	assert.Equal(t, `<p id="x" class="spaced-1">Hello</p>`, p.HTML())

	p = parseParagraph("Hello", "")
	assert.Equal(t, "<p>Hello</p>", p.HTML())
}

func TestParseStartTag(t *testing.T) {
	name, attrs, ok := parseStartTag(`<p class="a b" data-x>`)
	assert.True(t, ok)
	assert.Equal(t, "p", name)
	assert.Equal(t, []Attr{{Key: "class", Val: "a b"}, {Key: "data-x"}}, attrs)

	_, _, ok = parseStartTag("not a tag")
	assert.False(t, ok)
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Tom &amp; Jerry…", Clean("  Tom & Jerry...  ", true))
	assert.Equal(t, "Tom & Jerry…", Clean("Tom & Jerry...", false))
	assert.Equal(t, "“Quoted” – dash", Clean("\u0093Quoted\u0094 \u0097 dash", false))
}
