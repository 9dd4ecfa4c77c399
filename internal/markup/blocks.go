package markup

import (
	"fmt"
	"strings"
)

// Block is a single structured element of a description: a Paragraph or a
// ListItem.
type Block interface {
	HTML() string
	block()
}

// Attr is a start-tag attribute in source order.
type Attr struct {
	Key string
	Val string
}

// Paragraph is a paragraph-level element. The class attribute keeps its
// position in Attrs but its value is taken from Classes.
type Paragraph struct {
	Tag     string
	Attrs   []Attr
	Classes []string
	Text    string
}

// ListItem is a bullet line; consecutive items share one enclosing list.
type ListItem struct {
	Classes []string
	Text    string
}

func (Paragraph) block() {}
func (ListItem) block()  {}

// HTML renders the paragraph with its reassembled start tag.
func (p Paragraph) HTML() string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(p.Tag)
	for _, attr := range p.Attrs {
		val := attr.Val
		if attr.Key == "class" {
			val = strings.Join(p.Classes, " ")
		}
		if val == "" {
			continue
		}
		quote := `"`
		if strings.Contains(val, `"`) {
			quote = "'"
		}
		fmt.Fprintf(&sb, " %s=%s%s%s", attr.Key, quote, val, quote)
	}
	sb.WriteString(">")
	sb.WriteString(p.Text)
	sb.WriteString("</p>")
	return sb.String()
}

// HTML renders the list item without its enclosing list.
func (li ListItem) HTML() string {
	if len(li.Classes) == 0 {
		return "<li>" + li.Text + "</li>"
	}
	return fmt.Sprintf(`<li class="%s">%s</li>`, strings.Join(li.Classes, " "), li.Text)
}

// Render concatenates blocks in order, wrapping each run of list items in a
// single <ul>.
func Render(blocks []Block) string {
	var sb strings.Builder
	inList := false
	for _, b := range blocks {
		switch b.(type) {
		case ListItem:
			if !inList {
				sb.WriteString("<ul>")
				inList = true
			}
		default:
			if inList {
				sb.WriteString("</ul>")
				inList = false
			}
		}
		sb.WriteString(b.HTML())
	}
	if inList {
		sb.WriteString("</ul>")
	}
	return sb.String()
}

// addClass appends class unless already present.
func addClass(classes []string, class string) []string {
	for _, c := range classes {
		if c == class {
			return classes
		}
	}
	return append(classes, class)
}
