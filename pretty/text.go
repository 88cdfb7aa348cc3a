package pretty

import (
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"
)

// Segment is a run of text with a common style. A nil style means the
// terminal default.
type Segment struct {
	Text  string
	Style *pterm.Style
}

// Text is a sequence of styled segments. The zero value is an empty text.
type Text struct {
	segments []Segment
}

// NewText creates a text from an optional first segment.
func NewText(s string, style *pterm.Style) *Text {
	return (&Text{}).Add(s, style)
}

// Add appends a segment and returns t. Empty strings are ignored.
func (t *Text) Add(s string, style *pterm.Style) *Text {
	if s == "" {
		return t
	}
	t.segments = append(t.segments, Segment{Text: s, Style: style})
	return t
}

// Append appends all segments of u and returns t.
func (t *Text) Append(u *Text) *Text {
	if u != nil {
		t.segments = append(t.segments, u.segments...)
	}
	return t
}

// Segments returns the segments of t.
func (t *Text) Segments() []Segment {
	return t.segments
}

// Len is the number of runes in t.
func (t *Text) Len() int {
	n := 0
	for _, seg := range t.segments {
		n += utf8.RuneCountInString(seg.Text)
	}
	return n
}

// Truncate returns a text of at most width runes. If anything is cut off,
// the last rune is replaced by an ellipsis.
func (t *Text) Truncate(width int) *Text {
	if width <= 0 {
		return &Text{}
	}
	if t.Len() <= width {
		return t
	}
	cut := &Text{}
	room := width - 1
	for _, seg := range t.segments {
		if room == 0 {
			break
		}
		rs := []rune(seg.Text)
		if len(rs) > room {
			rs = rs[:room]
		}
		cut.Add(string(rs), seg.Style)
		room -= len(rs)
	}
	return cut.Add("…", nil)
}

// String renders t with terminal styles.
func (t *Text) String() string {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.Style == nil {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(seg.Style.Sprint(seg.Text))
	}
	return b.String()
}

// Plain renders t without styles.
func (t *Text) Plain() string {
	var b strings.Builder
	for _, seg := range t.segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}
