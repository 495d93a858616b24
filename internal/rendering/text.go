package rendering

import (
	"strconv"
	"strings"

	"github.com/jonathan/cv-composer/internal/blocks"
	"github.com/jonathan/cv-composer/internal/formatting"
)

// Text helpers used by every adapter so visible strings never diverge.

// LinkLabel is the visible text of a link: the target without its scheme.
func LinkLabel(href string) string {
	label := href
	for _, prefix := range []string{"https://", "http://", "mailto:", "tel:"} {
		if strings.HasPrefix(strings.ToLower(label), prefix) {
			label = label[len(prefix):]
			break
		}
	}
	return strings.TrimSuffix(strings.TrimPrefix(label, "www."), "/")
}

// ListMarker is the marker before item i of a rich text list.
func ListMarker(b formatting.RichBlock, i int, bullet string) string {
	if b.Kind == formatting.BlockNumberedList {
		start := b.Start
		if start == 0 {
			start = 1
		}
		return strconv.Itoa(start+i) + "."
	}
	return bullet
}

// TagText is the comma separated rendering of a tag list shown without pills.
func TagText(n blocks.Node) string {
	return strings.Join(n.Tags, ", ")
}

// KeyLabel is the label of a key-value node including its separator.
func KeyLabel(n blocks.Node) string {
	if n.Value == "" {
		return n.Label
	}
	return n.Label + ":"
}

// RichHeadingTag maps a rich heading level to an HTML tag below the section
// title level.
func RichHeadingTag(level int) string {
	switch level {
	case 1:
		return "h3"
	case 2:
		return "h4"
	default:
		return "h5"
	}
}

func nonNil[T any](in []*T) []*T {
	out := in[:0:0]
	for _, n := range in {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
