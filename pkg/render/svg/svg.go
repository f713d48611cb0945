// Package svg is the Phase 9 SVG sink: it serializes a fully laid-out and
// routed model.Layout to a standalone SVG document. Like pkg/route, it is
// an external collaborator the pipeline hands a read-only Layout to — it
// never mutates layout fields.
package svg

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/abstractlayout/laf/pkg/icons"
	"github.com/abstractlayout/laf/pkg/model"
	"github.com/abstractlayout/laf/pkg/route"
)

const blockInteractionCSS = `
    .element { transition: stroke-width 0.2s ease; }
    .element.highlight { stroke-width: 3; }
    .element-text { transition: transform 0.2s ease; transform-origin: center; transform-box: fill-box; }
    .element-text.highlight { transform: scale(1.08); font-weight: bold; }`

const blockInteractionJS = `
    function highlight(ids) {
      document.querySelectorAll('.element').forEach(el => el.classList.toggle('highlight', ids.includes(el.id.replace('el-', ''))));
      document.querySelectorAll('.element-text').forEach(t => t.classList.toggle('highlight', ids.includes(t.dataset.element)));
    }
    function clearHighlight() {
      document.querySelectorAll('.element, .element-text').forEach(el => el.classList.remove('highlight'));
    }
    document.querySelectorAll('.element').forEach(el => {
      el.addEventListener('mouseenter', () => highlight([el.id.replace('el-', '')]));
      el.addEventListener('mouseleave', clearHighlight);
    });`

// Option configures Render.
type Option func(*renderer)

type renderer struct {
	showEdges bool
	interactive bool
}

// WithEdges enables drawing routed connections on top of the elements.
func WithEdges() Option { return func(r *renderer) { r.showEdges = true } }

// WithInteractive embeds the hover-highlight CSS/JS block.
func WithInteractive() Option { return func(r *renderer) { r.interactive = true } }

// Render serializes l to a standalone SVG document.
func Render(l *model.Layout, opts ...Option) []byte {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Canvas.Width, l.Canvas.Height, l.Canvas.Width, l.Canvas.Height)

	ids := sortedIDs(l)

	for _, id := range ids {
		renderElement(&buf, l.Elements[id])
	}
	if r.showEdges {
		for _, p := range route.Route(l) {
			renderPath(&buf, p)
		}
	}
	for _, id := range ids {
		renderLabel(&buf, l.Elements[id])
	}

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", blockInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", blockInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func sortedIDs(l *model.Layout) []string {
	ids := append([]string(nil), l.ElementOrder...)
	sort.SliceStable(ids, func(i, j int) bool {
		return depthOf(l, ids[i]) < depthOf(l, ids[j])
	})
	return ids
}

// depthOf approximates containment depth by counting ancestors, so
// containers are drawn before their children (which must appear on top).
func depthOf(l *model.Layout, id string) int {
	depth := 0
	for {
		parent := ""
		for _, e := range l.Elements {
			for _, c := range e.Contains {
				if c == id {
					parent = e.ID
				}
			}
		}
		if parent == "" {
			return depth
		}
		id = parent
		depth++
	}
}

func renderElement(buf *bytes.Buffer, el *model.Element) {
	fmt.Fprintf(buf, `  <g id="el-%s" class="element">`+"\n", el.ID)
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="#333" />`+"\n",
		el.X, el.Y, el.Width, el.Height, fillColor(el))

	if !el.IsContainer() {
		spec := icons.Lookup(el.Kind)
		iconSize := minf(el.Width, el.Height) * 0.5
		ix := el.X + (el.Width-iconSize)/2
		iy := el.Y + (el.Height-iconSize)/2
		fmt.Fprintf(buf, `    <g transform="translate(%.1f %.1f) scale(%.4f)">%s</g>`+"\n",
			ix, iy, iconSize/100, spec.Glyph)
	}

	buf.WriteString("  </g>\n")
}

func fillColor(el *model.Element) string {
	if el.Color != "" {
		return el.Color
	}
	if el.IsContainer() {
		return "#f5f5f5"
	}
	return "#ffffff"
}

func renderLabel(buf *bytes.Buffer, el *model.Element) {
	lines := el.LabelLines()
	if len(lines) == 0 {
		return
	}
	const lineHeight = 14.0
	y := el.Bottom() + lineHeight
	for _, line := range lines {
		fmt.Fprintf(buf, `  <text class="element-text" data-element="%s" x="%.1f" y="%.1f" font-size="12" text-anchor="middle">%s</text>`+"\n",
			el.ID, el.CenterX(), y, escapeText(line))
		y += lineHeight
	}
}

func renderPath(buf *bytes.Buffer, p route.Path) {
	if len(p.Points) == 0 {
		return
	}
	buf.WriteString(`  <path d="M `)
	for i, pt := range p.Points {
		if i > 0 {
			buf.WriteString(" L ")
		}
		fmt.Fprintf(buf, "%.1f %.1f", pt.X, pt.Y)
	}
	buf.WriteString(`" fill="none" stroke="#888" stroke-width="1.5" marker-end="url(#arrow)" />` + "\n")
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
