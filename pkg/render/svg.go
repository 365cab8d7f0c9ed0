package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/mhofer/treelay/pkg/layout"
)

// Default geometry for the layered SVG view, in pixels.
const (
	DefaultUnit        = 10.0 // pixels per logical x unit
	DefaultLevelHeight = 60.0 // pixels per tree level
	DefaultMargin      = 20.0
	DefaultFontSize    = 14.0
	defaultFontFamily  = "monospace"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	unit        float64
	levelHeight float64
	marginX     float64
	marginY     float64
	fontSize    float64
	fontFamily  string
}

// WithUnit sets the number of pixels per logical x unit.
func WithUnit(px float64) SVGOption {
	return func(r *svgRenderer) { r.unit = px }
}

// WithLevelHeight sets the vertical distance between tree levels in pixels.
func WithLevelHeight(px float64) SVGOption {
	return func(r *svgRenderer) { r.levelHeight = px }
}

// WithMargin sets the horizontal and vertical margin around the drawing.
func WithMargin(x, y float64) SVGOption {
	return func(r *svgRenderer) { r.marginX, r.marginY = x, y }
}

// WithFontSize sets the label font size in pixels.
func WithFontSize(px float64) SVGOption {
	return func(r *svgRenderer) { r.fontSize = px }
}

// WithFontFamily sets the label font family.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// RenderSVG draws an embedding as a standalone SVG: one text element per
// placement at its logical position, with a line from every node to its
// parent. Emphasized placements are drawn bold. The output is byte-identical
// across calls for the same embedding and options.
func RenderSVG(e layout.Embedding, opts ...SVGOption) []byte {
	r := svgRenderer{
		unit:        DefaultUnit,
		levelHeight: DefaultLevelHeight,
		marginX:     DefaultMargin,
		marginY:     DefaultMargin,
		fontSize:    DefaultFontSize,
		fontFamily:  defaultFontFamily,
	}
	for _, opt := range opts {
		opt(&r)
	}

	width := 2*r.marginX + float64(e.Width())*r.unit
	height := 2*r.marginY + float64(e.Height())*r.levelHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	// Edges go first so text is never overdrawn.
	for _, p := range e {
		if p.Parent == layout.NoParent {
			continue
		}
		parent := e[p.Parent]
		x1, y1 := r.anchor(parent)
		x2, y2 := r.anchor(p)
		fmt.Fprintf(&buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="1"/>`+"\n",
			x1, y1+r.fontSize*0.8, x2, y2-r.fontSize)
	}

	for _, p := range e {
		x, y := r.anchor(p)
		weight := ""
		if p.Emphasized {
			weight = ` font-weight="bold"`
		}
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="%.1f"%s>%s</text>`+"\n",
			x, y, r.fontFamily, r.fontSize, weight, escapeXML(p.Text))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// anchor returns the pixel position of a placement's text baseline center.
func (r *svgRenderer) anchor(p layout.Placement) (x, y float64) {
	x = r.marginX + float64(p.XCenter)*r.unit
	y = r.marginY + float64(p.YOrder)*r.levelHeight + r.levelHeight/2
	return x, y
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
