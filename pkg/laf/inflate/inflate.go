// Package inflate implements Phase 6: converting abstract unit
// coordinates to real pixel coordinates and growing containers bottom-up
// to fit their contents.
package inflate

import (
	"github.com/abstractlayout/laf/pkg/config"
	"github.com/abstractlayout/laf/pkg/icons"
	"github.com/abstractlayout/laf/pkg/model"
)

// localOffset is a container-relative position, held only for the
// duration of Inflate while children are measured bottom-up before their
// ancestors' absolute origin is known.
type localOffset struct{ x, y float64 }

// Inflate writes real (x, y, width, height) onto every element. Primary
// (root) elements get their pixel position by scaling the abstract
// coordinates Phase 5.5 wrote; every other element is positioned relative
// to its container. Containers are grown bottom-up by containment depth
// (deepest first) so a container's box already reflects its children's
// final sizes — including any label overflow, which propagates to every
// ancestor in the same pass — before the container itself is measured. A
// final top-down pass then converts container-relative offsets into
// absolute canvas pixels.
func Inflate(l *model.Layout, info *model.StructureInfo, cfg config.Config) {
	sizeAllElements(l, cfg)
	placeRoots(l, info, cfg)

	maxDepth := 0
	for _, node := range info.ElementTree {
		if node.Depth > maxDepth {
			maxDepth = node.Depth
		}
	}

	offsets := make(map[string]localOffset)
	for depth := maxDepth; depth >= 0; depth-- {
		for _, id := range l.ElementOrder {
			el := l.Elements[id]
			if info.ElementTree[id].Depth != depth || !el.IsContainer() {
				continue
			}
			growOne(l, el, cfg, offsets)
		}
	}

	placeAbsolute(l, info, cfg, offsets)
}

// sizeAllElements assigns every element a baseline icon-derived width and
// height. Containers' sizes are provisional here; growOne overwrites them
// once their children are known.
func sizeAllElements(l *model.Layout, cfg config.Config) {
	for _, id := range l.ElementOrder {
		el := l.Elements[id]
		spec := icons.Lookup(el.Kind)
		el.Width = cfg.IconWidth * spec.WidthMultiplier
		el.Height = cfg.IconWidth * spec.HeightMultiplier
	}
}

// placeRoots converts every primary element's abstract position into its
// absolute pixel position. Non-root elements are positioned later, once
// their container's content origin is known.
func placeRoots(l *model.Layout, info *model.StructureInfo, cfg config.Config) {
	for _, id := range info.PrimaryElements {
		el := l.Elements[id]
		el.X = el.AbsX * cfg.HorizontalStep
		el.Y = cfg.TopMargin + el.AbsY*cfg.VerticalStep
	}
}

// growOne arranges a container's direct children in a horizontal row
// (left-to-right in Contains order), computes the tight bounding box of
// children plus their labels, adds padding and a bottom label reserve,
// and records every child's position relative to the container's own
// content origin in offsets.
func growOne(l *model.Layout, container *model.Element, cfg config.Config, offsets map[string]localOffset) {
	if len(container.Contains) == 0 {
		return
	}

	cursorX := 0.0
	maxChildBottom := 0.0
	maxRight := 0.0
	for _, cid := range container.Contains {
		c := l.Elements[cid]
		labelW, labelH := labelExtent(c, cfg)

		offsets[cid] = localOffset{x: cursorX, y: 0}

		right := cursorX + maxFloat(c.Width, labelW)
		bottom := c.Height + labelH
		if right > maxRight {
			maxRight = right
		}
		if bottom > maxChildBottom {
			maxChildBottom = bottom
		}

		cursorX += c.Width + cfg.MinHorizontalGap
	}

	labelLines := len(container.LabelLines())
	labelReserve := cfg.LabelOffsetBottom + float64(labelLines)*cfg.TextLineHeight

	container.Width = maxRight + 2*cfg.ContainerPadding
	container.Height = maxChildBottom + 2*cfg.ContainerPadding + labelReserve
}

// placeAbsolute walks the containment forest top-down from every primary
// (already placed by placeRoots) and sets each descendant's absolute
// position to its parent's content origin plus its recorded offset.
func placeAbsolute(l *model.Layout, info *model.StructureInfo, cfg config.Config, offsets map[string]localOffset) {
	var place func(id string)
	place = func(id string) {
		el := l.Elements[id]
		node := info.ElementTree[id]
		for _, child := range node.Children {
			off := offsets[child]
			childEl := l.Elements[child]
			childEl.X = el.X + cfg.ContainerPadding + off.x
			childEl.Y = el.Y + cfg.ContainerPadding + off.y
			place(child)
		}
	}

	for _, id := range info.PrimaryElements {
		place(id)
	}
}

// labelExtent estimates the pixel footprint of an element's label: width
// from character count, height from line count. There is no real font
// metrics dependency in this repo (see DESIGN.md); this is a deliberately
// coarse estimate that downstream label-position optimisers (out of
// scope) may refine.
func labelExtent(el *model.Element, cfg config.Config) (width, height float64) {
	lines := el.LabelLines()
	if len(lines) == 0 {
		return 0, 0
	}
	longest := 0
	for _, line := range lines {
		if len(line) > longest {
			longest = len(line)
		}
	}
	return float64(longest) * cfg.TextCharWidth, float64(len(lines)) * cfg.TextLineHeight
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
