// Package parser loads diagram files into a model.Layout. It is the
// LAF pipeline's input boundary (see pkg/laf and SPEC_FULL.md §6): the
// pipeline itself performs no I/O, so every file on disk or over the
// wire funnels through here first.
package parser

import (
	"encoding/json"

	"github.com/BurntSushi/toml"

	lerrors "github.com/abstractlayout/laf/pkg/lafio/errors"
	"github.com/abstractlayout/laf/pkg/model"
)

// Document is the canonical on-disk serialization of a diagram: plain,
// JSON/TOML-tagged fields mirroring model.Element/model.Connection, with
// round-trip fidelity as the only goal (import -> layout -> export should
// reproduce the same Document modulo computed pixel fields).
type Document struct {
	Canvas      *CanvasDoc      `json:"canvas,omitempty" toml:"canvas,omitempty"`
	Elements    []ElementDoc    `json:"elements" toml:"elements"`
	Connections []ConnectionDoc `json:"connections,omitempty" toml:"connections,omitempty"`
}

// CanvasDoc is the optional fixed canvas size; omitted when the canvas
// should auto-expand to fit the laid-out diagram.
type CanvasDoc struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// ElementDoc is an element as it appears in a diagram file.
type ElementDoc struct {
	ID       string   `json:"id" toml:"id"`
	Kind     string   `json:"kind,omitempty" toml:"kind,omitempty"`
	Label    string   `json:"label,omitempty" toml:"label,omitempty"`
	Color    string   `json:"color,omitempty" toml:"color,omitempty"`
	Contains []string `json:"contains,omitempty" toml:"contains,omitempty"`
}

// ConnectionDoc is a connection as it appears in a diagram file.
type ConnectionDoc struct {
	From      string `json:"from" toml:"from"`
	To        string `json:"to" toml:"to"`
	Label     string `json:"label,omitempty" toml:"label,omitempty"`
	Relation  string `json:"relation,omitempty" toml:"relation,omitempty"`
	Direction string `json:"direction,omitempty" toml:"direction,omitempty"`
}

// ParseJSON decodes a JSON diagram document into a model.Layout.
func ParseJSON(data []byte) (*model.Layout, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, lerrors.Wrap(lerrors.ErrCodeStructural, err, "decode JSON diagram")
	}
	return toLayout(doc)
}

// ParseTOML decodes a TOML diagram document into a model.Layout.
func ParseTOML(data []byte) (*model.Layout, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, lerrors.Wrap(lerrors.ErrCodeStructural, err, "decode TOML diagram")
	}
	return toLayout(doc)
}

// ToDocument converts a laid-out model.Layout back to its serialization
// form, e.g. for round-tripping or for a debug snapshot payload. Computed
// pixel fields (X, Y, Width, Height, AbsX, AbsY) are not carried back into
// Document — a Document is the parser's input shape, not the pipeline's
// output shape.
func ToDocument(l *model.Layout) Document {
	doc := Document{
		Elements:    make([]ElementDoc, 0, len(l.ElementOrder)),
		Connections: make([]ConnectionDoc, 0, len(l.Connections)),
	}
	if l.Canvas.Width > 0 || l.Canvas.Height > 0 {
		doc.Canvas = &CanvasDoc{Width: l.Canvas.Width, Height: l.Canvas.Height}
	}
	for _, id := range l.ElementOrder {
		el := l.Elements[id]
		doc.Elements = append(doc.Elements, ElementDoc{
			ID: el.ID, Kind: string(el.Kind), Label: el.Label,
			Color: el.Color, Contains: el.Contains,
		})
	}
	for _, c := range l.Connections {
		doc.Connections = append(doc.Connections, ConnectionDoc{
			From: c.From, To: c.To, Label: c.Label,
			Relation: c.Relation, Direction: directionString(c.Direction),
		})
	}
	return doc
}

// toLayout validates and converts a Document into a model.Layout,
// surfacing malformed input (duplicate IDs, unknown connection endpoints)
// as a typed ErrCodeStructural error per SPEC_FULL.md's error-handling
// section, rather than panicking or silently dropping data.
func toLayout(doc Document) (*model.Layout, error) {
	l := model.NewLayout()
	if doc.Canvas != nil {
		l.Canvas = model.Canvas{Width: doc.Canvas.Width, Height: doc.Canvas.Height}
	}

	seen := make(map[string]bool, len(doc.Elements))
	for _, ed := range doc.Elements {
		if ed.ID == "" {
			return nil, lerrors.New(lerrors.ErrCodeStructural, "element with empty id")
		}
		if seen[ed.ID] {
			return nil, lerrors.New(lerrors.ErrCodeStructural, "duplicate element id %q", ed.ID)
		}
		seen[ed.ID] = true

		l.AddElement(&model.Element{
			ID: ed.ID, Kind: model.ParseKind(ed.Kind), Label: ed.Label,
			Color: ed.Color, Contains: ed.Contains,
		})
	}

	for _, cd := range doc.Connections {
		if !seen[cd.From] {
			return nil, lerrors.New(lerrors.ErrCodeStructural, "connection references unknown element %q", cd.From)
		}
		if !seen[cd.To] {
			return nil, lerrors.New(lerrors.ErrCodeStructural, "connection references unknown element %q", cd.To)
		}
		dir, err := model.ParseDirection(cd.Direction)
		if err != nil {
			return nil, lerrors.Wrap(lerrors.ErrCodeStructural, err, "connection %s->%s", cd.From, cd.To)
		}
		l.AddConnection(model.Connection{
			From: cd.From, To: cd.To, Label: cd.Label,
			Relation: cd.Relation, Direction: dir,
		})
	}

	return l, nil
}

func directionString(d model.Direction) string {
	switch d {
	case model.Backward:
		return "backward"
	case model.Bidirectional:
		return "bidirectional"
	case model.NoDirection:
		return "none"
	default:
		return "forward"
	}
}
