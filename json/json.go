// Package json dumps rendered widget trees as JSON for inspection and
// golden comparisons.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/mdview"
)

// envelope is the v1 wire format for a dumped widget tree.
type envelope struct {
	Version int        `json:"version"`
	Root    *widgetDTO `json:"root"`
}

// widgetDTO is the JSON representation of a Widget with a kind
// discriminator. Zero-valued fields are omitted to keep dumps readable.
type widgetDTO struct {
	Kind       string       `json:"kind"`
	Text       *string      `json:"text,omitempty"`
	Classes    []string     `json:"classes,omitempty"`
	WhiteSpace string       `json:"white_space,omitempty"`
	Pickable   bool         `json:"pickable,omitempty"`
	Texture    *textureDTO  `json:"texture,omitempty"`
	MaxWidth   int          `json:"max_width,omitempty"`
	MaxHeight  int          `json:"max_height,omitempty"`
	ScaleMode  string       `json:"scale_mode,omitempty"`
	Clickable  bool         `json:"clickable,omitempty"`
	Chromeless bool         `json:"chromeless,omitempty"`
	ReadOnly   bool         `json:"read_only,omitempty"`
	Multiline  bool         `json:"multiline,omitempty"`
	Stylesheet string       `json:"stylesheet,omitempty"`
	Children   []*widgetDTO `json:"children,omitempty"`
}

type textureDTO struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format,omitempty"`
}

// MarshalWidget serializes a widget tree to indented JSON in v1
// envelope format. Click actions are recorded as a flag only.
func MarshalWidget(w *mdview.Widget) ([]byte, error) {
	if w == nil {
		return nil, fmt.Errorf("marshal widget: nil root")
	}
	return json.MarshalIndent(envelope{Version: 1, Root: toDTO(w)}, "", "  ")
}

func toDTO(w *mdview.Widget) *widgetDTO {
	dto := &widgetDTO{
		Kind:       w.Kind.String(),
		Classes:    w.Classes,
		Pickable:   w.Pickable,
		Clickable:  w.OnClick != nil,
		Chromeless: w.Chromeless,
		ReadOnly:   w.ReadOnly,
		Multiline:  w.Multiline,
	}
	switch w.Kind {
	case mdview.KindLabel, mdview.KindButton, mdview.KindTextField:
		text := w.Text
		dto.Text = &text
		dto.WhiteSpace = whiteSpace(w.WhiteSpace)
	case mdview.KindImage:
		dto.MaxWidth = w.MaxWidth
		dto.MaxHeight = w.MaxHeight
		dto.ScaleMode = scaleMode(w.ScaleMode)
		if w.Texture != nil {
			dto.Texture = &textureDTO{
				Path:   w.Texture.Path,
				Width:  w.Texture.Width,
				Height: w.Texture.Height,
				Format: w.Texture.Format,
			}
		}
	}
	if w.Stylesheet != nil {
		dto.Stylesheet = w.Stylesheet.Name
	}
	for _, c := range w.Children {
		dto.Children = append(dto.Children, toDTO(c))
	}
	return dto
}

func whiteSpace(ws mdview.WhiteSpace) string {
	switch ws {
	case mdview.WhiteSpacePre:
		return "pre"
	case mdview.WhiteSpaceNoWrap:
		return "nowrap"
	default:
		return ""
	}
}

func scaleMode(m mdview.ScaleMode) string {
	switch m {
	case mdview.ScaleStretch:
		return "stretch"
	default:
		return "fit"
	}
}
