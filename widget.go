package mdview

import "slices"

// WidgetKind identifies the primitive a Widget stands for.
type WidgetKind int

const (
	// KindContainer stacks its children vertically.
	KindContainer WidgetKind = iota
	// KindRow lays its children out horizontally, wrapping when needed.
	KindRow
	// KindLabel displays Text.
	KindLabel
	// KindButton displays Text and runs OnClick when activated.
	KindButton
	// KindImage displays Texture scaled to fit MaxWidth x MaxHeight.
	KindImage
	// KindScroll clips its children horizontally and scrolls.
	KindScroll
	// KindTextField displays Text in an editable or read-only box.
	KindTextField
)

func (k WidgetKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindRow:
		return "row"
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindImage:
		return "image"
	case KindScroll:
		return "scroll"
	case KindTextField:
		return "textfield"
	default:
		return "unknown"
	}
}

// WhiteSpace controls how a label's text wraps.
type WhiteSpace int

const (
	// WhiteSpaceNormal collapses and word-wraps text.
	WhiteSpaceNormal WhiteSpace = iota
	// WhiteSpacePre preserves whitespace and newlines verbatim.
	WhiteSpacePre
	// WhiteSpaceNoWrap keeps the text on one line.
	WhiteSpaceNoWrap
)

// ScaleMode controls how an image is scaled into its bounds.
type ScaleMode int

const (
	// ScaleToFit shrinks the image preserving aspect ratio.
	ScaleToFit ScaleMode = iota
	// ScaleStretch fills the bounds ignoring aspect ratio.
	ScaleStretch
)

// Widget is a node of the rendered tree. A parent exclusively owns its
// children; the whole tree is rebuilt on every render.
type Widget struct {
	Kind       WidgetKind
	Text       string
	Classes    []string
	WhiteSpace WhiteSpace

	// Pickable reports whether the widget receives pointer/focus input.
	Pickable bool

	Children []*Widget

	// Image fields (KindImage).
	Texture   *Texture
	MaxWidth  int
	MaxHeight int
	ScaleMode ScaleMode

	// Button fields (KindButton). Chromeless strips padding, border and
	// background so the button reads as inline text.
	OnClick    func()
	Chromeless bool

	// Text field fields (KindTextField).
	ReadOnly  bool
	Multiline bool

	// Stylesheet is attached to the root of a rendered document.
	Stylesheet *Stylesheet
}

// NewLabel returns a non-pickable, normally wrapping label.
func NewLabel(text string, classes ...string) *Widget {
	return &Widget{Kind: KindLabel, Text: text, Classes: classes}
}

// NewContainer returns a vertical container.
func NewContainer(classes ...string) *Widget {
	return &Widget{Kind: KindContainer, Classes: classes}
}

// AddClass appends class names not already present.
func (w *Widget) AddClass(classes ...string) {
	for _, c := range classes {
		if !w.HasClass(c) {
			w.Classes = append(w.Classes, c)
		}
	}
}

// HasClass reports whether the widget carries class.
func (w *Widget) HasClass(class string) bool {
	return slices.Contains(w.Classes, class)
}

// Add appends children.
func (w *Widget) Add(children ...*Widget) {
	w.Children = append(w.Children, children...)
}

// Activate runs the widget's click action. It reports whether the widget
// had one.
func (w *Widget) Activate() bool {
	if w.OnClick == nil {
		return false
	}
	w.OnClick()
	return true
}

// Walk visits w and its descendants depth-first, parents before
// children. Returning false from fn skips the node's children.
func (w *Widget) Walk(fn func(*Widget) bool) {
	if w == nil {
		return
	}
	if !fn(w) {
		return
	}
	for _, c := range w.Children {
		c.Walk(fn)
	}
}

// FindAll returns every widget in the subtree carrying class, in
// depth-first order.
func (w *Widget) FindAll(class string) []*Widget {
	var out []*Widget
	w.Walk(func(n *Widget) bool {
		if n.HasClass(class) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Buttons returns every button in the subtree in depth-first order.
func (w *Widget) Buttons() []*Widget {
	var out []*Widget
	w.Walk(func(n *Widget) bool {
		if n.Kind == KindButton {
			out = append(out, n)
		}
		return true
	})
	return out
}
