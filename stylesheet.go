package mdview

import (
	"maps"
	"strconv"
)

// Rule is the appearance attached to one style class. Colors use
// lipgloss notation: an ANSI index ("5") or a hex value ("#ff00ff").
// An empty color means inherit.
type Rule struct {
	Foreground   string
	Background   string
	Bold         bool
	Italic       bool
	Underline    bool
	Faint        bool
	PaddingLeft  int
	MarginBottom int
	BorderLeft   bool
}

// Stylesheet maps style classes to rules.
type Stylesheet struct {
	Name  string
	Rules map[string]Rule
}

// Rule returns the rule for class.
func (s *Stylesheet) Rule(class string) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	r, ok := s.Rules[class]
	return r, ok
}

// Merge returns a new stylesheet containing s's rules overlaid by
// other's. Rules are replaced per class, not merged field by field.
func (s *Stylesheet) Merge(other *Stylesheet) *Stylesheet {
	out := &Stylesheet{Rules: make(map[string]Rule)}
	if s != nil {
		out.Name = s.Name
		maps.Copy(out.Rules, s.Rules)
	}
	if other != nil {
		if other.Name != "" {
			out.Name = other.Name
		}
		maps.Copy(out.Rules, other.Rules)
	}
	return out
}

// StyleRegistry looks up named stylesheet resources. Implementations
// return ErrResourceNotFound for unknown names.
type StyleRegistry interface {
	Stylesheet(name string) (*Stylesheet, error)
}

// DefaultStylesheet derives the built-in rules from a theme.
func DefaultStylesheet(t Theme) *Stylesheet {
	rules := map[string]Rule{
		ClassParagraph:    {MarginBottom: 1},
		ClassList:         {MarginBottom: 1},
		ClassBullet:       {Foreground: color(t.Muted)},
		ClassQuote:        {Foreground: color(t.Quote), BorderLeft: true, PaddingLeft: 1, MarginBottom: 1},
		ClassRule:         {Foreground: color(t.Muted), MarginBottom: 1},
		ClassCodeBlock:    {MarginBottom: 1},
		ClassCodeLine:     {Foreground: color(t.Code), Background: color(t.CodeBg)},
		ClassTableScroll:  {MarginBottom: 1},
		ClassTableHeader:  {Bold: true},
		ClassImage:        {MarginBottom: 1},
		ClassImageCaption: {Foreground: color(t.Muted), Italic: true},
		ClassInlineCode:   {Foreground: color(t.Code)},
		ClassLink:         {Foreground: color(t.Link), Underline: true},
		ClassWarning:      {Foreground: color(t.Warning)},
	}
	for level := 1; level <= 6; level++ {
		rules[HeadingClass(level)] = Rule{
			Foreground:   color(t.Heading),
			Bold:         true,
			Underline:    level == 1,
			MarginBottom: 1,
		}
	}
	return &Stylesheet{Name: "default", Rules: rules}
}

func color(index int) string {
	if index < 0 {
		return ""
	}
	return strconv.Itoa(index)
}
