package mdview

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the
// viewer automatically matches any color scheme. A negative index means
// no color.
type Theme struct {
	Heading int // Headings
	Link    int // Link captions
	Code    int // Inline code and code blocks
	CodeBg  int // Code block background
	Quote   int // Block quote border
	Warning int // Warning labels
	Muted   int // Rules, bullets, captions, status bar
	Focus   int // Focused link background
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Heading: 5,
		Link:    4,
		Code:    3,
		CodeBg:  0,
		Quote:   8,
		Warning: 1,
		Muted:   8,
		Focus:   4,
	}
}
