package mdview

import (
	"path"
	"strconv"
	"strings"
)

// Style classes shared with stylesheets. The names are part of the
// stylesheet contract and must not change.
const (
	ClassRoot          = "mdv-root"
	ClassBlock         = "mdv-block"
	ClassParagraph     = "mdv-p"
	ClassList          = "mdv-list"
	ClassListItem      = "mdv-li"
	ClassListContent   = "mdv-liContent"
	ClassBullet        = "mdv-bullet"
	ClassQuote         = "mdv-quote"
	ClassRule          = "mdv-hr"
	ClassCodeBlock     = "mdv-codeBlock"
	ClassCode          = "mdv-code"
	ClassCodeLine      = "mdv-codeLine"
	ClassTableScroll   = "mdv-tableScroll"
	ClassTable         = "mdv-table"
	ClassTableRow      = "mdv-tr"
	ClassTableHeader   = "mdv-th"
	ClassTableCell     = "mdv-td"
	ClassImage         = "mdv-image"
	ClassImageCaption  = "mdv-imageCaption"
	ClassInlineCode    = "mdv-inlineCode"
	ClassLink          = "mdv-link"
	ClassWarning       = "mdv-warning"
	classHeadingPrefix = "mdv-h"
)

// HeadingClass returns the class for a heading level, clamping level
// into [1, 6].
func HeadingClass(level int) string {
	return classHeadingPrefix + strconv.Itoa(min(max(level, 1), 6))
}

// StylesheetName is the registry key of the stylesheet attached to every
// rendered document.
const StylesheetName = "mdview_markdown"

// MarkdownExtensions lists the file extensions treated as Markdown
// documents.
var MarkdownExtensions = []string{".md", ".markdown"}

// IsMarkdownPath reports whether p names a Markdown document.
func IsMarkdownPath(p string) bool {
	ext := path.Ext(strings.ReplaceAll(p, `\`, "/"))
	for _, e := range MarkdownExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
