package goldmark_test

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	kindCustomBlock  = ast.NewNodeKind("CustomBlock")
	kindCustomInline = ast.NewNodeKind("CustomInline")
)

// customBlock is a block kind the renderer has never heard of.
type customBlock struct {
	ast.BaseBlock
}

func newCustomBlock(start, stop int) *customBlock {
	n := &customBlock{}
	segs := text.NewSegments()
	segs.Append(text.NewSegment(start, stop))
	n.SetLines(segs)
	return n
}

func (n *customBlock) Kind() ast.NodeKind { return kindCustomBlock }

func (n *customBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// customInline is an inline kind the renderer has never heard of.
type customInline struct {
	ast.BaseInline
}

func (n *customInline) Kind() ast.NodeKind { return kindCustomInline }

func (n *customInline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}
