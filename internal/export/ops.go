// Package export lays out paginated documents as an ordered sequence of
// draw operations, decoupled from the rendering surface that consumes them.
// Layout functions are pure: every call is independent given its input.
package export

// Align positions text relative to its X anchor.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// OpKind discriminates draw operations.
type OpKind int

const (
	// OpText draws a string at (X, Y) with Align, Size and Style.
	OpText OpKind = iota
	// OpRule draws a horizontal line from (X, Y) to (X2, Y).
	OpRule
	// OpPageBreak starts a new page.
	OpPageBreak
)

// Op is one draw command for the document collaborator. Coordinates are in
// millimeters on an A4 portrait page.
type Op struct {
	Kind  OpKind
	Text  string
	X     float64
	Y     float64
	X2    float64
	Align Align
	Size  float64
	Style string // "" normal, "B" bold, "I" italic
	Muted bool   // gray ink, used for the footer
}

func text(s string, x, y, size float64, style string, align Align) Op {
	return Op{Kind: OpText, Text: s, X: x, Y: y, Size: size, Style: style, Align: align}
}

func rule(y float64) Op {
	return Op{Kind: OpRule, X: ruleLeft, Y: y, X2: ruleRight}
}

func pageBreak() Op {
	return Op{Kind: OpPageBreak}
}
