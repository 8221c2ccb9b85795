package value

// DisplayOutside is the outer display type: how the box participates in
// its parent's layout.
type DisplayOutside int

const (
	Block DisplayOutside = iota
	Inline
	RunIn
)

func (d DisplayOutside) String() string {
	switch d {
	case Block:
		return "block"
	case Inline:
		return "inline"
	case RunIn:
		return "run-in"
	}

	return ""
}

// DisplayInside is the inner display type: the layout of the box's own
// contents.
type DisplayInside int

const (
	Flow DisplayInside = iota
	FlowRoot
	Table
	Flex
	Grid
	Ruby
	Math
)

func (d DisplayInside) String() string {
	switch d {
	case Flow:
		return "flow"
	case FlowRoot:
		return "flow-root"
	case Table:
		return "table"
	case Flex:
		return "flex"
	case Grid:
		return "grid"
	case Ruby:
		return "ruby"
	case Math:
		return "math"
	}

	return ""
}

// DisplayOutsideInside is a two-keyword display value, e.g. "block flex".
type DisplayOutsideInside struct {
	Outside DisplayOutside
	Inside  DisplayInside
}

func (d DisplayOutsideInside) String() string {
	return d.Outside.String() + " " + d.Inside.String()
}

// DisplayBox is one of the box-suppressing display keywords.
type DisplayBox int

const (
	Contents DisplayBox = iota
	None
)

func (d DisplayBox) String() string {
	switch d {
	case Contents:
		return "contents"
	case None:
		return "none"
	}

	return ""
}

// DisplayLegacy is one of the single-keyword precomposed display values
// kept for CSS2 compatibility.
type DisplayLegacy int

const (
	InlineBlock DisplayLegacy = iota
	InlineTable
	InlineFlex
	InlineGrid
)

func (d DisplayLegacy) String() string {
	switch d {
	case InlineBlock:
		return "inline-block"
	case InlineTable:
		return "inline-table"
	case InlineFlex:
		return "inline-flex"
	case InlineGrid:
		return "inline-grid"
	}

	return ""
}
