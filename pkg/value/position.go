package value

// PositionKeyword is one of the CSS position alignment keywords.
type PositionKeyword int

const (
	Left PositionKeyword = iota
	Center
	Right
	Top
	Bottom
	XStart
	XEnd
	YStart
	YEnd
	BlockStart
	BlockEnd
	InlineStart
	InlineEnd
)

func (k PositionKeyword) String() string {
	switch k {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case XStart:
		return "x-start"
	case XEnd:
		return "x-end"
	case YStart:
		return "y-start"
	case YEnd:
		return "y-end"
	case BlockStart:
		return "block-start"
	case BlockEnd:
		return "block-end"
	case InlineStart:
		return "inline-start"
	case InlineEnd:
		return "inline-end"
	}

	return ""
}

// PositionOne is a single-component position: an alignment keyword or a
// length/percentage offset.
type PositionOne struct {
	keyword  PositionKeyword
	offset   LengthPercentage
	isOffset bool
}

func KeywordPosition(k PositionKeyword) PositionOne {
	return PositionOne{keyword: k}
}

func OffsetPosition(lp LengthPercentage) PositionOne {
	return PositionOne{offset: lp, isOffset: true}
}

func (p PositionOne) String() string {
	if p.isOffset {
		return p.offset.String()
	}

	return p.keyword.String()
}

// PositionTwo is a two-component position: horizontal then vertical,
// e.g. "left top" or "25% center".
type PositionTwo struct {
	Horizontal, Vertical PositionOne
}

func (p PositionTwo) String() string {
	return p.Horizontal.String() + " " + p.Vertical.String()
}
