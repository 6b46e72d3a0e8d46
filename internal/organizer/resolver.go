package organizer

// Side is the resolved insertion side relative to a drop target.
type Side int

const (
	SideBefore Side = iota
	SideAfter
)

func (s Side) String() string {
	if s == SideBefore {
		return "before"
	}
	return "after"
}

// Box is a drop target's vertical extent in cell coordinates. Top is the
// first row of the target and Bottom its last row, both inclusive.
type Box struct {
	Top    int
	Bottom int
}

// Resolve maps a pointer's vertical coordinate to an insertion side using
// the target's vertical midpoint: strictly above the midpoint resolves
// before the target, anything else after. The same rule applies to
// feature rows and category headers in both the expanded and the rail
// view, which is what keeps the two view modes behaviorally identical.
func Resolve(box Box, pointerY int) Side {
	if 2*pointerY < box.Top+box.Bottom {
		return SideBefore
	}
	return SideAfter
}

// PlaceholderIndex is the insertion index for drops on an empty-category
// placeholder, which has no sibling rows to compare against.
const PlaceholderIndex = 0
