package sidebar

import (
	"github.com/Paintersrp/studio/internal/organizer"
)

type DragKind int

const (
	DragFeature DragKind = iota
	DragCategory
)

type dragPhase int

const (
	phaseIdle dragPhase = iota
	phasePressed
	phaseDragging
)

// HoverTarget is the row currently under the pointer and the insertion
// side resolved against its box midpoint.
type HoverTarget struct {
	Row  Row
	Side organizer.Side
}

// DragResult reports what a pointer release amounted to: a plain click
// on the pressed row, or a completed drag with an applied move. Source
// is the pressed row either way, so drag ends can scope the click
// suppressor to it.
type DragResult struct {
	Clicked bool

	Moved         bool
	Kind          DragKind
	Source        Row
	FromCategory  string
	ToCategory    string
	ArmSuppressor bool
}

// DragController owns the single pointer drag session. A press arms it;
// the first motion while armed starts the drag proper, so a press and
// release with no motion in between stays a click. Terminals have no
// native drag-start event, which is why the armed phase exists.
type DragController struct {
	store *organizer.Store

	phase            dragPhase
	kind             DragKind
	source           Row
	originCategoryID string
	originIndex      int
	hover            *HoverTarget
}

func NewDragController(store *organizer.Store) *DragController {
	return &DragController{store: store}
}

// Press arms a drag session on a draggable row. Ignored while a session
// is already active.
func (c *DragController) Press(row Row) bool {
	if c.phase != phaseIdle || !row.draggable() {
		return false
	}

	c.phase = phasePressed
	c.source = row
	if row.Kind == RowCategory {
		c.kind = DragCategory
		c.originCategoryID = ""
	} else {
		c.kind = DragFeature
		c.originCategoryID = row.CategoryID
	}
	c.originIndex = row.Index
	c.hover = nil
	return true
}

// Motion promotes an armed press into a drag and tracks the hover
// target. A nil target, or one this drag kind cannot drop on, clears
// the hover so no insertion indicator is shown.
func (c *DragController) Motion(target *HoverTarget) {
	switch c.phase {
	case phaseIdle:
		return
	case phasePressed:
		c.phase = phaseDragging
	}

	if target == nil || !c.accepts(target.Row) {
		c.hover = nil
		return
	}
	c.hover = target
}

// accepts reports whether a row is a recognized drop zone for the
// active drag kind. Category drags target named category headers only;
// feature drags target feature rows, any bucket header, and empty
// placeholders.
func (c *DragController) accepts(row Row) bool {
	if c.kind == DragCategory {
		return row.Kind == RowCategory && row.ID != organizer.UncategorizedID
	}

	switch row.Kind {
	case RowFeature, RowCategory, RowPlaceholder:
		return true
	}
	return false
}

// Release ends the session. An armed press that never moved reports a
// click; a drag applies the hovered drop, if any, and always arms the
// click suppressor. A release with no session active reports nothing.
func (c *DragController) Release() DragResult {
	res := DragResult{
		Kind:   c.kind,
		Source: c.source,
	}

	switch c.phase {
	case phaseIdle:
		return res
	case phasePressed:
		res.Clicked = true
	case phaseDragging:
		res.ArmSuppressor = true
		if c.hover != nil {
			res.Moved, res.FromCategory, res.ToCategory = c.applyDrop(*c.hover)
		}
	}

	c.reset()
	return res
}

// Cancel abandons the session with no mutation. A cancelled drag still
// arms the suppressor, since the trailing release must not read as a
// click on the source row.
func (c *DragController) Cancel() DragResult {
	res := DragResult{
		Kind:          c.kind,
		Source:        c.source,
		ArmSuppressor: c.phase == phaseDragging,
	}
	c.reset()
	return res
}

func (c *DragController) reset() {
	c.phase = phaseIdle
	c.source = Row{}
	c.hover = nil
}

func (c *DragController) applyDrop(target HoverTarget) (moved bool, from, to string) {
	if c.kind == DragCategory {
		idx := c.categoryDropIndex(target)
		return c.store.MoveCategory(c.source.ID, idx), "", ""
	}

	from = c.originCategoryID
	to, idx := c.featureDrop(target)
	moved = c.store.MoveFeature(c.source.ID, to, idx)
	return moved, from, to
}

// featureDrop maps a hover target to the organizer's (category, index)
// insertion frame, which excludes the dragged feature itself. Drops on
// a bucket header append at the end; drops on a placeholder take the
// fixed empty-bucket index.
func (c *DragController) featureDrop(target HoverTarget) (string, int) {
	switch target.Row.Kind {
	case RowPlaceholder:
		return target.Row.CategoryID, organizer.PlaceholderIndex
	case RowCategory:
		snap := c.store.Snapshot()
		return target.Row.ID, len(snap.FeaturesIn(target.Row.ID))
	default:
		idx := target.Row.Index
		if target.Side == organizer.SideAfter {
			idx++
		}
		if target.Row.CategoryID == c.originCategoryID && c.originIndex < idx {
			idx--
		}
		return target.Row.CategoryID, idx
	}
}

func (c *DragController) categoryDropIndex(target HoverTarget) int {
	idx := target.Row.Index
	if target.Side == organizer.SideAfter {
		idx++
	}
	if c.originIndex < idx {
		idx--
	}
	return idx
}

// Dragging reports whether a drag session is past the armed phase.
func (c *DragController) Dragging() bool {
	return c.phase == phaseDragging
}

// DraggingFeature reports an in-flight feature drag, which is when
// empty buckets grow placeholder targets.
func (c *DragController) DraggingFeature() bool {
	return c.phase == phaseDragging && c.kind == DragFeature
}

func (c *DragController) Hover() *HoverTarget {
	return c.hover
}

// Grabbed reports whether a row is the in-flight drag source, strictly
// between drag start and drag end.
func (c *DragController) Grabbed(row Row) bool {
	return c.phase == phaseDragging &&
		c.source.Kind == row.Kind &&
		c.source.ID == row.ID
}
