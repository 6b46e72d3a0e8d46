package sidebar

import (
	"github.com/Paintersrp/studio/internal/organizer"
)

// GrabResult reports how a keyboard session ended and, for features,
// which categories it moved between, so placements can be announced the
// same way pointer drops are.
type GrabResult struct {
	Placed       bool
	Kind         DragKind
	SourceID     string
	FromCategory string
	ToCategory   string
}

// GrabController drives keyboard reordering. Space grabs the row under
// the cursor, arrow keys move it one step at a time with each step
// applied to the store immediately, Space or Enter places it, and
// Escape restores the arrangement captured at grab time.
type GrabController struct {
	store *organizer.Store

	active           bool
	kind             DragKind
	sourceID         string
	originCategoryID string
	origin           organizer.Snapshot
	moved            bool
}

func NewGrabController(store *organizer.Store) *GrabController {
	return &GrabController{store: store}
}

// Grab starts a session on a draggable row. Ignored while one is
// already active.
func (g *GrabController) Grab(row Row) bool {
	if g.active || !row.draggable() {
		return false
	}

	g.active = true
	g.sourceID = row.ID
	if row.Kind == RowCategory {
		g.kind = DragCategory
		g.originCategoryID = ""
	} else {
		g.kind = DragFeature
		g.originCategoryID = row.CategoryID
	}
	g.origin = g.store.Snapshot()
	g.moved = false
	return true
}

func (g *GrabController) MoveUp() bool {
	return g.step(-1)
}

func (g *GrabController) MoveDown() bool {
	return g.step(1)
}

// step moves the grabbed row one slot. Features walk past their
// bucket's edge into the neighboring bucket, skipping collapsed
// categories so the grabbed row never moves somewhere it cannot be
// seen. At the ends of the sidebar the step is a no-op.
func (g *GrabController) step(delta int) bool {
	if !g.active {
		return false
	}

	snap := g.store.Snapshot()
	applied := false
	if g.kind == DragCategory {
		cat, ok := snap.CategoryByID(g.sourceID)
		if !ok {
			return false
		}
		idx := cat.Order + delta
		if idx < 0 || idx >= len(snap.Categories) {
			return false
		}
		applied = g.store.MoveCategory(g.sourceID, idx)
	} else {
		applied = g.stepFeature(snap, delta)
	}

	if applied {
		g.moved = true
	}
	return applied
}

func (g *GrabController) stepFeature(snap organizer.Snapshot, delta int) bool {
	feat, ok := snap.FeatureByID(g.sourceID)
	if !ok {
		return false
	}

	if delta < 0 {
		if feat.Order > 0 {
			return g.store.MoveFeature(g.sourceID, feat.CategoryID, feat.Order-1)
		}
		prev, ok := adjacentBucket(snap, feat.CategoryID, -1)
		if !ok {
			return false
		}
		return g.store.MoveFeature(g.sourceID, prev, len(snap.FeaturesIn(prev)))
	}

	if feat.Order < len(snap.FeaturesIn(feat.CategoryID))-1 {
		return g.store.MoveFeature(g.sourceID, feat.CategoryID, feat.Order+1)
	}
	next, ok := adjacentBucket(snap, feat.CategoryID, 1)
	if !ok {
		return false
	}
	return g.store.MoveFeature(g.sourceID, next, 0)
}

// adjacentBucket resolves the next open bucket in sidebar order: named
// categories first, the uncategorized bucket last.
func adjacentBucket(snap organizer.Snapshot, categoryID string, dir int) (string, bool) {
	var ids []string
	for _, c := range snap.OrderedCategories() {
		ids = append(ids, c.ID)
	}
	ids = append(ids, organizer.UncategorizedID)

	at := -1
	for i, id := range ids {
		if id == categoryID {
			at = i
			break
		}
	}
	if at < 0 {
		return "", false
	}

	for i := at + dir; i >= 0 && i < len(ids); i += dir {
		if cat, ok := snap.CategoryByID(ids[i]); ok && cat.Collapsed {
			continue
		}
		return ids[i], true
	}
	return "", false
}

// Place commits the session where it stands. The moves are already in
// the store, so committing only ends the session and reports where the
// row travelled.
func (g *GrabController) Place() GrabResult {
	if !g.active {
		return GrabResult{}
	}

	res := GrabResult{
		Placed:       true,
		Kind:         g.kind,
		SourceID:     g.sourceID,
		FromCategory: g.originCategoryID,
		ToCategory:   g.originCategoryID,
	}
	if g.kind == DragFeature {
		if feat, ok := g.store.Snapshot().FeatureByID(g.sourceID); ok {
			res.ToCategory = feat.CategoryID
		}
	}

	g.reset()
	return res
}

// Cancel ends the session and, if any step was applied, puts the
// arrangement back exactly as it was at grab time.
func (g *GrabController) Cancel() (restored bool) {
	if !g.active {
		return false
	}
	restored = g.moved
	if g.moved {
		g.store.Replace(g.origin)
	}
	g.reset()
	return restored
}

func (g *GrabController) reset() {
	g.active = false
	g.kind = DragFeature
	g.sourceID = ""
	g.originCategoryID = ""
	g.origin = organizer.Snapshot{}
	g.moved = false
}

func (g *GrabController) Active() bool {
	return g.active
}

// Grabbed reports whether a row is the one held by the active session.
func (g *GrabController) Grabbed(row Row) bool {
	if !g.active {
		return false
	}
	if g.kind == DragCategory {
		return row.Kind == RowCategory && row.ID == g.sourceID
	}
	return row.Kind == RowFeature && row.ID == g.sourceID
}
