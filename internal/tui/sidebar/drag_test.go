package sidebar

import (
	"reflect"
	"testing"

	"github.com/Paintersrp/studio/internal/catalog"
	"github.com/Paintersrp/studio/internal/organizer"
)

func dragRows(t *testing.T, store *organizer.Store, featureDrag bool) []Row {
	t.Helper()
	return buildRows(store.Snapshot(), catalog.Default(), featureDrag)
}

func hoverOn(row Row, side organizer.Side) *HoverTarget {
	return &HoverTarget{Row: row, Side: side}
}

func TestDragFeatureBeforeTarget(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	if !c.Press(findRow(t, rows, RowFeature, "scaffolder")) {
		t.Fatalf("expected the press on scaffolder to arm a session")
	}
	c.Motion(hoverOn(findRow(t, rows, RowFeature, "technical"), organizer.SideBefore))

	res := c.Release()
	if !res.Moved || res.Clicked {
		t.Fatalf("expected a completed move, got %+v", res)
	}
	if !res.ArmSuppressor {
		t.Fatalf("expected the drag end to arm the click suppressor")
	}
	if res.FromCategory != "workspace" || res.ToCategory != "workspace" {
		t.Fatalf("expected a workspace reorder, got %q -> %q", res.FromCategory, res.ToCategory)
	}

	assertIDs(t, bucketIDs(t, store, "workspace"), []string{
		"scaffolder", "technical", "styleExtractor", "rewriter", "mathFormatter", "reasoningStudio",
	})
}

func TestDragFeatureOntoCategoryHeader(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	c.Press(findRow(t, rows, RowFeature, "scaffolder"))
	c.Motion(hoverOn(findRow(t, rows, RowCategory, "orchestration"), organizer.SideAfter))

	res := c.Release()
	if !res.Moved {
		t.Fatalf("expected a completed move, got %+v", res)
	}
	if res.FromCategory != "workspace" || res.ToCategory != "orchestration" {
		t.Fatalf("expected workspace -> orchestration, got %q -> %q", res.FromCategory, res.ToCategory)
	}

	assertIDs(t, bucketIDs(t, store, "orchestration"), []string{
		"requestSplitter", "promptEnhancer", "agentDesigner", "scaffolder",
	})
	assertIDs(t, bucketIDs(t, store, "workspace"), []string{
		"technical", "styleExtractor", "rewriter", "mathFormatter", "reasoningStudio",
	})
}

func TestDragCategoryBeforeFirst(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	c.Press(findRow(t, rows, RowCategory, "interactive"))
	c.Motion(hoverOn(findRow(t, rows, RowCategory, "workspace"), organizer.SideBefore))

	res := c.Release()
	if !res.Moved || res.Kind != DragCategory {
		t.Fatalf("expected a completed category move, got %+v", res)
	}

	assertIDs(t, categoryIDs(t, store), []string{"interactive", "workspace", "orchestration"})
}

func TestDragFeatureAcrossBucketsAtIndex(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	c.Press(findRow(t, rows, RowFeature, "technical"))
	c.Motion(hoverOn(findRow(t, rows, RowFeature, "promptEnhancer"), organizer.SideAfter))
	c.Release()

	assertIDs(t, bucketIDs(t, store, "orchestration"), []string{
		"requestSplitter", "promptEnhancer", "technical", "agentDesigner",
	})
}

func TestDragFeatureSameBucketPastOrigin(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	// Dropping below a later sibling must account for the gap the
	// dragged row leaves behind.
	c.Press(findRow(t, rows, RowFeature, "technical"))
	c.Motion(hoverOn(findRow(t, rows, RowFeature, "rewriter"), organizer.SideAfter))
	c.Release()

	assertIDs(t, bucketIDs(t, store, "workspace"), []string{
		"styleExtractor", "rewriter", "technical", "mathFormatter", "reasoningStudio", "scaffolder",
	})
}

func TestDragFeatureIntoPlaceholder(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	store.MoveFeature("chatSandbox", organizer.UncategorizedID, 0)
	store.MoveFeature("flashcards", organizer.UncategorizedID, 1)

	c := NewDragController(store)
	c.Press(findRow(t, dragRows(t, store, false), RowFeature, "scaffolder"))

	// The placeholder row only exists while the feature drag is in
	// flight, so resolve it against the drag-time topology.
	c.Motion(hoverOn(findRow(t, dragRows(t, store, true), RowPlaceholder, "interactive"), organizer.SideAfter))
	res := c.Release()

	if !res.Moved || res.ToCategory != "interactive" {
		t.Fatalf("expected a move into interactive, got %+v", res)
	}
	assertIDs(t, bucketIDs(t, store, "interactive"), []string{"scaffolder"})
}

func TestDragOwnPositionKeepsSnapshot(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name string
		side organizer.Side
	}{
		{name: "above own midpoint", side: organizer.SideBefore},
		{name: "below own midpoint", side: organizer.SideAfter},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := newTestStore(t)
			before := store.Snapshot()
			c := NewDragController(store)
			rows := dragRows(t, store, false)

			scaffolder := findRow(t, rows, RowFeature, "scaffolder")
			c.Press(scaffolder)
			c.Motion(hoverOn(scaffolder, tc.side))
			res := c.Release()

			if !res.Moved {
				t.Fatalf("expected the drop on its own row to count as a move, got %+v", res)
			}
			if got := store.Snapshot(); !reflect.DeepEqual(got, before) {
				t.Fatalf("expected an identical snapshot after the no-op drop, got %+v", got)
			}
		})
	}
}

func TestDragAmbientReleaseMovesNothing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	before := store.Snapshot()
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	c.Press(findRow(t, rows, RowFeature, "scaffolder"))
	c.Motion(hoverOn(findRow(t, rows, RowFeature, "technical"), organizer.SideBefore))
	c.Motion(nil)

	if c.Hover() != nil {
		t.Fatalf("expected ambient motion to clear the hover target, got %+v", c.Hover())
	}

	res := c.Release()
	if res.Moved || res.Clicked {
		t.Fatalf("expected the ambient release to move nothing, got %+v", res)
	}
	if !res.ArmSuppressor {
		t.Fatalf("expected the drag end to arm the click suppressor regardless")
	}
	if got := store.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected the arrangement to survive untouched, got %+v", got)
	}
}

func TestDragHoverFiltering(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	store.MoveFeature("flashcards", organizer.UncategorizedID, 0)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	c.Press(findRow(t, rows, RowCategory, "interactive"))
	c.Motion(hoverOn(findRow(t, rows, RowFeature, "technical"), organizer.SideBefore))
	if c.Hover() != nil {
		t.Fatalf("expected category drags to reject feature rows, got %+v", c.Hover())
	}
	c.Motion(hoverOn(findRow(t, rows, RowCategory, organizer.UncategorizedID), organizer.SideBefore))
	if c.Hover() != nil {
		t.Fatalf("expected category drags to reject the uncategorized header, got %+v", c.Hover())
	}
	c.Release()

	c.Press(findRow(t, rows, RowFeature, "scaffolder"))
	c.Motion(hoverOn(findRow(t, rows, RowCategory, organizer.UncategorizedID), organizer.SideAfter))
	if c.Hover() == nil {
		t.Fatalf("expected feature drags to accept the uncategorized header")
	}
	res := c.Release()
	if !res.Moved || res.ToCategory != organizer.UncategorizedID {
		t.Fatalf("expected a move into the uncategorized bucket, got %+v", res)
	}
	assertIDs(t, bucketIDs(t, store, organizer.UncategorizedID), []string{"flashcards", "scaffolder"})
}

func TestDragSecondPressIgnored(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	c.Press(findRow(t, rows, RowFeature, "scaffolder"))
	c.Motion(hoverOn(findRow(t, rows, RowFeature, "technical"), organizer.SideBefore))

	if c.Press(findRow(t, rows, RowFeature, "rewriter")) {
		t.Fatalf("expected a press during an active session to be ignored")
	}

	res := c.Release()
	if res.Source.ID != "scaffolder" {
		t.Fatalf("expected the original session to survive, got source %q", res.Source.ID)
	}
}

func TestDragPressRejectsPinnedRows(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	store.MoveFeature("flashcards", organizer.UncategorizedID, 0)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	if c.Press(findRow(t, rows, RowCategory, organizer.UncategorizedID)) {
		t.Fatalf("expected the uncategorized header to refuse drags")
	}
	if c.Press(findRow(t, dragRows(t, store, true), RowPlaceholder, "interactive")) {
		t.Fatalf("expected placeholders to refuse drags")
	}
}

func TestDragCancelKeepsArrangement(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	before := store.Snapshot()
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	c.Press(findRow(t, rows, RowFeature, "scaffolder"))
	c.Motion(hoverOn(findRow(t, rows, RowFeature, "technical"), organizer.SideBefore))

	res := c.Cancel()
	if !res.ArmSuppressor {
		t.Fatalf("expected a cancelled drag to arm the click suppressor")
	}
	if c.Dragging() {
		t.Fatalf("expected the controller back in idle after cancel")
	}
	if got := store.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected no mutation from a cancelled drag, got %+v", got)
	}
}

func TestDragCancelBeforeMotionStaysQuiet(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	c.Press(findRow(t, rows, RowFeature, "scaffolder"))
	res := c.Cancel()

	if res.ArmSuppressor {
		t.Fatalf("expected no suppressor arm for a press that never dragged")
	}
}

func TestDragClickWithoutMotion(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	row := findRow(t, rows, RowFeature, "technical")
	c.Press(row)
	res := c.Release()

	if !res.Clicked || res.Moved || res.ArmSuppressor {
		t.Fatalf("expected a plain click, got %+v", res)
	}
	if res.Source.ID != "technical" {
		t.Fatalf("expected the click to carry its row, got %q", res.Source.ID)
	}
}

func TestDragGrabbedOnlyWhileDragging(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	c := NewDragController(store)
	rows := dragRows(t, store, false)

	row := findRow(t, rows, RowFeature, "scaffolder")
	if c.Grabbed(row) {
		t.Fatalf("expected no grabbed row while idle")
	}

	c.Press(row)
	if c.Grabbed(row) {
		t.Fatalf("expected an armed press to not yet read as grabbed")
	}

	c.Motion(hoverOn(findRow(t, rows, RowFeature, "technical"), organizer.SideBefore))
	if !c.Grabbed(row) {
		t.Fatalf("expected the source row grabbed while dragging")
	}
	for _, other := range rows {
		if other.key() != row.key() && c.Grabbed(other) {
			t.Fatalf("expected exactly one grabbed row, %q also reads grabbed", other.ID)
		}
	}

	c.Release()
	if c.Grabbed(row) {
		t.Fatalf("expected the grab flag cleared at drag end")
	}
}
