package fzf

import (
	"testing"

	"github.com/Paintersrp/studio/internal/catalog"
	"github.com/Paintersrp/studio/internal/config"
	"github.com/Paintersrp/studio/internal/constants"
	"github.com/Paintersrp/studio/internal/organizer"
	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/internal/storage"
)

func newTestFinder(t *testing.T) *FuzzyFinder {
	t.Helper()

	cat := catalog.Default()
	backend := storage.NewMemory()
	store := organizer.NewStore(backend, constants.OrganizationKey, cat.DefaultSnapshot())
	store.Load()

	s := &state.State{
		Config:    &config.Config{},
		Catalog:   cat,
		Backend:   backend,
		Organizer: store,
	}

	return NewFuzzyFinder(s, "Jump to mode")
}

func TestCollectModesFollowsArrangement(t *testing.T) {
	t.Parallel()

	f := newTestFinder(t)
	entries := f.collectModes()

	if len(entries) != len(f.state.Catalog.Modes) {
		t.Fatalf("expected %d entries, got %d", len(f.state.Catalog.Modes), len(entries))
	}
	if entries[0].mode.ID != "technical" || entries[0].category != "Workspace" {
		t.Fatalf("expected technical in Workspace first, got %s in %s", entries[0].mode.ID, entries[0].category)
	}
	last := entries[len(entries)-1]
	if last.mode.ID != "flashcards" || last.category != "Interactive" {
		t.Fatalf("expected flashcards in Interactive last, got %s in %s", last.mode.ID, last.category)
	}
}

func TestCollectModesTracksMoves(t *testing.T) {
	t.Parallel()

	f := newTestFinder(t)
	if !f.state.Organizer.MoveFeature("flashcards", "workspace", 0) {
		t.Fatalf("expected move to apply")
	}

	entries := f.collectModes()
	if entries[0].mode.ID != "flashcards" || entries[0].category != "Workspace" {
		t.Fatalf("expected flashcards first in Workspace, got %s in %s", entries[0].mode.ID, entries[0].category)
	}
}

func TestCollectModesListsUncategorizedLast(t *testing.T) {
	t.Parallel()

	f := newTestFinder(t)
	if !f.state.Organizer.MoveFeature("rewriter", organizer.UncategorizedID, 0) {
		t.Fatalf("expected move to apply")
	}

	entries := f.collectModes()
	last := entries[len(entries)-1]
	if last.mode.ID != "rewriter" || last.category != "Uncategorized" {
		t.Fatalf("expected rewriter in Uncategorized last, got %s in %s", last.mode.ID, last.category)
	}
}
