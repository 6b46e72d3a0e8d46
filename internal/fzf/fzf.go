package fzf

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/Paintersrp/studio/internal/catalog"
	"github.com/Paintersrp/studio/internal/organizer"
	"github.com/Paintersrp/studio/internal/state"
	"github.com/Paintersrp/studio/utils"
)

// FuzzyFinder drives the interactive mode picker. Rows follow the
// sidebar arrangement and the preview pane renders the highlighted
// mode's reference doc.
type FuzzyFinder struct {
	state  *state.State
	Header string
	modes  []pickerEntry
}

type pickerEntry struct {
	mode     catalog.Mode
	category string
}

func NewFuzzyFinder(s *state.State, header string) *FuzzyFinder {
	return &FuzzyFinder{state: s, Header: header}
}

// Run opens the picker and returns the chosen mode's id. With execute
// set, the choice also becomes the active mode.
func (f *FuzzyFinder) Run(execute bool) (string, error) {
	return f.RunWithQuery("", execute)
}

func (f *FuzzyFinder) RunWithQuery(query string, execute bool) (string, error) {
	idx, err := f.find(query)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", fmt.Errorf("no mode selected")
		}
		return "", err
	}

	if execute {
		return f.modes[idx].mode.ID, f.Execute(idx)
	}

	return f.modes[idx].mode.ID, nil
}

func (f *FuzzyFinder) find(query string) (int, error) {
	f.modes = f.collectModes()
	if len(f.modes) == 0 {
		return -1, fmt.Errorf("catalog has no modes to pick from")
	}

	return f.fuzzySelectMode(query)
}

// collectModes flattens the arrangement into picker rows: categories in
// their saved order, uncategorized modes trailing.
func (f *FuzzyFinder) collectModes() []pickerEntry {
	snap := f.state.Organizer.Snapshot()

	var out []pickerEntry
	appendBucket := func(categoryID, label string) {
		for _, feat := range snap.FeaturesIn(categoryID) {
			mode, ok := f.state.Catalog.Mode(feat.ID)
			if !ok {
				continue
			}
			out = append(out, pickerEntry{mode: mode, category: label})
		}
	}

	for _, cat := range snap.OrderedCategories() {
		appendBucket(cat.ID, cat.Label)
	}
	appendBucket(organizer.UncategorizedID, f.state.Catalog.Label(organizer.UncategorizedID))

	return out
}

func (f *FuzzyFinder) fuzzySelectMode(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderModePreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	return fuzzyfinder.Find(f.modes, func(i int) string {
		return fmt.Sprintf("%s [%s]", f.modes[i].mode.Label, f.modes[i].category)
	}, options...)
}

func (f *FuzzyFinder) renderModePreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	return utils.RenderMarkdownDoc(f.modes[i].mode.Doc, w, f.state.Config.Preview.Style)
}

// Execute makes the mode at idx the active one for the next console
// session.
func (f *FuzzyFinder) Execute(idx int) error {
	mode := f.modes[idx].mode
	if err := f.state.Config.SetActiveMode(mode.ID); err != nil {
		return fmt.Errorf("saving active mode: %w", err)
	}

	fmt.Printf("Active mode set to %s.\n", mode.Label)
	return nil
}
