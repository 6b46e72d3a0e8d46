// Package catalog defines the authoring modes the console ships with
// and the category layout they default to. The organizer treats the
// catalog as the source of truth for which ids exist; persisted
// arrangements are reconciled against it on load.
package catalog

import (
	"github.com/Paintersrp/studio/internal/organizer"
)

type Category struct {
	ID    string
	Label string
}

// Mode is one authoring surface of the console. Doc is the full
// markdown reference rendered in the preview pane; Description is the
// one-line summary shown under the mode's name in the sidebar.
type Mode struct {
	ID          string
	Label       string
	Icon        string
	Description string
	CategoryID  string
	Doc         string
}

type Catalog struct {
	Categories []Category
	Modes      []Mode
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Categories: []Category{
			{ID: "workspace", Label: "Workspace"},
			{ID: "orchestration", Label: "Orchestration"},
			{ID: "interactive", Label: "Interactive"},
		},
		Modes: []Mode{
			{
				ID:          "technical",
				Label:       "Technical Writing",
				Icon:        "tw",
				Description: "Draft precise technical documents and runbooks",
				CategoryID:  "workspace",
				Doc:         docTechnical,
			},
			{
				ID:          "styleExtractor",
				Label:       "Style Extractor",
				Icon:        "sx",
				Description: "Distill a reusable style guide from sample text",
				CategoryID:  "workspace",
				Doc:         docStyleExtractor,
			},
			{
				ID:          "rewriter",
				Label:       "Rewriter",
				Icon:        "rw",
				Description: "Rework drafts against a target style and audience",
				CategoryID:  "workspace",
				Doc:         docRewriter,
			},
			{
				ID:          "mathFormatter",
				Label:       "Math Formatter",
				Icon:        "mf",
				Description: "Normalize notation and typeset formulas",
				CategoryID:  "workspace",
				Doc:         docMathFormatter,
			},
			{
				ID:          "reasoningStudio",
				Label:       "Reasoning Studio",
				Icon:        "rs",
				Description: "Inspect and refine multi-step reasoning chains",
				CategoryID:  "workspace",
				Doc:         docReasoningStudio,
			},
			{
				ID:          "scaffolder",
				Label:       "Scaffolder",
				Icon:        "sc",
				Description: "Generate outlines and section skeletons",
				CategoryID:  "workspace",
				Doc:         docScaffolder,
			},
			{
				ID:          "requestSplitter",
				Label:       "Request Splitter",
				Icon:        "qs",
				Description: "Break a large request into ordered subtasks",
				CategoryID:  "orchestration",
				Doc:         docRequestSplitter,
			},
			{
				ID:          "promptEnhancer",
				Label:       "Prompt Enhancer",
				Icon:        "pe",
				Description: "Tighten prompts with context and constraints",
				CategoryID:  "orchestration",
				Doc:         docPromptEnhancer,
			},
			{
				ID:          "agentDesigner",
				Label:       "Agent Designer",
				Icon:        "ad",
				Description: "Compose tool-using agents and their handoffs",
				CategoryID:  "orchestration",
				Doc:         docAgentDesigner,
			},
			{
				ID:          "chatSandbox",
				Label:       "Chat Sandbox",
				Icon:        "cb",
				Description: "Free-form conversation against the working draft",
				CategoryID:  "interactive",
				Doc:         docChatSandbox,
			},
			{
				ID:          "flashcards",
				Label:       "Flashcards",
				Icon:        "fc",
				Description: "Turn source material into review decks",
				CategoryID:  "interactive",
				Doc:         docFlashcards,
			},
		},
	}
}

// Mode returns the catalog entry for an id.
func (c *Catalog) Mode(id string) (Mode, bool) {
	for _, m := range c.Modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

// Label resolves a category id to its display label. The uncategorized
// bucket has a fixed label; unknown ids fall back to the id itself so
// callers always have something renderable.
func (c *Catalog) Label(categoryID string) string {
	if categoryID == organizer.UncategorizedID {
		return "Uncategorized"
	}
	for _, cat := range c.Categories {
		if cat.ID == categoryID {
			return cat.Label
		}
	}
	return categoryID
}

// DefaultSnapshot builds the arrangement a fresh install starts with:
// categories in catalog order, each mode slotted into its home category
// in catalog order.
func (c *Catalog) DefaultSnapshot() organizer.Snapshot {
	snap := organizer.Snapshot{}
	for i, cat := range c.Categories {
		snap.Categories = append(snap.Categories, organizer.Category{
			ID:    cat.ID,
			Label: cat.Label,
			Order: i,
		})
	}

	counts := make(map[string]int, len(c.Categories))
	for _, m := range c.Modes {
		categoryID := m.CategoryID
		if categoryID != organizer.UncategorizedID {
			if _, ok := snap.CategoryByID(categoryID); !ok {
				categoryID = organizer.UncategorizedID
			}
		}
		snap.Features = append(snap.Features, organizer.Feature{
			ID:         m.ID,
			CategoryID: categoryID,
			Order:      counts[categoryID],
		})
		counts[categoryID]++
	}
	return snap
}
