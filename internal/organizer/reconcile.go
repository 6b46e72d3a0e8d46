package organizer

import (
	"encoding/json"
	"sort"
)

// document is the persisted wire shape. Unknown fields are ignored on
// read; the uncategorized sentinel is encoded as a null categoryId.
type document struct {
	Categories []documentCategory `json:"categories"`
	Features   []documentFeature  `json:"features"`
}

type documentCategory struct {
	ID        string `json:"id"`
	Order     int    `json:"order"`
	Collapsed bool   `json:"collapsed"`
}

type documentFeature struct {
	ID         string  `json:"id"`
	CategoryID *string `json:"categoryId"`
	Order      int     `json:"order"`
}

// EncodeDocument serializes a snapshot in the persisted wire shape.
// Backups and exports write the same bytes the store saves.
func EncodeDocument(s Snapshot) ([]byte, error) {
	doc := document{
		Categories: make([]documentCategory, 0, len(s.Categories)),
		Features:   make([]documentFeature, 0, len(s.Features)),
	}
	for _, c := range s.OrderedCategories() {
		doc.Categories = append(doc.Categories, documentCategory{
			ID:        c.ID,
			Order:     c.Order,
			Collapsed: c.Collapsed,
		})
	}

	features := make([]Feature, len(s.Features))
	copy(features, s.Features)
	sort.SliceStable(features, func(i, j int) bool {
		if features[i].CategoryID != features[j].CategoryID {
			return features[i].CategoryID < features[j].CategoryID
		}
		return features[i].Order < features[j].Order
	})
	for _, f := range features {
		df := documentFeature{ID: f.ID, Order: f.Order}
		if f.CategoryID != UncategorizedID {
			id := f.CategoryID
			df.CategoryID = &id
		}
		doc.Features = append(doc.Features, df)
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Reconcile merges a persisted document with the compiled-in default
// arrangement and always yields a snapshot satisfying the ordering
// invariants:
//
//   - persisted ids unknown to the defaults are discarded (stale data)
//   - default entries missing from the document are appended: categories
//     at the end of the category sequence, features at the end of their
//     default category
//   - a feature whose category reference no longer resolves falls back
//     to the uncategorized bucket
//   - malformed input yields the defaults unchanged
//
// The defaults double as the catalog: an id is known exactly when the
// default snapshot contains it.
func Reconcile(defaults Snapshot, raw []byte) Snapshot {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return defaults.Clone()
	}
	return reconcileDocument(defaults, doc)
}

func reconcileDocument(defaults Snapshot, doc document) Snapshot {
	out := Snapshot{}

	defCats := make(map[string]Category, len(defaults.Categories))
	for _, c := range defaults.Categories {
		defCats[c.ID] = c
	}
	defFeats := make(map[string]Feature, len(defaults.Features))
	for _, f := range defaults.Features {
		defFeats[f.ID] = f
	}

	seenCat := make(map[string]bool)
	for _, dc := range doc.Categories {
		def, known := defCats[dc.ID]
		if !known || seenCat[dc.ID] {
			continue
		}
		seenCat[dc.ID] = true
		out.Categories = append(out.Categories, Category{
			ID:        dc.ID,
			Label:     def.Label,
			Order:     dc.Order,
			Collapsed: dc.Collapsed,
		})
	}
	sort.SliceStable(out.Categories, func(i, j int) bool {
		return out.Categories[i].Order < out.Categories[j].Order
	})
	for _, c := range defaults.OrderedCategories() {
		if !seenCat[c.ID] {
			out.Categories = append(out.Categories, c)
		}
	}
	for i := range out.Categories {
		out.Categories[i].Order = i
	}

	seenFeat := make(map[string]bool)
	for _, df := range doc.Features {
		if _, known := defFeats[df.ID]; !known || seenFeat[df.ID] {
			continue
		}
		seenFeat[df.ID] = true

		categoryID := UncategorizedID
		if df.CategoryID != nil {
			if _, kept := out.CategoryByID(*df.CategoryID); kept {
				categoryID = *df.CategoryID
			}
		}
		out.Features = append(out.Features, Feature{
			ID:         df.ID,
			CategoryID: categoryID,
			Order:      df.Order,
		})
	}

	// Close the gaps left by discarded entries before appending, so an
	// appended feature's end position sorts after every survivor.
	out.normalize()

	for _, f := range orderedByCategory(defaults) {
		if seenFeat[f.ID] {
			continue
		}
		appended := f
		if !out.HasCategory(appended.CategoryID) {
			appended.CategoryID = UncategorizedID
		}
		appended.Order = len(out.FeaturesIn(appended.CategoryID))
		out.Features = append(out.Features, appended)
	}

	out.normalize()
	return out
}

// orderedByCategory flattens the defaults in visual order so appended
// features keep their defaults-relative order within each category.
func orderedByCategory(s Snapshot) []Feature {
	var out []Feature
	for _, c := range s.OrderedCategories() {
		out = append(out, s.FeaturesIn(c.ID)...)
	}
	out = append(out, s.FeaturesIn(UncategorizedID)...)
	return out
}
