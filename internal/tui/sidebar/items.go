package sidebar

import (
	"fmt"

	"github.com/Paintersrp/studio/internal/catalog"
	"github.com/Paintersrp/studio/internal/organizer"
)

type RowKind int

const (
	RowCategory RowKind = iota
	RowFeature
	RowPlaceholder
)

// Row is one drop target in the flattened sidebar sequence: a category
// header, a feature entry, or the empty-category placeholder that
// appears while a feature drag is in flight. The same rows back both
// the expanded and the rail view, which is what keeps their drop
// topology identical.
type Row struct {
	Kind       RowKind
	ID         string
	CategoryID string
	Label      string
	Icon       string
	Desc       string
	Collapsed  bool
	Count      int
	Index      int
}

// key identifies a row across rebuilds, for cursor restoration and
// hover matching. Placeholders share their category's id, so the kind
// is part of the key.
func (r Row) key() string {
	return fmt.Sprintf("%d:%s", r.Kind, r.ID)
}

func (r Row) FilterValue() string {
	return r.Label
}

// draggable reports whether a drag or keyboard grab may start on this
// row. The uncategorized bucket is pinned and placeholders are targets
// only.
func (r Row) draggable() bool {
	switch r.Kind {
	case RowFeature:
		return true
	case RowCategory:
		return r.ID != organizer.UncategorizedID
	default:
		return false
	}
}

// buildRows flattens a snapshot into the rendered row sequence.
// Collapsed categories contribute only their header. The uncategorized
// bucket renders at the bottom and only when it holds features or a
// feature drag needs it as a target; an empty open bucket contributes a
// placeholder row during such a drag.
func buildRows(snap organizer.Snapshot, cat *catalog.Catalog, featureDrag bool) []Row {
	var rows []Row

	appendBucket := func(categoryID, label string, collapsed bool, position int) {
		features := snap.FeaturesIn(categoryID)
		rows = append(rows, Row{
			Kind:       RowCategory,
			ID:         categoryID,
			CategoryID: categoryID,
			Label:      label,
			Collapsed:  collapsed,
			Count:      len(features),
			Index:      position,
		})
		if collapsed {
			return
		}
		for _, f := range features {
			row := Row{
				Kind:       RowFeature,
				ID:         f.ID,
				CategoryID: categoryID,
				Label:      f.ID,
				Index:      f.Order,
			}
			if mode, ok := cat.Mode(f.ID); ok {
				row.Label = mode.Label
				row.Icon = mode.Icon
				row.Desc = mode.Description
			}
			rows = append(rows, row)
		}
		if len(features) == 0 && featureDrag {
			rows = append(rows, Row{
				Kind:       RowPlaceholder,
				ID:         categoryID,
				CategoryID: categoryID,
				Label:      "drop here",
			})
		}
	}

	for _, c := range snap.OrderedCategories() {
		appendBucket(c.ID, c.Label, c.Collapsed, c.Order)
	}

	uncategorized := snap.FeaturesIn(organizer.UncategorizedID)
	if len(uncategorized) > 0 || featureDrag {
		appendBucket(organizer.UncategorizedID, cat.Label(organizer.UncategorizedID), false, len(snap.Categories))
	}

	return rows
}
