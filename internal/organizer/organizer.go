// Package organizer holds the sidebar arrangement model: categories and
// features with explicit order, atomic move operations, and persistence
// of the resulting snapshot.
package organizer

import "sort"

// UncategorizedID is the sentinel category id for features that belong to
// no named category. The bucket is permanent: it is not part of the
// category order sequence, cannot be reordered or deleted, and is always
// a valid drop target.
const UncategorizedID = "__uncategorized__"

type Feature struct {
	ID         string
	CategoryID string
	Order      int
}

type Category struct {
	ID        string
	Label     string
	Order     int
	Collapsed bool
}

// Snapshot is the complete serializable arrangement: every named category
// and every feature with its current membership and position. Categories
// holds named categories only; uncategorized features reference
// UncategorizedID.
type Snapshot struct {
	Categories []Category
	Features   []Feature
}

func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Categories: make([]Category, len(s.Categories)),
		Features:   make([]Feature, len(s.Features)),
	}
	copy(out.Categories, s.Categories)
	copy(out.Features, s.Features)
	return out
}

// CategoryByID returns the named category, or ok=false for unknown ids
// and for the uncategorized sentinel.
func (s Snapshot) CategoryByID(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (s Snapshot) FeatureByID(id string) (Feature, bool) {
	for _, f := range s.Features {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}

// FeaturesIn returns the features of one category (or of the
// uncategorized bucket) sorted by order.
func (s Snapshot) FeaturesIn(categoryID string) []Feature {
	var out []Feature
	for _, f := range s.Features {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// OrderedCategories returns the named categories sorted by order.
func (s Snapshot) OrderedCategories() []Category {
	out := make([]Category, len(s.Categories))
	copy(out, s.Categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// HasCategory reports whether id names a known drop bucket: a named
// category or the uncategorized sentinel.
func (s Snapshot) HasCategory(id string) bool {
	if id == UncategorizedID {
		return true
	}
	_, ok := s.CategoryByID(id)
	return ok
}

// normalize rewrites every order sequence as 0..n-1, preserving relative
// order. Ties and gaps introduced by editing are closed here.
func (s *Snapshot) normalize() {
	sort.SliceStable(s.Categories, func(i, j int) bool {
		return s.Categories[i].Order < s.Categories[j].Order
	})
	for i := range s.Categories {
		s.Categories[i].Order = i
	}

	buckets := make(map[string][]int)
	for i, f := range s.Features {
		buckets[f.CategoryID] = append(buckets[f.CategoryID], i)
	}
	for _, idxs := range buckets {
		sort.SliceStable(idxs, func(a, b int) bool {
			return s.Features[idxs[a]].Order < s.Features[idxs[b]].Order
		})
		for pos, i := range idxs {
			s.Features[i].Order = pos
		}
	}
}

func clampIndex(idx, length int) int {
	if idx < 0 {
		return 0
	}
	if idx > length {
		return length
	}
	return idx
}
