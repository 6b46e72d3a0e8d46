package organizer

import (
	"github.com/Paintersrp/studio/internal/storage"
)

// Store owns the current snapshot and is the only writer of it. Every
// mutating operation re-indexes the affected order sequences and ends
// with a write-through save; persistence failures are swallowed so the
// in-memory arrangement stays authoritative for the session.
type Store struct {
	backend  storage.Store
	key      string
	defaults Snapshot
	current  Snapshot
	gen      int
}

func NewStore(backend storage.Store, key string, defaults Snapshot) *Store {
	normalized := defaults.Clone()
	normalized.normalize()
	return &Store{
		backend:  backend,
		key:      key,
		defaults: normalized,
		current:  normalized.Clone(),
	}
}

// Load reads the persisted document, reconciles it against the defaults
// and installs the result as the current snapshot. Missing documents,
// read errors and malformed payloads all degrade to the defaults; Load
// never fails.
func (s *Store) Load() Snapshot {
	raw, ok, err := s.backend.Get(s.key)
	if err != nil || !ok {
		s.current = s.defaults.Clone()
	} else {
		s.current = Reconcile(s.defaults, []byte(raw))
	}
	s.gen++
	return s.current.Clone()
}

// Save persists the current snapshot. A failed write is ignored: the
// session continues on the in-memory arrangement and the next
// successful save catches the storage up.
func (s *Store) Save() {
	data, err := EncodeDocument(s.current)
	if err != nil {
		return
	}
	_ = s.backend.Set(s.key, string(data))
}

// Snapshot returns a copy of the current arrangement.
func (s *Store) Snapshot() Snapshot {
	return s.current.Clone()
}

// Generation increments on every change to the current snapshot, so
// renderers know when cached rows are stale.
func (s *Store) Generation() int {
	return s.gen
}

// MoveFeature removes the feature from its current category, closes the
// gap, and inserts it into the target category at the clamped index.
// Unknown feature or target ids are a silent no-op. Moving a feature
// onto its own position is legal and produces an identical arrangement.
func (s *Store) MoveFeature(featureID, targetCategoryID string, targetIndex int) bool {
	feat, ok := s.current.FeatureByID(featureID)
	if !ok || !s.current.HasCategory(targetCategoryID) {
		return false
	}

	source := featureIDs(s.current.FeaturesIn(feat.CategoryID))
	source = removeFromOrder(source, featureID)

	if targetCategoryID == feat.CategoryID {
		inserted := insertAt(source, clampIndex(targetIndex, len(source)), featureID)
		s.applyFeatureOrder(feat.CategoryID, inserted)
	} else {
		target := featureIDs(s.current.FeaturesIn(targetCategoryID))
		inserted := insertAt(target, clampIndex(targetIndex, len(target)), featureID)
		s.applyFeatureOrder(feat.CategoryID, source)
		s.applyFeatureOrder(targetCategoryID, inserted)
	}

	s.gen++
	s.Save()
	return true
}

// MoveCategory reorders one named category within the category
// sequence. The uncategorized bucket is not part of that sequence and
// is rejected along with unknown ids.
func (s *Store) MoveCategory(categoryID string, targetIndex int) bool {
	if categoryID == UncategorizedID {
		return false
	}
	if _, ok := s.current.CategoryByID(categoryID); !ok {
		return false
	}

	order := categoryIDs(s.current.OrderedCategories())
	order = removeFromOrder(order, categoryID)
	order = insertAt(order, clampIndex(targetIndex, len(order)), categoryID)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for i := range s.current.Categories {
		s.current.Categories[i].Order = pos[s.current.Categories[i].ID]
	}

	s.gen++
	s.Save()
	return true
}

// ToggleCollapsed flips a category's collapsed flag. Collapse state is
// independent of ordering but persists alongside it.
func (s *Store) ToggleCollapsed(categoryID string) bool {
	for i := range s.current.Categories {
		if s.current.Categories[i].ID == categoryID {
			s.current.Categories[i].Collapsed = !s.current.Categories[i].Collapsed
			s.gen++
			s.Save()
			return true
		}
	}
	return false
}

// Replace swaps in a full snapshot, normalizing its order sequences.
// Used by the keyboard controller's cancel-restore and by external
// change reloads.
func (s *Store) Replace(snapshot Snapshot) {
	s.current = snapshot.Clone()
	s.current.normalize()
	s.gen++
	s.Save()
}

// Reset restores the compiled-in default arrangement.
func (s *Store) Reset() {
	s.Replace(s.defaults)
}

// RestoreDocument installs a previously exported document, reconciled
// against the defaults like any load.
func (s *Store) RestoreDocument(raw []byte) {
	s.Replace(Reconcile(s.defaults, raw))
}

func (s *Store) applyFeatureOrder(categoryID string, ids []string) {
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	for i := range s.current.Features {
		if p, ok := pos[s.current.Features[i].ID]; ok {
			s.current.Features[i].CategoryID = categoryID
			s.current.Features[i].Order = p
		}
	}
}

func featureIDs(features []Feature) []string {
	out := make([]string, len(features))
	for i, f := range features {
		out[i] = f.ID
	}
	return out
}

func categoryIDs(categories []Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.ID
	}
	return out
}

func removeFromOrder(order []string, target string) []string {
	if len(order) == 0 {
		return order
	}

	filtered := order[:0]
	for _, id := range order {
		if id == target {
			continue
		}
		filtered = append(filtered, id)
	}
	return filtered
}

func insertAt(order []string, idx int, id string) []string {
	out := make([]string, 0, len(order)+1)
	out = append(out, order[:idx]...)
	out = append(out, id)
	out = append(out, order[idx:]...)
	return out
}
