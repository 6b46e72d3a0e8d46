package organizer

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func assertSameArrangement(t *testing.T, got, want Snapshot) {
	t.Helper()

	gotCats := categoryIDs(got.OrderedCategories())
	wantCats := categoryIDs(want.OrderedCategories())
	if !reflect.DeepEqual(gotCats, wantCats) {
		t.Fatalf("expected category order %v, got %v", wantCats, gotCats)
	}
	for _, id := range append(wantCats, UncategorizedID) {
		gotIDs := idsIn(got, id)
		wantIDs := idsIn(want, id)
		if !reflect.DeepEqual(gotIDs, wantIDs) {
			t.Fatalf("expected %q to hold %v, got %v", id, wantIDs, gotIDs)
		}
	}
}

func TestReconcileMalformedFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "truncated", raw: `{"categories": [`},
		{name: "empty", raw: ""},
		{name: "wrong type", raw: `42`},
		{name: "not a document", raw: `"sidebar"`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Reconcile(testSnapshot(), []byte(tc.raw))
			if !reflect.DeepEqual(got, testSnapshot()) {
				t.Fatal("expected malformed input to yield the defaults")
			}
		})
	}
}

func TestReconcileDropsUnknownIDsAndAppendsMissing(t *testing.T) {
	t.Parallel()

	raw := `{
  "categories": [
    {"id": "orchestration", "order": 0, "collapsed": true},
    {"id": "legacy", "order": 1, "collapsed": false},
    {"id": "workspace", "order": 2, "collapsed": false}
  ],
  "features": [
    {"id": "ghost", "categoryId": "workspace", "order": 0},
    {"id": "technical", "categoryId": "workspace", "order": 1},
    {"id": "rewriter", "categoryId": "workspace", "order": 0}
  ]
}`

	got := Reconcile(testSnapshot(), []byte(raw))

	wantCats := []string{"orchestration", "workspace", "interactive"}
	if gotCats := categoryIDs(got.OrderedCategories()); !reflect.DeepEqual(gotCats, wantCats) {
		t.Fatalf("expected category order %v, got %v", wantCats, gotCats)
	}
	if _, ok := got.CategoryByID("legacy"); ok {
		t.Fatal("expected the stale category to be discarded")
	}
	if _, ok := got.FeatureByID("ghost"); ok {
		t.Fatal("expected the stale feature to be discarded")
	}

	cat, _ := got.CategoryByID("orchestration")
	if !cat.Collapsed {
		t.Fatal("expected persisted collapse state to survive")
	}
	if cat.Label != "Orchestration" {
		t.Fatalf("expected label from the catalog, got %q", cat.Label)
	}

	wantWorkspace := []string{"rewriter", "technical", "styleExtractor", "mathFormatter", "reasoningStudio", "scaffolder"}
	if gotWorkspace := idsIn(got, "workspace"); !reflect.DeepEqual(gotWorkspace, wantWorkspace) {
		t.Fatalf("expected workspace order %v, got %v", wantWorkspace, gotWorkspace)
	}

	wantOrch := []string{"requestSplitter", "promptEnhancer", "agentDesigner"}
	if gotOrch := idsIn(got, "orchestration"); !reflect.DeepEqual(gotOrch, wantOrch) {
		t.Fatalf("expected orchestration order %v, got %v", wantOrch, gotOrch)
	}

	assertDense(t, got)
}

func TestReconcileNullCategoryID(t *testing.T) {
	t.Parallel()

	raw := `{
  "categories": [],
  "features": [
    {"id": "scaffolder", "categoryId": null, "order": 0}
  ]
}`

	got := Reconcile(testSnapshot(), []byte(raw))
	if gotIDs := idsIn(got, UncategorizedID); !reflect.DeepEqual(gotIDs, []string{"scaffolder"}) {
		t.Fatalf("expected scaffolder in the uncategorized bucket, got %v", gotIDs)
	}
}

func TestReconcileStaleCategoryReference(t *testing.T) {
	t.Parallel()

	raw := `{
  "categories": [],
  "features": [
    {"id": "technical", "categoryId": "legacy", "order": 0}
  ]
}`

	got := Reconcile(testSnapshot(), []byte(raw))
	if gotIDs := idsIn(got, UncategorizedID); !reflect.DeepEqual(gotIDs, []string{"technical"}) {
		t.Fatalf("expected technical to fall back to uncategorized, got %v", gotIDs)
	}
}

func TestReconcileResolvesUnlistedDefaultCategory(t *testing.T) {
	t.Parallel()

	raw := `{
  "categories": [],
  "features": [
    {"id": "technical", "categoryId": "orchestration", "order": 0}
  ]
}`

	got := Reconcile(testSnapshot(), []byte(raw))
	feat, ok := got.FeatureByID("technical")
	if !ok || feat.CategoryID != "orchestration" {
		t.Fatalf("expected technical to land in orchestration, got %+v", feat)
	}
}

func TestReconcileKeepsFirstDuplicate(t *testing.T) {
	t.Parallel()

	raw := `{
  "categories": [
    {"id": "workspace", "order": 0, "collapsed": false},
    {"id": "workspace", "order": 5, "collapsed": true}
  ],
  "features": [
    {"id": "technical", "categoryId": "orchestration", "order": 0},
    {"id": "technical", "categoryId": "workspace", "order": 3}
  ]
}`

	got := Reconcile(testSnapshot(), []byte(raw))

	cat, _ := got.CategoryByID("workspace")
	if cat.Collapsed {
		t.Fatal("expected the first workspace entry to win")
	}

	feat, _ := got.FeatureByID("technical")
	if feat.CategoryID != "orchestration" {
		t.Fatalf("expected the first technical entry to win, got category %q", feat.CategoryID)
	}
	if count := len(got.Features); count != len(testSnapshot().Features) {
		t.Fatalf("expected %d features, got %d", len(testSnapshot().Features), count)
	}
}

func TestReconcileRoundTrip(t *testing.T) {
	t.Parallel()

	st, _ := newTestStore(t)
	st.MoveFeature("technical", "orchestration", 2)
	st.MoveFeature("scaffolder", UncategorizedID, 0)
	st.MoveCategory("interactive", 0)
	st.ToggleCollapsed("workspace")
	want := st.Snapshot()

	data, err := EncodeDocument(want)
	if err != nil {
		t.Fatalf("expected encode to succeed, got %v", err)
	}

	got := Reconcile(testSnapshot(), data)
	assertSameArrangement(t, got, want)

	cat, _ := got.CategoryByID("workspace")
	if !cat.Collapsed {
		t.Fatal("expected collapse state to round-trip")
	}
}

func TestEncodeDocumentWireFormat(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	snap.Features[5].CategoryID = UncategorizedID

	data, err := EncodeDocument(snap)
	if err != nil {
		t.Fatalf("expected encode to succeed, got %v", err)
	}
	if !strings.Contains(string(data), `"categoryId"`) {
		t.Fatal("expected camelCase categoryId key in the document")
	}

	var doc struct {
		Categories []map[string]any `json:"categories"`
		Features   []map[string]any `json:"features"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if len(doc.Categories) != 3 || len(doc.Features) != 9 {
		t.Fatalf("expected 3 categories and 9 features, got %d and %d", len(doc.Categories), len(doc.Features))
	}

	var sawNull bool
	for _, f := range doc.Features {
		if f["id"] == "scaffolder" {
			if f["categoryId"] != nil {
				t.Fatalf("expected null categoryId for uncategorized, got %v", f["categoryId"])
			}
			sawNull = true
		}
	}
	if !sawNull {
		t.Fatal("expected scaffolder to be encoded")
	}
}
