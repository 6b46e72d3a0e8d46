package catalog

import "testing"

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "skips heading",
			doc:  "# Title\n\nFirst paragraph here.\n\nSecond paragraph.\n",
			want: "First paragraph here.",
		},
		{
			name: "joins soft wrapped lines",
			doc:  "Spread over\ntwo lines.\n",
			want: "Spread over two lines.",
		},
		{
			name: "strips inline markup",
			doc:  "Uses *emphasis* and `code` inline.\n",
			want: "Uses emphasis and code inline.",
		},
		{
			name: "empty document",
			doc:  "",
			want: "",
		},
		{
			name: "headings only",
			doc:  "# One\n\n## Two\n",
			want: "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Summary(tc.doc); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBuiltInDocsSummarize(t *testing.T) {
	t.Parallel()

	for _, mode := range Default().Modes {
		if got := Summary(mode.Doc); got == "" {
			t.Fatalf("expected a non-empty summary for %q", mode.ID)
		}
	}
}
