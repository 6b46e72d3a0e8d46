package utils

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	defaultWrapWidth       = 100
	previewHorizontalSpace = 4
)

var idPattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// ValidateIDs checks catalog and category identifiers passed on the
// command line before they reach the organizer.
func ValidateIDs(ids ...string) error {
	for _, id := range ids {
		if !idPattern.MatchString(id) {
			return fmt.Errorf(
				"invalid id '%s': ids must only contain alphanumeric characters, hyphens, and underscores",
				id,
			)
		}
	}
	return nil
}

// RenderMarkdownDoc renders a mode document for the preview pane,
// wrapping to the pane width.
func RenderMarkdownDoc(doc string, width int, style string) string {
	wrap := width - previewHorizontalSpace
	if wrap <= 0 {
		wrap = defaultWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return doc
	}

	markdown, err := r.Render(doc)
	if err != nil {
		return "Error rendering markdown" // Displayed in Preview Pane
	}

	return markdown
}

// TerminalWidth reports the width of stdout, falling back to a fixed
// width when stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWrapWidth
	}
	return w
}

// FirstLine returns the first non-empty line of rendered output, which
// status bars use for one-line summaries.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
