package cmd

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/studio/internal/organizer"
	"github.com/Paintersrp/studio/internal/state"
)

// ResolveCategory maps a user-supplied argument onto a category id.
// Exact ids win, labels match case-insensitively, and the uncategorized
// bucket answers to "uncategorized" or "none".
func ResolveCategory(s *state.State, arg string) (string, error) {
	if s == nil || s.Organizer == nil {
		return "", fmt.Errorf("state is not initialized")
	}
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return "", fmt.Errorf("a category argument is required")
	}

	snap := s.Organizer.Snapshot()
	if snap.HasCategory(trimmed) {
		return trimmed, nil
	}

	lowered := strings.ToLower(trimmed)
	if lowered == "uncategorized" || lowered == "none" {
		return organizer.UncategorizedID, nil
	}

	for _, category := range snap.Categories {
		if strings.ToLower(category.ID) == lowered || strings.ToLower(category.Label) == lowered {
			return category.ID, nil
		}
	}

	return "", fmt.Errorf("no category matches %q; run 'studio org show' to list categories", arg)
}

// ResolveMode maps a user-supplied argument onto a mode id using the
// same matching rules as ResolveCategory.
func ResolveMode(s *state.State, arg string) (string, error) {
	if s == nil || s.Catalog == nil {
		return "", fmt.Errorf("state is not initialized")
	}
	trimmed := strings.TrimSpace(arg)
	if trimmed == "" {
		return "", fmt.Errorf("a mode argument is required")
	}

	if _, ok := s.Catalog.Mode(trimmed); ok {
		return trimmed, nil
	}

	lowered := strings.ToLower(trimmed)
	for _, mode := range s.Catalog.Modes {
		if strings.ToLower(mode.ID) == lowered || strings.ToLower(mode.Label) == lowered {
			return mode.ID, nil
		}
	}

	return "", fmt.Errorf("no mode matches %q; run 'studio org show' to list modes", arg)
}
