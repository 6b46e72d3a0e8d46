package sidebar

import "fmt"

// Announcer feeds the sidebar's single status line. Only feature moves
// that land in a different category produce a new message; everything
// else leaves the line showing whatever it showed last.
type Announcer struct {
	last string
}

// FeatureMoved records a completed feature move. Same-category reorders
// are deliberately silent.
func (a *Announcer) FeatureMoved(fromCategoryID, toCategoryID, toLabel string) {
	if fromCategoryID == toCategoryID {
		return
	}
	a.last = fmt.Sprintf("Moved into category %s.", toLabel)
}

func (a *Announcer) Last() string {
	return a.last
}
