package sidebar

import "time"

// suppressWindow bounds how long a post-drag guard stays armed before a
// click on the dragged row counts as deliberate again.
const suppressWindow = 500 * time.Millisecond

// ClickSuppressor is a one-shot guard armed at drag end and scoped to
// the dragged row. Terminals tend to report a spurious press/release
// pair right after a drag release, and without the guard that pair
// would activate the row the user only meant to move.
type ClickSuppressor struct {
	armed   bool
	rowKey  string
	armedAt time.Time

	now func() time.Time
}

func NewClickSuppressor() *ClickSuppressor {
	return &ClickSuppressor{now: time.Now}
}

// Arm scopes the guard to row, replacing any earlier guard.
func (s *ClickSuppressor) Arm(row Row) {
	s.armed = true
	s.rowKey = row.key()
	s.armedAt = s.now()
}

// Suppress reports whether a click on row must be swallowed. Swallowing
// disarms the guard, so only the first click pays; clicks on other rows
// pass through with the guard still armed. An expired guard disarms
// without suppressing anything.
func (s *ClickSuppressor) Suppress(row Row) bool {
	if !s.armed {
		return false
	}
	if s.now().Sub(s.armedAt) > suppressWindow {
		s.Disarm()
		return false
	}
	if row.key() != s.rowKey {
		return false
	}
	s.Disarm()
	return true
}

func (s *ClickSuppressor) Disarm() {
	s.armed = false
	s.rowKey = ""
}

func (s *ClickSuppressor) Armed() bool {
	return s.armed
}
