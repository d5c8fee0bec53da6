package domain

// PendingEntry is the single outstanding expectation for a chat's next
// free-text reply. A chat has at most one pending entry at a time.
type PendingEntry interface {
	pendingEntry()
}

// PendingGlucose expects a glucose payload: value, optional date/time,
// optional note.
type PendingGlucose struct {
	Tag GlucoseTag
}

// PendingWeight expects a single decimal weight value.
type PendingWeight struct{}

func (PendingGlucose) pendingEntry() {}
func (PendingWeight) pendingEntry()  {}
