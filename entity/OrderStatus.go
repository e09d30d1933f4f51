package entity

// Order statuses form a strictly forward chain. There is no path back
// to pending and nothing follows completed.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
)

var statusRank = map[string]int{
	StatusPending:   0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusCompleted: 3,
}

func KnownStatus(s string) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether a status change moves forward along the
// chain. Skipping ahead is allowed (a quiet kitchen may mark pending
// straight to ready); moving backward or out of completed never is.
func CanTransition(from, to string) bool {
	a, ok := statusRank[from]
	if !ok {
		return false
	}
	b, ok := statusRank[to]
	if !ok {
		return false
	}
	return b > a
}
