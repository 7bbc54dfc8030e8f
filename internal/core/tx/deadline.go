package tx

import "time"

// NetworkEpoch is the origin of network time. Deadlines are milliseconds since it.
var NetworkEpoch = time.Date(2016, time.April, 1, 0, 0, 0, 0, time.UTC)

// DeadlineAt converts a wall clock time to a deadline. Times before the epoch map to 0.
func DeadlineAt(t time.Time) uint64 {
	ms := t.Sub(NetworkEpoch).Milliseconds()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// DeadlineTime converts a deadline back to wall clock time.
func DeadlineTime(deadline uint64) time.Time {
	return NetworkEpoch.Add(time.Duration(deadline) * time.Millisecond).UTC()
}
