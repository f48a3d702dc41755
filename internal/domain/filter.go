package domain

import "fmt"

// TaskFilter selects a subsequence of the registry.
type TaskFilter int

const (
	FilterAll       TaskFilter = iota // Every task
	FilterPending                     // Tasks with Completed == false
	FilterCompleted                   // Tasks with Completed == true
)

// ParseTaskFilter parses a filter name.
// Accepted values: all, pending (todo), completed (done).
func ParseTaskFilter(s string) (TaskFilter, error) {
	switch s {
	case "", "all":
		return FilterAll, nil
	case "pending", "todo":
		return FilterPending, nil
	case "completed", "done":
		return FilterCompleted, nil
	}
	return FilterAll, fmt.Errorf("%w: %q (want all, pending or completed)", ErrInvalidFilter, s)
}

// Matches reports whether the task belongs to the filtered subsequence.
func (f TaskFilter) Matches(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterAll:
		return true
	}
	return true
}

// Next returns the filter that follows f in the cycle all -> pending -> completed.
func (f TaskFilter) Next() TaskFilter {
	switch f {
	case FilterAll:
		return FilterPending
	case FilterPending:
		return FilterCompleted
	case FilterCompleted:
		return FilterAll
	}
	return FilterAll
}

// String returns the filter name.
func (f TaskFilter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterPending:
		return "pending"
	case FilterCompleted:
		return "completed"
	}
	return "unknown"
}
