package record

import "time"

// ConstructEvent describes one finished construction attempt.
type ConstructEvent struct {
	Type     string
	Field    string // Rejected field, empty on success or unknown-field failures
	Stage    Stage  // Failing check, empty unless Err is a *ValidationError
	Err      error
	Duration time.Duration
}

// Hooks are callbacks invoked by a Constructor. Nil hooks are skipped.
type Hooks struct {
	OnConstruct func(ConstructEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	switch {
	case h.OnConstruct == nil:
		return other
	case other.OnConstruct == nil:
		return h
	}
	first, second := h.OnConstruct, other.OnConstruct
	return Hooks{OnConstruct: func(e ConstructEvent) {
		first(e)
		second(e)
	}}
}
