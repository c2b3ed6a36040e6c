package field

// absentMarker is the type of Absent. It is unexported so no other value can
// be mistaken for it.
type absentMarker struct{}

func (absentMarker) String() string { return "<absent>" }

// Absent is handed to a precondition when the caller supplied no value for
// the field. It is distinct from an explicit nil.
var Absent any = absentMarker{}

// IsAbsent reports whether v is the Absent marker.
func IsAbsent(v any) bool {
	_, ok := v.(absentMarker)
	return ok
}
