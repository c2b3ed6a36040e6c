// Package field describes a single record field: its human-readable label and
// the predicates a value must satisfy to be stored in it.
//
// A Descriptor is pure metadata. It is created once, when a record type is
// declared, and shared by every instance of that type:
//
//	age := field.New("The person's age",
//	    field.WithPrecondition(field.Between(0, 150)),
//	)
//
//	age.CheckPre(34)          // true
//	age.CheckPre(160)         // false
//	age.CheckPre(field.Absent) // false, the field is required
//
// Preconditions see the raw input, including the Absent marker when the caller
// supplied nothing. Postconditions see the stored value. An optional Coercion
// runs between the two and is the only step allowed to change the value.
package field
