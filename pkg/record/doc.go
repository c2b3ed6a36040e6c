/*
Package record declares inheritance-aware record types and constructs
immutable, validated instances of them.

A Type is declared once, usually at package level, from an optional parent and
the fields it introduces or overrides:

	var Named = record.MustDefine("Named", nil,
		record.F("name", "The name"),
	)

	var Animal = record.MustDefine("Animal", Named,
		record.F("habitat", "The habitat", field.WithPrecondition(field.OneOf("air", "land", "water"))),
		record.F("weight", "The animals weight (kg)", field.WithPrecondition(field.AtLeast(0))),
	)

The effective field set of a type combines its ancestors' declarations, root
first. A redeclared name keeps the position where it was first introduced and
takes the most derived descriptor.

# Construction

Construct (or Type.New) turns a map of raw values into a *Record:

	rex, err := Animal.New(map[string]any{"name": "rex", "habitat": "land", "weight": 10})

Construction fails with *UnknownFieldError if a supplied name is not
declared, and with *ValidationError naming the field label when a value is
rejected. Missing values are passed to preconditions as field.Absent.

# Immutability

A *Record has no mutating methods. Staged construction goes through a
Builder, which is sealed by a successful Build; later changes fail with
*ImmutableRecordError.
*/
package record
