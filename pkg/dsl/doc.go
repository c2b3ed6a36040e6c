/*
Package dsl provides a fluent builder for declaring record types.

It is an alternative to calling record.Define with hand-built descriptors,
and it can declare a whole family of types that extend each other by name.

Example usage:

	package main

	import (
		"github.com/aretw0/tessera/pkg/dsl"
		"github.com/aretw0/tessera/pkg/field"
	)

	func main() {
		b := dsl.New()

		b.Add("Named").
			Field("name", "The name")

		b.Add("Animal").ExtendsNamed("Named").
			Field("habitat", "The habitat").Pre(field.OneOf("air", "land", "water")).
			Field("weight", "The animals weight (kg)").Pre(field.AtLeast(0))

		b.Add("Dog").ExtendsNamed("Animal").
			Field("bark", "Sound of bark")

		// The resulting catalog holds Named, Animal and Dog.
		cat, err := b.Build()
		if err != nil {
			panic(err)
		}
		_, _ = cat.Construct("Dog", map[string]any{"name": "mike", "habitat": "land", "weight": 50.0, "bark": "ARF"})
	}
*/
package dsl
