/*
Package tessera is a small declarative schema and validation library.

A record type is a named set of fields. Each field carries a human-readable
label and optional predicates, and types may extend each other. Instances are
constructed in one validated step and cannot be changed afterwards.

# Concept

Tessera separates declaration from construction. A type is declared once, in
Go or in a YAML document, and its effective field set (own fields plus
everything inherited) is computed once. Every instance goes through the same
construction algorithm, which rejects unknown names, checks each field in
order and stops at the first rejected value.

# Key Features

  - Inheritance: subtypes add fields or override an ancestor's rules while the
    field keeps its original position.
  - Fail fast: errors name the field label and no partial record is ever
    returned.
  - Immutability: records expose no mutators; staged builders are sealed once
    they build.
  - Observability: structured logging through log/slog and optional
    Prometheus metrics.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/tessera"
		"github.com/aretw0/tessera/pkg/field"
		"github.com/aretw0/tessera/pkg/record"
	)

	var Person = record.MustDefine("Person", nil,
		record.F("name", "The name"),
		record.F("age", "The person's age", field.WithPrecondition(field.Between(0, 150))),
		record.F("income", "The person's income", field.WithPrecondition(field.AtLeast(0))),
	)

	func main() {
		lib, err := tessera.New()
		if err != nil {
			log.Fatal(err)
		}
		if err := lib.Register(Person); err != nil {
			log.Fatal(err)
		}

		james, err := lib.Construct("Person", map[string]any{"name": "JAMES", "age": 34, "income": 24000.0})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(lib.Render(james))
	}
*/
package tessera
