package record_test

import (
	"github.com/aretw0/tessera/pkg/field"
	"github.com/aretw0/tessera/pkg/record"
)

var (
	person = record.MustDefine("Person", nil,
		record.F("name", "The name"),
		record.F("age", "The person's age", field.WithPrecondition(field.Between(0, 150))),
		record.F("income", "The person's income", field.WithPrecondition(field.AtLeast(0))),
	)

	named = record.MustDefine("Named", nil,
		record.F("name", "The name"),
	)

	animal = record.MustDefine("Animal", named,
		record.F("habitat", "The habitat", field.WithPrecondition(field.OneOf("air", "land", "water"))),
		record.F("weight", "The animals weight (kg)", field.WithPrecondition(field.AtLeast(0))),
	)

	dog = record.MustDefine("Dog", animal,
		record.F("bark", "Sound of bark"),
		record.F("weight", "The animals weight (kg)",
			field.WithPrecondition(field.AtLeast(0)),
			field.WithCoercion(field.ToInt),
			field.WithPostcondition(field.IsInt),
		),
	)
)

func james(age any) map[string]any {
	return map[string]any{"name": "JAMES", "age": age, "income": 24000.0}
}
