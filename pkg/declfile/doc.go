// Package declfile declares record types from YAML documents.
//
// A document lists records, each with an optional parent and its fields.
// Field constraints use a small vocabulary mapped onto the predicates of
// package field:
//
//	records:
//	  - name: Named
//	    fields:
//	      - name: name
//	        label: The name
//	  - name: Animal
//	    extends: Named
//	    fields:
//	      - name: habitat
//	        label: The habitat
//	        pre: { one_of: [air, land, water] }
//	      - name: weight
//	        label: The animals weight (kg)
//	        pre: { min: 0 }
//
// Constraint keys: required, optional, type (string, int, number, bool), min,
// max, one_of, pattern, non_empty and custom (names registered with
// WithPredicate). Coercions are named with coerce: int or float, or any name
// registered with WithCoercion.
//
// The package only parses bytes; reading files is left to the caller.
package declfile
