package field

import (
	"reflect"
	"regexp"
)

// Always accepts every value, including Absent.
func Always(any) bool { return true }

// Required accepts any supplied, non-nil value.
func Required(v any) bool {
	return v != nil && !IsAbsent(v)
}

// Optional accepts Absent and nil, and otherwise defers to p.
func Optional(p Predicate) Predicate {
	return func(v any) bool {
		if v == nil || IsAbsent(v) {
			return true
		}
		return p(v)
	}
}

// All accepts a value only if every predicate does. Evaluation stops at the
// first rejection.
func All(preds ...Predicate) Predicate {
	return func(v any) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// AnyOf accepts a value if at least one predicate does.
func AnyOf(preds ...Predicate) Predicate {
	return func(v any) bool {
		for _, p := range preds {
			if p != nil && p(v) {
				return true
			}
		}
		return false
	}
}

// Not inverts p. Absent is still rejected.
func Not(p Predicate) Predicate {
	return func(v any) bool {
		if IsAbsent(v) {
			return false
		}
		return !p(v)
	}
}

// IsString accepts string values.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsBool accepts bool values.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsInt accepts every integer kind, and floats that hold a whole number
// (decoders such as encoding/json produce float64 for all numbers).
func IsInt(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return n == float32(int64(n))
	case float64:
		return n == float64(int64(n))
	default:
		return false
	}
}

// IsNumber accepts integer and floating-point values. Numeric strings are
// rejected.
func IsNumber(v any) bool {
	_, ok := toFloat(v)
	return ok
}

// Between accepts numbers in the inclusive range [min, max].
func Between(min, max float64) Predicate {
	return func(v any) bool {
		f, ok := toFloat(v)
		return ok && f >= min && f <= max
	}
}

// AtLeast accepts numbers greater than or equal to min.
func AtLeast(min float64) Predicate {
	return func(v any) bool {
		f, ok := toFloat(v)
		return ok && f >= min
	}
}

// AtMost accepts numbers less than or equal to max.
func AtMost(max float64) Predicate {
	return func(v any) bool {
		f, ok := toFloat(v)
		return ok && f <= max
	}
}

// OneOf accepts values equal to one of the allowed values. Numbers compare by
// value regardless of their Go type.
func OneOf(allowed ...any) Predicate {
	return func(v any) bool {
		for _, a := range allowed {
			if equal(a, v) {
				return true
			}
		}
		return false
	}
}

// Matches accepts strings matching the regular expression.
// It panics if pattern does not compile.
func Matches(pattern string) Predicate {
	return MatchesRegexp(regexp.MustCompile(pattern))
}

// MatchesRegexp accepts strings matched by re.
func MatchesRegexp(re *regexp.Regexp) Predicate {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}

// NonEmpty accepts non-empty strings, slices, arrays and maps.
func NonEmpty(v any) bool {
	if v == nil || IsAbsent(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	default:
		return false
	}
}

// Each accepts slices and arrays whose every element satisfies p.
func Each(p Predicate) Predicate {
	return func(v any) bool {
		if v == nil || IsAbsent(v) {
			return false
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if !p(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
