package field

import (
	"fmt"
	"math"
)

// ToInt converts a numeric value to int. Floats are truncated toward zero.
func ToInt(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("cannot convert %T to int", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return nil, fmt.Errorf("value %v out of int range", v)
	}
	return int(f), nil
}

// ToFloat converts a numeric value to float64.
func ToFloat(v any) (any, error) {
	f, ok := toFloat(v)
	if !ok {
		return nil, fmt.Errorf("cannot convert %T to float", v)
	}
	return f, nil
}
