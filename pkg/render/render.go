// Package render formats records for people to read.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/tessera/pkg/field"
	"github.com/aretw0/tessera/pkg/record"
)

// Text renders a record with each field preceded by its label:
//
//	Person(
//	  # The name
//	  name='JAMES'
//
//	  # The person's age
//	  age=34
//	)
func Text(r *record.Record) string {
	return render(r, termenv.Ascii)
}

// Styled is like Text but colours labels and field names for the given
// terminal profile. With termenv.Ascii it returns exactly what Text does.
func Styled(r *record.Record, p termenv.Profile) string {
	return render(r, p)
}

func render(r *record.Record, p termenv.Profile) string {
	var sb strings.Builder

	sb.WriteString(p.String(r.Type().Name()).Bold().String())
	sb.WriteString("(\n")

	for i, f := range r.Type().Fields() {
		if i > 0 {
			sb.WriteString("\n")
		}
		v, _ := r.Lookup(f.Name)

		sb.WriteString("  ")
		sb.WriteString(p.String("# " + f.Descriptor.Label()).Foreground(p.Color("#818cf8")).String())
		sb.WriteString("\n  ")
		sb.WriteString(p.String(f.Name).Foreground(p.Color("#f472b6")).String())
		sb.WriteString("=")
		sb.WriteString(Value(v))
		sb.WriteString("\n")
	}

	sb.WriteString(")")
	return sb.String()
}

// Value formats a single stored value. Strings are single-quoted and whole
// floats keep a trailing ".0" so they read differently from ints.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return "'" + strings.ReplaceAll(x, "'", `\'`) + "'"
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	}
	if field.IsAbsent(v) {
		return "<absent>"
	}
	return fmt.Sprintf("%v", v)
}

func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'f', -1, bits)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
