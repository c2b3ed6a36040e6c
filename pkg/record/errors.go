package record

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownField matches every *UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")

	// ErrImmutable matches every *ImmutableRecordError.
	ErrImmutable = errors.New("record is immutable")

	// ErrDeclaration matches every *DeclarationError.
	ErrDeclaration = errors.New("invalid record declaration")
)

// Stage identifies which check rejected a value.
type Stage string

const (
	StagePrecondition  Stage = "precondition"
	StageCoercion      Stage = "coercion"
	StagePostcondition Stage = "postcondition"
)

// ValidationError reports a field value rejected during construction.
type ValidationError struct {
	Type  string // Record type name
	Field string // Field name
	Label string // Human-readable field label
	Stage Stage  // Check that failed
	Value any    // The rejected value (field.Absent when nothing was supplied)
	Err   error  // Underlying coercion error, if any
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid value for %s: %s failed", e.Label, e.Stage)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s (%s.%s, got %T)", msg, e.Type, e.Field, e.Value)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Err }

// UnknownFieldError reports supplied names that the record type does not declare.
type UnknownFieldError struct {
	Type  string
	Names []string // Sorted
}

func (e *UnknownFieldError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("%s has no field %q", e.Type, e.Names[0])
	}
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return fmt.Sprintf("%s has no fields %s", e.Type, strings.Join(quoted, ", "))
}

func (e *UnknownFieldError) Is(target error) bool { return target == ErrUnknownField }

// ImmutableRecordError reports an attempt to change a record after construction.
type ImmutableRecordError struct {
	Type  string
	Field string // Empty for bulk operations
	Op    string // "set", "unset", "update" or "build"
}

func (e *ImmutableRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("cannot %s %s after construction", e.Op, e.Type)
	}
	return fmt.Sprintf("cannot %s %s.%s after construction", e.Op, e.Type, e.Field)
}

func (e *ImmutableRecordError) Is(target error) bool { return target == ErrImmutable }

// DeclarationError reports a malformed record type declaration.
// It is a programming error; MustDefine panics with it.
type DeclarationError struct {
	Type   string
	Field  string
	Reason string
}

func (e *DeclarationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("declare %q: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("declare %q: field %q: %s", e.Type, e.Field, e.Reason)
}

func (e *DeclarationError) Is(target error) bool { return target == ErrDeclaration }
