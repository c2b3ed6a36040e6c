package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera/pkg/field"
)

func TestNew_Defaults(t *testing.T) {
	d := field.New("The name")

	assert.Equal(t, "The name", d.Label())
	assert.True(t, d.CheckPre(field.Absent), "default precondition accepts Absent")
	assert.True(t, d.CheckPre(nil))
	assert.True(t, d.CheckPre("anything"))
	assert.True(t, d.CheckPost(42))
	assert.Nil(t, d.Coercion())

	v, err := d.Coerce("as is")
	require.NoError(t, err)
	assert.Equal(t, "as is", v)
}

func TestNew_NilPredicatesDefault(t *testing.T) {
	d := field.New("x", field.WithPrecondition(nil), field.WithPostcondition(nil))

	assert.NotNil(t, d.Precondition())
	assert.NotNil(t, d.Postcondition())
	assert.True(t, d.CheckPre(field.Absent))
}

func TestZeroDescriptor(t *testing.T) {
	var d field.Descriptor

	assert.Empty(t, d.Label())
	assert.True(t, d.CheckPre(field.Absent))
	assert.True(t, d.CheckPost(field.Absent))
}

func TestNew_WithOptions(t *testing.T) {
	d := field.New("The animals weight (kg)",
		field.WithPrecondition(field.AtLeast(0)),
		field.WithCoercion(field.ToInt),
		field.WithPostcondition(field.IsInt),
	)

	assert.True(t, d.CheckPre(50.0))
	assert.False(t, d.CheckPre(-1))
	assert.False(t, d.CheckPre(field.Absent))

	v, err := d.Coerce(50.7)
	require.NoError(t, err)
	assert.Equal(t, 50, v)
	assert.True(t, d.CheckPost(v))
	assert.False(t, d.CheckPost(50.7))
}

func TestDescriptor_ValueSemantics(t *testing.T) {
	base := field.New("The habitat", field.WithPrecondition(field.OneOf("air")))
	copied := base

	// Options only apply at creation; a copy shares the same behaviour.
	assert.Equal(t, base.Label(), copied.Label())
	assert.Equal(t, base.CheckPre("air"), copied.CheckPre("air"))
	assert.False(t, copied.CheckPre("land"))
}

func TestAbsent(t *testing.T) {
	assert.True(t, field.IsAbsent(field.Absent))
	assert.False(t, field.IsAbsent(nil))
	assert.False(t, field.IsAbsent(struct{}{}))
	assert.Equal(t, "<absent>", field.Absent.(interface{ String() string }).String())
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in      any
		want    any
		wantErr bool
	}{
		{50, 50, false},
		{int64(7), 7, false},
		{50.0, 50, false},
		{-3.9, -3, false},
		{float32(2.5), 2, false},
		{"50", nil, true},
		{field.Absent, nil, true},
	}

	for _, tt := range tests {
		got, err := field.ToInt(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ToInt(%v)", tt.in)
			continue
		}
		require.NoError(t, err, "ToInt(%v)", tt.in)
		assert.Equal(t, tt.want, got, "ToInt(%v)", tt.in)
	}
}

func TestToFloat(t *testing.T) {
	v, err := field.ToFloat(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = field.ToFloat(true)
	assert.Error(t, err)
}
