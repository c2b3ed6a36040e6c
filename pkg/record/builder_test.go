package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera/pkg/record"
)

func TestBuilder_SealedAfterBuild(t *testing.T) {
	b := record.NewBuilder(person)
	require.NoError(t, b.Update(james(34)))

	p, err := b.Build()
	require.NoError(t, err)
	assert.True(t, b.Sealed())

	t.Run("Set Valid Field", func(t *testing.T) {
		err := b.Set("age", 32)
		var ierr *record.ImmutableRecordError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "Person", ierr.Type)
		assert.Equal(t, "age", ierr.Field)
		assert.Equal(t, "set", ierr.Op)
		assert.ErrorIs(t, err, record.ErrImmutable)
	})

	t.Run("Set Unknown Field", func(t *testing.T) {
		err := b.Set("wealth", 1)
		assert.ErrorIs(t, err, record.ErrImmutable)
	})

	t.Run("Unset", func(t *testing.T) {
		assert.ErrorIs(t, b.Unset("name"), record.ErrImmutable)
	})

	t.Run("Bulk Update", func(t *testing.T) {
		assert.ErrorIs(t, b.Update(map[string]any{"age": 1}), record.ErrImmutable)
	})

	t.Run("Rebuild", func(t *testing.T) {
		again, err := b.Build()
		assert.Nil(t, again)
		assert.ErrorIs(t, err, record.ErrImmutable)
	})

	age, err := p.Get("age")
	require.NoError(t, err)
	assert.Equal(t, 34, age)
}

func TestBuilder_StaysOpenOnFailure(t *testing.T) {
	b := record.NewBuilder(person)
	require.NoError(t, b.Set("name", "JAMES"))
	require.NoError(t, b.Set("age", 160))
	require.NoError(t, b.Set("income", 24000.0))

	_, err := b.Build()
	assert.ErrorIs(t, err, record.ErrValidation)
	assert.False(t, b.Sealed())

	require.NoError(t, b.Set("age", 34))
	p, err := b.Build()
	require.NoError(t, err)
	age, _ := p.Get("age")
	assert.Equal(t, 34, age)
}

func TestBuilder_RejectsUnknownNames(t *testing.T) {
	b := record.NewBuilder(person)

	err := b.Set("wealth", 1)
	assert.ErrorIs(t, err, record.ErrUnknownField)

	err = b.Update(map[string]any{"age": 34, "wealth": 1})
	assert.ErrorIs(t, err, record.ErrUnknownField)

	// Nothing from the failed update was staged.
	require.NoError(t, b.Set("name", "JAMES"))
	_, err = b.Build()
	var verr *record.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "age", verr.Field)
}

func TestBuilder_Unset(t *testing.T) {
	b := record.NewBuilder(named)
	require.NoError(t, b.Set("name", "rex"))
	require.NoError(t, b.Unset("name"))

	rec, err := b.Build()
	require.NoError(t, err)
	v, _ := rec.Get("name")
	assert.NotEqual(t, "rex", v)
}

func TestBuilder_UsesConstructorHooks(t *testing.T) {
	calls := 0
	c := record.NewConstructor(record.WithHooks(record.Hooks{OnConstruct: func(record.ConstructEvent) { calls++ }}))

	b := c.NewBuilder(named)
	_, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
