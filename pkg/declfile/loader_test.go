package declfile_test

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/catalog"
	"github.com/aretw0/tessera/pkg/declfile"
	"github.com/aretw0/tessera/pkg/record"
)

func loadZoo(t *testing.T, opts ...declfile.Option) *catalog.Catalog {
	t.Helper()

	f, err := os.Open("testdata/zoo.yaml")
	require.NoError(t, err)
	defer f.Close()

	cat := catalog.New()
	_, err = declfile.NewLoader(opts...).Load(f, cat)
	require.NoError(t, err)
	return cat
}

func TestLoad_Zoo(t *testing.T) {
	cat := loadZoo(t)

	assert.Equal(t, []string{"Animal", "Dog", "Named", "Person"}, cat.Names())

	dog, err := cat.Get("Dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "habitat", "weight", "bark"}, dog.FieldNames())

	mike, err := cat.Construct("Dog", map[string]any{"name": "mike", "habitat": "land", "weight": 50.0, "bark": "ARF"})
	require.NoError(t, err)
	w, _ := mike.Get("weight")
	assert.Equal(t, 50, w)

	_, err = cat.Construct("Animal", map[string]any{"name": "rex", "habitat": "space", "weight": 10})
	var verr *record.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "The habitat", verr.Label)
}

func TestLoad_PersonScenarios(t *testing.T) {
	cat := loadZoo(t)

	_, err := cat.Construct("Person", map[string]any{"name": "JAMES", "age": 110, "income": 24000.0})
	assert.NoError(t, err)

	_, err = cat.Construct("Person", map[string]any{"name": "JAMES", "age": 160, "income": 24000.0})
	assert.ErrorIs(t, err, record.ErrValidation)

	_, err = cat.Construct("Person", map[string]any{"name": "JAMES"})
	assert.ErrorIs(t, err, record.ErrValidation)

	_, err = cat.Construct("Person", map[string]any{"name": "JAMES", "age": 34, "income": 24000.0, "wealth": 1})
	assert.ErrorIs(t, err, record.ErrUnknownField)
}

func TestLoad_Constraints(t *testing.T) {
	doc := `
records:
  - name: Account
    fields:
      - name: id
        label: The account id
        pre: { required: true, type: string, pattern: "^[a-z]{3}-[0-9]+$" }
      - name: tags
        label: The tags
        pre: { optional: true, non_empty: true }
      - name: score
        label: The score
        pre: { type: int, custom: even }
      - name: active
        label: Whether the account is active
        pre: { type: bool }
`
	cat := catalog.New()
	_, err := declfile.NewLoader(
		declfile.WithPredicate("even", func(v any) bool {
			n, ok := v.(int)
			return ok && n%2 == 0
		}),
	).LoadBytes([]byte(doc), cat)
	require.NoError(t, err)

	valid := map[string]any{"id": "abc-12", "score": 4, "active": true}
	_, err = cat.Construct("Account", valid)
	assert.NoError(t, err, "tags is optional")

	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"Bad Pattern", "id", "ABC-12"},
		{"Id Not A String", "id", 12},
		{"Empty Tags", "tags", []string{}},
		{"Odd Score", "score", 3},
		{"Active Not Bool", "active", "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"id": "abc-12", "score": 4, "active": true}
			raw[tt.key] = tt.value

			_, err := cat.Construct("Account", raw)
			var verr *record.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.key, verr.Field)
		})
	}
}

func TestLoad_ParentFromCatalog(t *testing.T) {
	cat := loadZoo(t)

	_, err := declfile.Load(strings.NewReader(`
records:
  - name: Cat
    extends: Animal
    fields:
      - name: lives
        label: Lives left
        pre: { type: int, min: 0, max: 9 }
`), cat)
	require.NoError(t, err)

	c, err := cat.Get("Cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "habitat", "weight", "lives"}, c.FieldNames())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Malformed YAML", "records: [::"},
		{"Unknown Document Key", "widgets: []"},
		{"Unknown Constraint", "records: [{name: A, fields: [{name: a, label: A, pre: {between: 1}}]}]"},
		{"Unsupported Type", "records: [{name: A, fields: [{name: a, label: A, pre: {type: date}}]}]"},
		{"Bad Pattern", "records: [{name: A, fields: [{name: a, label: A, pre: {pattern: '('}}]}]"},
		{"Unknown Predicate", "records: [{name: A, fields: [{name: a, label: A, pre: {custom: nope}}]}]"},
		{"Unknown Coercion", "records: [{name: A, fields: [{name: a, label: A, coerce: date}]}]"},
		{"Unknown Parent", "records: [{name: A, extends: Z}]"},
		{"Missing Name", "records: [{fields: []}]"},
		{"Reserved Field", "records: [{name: A, fields: [{name: __a, label: A}]}]"},
		{"Duplicate Field", "records: [{name: A, fields: [{name: a, label: A}, {name: a, label: A}]}]"},
		{"Duplicate Record", "records: [{name: A}, {name: A}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := catalog.New()
			_, err := declfile.NewLoader().LoadBytes([]byte(tt.doc), cat)
			assert.Error(t, err)
			assert.Zero(t, cat.Len())
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	cat := catalog.New()
	types, err := declfile.NewLoader().LoadBytes(nil, cat)
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestLoad_LogsDeclaredTypes(t *testing.T) {
	var buf bytes.Buffer
	loadZoo(t, declfile.WithLogger(logging.NewWriter(&buf, slog.LevelDebug)))

	assert.Contains(t, buf.String(), "record type declared")
	assert.Contains(t, buf.String(), "type=Dog")
}

func TestLoad_CustomCoercion(t *testing.T) {
	doc := `
records:
  - name: Tagged
    fields:
      - name: tag
        label: The tag
        pre: { type: string }
        coerce: upper
`
	cat := catalog.New()
	_, err := declfile.NewLoader(
		declfile.WithCoercion("upper", func(v any) (any, error) {
			return strings.ToUpper(v.(string)), nil
		}),
	).LoadBytes([]byte(doc), cat)
	require.NoError(t, err)

	rec, err := cat.Construct("Tagged", map[string]any{"tag": "arf"})
	require.NoError(t, err)
	tag, _ := rec.Get("tag")
	assert.Equal(t, "ARF", tag)
}
