package declfile

// Document is the top-level structure of a declaration file.
type Document struct {
	Records []RecordSpec `yaml:"records" json:"records"`
}

// RecordSpec declares one record type.
type RecordSpec struct {
	Name    string      `yaml:"name" json:"name"`
	Extends string      `yaml:"extends" json:"extends"`
	Fields  []FieldSpec `yaml:"fields" json:"fields"`
}

// FieldSpec declares one field. Pre and Post hold constraint maps that are
// decoded into Constraint.
type FieldSpec struct {
	Name   string         `yaml:"name" json:"name"`
	Label  string         `yaml:"label" json:"label"`
	Pre    map[string]any `yaml:"pre" json:"pre"`
	Post   map[string]any `yaml:"post" json:"post"`
	Coerce string         `yaml:"coerce" json:"coerce"`
}

// Constraint is the decoded form of a pre or post map.
// It uses "mapstructure" tags so it can be decoded from any generic map.
type Constraint struct {
	Required bool     `mapstructure:"required"`
	Optional bool     `mapstructure:"optional"`
	Type     string   `mapstructure:"type"`
	Min      *float64 `mapstructure:"min"`
	Max      *float64 `mapstructure:"max"`
	OneOf    []any    `mapstructure:"one_of"`
	Pattern  string   `mapstructure:"pattern"`
	NonEmpty bool     `mapstructure:"non_empty"`
	Custom   []string `mapstructure:"custom"`
}
