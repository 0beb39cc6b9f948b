package sql

import "strings"

// Column is the definition of a table column. As columns of a relation flow
// through the binder they keep the name of the relation that produced them in
// Source, so diagnostics can always print a qualified name.
type Column struct {
	// Name is the name of the column.
	Name string
	// Type is the data type of the column.
	Type Type
	// Nullable is true if the column can contain NULL values.
	Nullable bool
	// Source is the name of the table or alias this column came from.
	Source string
}

// Equals checks whether two columns are equal.
func (c *Column) Equals(c2 *Column) bool {
	return c.Name == c2.Name &&
		c.Source == c2.Source &&
		c.Nullable == c2.Nullable &&
		c.Type == c2.Type
}

// QualifiedName returns the column name prefixed by its source, if any.
func (c *Column) QualifiedName() string {
	if c.Source == "" {
		return c.Name
	}
	return c.Source + "." + c.Name
}

// Schema is the definition of a relation: an ordered list of columns.
type Schema []*Column

// IndexOf returns the index of the given column in the schema or -1 if it is
// not present. An empty source matches any source.
func (s Schema) IndexOf(column, source string) int {
	column = strings.ToLower(column)
	source = strings.ToLower(source)
	for i, col := range s {
		if strings.ToLower(col.Name) == column &&
			(source == "" || strings.ToLower(col.Source) == source) {
			return i
		}
	}
	return -1
}

// Contains returns whether the schema contains a column with the given name.
func (s Schema) Contains(column, source string) bool {
	return s.IndexOf(column, source) >= 0
}

// Names returns the bare column names of the schema in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// QualifiedNames returns the source-qualified column names of the schema in
// declaration order.
func (s Schema) QualifiedNames() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.QualifiedName()
	}
	return names
}

// WithSource returns a copy of the schema with the source of every column
// replaced by the given name.
func (s Schema) WithSource(source string) Schema {
	schema := make(Schema, len(s))
	for i, col := range s {
		c := *col
		c.Source = source
		schema[i] = &c
	}
	return schema
}
