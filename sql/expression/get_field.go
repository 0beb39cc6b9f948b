package expression

import (
	"fmt"

	"github.com/sqlbind/go-sql-binder/sql"
)

// GetField is an expression to get the field of a relation by index. It is
// the resolved form of a column reference.
type GetField struct {
	table      string
	fieldIndex int
	name       string
	fieldType  sql.Type
	nullable   bool
}

// NewGetField creates a GetField expression.
func NewGetField(index int, fieldType sql.Type, fieldName string, nullable bool) *GetField {
	return NewGetFieldWithTable(index, fieldType, "", fieldName, nullable)
}

// NewGetFieldWithTable creates a GetField expression with a table name. The
// table name may be an alias.
func NewGetFieldWithTable(index int, fieldType sql.Type, table, fieldName string, nullable bool) *GetField {
	return &GetField{
		table:      table,
		fieldIndex: index,
		fieldType:  fieldType,
		name:       fieldName,
		nullable:   nullable,
	}
}

// Index returns the row index this field reads from.
func (p *GetField) Index() int { return p.fieldIndex }

// Name implements the Nameable interface.
func (p *GetField) Name() string { return p.name }

// Table returns the name of the field's table.
func (p *GetField) Table() string { return p.table }

// Resolved implements the Expression interface.
func (*GetField) Resolved() bool {
	return true
}

// IsNullable implements the Expression interface.
func (p *GetField) IsNullable() bool {
	return p.nullable
}

// Type implements the Expression interface.
func (p *GetField) Type() sql.Type {
	return p.fieldType
}

// Eval implements the Expression interface.
func (p *GetField) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	if p.fieldIndex < 0 || p.fieldIndex >= len(row) {
		return nil, sql.ErrInvalidType.New(fmt.Sprintf("field index %d out of row bounds", p.fieldIndex))
	}
	return row[p.fieldIndex], nil
}

func (p *GetField) String() string {
	if p.table == "" {
		return p.name
	}
	return fmt.Sprintf("%s.%s", p.table, p.name)
}

// Children implements the Expression interface.
func (*GetField) Children() []sql.Expression {
	return nil
}

// WithChildren implements the Expression interface.
func (p *GetField) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 0)
	}
	return p, nil
}
