package mem

import (
	"fmt"
	"io"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/sqlbind/go-sql-binder/sql"
)

// CatalogDoc is the YAML document describing a full catalog snapshot.
type CatalogDoc struct {
	Catalogs []NamespaceDoc `yaml:"catalogs"`
}

// NamespaceDoc describes one top-level catalog.
type NamespaceDoc struct {
	Name    string      `yaml:"name"`
	Schemas []SchemaDoc `yaml:"schemas"`
}

// SchemaDoc describes one schema.
type SchemaDoc struct {
	Name   string     `yaml:"name"`
	Tables []TableDoc `yaml:"tables"`
}

// TableDoc describes one table.
type TableDoc struct {
	Name    string      `yaml:"name"`
	Columns []ColumnDoc `yaml:"columns"`
}

// ColumnDoc describes one column.
type ColumnDoc struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

// LoadCatalog reads a YAML catalog document and builds the namespaces of a
// new catalog from it. Functions are not part of the document; register
// them separately.
func LoadCatalog(r io.Reader) (*sql.Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc CatalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	catalog := sql.NewCatalog()
	for _, nsDoc := range doc.Catalogs {
		ns := NewNamespace(nsDoc.Name)
		for _, schemaDoc := range nsDoc.Schemas {
			db := NewDatabase(schemaDoc.Name)
			for _, tableDoc := range schemaDoc.Tables {
				schema, err := schemaFromDoc(tableDoc.Columns)
				if err != nil {
					return nil, err
				}
				db.AddTable(NewTable(tableDoc.Name, schema))
			}
			ns.AddDatabase(db)
		}
		catalog.AddNamespace(ns)
	}

	return catalog, nil
}

func schemaFromDoc(cols []ColumnDoc) (sql.Schema, error) {
	schema := make(sql.Schema, len(cols))
	for i, col := range cols {
		typ, err := TypeFromName(col.Type)
		if err != nil {
			return nil, err
		}
		schema[i] = &sql.Column{Name: col.Name, Type: typ, Nullable: col.Nullable}
	}
	return schema, nil
}

// TypeFromName resolves a type name used in catalog documents.
func TypeFromName(name string) (sql.Type, error) {
	switch strings.ToLower(name) {
	case "null":
		return sql.Null, nil
	case "boolean", "bool":
		return sql.Boolean, nil
	case "bigint", "int64", "integer", "int":
		return sql.Int64, nil
	case "double", "float64", "float":
		return sql.Float64, nil
	case "text", "string", "varchar":
		return sql.Text, nil
	case "timestamp":
		return sql.Timestamp, nil
	case "date":
		return sql.Date, nil
	default:
		return nil, fmt.Errorf("unknown column type: %s", name)
	}
}
