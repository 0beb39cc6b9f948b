// Package boltcat persists a catalog snapshot in a bolt file and serves it
// back read-only. The layout is one bucket per catalog, one nested bucket
// per schema, and one key per table whose value is the YAML column list.
package boltcat

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"
	yaml "gopkg.in/yaml.v2"

	"github.com/sqlbind/go-sql-binder/mem"
	"github.com/sqlbind/go-sql-binder/sql"
)

// WriteSnapshot writes the namespaces of the given catalog to a bolt file,
// replacing any previous content for the same catalog names.
func WriteSnapshot(path string, catalog *sql.Catalog) error {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Update(func(tx *bolt.Tx) error {
		for _, ns := range catalog.Namespaces() {
			nsBucket, err := tx.CreateBucketIfNotExists([]byte(ns.Name()))
			if err != nil {
				return err
			}
			for _, schema := range ns.Databases() {
				schemaBucket, err := nsBucket.CreateBucketIfNotExists([]byte(schema.Name()))
				if err != nil {
					return err
				}
				for name, table := range schema.Tables() {
					raw, err := marshalColumns(table.Schema())
					if err != nil {
						return err
					}
					if err := schemaBucket.Put([]byte(name), raw); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// OpenSnapshot loads all namespaces from a bolt file into a new catalog.
// The file is opened read-only; the returned catalog is an immutable
// snapshot safe to share between concurrent analyzers.
func OpenSnapshot(path string) (*sql.Catalog, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{
		ReadOnly: true,
		Timeout:  time.Second,
	})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	catalog := sql.NewCatalog()
	err = db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(nsName []byte, nsBucket *bolt.Bucket) error {
			ns := mem.NewNamespace(string(nsName))
			err := nsBucket.ForEach(func(schemaName, v []byte) error {
				if v != nil {
					return fmt.Errorf("unexpected value at schema level: %s", schemaName)
				}
				schemaBucket := nsBucket.Bucket(schemaName)
				database := mem.NewDatabase(string(schemaName))
				err := schemaBucket.ForEach(func(tableName, raw []byte) error {
					schema, err := unmarshalColumns(raw)
					if err != nil {
						return err
					}
					database.AddTable(mem.NewTable(string(tableName), schema))
					return nil
				})
				if err != nil {
					return err
				}
				ns.AddDatabase(database)
				return nil
			})
			if err != nil {
				return err
			}
			catalog.AddNamespace(ns)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

func marshalColumns(schema sql.Schema) ([]byte, error) {
	cols := make([]mem.ColumnDoc, len(schema))
	for i, col := range schema {
		cols[i] = mem.ColumnDoc{
			Name:     col.Name,
			Type:     col.Type.Name(),
			Nullable: col.Nullable,
		}
	}
	return yaml.Marshal(cols)
}

func unmarshalColumns(raw []byte) (sql.Schema, error) {
	var cols []mem.ColumnDoc
	if err := yaml.Unmarshal(raw, &cols); err != nil {
		return nil, err
	}

	schema := make(sql.Schema, len(cols))
	for i, col := range cols {
		typ, err := mem.TypeFromName(col.Type)
		if err != nil {
			return nil, err
		}
		schema[i] = &sql.Column{Name: col.Name, Type: typ, Nullable: col.Nullable}
	}
	return schema, nil
}
