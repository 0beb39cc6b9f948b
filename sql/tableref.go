package sql

import "strings"

// TableRef identifies a namespace entry with up to three dot-separated
// parts: [catalog.][schema.]table.
type TableRef struct {
	Catalog string
	Schema  string
	Table   string
}

// ParseTableRef splits a table reference into its parts. References with
// zero parts, more than three parts or empty parts fail before any catalog
// lookup is attempted.
func ParseTableRef(name string) (TableRef, error) {
	var parts []string
	if name != "" {
		parts = strings.Split(name, ".")
	}

	for _, p := range parts {
		if p == "" {
			return TableRef{}, ErrTableRefParts.New(name, len(parts))
		}
	}

	switch len(parts) {
	case 1:
		return TableRef{Table: parts[0]}, nil
	case 2:
		return TableRef{Schema: parts[0], Table: parts[1]}, nil
	case 3:
		return TableRef{Catalog: parts[0], Schema: parts[1], Table: parts[2]}, nil
	default:
		return TableRef{}, ErrTableRefParts.New(name, len(parts))
	}
}

// WithDefaults fills any unspecified catalog or schema part with the session
// defaults, so the reference is always fully qualified afterwards.
func (r TableRef) WithDefaults(catalog, schema string) TableRef {
	if r.Catalog == "" {
		r.Catalog = catalog
	}
	if r.Schema == "" {
		r.Schema = schema
	}
	return r
}

// String returns the dotted form of the reference, omitting empty parts.
func (r TableRef) String() string {
	var parts []string
	if r.Catalog != "" {
		parts = append(parts, r.Catalog)
	}
	if r.Schema != "" {
		parts = append(parts, r.Schema)
	}
	parts = append(parts, r.Table)
	return strings.Join(parts, ".")
}
