package fivetran

import (
	"errors"
	"fmt"
)

// SchemaBuilder provides a fluent interface for building schema configurations
type SchemaBuilder struct {
	schemas              map[string]*SchemaEntry
	schemaChangeHandling string
	err                  error
}

// NewSchemaBuilder creates a new SchemaBuilder instance
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{
		schemas: make(map[string]*SchemaEntry),
	}
}

// WithSchemaChangeHandling sets the schema change handling policy
func (b *SchemaBuilder) WithSchemaChangeHandling(handling string) *SchemaBuilder {
	if b.err != nil {
		return b
	}
	b.schemaChangeHandling = handling
	return b
}

// AddSchema adds a schema configuration
func (b *SchemaBuilder) AddSchema(name string, enabled bool) *SchemaBuilder {
	if b.err != nil {
		return b
	}
	if name == "" {
		b.err = errors.New("schema name cannot be empty")
		return b
	}
	b.schemas[name] = &SchemaEntry{
		Enabled: boolPtr(enabled),
		Tables:  make(map[string]*TableEntry),
	}
	return b
}

// AddTable adds a table configuration to a schema
func (b *SchemaBuilder) AddTable(schema, table string, enabled bool, syncMode string) *SchemaBuilder {
	if b.err != nil {
		return b
	}
	if schema == "" || table == "" {
		b.err = errors.New("schema and table names cannot be empty")
		return b
	}
	s, ok := b.schemas[schema]
	if !ok {
		b.err = fmt.Errorf("schema %q not found", schema)
		return b
	}

	entry := &TableEntry{Enabled: boolPtr(enabled)}
	if syncMode != "" {
		entry.SyncMode = stringPtr(syncMode)
	}
	s.Tables[table] = entry
	return b
}

// AddColumn adds a column configuration to a table
func (b *SchemaBuilder) AddColumn(schema, table, column string, enabled, hashed bool) *SchemaBuilder {
	if b.err != nil {
		return b
	}
	if schema == "" || table == "" || column == "" {
		b.err = errors.New("schema, table, and column names cannot be empty")
		return b
	}

	s, ok := b.schemas[schema]
	if !ok {
		b.err = fmt.Errorf("schema %q not found", schema)
		return b
	}

	t, ok := s.Tables[table]
	if !ok {
		b.err = fmt.Errorf("table %q not found in schema %q", table, schema)
		return b
	}

	if t.Columns == nil {
		t.Columns = make(map[string]*ColumnEntry)
	}
	t.Columns[column] = &ColumnEntry{
		Enabled: boolPtr(enabled),
		Hashed:  boolPtr(hashed),
	}
	return b
}

// Build returns the final schema configuration
func (b *SchemaBuilder) Build() (*SchemaConfig, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &SchemaConfig{
		SchemaChangeHandling: b.schemaChangeHandling,
		Schemas:              b.schemas,
	}, nil
}
