package fivetran

import (
	"strings"
	"testing"
)

func TestCompareSchemaConfig(t *testing.T) {
	tests := []struct {
		name        string
		actual      *SchemaConfig
		desired     *SchemaConfig
		expectMatch bool
		expectError string
	}{
		{
			name:        "nil desired should match",
			actual:      &SchemaConfig{},
			desired:     nil,
			expectMatch: true,
		},
		{
			name:   "empty schemas should match",
			actual: &SchemaConfig{SchemaChangeHandling: "ALLOW_ALL"},
			desired: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas:              make(map[string]*SchemaEntry),
			},
			expectMatch: true,
		},
		{
			name:   "schema change handling mismatch",
			actual: &SchemaConfig{SchemaChangeHandling: "ALLOW_ALL"},
			desired: &SchemaConfig{
				SchemaChangeHandling: "BLOCK_ALL",
			},
			expectMatch: false,
			expectError: "expected BLOCK_ALL, got ALLOW_ALL",
		},
		{
			name:   "missing schema in actual",
			actual: &SchemaConfig{SchemaChangeHandling: "ALLOW_ALL"},
			desired: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {Enabled: boolPtr(true)},
				},
			},
			expectMatch: false,
			expectError: "test_schema",
		},
		{
			name: "schema enabled state mismatch",
			actual: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(false),
						Tables:  make(map[string]*TableEntry),
					},
				},
			},
			desired: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {Enabled: boolPtr(true)},
				},
			},
			expectMatch: false,
			expectError: "expected true, got false",
		},
		{
			name: "missing table in actual",
			actual: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables:  make(map[string]*TableEntry),
					},
				},
			},
			desired: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {Enabled: boolPtr(true)},
						},
					},
				},
			},
			expectMatch: false,
			expectError: "not found in source",
		},
		{
			name: "table enabled state mismatch",
			actual: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {Enabled: boolPtr(false)},
						},
					},
				},
			},
			desired: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {Enabled: boolPtr(true)},
						},
					},
				},
			},
			expectMatch: false,
			expectError: "enabled state mismatch: expected true, got false",
		},
		{
			name: "table sync mode mismatch - nil in actual",
			actual: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {
								Enabled:  boolPtr(true),
								SyncMode: nil,
							},
						},
					},
				},
			},
			desired: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {
								Enabled:  boolPtr(true),
								SyncMode: stringPtr("HISTORY"),
							},
						},
					},
				},
			},
			expectMatch: false,
			expectError: "sync mode mismatch: expected HISTORY, got nil",
		},
		{
			name: "table sync mode mismatch - different value",
			actual: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {
								Enabled:  boolPtr(true),
								SyncMode: stringPtr("SOFT_DELETE"),
							},
						},
					},
				},
			},
			desired: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {
								Enabled:  boolPtr(true),
								SyncMode: stringPtr("HISTORY"),
							},
						},
					},
				},
			},
			expectMatch: false,
			expectError: "sync mode mismatch: expected HISTORY, got SOFT_DELETE",
		},
		{
			name: "fully matching configuration",
			actual: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {
								Enabled:  boolPtr(true),
								SyncMode: stringPtr("HISTORY"),
							},
						},
					},
				},
			},
			desired: &SchemaConfig{
				SchemaChangeHandling: "ALLOW_ALL",
				Schemas: map[string]*SchemaEntry{
					"test_schema": {
						Enabled: boolPtr(true),
						Tables: map[string]*TableEntry{
							"test_table": {
								Enabled:  boolPtr(true),
								SyncMode: stringPtr("HISTORY"),
							},
						},
					},
				},
			},
			expectMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, mismatch := CompareSchemaConfig(tt.actual, tt.desired)

			if match != tt.expectMatch {
				t.Errorf("expected match=%v, got %v (details: %s)", tt.expectMatch, match, mismatch)
			}

			if tt.expectError != "" && !strings.Contains(mismatch.String(), tt.expectError) {
				t.Errorf("expected mismatch details to contain %q, got %q", tt.expectError, mismatch.String())
			}

			if tt.expectMatch && mismatch.HasMismatch {
				t.Errorf("expected no mismatch, got %q", mismatch.String())
			}
		})
	}
}

func TestSchemaMismatchStringNoMismatch(t *testing.T) {
	sm := &SchemaMismatch{}
	if got := sm.String(); got != "No schema mismatches found" {
		t.Errorf("unexpected summary: %q", got)
	}
}
