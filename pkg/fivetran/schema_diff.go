package fivetran

import (
	"fmt"
	"strings"
)

// NOTE: Schema comparison scope
//
// This implementation compares SCHEMA and TABLE levels only. Column comparison is intentionally
// not implemented to avoid performance issues with data sources that have thousands of tables.
//
// Fivetran's schema details API only returns schema and table configurations. Full column
// comparison would require additional API calls per table, potentially causing thousands of
// requests for a single verification.
//
// Current scope: schema change handling, schema/table enabled states, table sync modes
// Not compared: column existence, enabled state, hashed state

// SchemaMismatch represents detailed information about schema configuration mismatches
type SchemaMismatch struct {
	HasMismatch          bool
	SchemaChangeHandling *string
	MissingSchemas       []string
	SchemaMismatches     map[string]*string  // schema name -> mismatch reason
	TableMismatches      map[string][]string // schema name -> list of table issues
}

// String returns a human-readable summary of the mismatches
func (sm *SchemaMismatch) String() string {
	if !sm.HasMismatch {
		return "No schema mismatches found"
	}

	var parts []string

	if sm.SchemaChangeHandling != nil {
		parts = append(parts, fmt.Sprintf("Schema Change Handling: %s", *sm.SchemaChangeHandling))
	}

	if len(sm.MissingSchemas) > 0 {
		parts = append(parts, fmt.Sprintf("Missing Schemas: %s", strings.Join(sm.MissingSchemas, ", ")))
	}

	if len(sm.SchemaMismatches) > 0 {
		for schema, reason := range sm.SchemaMismatches {
			parts = append(parts, fmt.Sprintf("Schema %s: %s", schema, *reason))
		}
	}

	if len(sm.TableMismatches) > 0 {
		for schema, issues := range sm.TableMismatches {
			parts = append(parts, fmt.Sprintf("Schema %s tables: %s", schema, strings.Join(issues, ", ")))
		}
	}

	return strings.Join(parts, "; ")
}

// CompareSchemaConfig compares the schema configuration the remote reports
// with a desired configuration. Returns true if the desired configuration is
// already applied, along with detailed mismatch information. Fields left
// unset in the desired configuration are not compared.
func CompareSchemaConfig(actual *SchemaConfig, desired *SchemaConfig) (bool, *SchemaMismatch) {
	mismatch := &SchemaMismatch{
		HasMismatch:      false,
		SchemaMismatches: make(map[string]*string),
		TableMismatches:  make(map[string][]string),
	}

	if desired == nil {
		return true, mismatch // Nothing requested means nothing to compare
	}
	if actual == nil {
		actual = &SchemaConfig{}
	}

	// Check schema change handling
	if desired.SchemaChangeHandling != "" &&
		actual.SchemaChangeHandling != desired.SchemaChangeHandling {
		mismatch.HasMismatch = true
		reason := fmt.Sprintf("expected %s, got %s", desired.SchemaChangeHandling, actual.SchemaChangeHandling)
		mismatch.SchemaChangeHandling = &reason
	}

	// Check each desired schema
	for schemaName, desiredSchema := range desired.Schemas {
		actualSchema, exists := actual.Schemas[schemaName]
		if !exists {
			mismatch.HasMismatch = true
			mismatch.MissingSchemas = append(mismatch.MissingSchemas, schemaName)
			continue
		}

		// Check schema enabled state
		if desiredSchema.Enabled != nil && actualSchema.Enabled != nil &&
			*actualSchema.Enabled != *desiredSchema.Enabled {
			mismatch.HasMismatch = true
			reason := fmt.Sprintf("enabled state mismatch: expected %v, got %v", *desiredSchema.Enabled, *actualSchema.Enabled)
			mismatch.SchemaMismatches[schemaName] = &reason
		}

		// Check tables if specified
		if desiredSchema.Tables != nil {
			tableMismatches := compareTables(actualSchema.Tables, desiredSchema.Tables)
			if len(tableMismatches) > 0 {
				mismatch.HasMismatch = true
				mismatch.TableMismatches[schemaName] = tableMismatches
			}
		}
	}

	return !mismatch.HasMismatch, mismatch
}

// compareTables compares desired table configuration with the remote table
// state and returns table mismatches.
func compareTables(actualTables map[string]*TableEntry, desiredTables map[string]*TableEntry) []string {
	var tableMismatches []string

	for tableName, desiredTable := range desiredTables {
		actualTable, exists := actualTables[tableName]
		if !exists {
			tableMismatches = append(tableMismatches, fmt.Sprintf("table %s not found in source", tableName))
			continue
		}

		var tableIssues []string

		// Check table enabled state
		if desiredTable.Enabled != nil && actualTable.Enabled != nil &&
			*actualTable.Enabled != *desiredTable.Enabled {
			tableIssues = append(tableIssues, fmt.Sprintf("enabled state mismatch: expected %v, got %v", *desiredTable.Enabled, *actualTable.Enabled))
		}

		// Check sync mode if specified
		if desiredTable.SyncMode != nil && *desiredTable.SyncMode != "" {
			if actualTable.SyncMode == nil {
				tableIssues = append(tableIssues, fmt.Sprintf("sync mode mismatch: expected %s, got nil", *desiredTable.SyncMode))
			} else if *actualTable.SyncMode != *desiredTable.SyncMode {
				tableIssues = append(tableIssues, fmt.Sprintf("sync mode mismatch: expected %s, got %s", *desiredTable.SyncMode, *actualTable.SyncMode))
			}
		}

		if len(tableIssues) > 0 {
			tableMismatches = append(tableMismatches, fmt.Sprintf("table %s: %s", tableName, strings.Join(tableIssues, ", ")))
		}
	}

	return tableMismatches
}
