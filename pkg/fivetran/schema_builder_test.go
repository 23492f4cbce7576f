package fivetran

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaBuilderBuild(t *testing.T) {
	config, err := NewSchemaBuilder().
		WithSchemaChangeHandling("BLOCK_ALL").
		AddSchema("public", true).
		AddTable("public", "orders", true, "HISTORY").
		AddTable("public", "audit_log", false, "").
		AddColumn("public", "orders", "ssn", true, true).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "BLOCK_ALL", config.SchemaChangeHandling)

	schema := config.Schemas["public"]
	require.NotNil(t, schema)
	assert.True(t, *schema.Enabled)
	require.Len(t, schema.Tables, 2)

	orders := schema.Tables["orders"]
	assert.True(t, *orders.Enabled)
	assert.Equal(t, "HISTORY", *orders.SyncMode)

	auditLog := schema.Tables["audit_log"]
	assert.False(t, *auditLog.Enabled)
	assert.Nil(t, auditLog.SyncMode)

	ssn := orders.Columns["ssn"]
	require.NotNil(t, ssn)
	assert.True(t, *ssn.Hashed)
}

func TestSchemaBuilderErrors(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *SchemaBuilder
		expectErr string
	}{
		{
			name:      "empty schema name",
			build:     func() *SchemaBuilder { return NewSchemaBuilder().AddSchema("", true) },
			expectErr: "schema name cannot be empty",
		},
		{
			name:      "table without schema",
			build:     func() *SchemaBuilder { return NewSchemaBuilder().AddTable("public", "orders", true, "") },
			expectErr: `schema "public" not found`,
		},
		{
			name: "column without table",
			build: func() *SchemaBuilder {
				return NewSchemaBuilder().AddSchema("public", true).AddColumn("public", "orders", "id", true, false)
			},
			expectErr: `table "orders" not found`,
		},
		{
			name: "error is sticky",
			build: func() *SchemaBuilder {
				return NewSchemaBuilder().AddSchema("", true).AddSchema("public", true)
			},
			expectErr: "schema name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := tt.build().Build()
			assert.Nil(t, config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}
