package fivetran

import (
	"context"
)

// ConnectorService defines the interface for connector operations
type ConnectorService interface {
	List(ctx context.Context) ([]Connector, error)
	ListForGroup(ctx context.Context, groupID string) ([]Connector, error)
	Get(ctx context.Context, connectorID string) (*Connector, error)
	Pause(ctx context.Context, connectorID string) (*Connector, error)
	Activate(ctx context.Context, connectorID string) (*Connector, error)
	Sync(ctx context.Context, connectorID string, force bool) error
	TestConnection(ctx context.Context, connectorID string) (*ConnectorTestResult, error)
}

// SchemaService defines the interface for schema operations
type SchemaService interface {
	GetConfig(ctx context.Context, connectorID string) (*SchemaConfig, error)
	Update(ctx context.Context, connectorID string, builder *SchemaBuilder) (*SchemaConfig, error)
	UpdateTable(ctx context.Context, connectorID, schema, table string, enabled bool) (*TableEntry, error)
	ResyncTable(ctx context.Context, connectorID, schema, table string) error
	Reload(ctx context.Context, connectorID string, excludeMode string) (*SchemaConfig, error)
}

// GroupService defines the interface for group operations
type GroupService interface {
	List(ctx context.Context) ([]Group, error)
	Get(ctx context.Context, groupID string) (*Group, error)
}
