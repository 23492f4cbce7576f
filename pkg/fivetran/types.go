package fivetran

import (
	"encoding/json"
	"time"
)

// envelope is the wrapper every Fivetran endpoint puts around its payload.
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// page is the shape of paginated collection payloads.
type page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor"`
}

// ConnectorStatus describes the sync/setup state of a connector.
type ConnectorStatus struct {
	SetupState       string `json:"setup_state"`
	SyncState        string `json:"sync_state"`
	UpdateState      string `json:"update_state"`
	IsHistoricalSync bool   `json:"is_historical_sync"`
}

// Connector represents a Fivetran connector as returned by the API.
type Connector struct {
	ID            string          `json:"id"`
	GroupID       string          `json:"group_id"`
	Service       string          `json:"service"`
	Schema        string          `json:"schema"`
	Paused        bool            `json:"paused"`
	SyncFrequency int             `json:"sync_frequency"`
	DailySyncTime string          `json:"daily_sync_time"`
	ScheduleType  string          `json:"schedule_type"`
	Status        ConnectorStatus `json:"status"`
	SucceededAt   *time.Time      `json:"succeeded_at"`
	FailedAt      *time.Time      `json:"failed_at"`
	CreatedAt     *time.Time      `json:"created_at"`
}

// SetupTestResult is a single result from a connection test run.
type SetupTestResult struct {
	Title   string `json:"title"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ConnectorTestResult is the payload returned by the connection test
// endpoint: the connector details plus the individual test outcomes.
type ConnectorTestResult struct {
	Connector
	SetupTests []SetupTestResult `json:"setup_tests"`
}

// Group represents a Fivetran group.
type Group struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at"`
}

// SchemaConfig is the full schema configuration of a connector. The same
// shape is used as the request payload for bulk schema updates, so optional
// fields are pointers with omitempty.
type SchemaConfig struct {
	SchemaChangeHandling string                  `json:"schema_change_handling,omitempty"`
	Schemas              map[string]*SchemaEntry `json:"schemas,omitempty"`
}

// SchemaEntry is one schema within a connector's configuration.
type SchemaEntry struct {
	NameInDestination string                 `json:"name_in_destination,omitempty"`
	Enabled           *bool                  `json:"enabled,omitempty"`
	Tables            map[string]*TableEntry `json:"tables,omitempty"`
}

// TableEntry is one table within a schema.
type TableEntry struct {
	NameInDestination string                  `json:"name_in_destination,omitempty"`
	Enabled           *bool                   `json:"enabled,omitempty"`
	SyncMode          *string                 `json:"sync_mode,omitempty"`
	Columns           map[string]*ColumnEntry `json:"columns,omitempty"`
}

// ColumnEntry is one column within a table.
type ColumnEntry struct {
	NameInDestination string `json:"name_in_destination,omitempty"`
	Enabled           *bool  `json:"enabled,omitempty"`
	Hashed            *bool  `json:"hashed,omitempty"`
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}
