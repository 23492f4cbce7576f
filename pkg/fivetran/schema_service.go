package fivetran

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

type schemaServiceImpl struct {
	rest *resty.Client
}

func newSchemaService(rest *resty.Client) SchemaService {
	return &schemaServiceImpl{rest: rest}
}

// GetConfig retrieves the full schema configuration for a connector.
func (s *schemaServiceImpl) GetConfig(ctx context.Context, connectorID string) (*SchemaConfig, error) {
	var config SchemaConfig
	req := s.rest.R().SetContext(ctx)
	if err := execute(req, http.MethodGet, fmt.Sprintf("/connectors/%s/schemas", connectorID), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Update applies a bulk schema configuration built with SchemaBuilder and
// returns the configuration as the remote now reports it.
func (s *schemaServiceImpl) Update(ctx context.Context, connectorID string, builder *SchemaBuilder) (*SchemaConfig, error) {
	payload, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build schema config: %w", err)
	}

	var config SchemaConfig
	req := s.rest.R().
		SetContext(ctx).
		SetBody(payload)
	if err := execute(req, http.MethodPatch, fmt.Sprintf("/connectors/%s/schemas", connectorID), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// UpdateTable enables or disables a single table.
func (s *schemaServiceImpl) UpdateTable(ctx context.Context, connectorID, schema, table string, enabled bool) (*TableEntry, error) {
	var entry TableEntry
	req := s.rest.R().
		SetContext(ctx).
		SetBody(map[string]bool{"enabled": enabled})
	path := fmt.Sprintf("/connectors/%s/schemas/%s/tables/%s", connectorID, schema, table)
	if err := execute(req, http.MethodPatch, path, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ResyncTable triggers a full resync of a single table. The request is sent
// exactly once; every call triggers remote work.
func (s *schemaServiceImpl) ResyncTable(ctx context.Context, connectorID, schema, table string) error {
	req := s.rest.R().SetContext(ctx)
	path := fmt.Sprintf("/connectors/%s/schemas/%s/tables/%s/resync", connectorID, schema, table)
	return execute(req, http.MethodPost, path, nil)
}

// Reload refreshes the connector's view of the source schema. excludeMode
// controls how newly discovered objects are treated ("PRESERVE" or
// "EXCLUDE"); an empty value leaves the remote default in place.
func (s *schemaServiceImpl) Reload(ctx context.Context, connectorID string, excludeMode string) (*SchemaConfig, error) {
	req := s.rest.R().SetContext(ctx)
	if excludeMode != "" {
		req.SetBody(map[string]string{"exclude_mode": excludeMode})
	}

	var config SchemaConfig
	if err := execute(req, http.MethodPost, fmt.Sprintf("/connectors/%s/schemas/reload", connectorID), &config); err != nil {
		return nil, err
	}
	return &config, nil
}
