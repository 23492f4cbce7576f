package fivetran

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

type connectorServiceImpl struct {
	rest *resty.Client
}

func newConnectorService(rest *resty.Client) ConnectorService {
	return &connectorServiceImpl{rest: rest}
}

// List retrieves all connectors visible to the account, following pagination.
func (s *connectorServiceImpl) List(ctx context.Context) ([]Connector, error) {
	return collectPages[Connector](func() *resty.Request {
		return s.rest.R().SetContext(ctx)
	}, "/connectors")
}

// ListForGroup retrieves the connectors belonging to a single group.
func (s *connectorServiceImpl) ListForGroup(ctx context.Context, groupID string) ([]Connector, error) {
	return collectPages[Connector](func() *resty.Request {
		return s.rest.R().SetContext(ctx)
	}, fmt.Sprintf("/groups/%s/connectors", groupID))
}

// Get retrieves a connector by ID.
func (s *connectorServiceImpl) Get(ctx context.Context, connectorID string) (*Connector, error) {
	var connector Connector
	req := s.rest.R().SetContext(ctx)
	if err := execute(req, http.MethodGet, "/connectors/"+connectorID, &connector); err != nil {
		return nil, err
	}
	return &connector, nil
}

// Pause stops scheduled syncs for a connector.
func (s *connectorServiceImpl) Pause(ctx context.Context, connectorID string) (*Connector, error) {
	return s.setPaused(ctx, connectorID, true)
}

// Activate resumes scheduled syncs for a connector.
func (s *connectorServiceImpl) Activate(ctx context.Context, connectorID string) (*Connector, error) {
	return s.setPaused(ctx, connectorID, false)
}

func (s *connectorServiceImpl) setPaused(ctx context.Context, connectorID string, paused bool) (*Connector, error) {
	var connector Connector
	req := s.rest.R().
		SetContext(ctx).
		SetBody(map[string]bool{"paused": paused})
	if err := execute(req, http.MethodPatch, "/connectors/"+connectorID, &connector); err != nil {
		return nil, err
	}
	return &connector, nil
}

// Sync triggers a data sync. With force, the connector performs a full
// historical resync instead of an incremental one. The request is sent
// exactly once; a resync triggers remote work each time it is issued.
func (s *connectorServiceImpl) Sync(ctx context.Context, connectorID string, force bool) error {
	req := s.rest.R().
		SetContext(ctx).
		SetBody(map[string]bool{"force": force})
	return execute(req, http.MethodPost, "/connectors/"+connectorID+"/sync", nil)
}

// TestConnection runs the connector's setup tests and returns the per-test
// results.
func (s *connectorServiceImpl) TestConnection(ctx context.Context, connectorID string) (*ConnectorTestResult, error) {
	var result ConnectorTestResult
	req := s.rest.R().SetContext(ctx)
	if err := execute(req, http.MethodPost, "/connectors/"+connectorID+"/test", &result); err != nil {
		return nil, err
	}
	return &result, nil
}
