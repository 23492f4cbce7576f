package fivetran

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

type groupServiceImpl struct {
	rest *resty.Client
}

func newGroupService(rest *resty.Client) GroupService {
	return &groupServiceImpl{rest: rest}
}

// List retrieves all groups in the account, following pagination. Doubles as
// the connectivity check for new sessions: it is the cheapest authenticated
// read the API offers.
func (s *groupServiceImpl) List(ctx context.Context) ([]Group, error) {
	return collectPages[Group](func() *resty.Request {
		return s.rest.R().SetContext(ctx)
	}, "/groups")
}

// Get retrieves a group by ID.
func (s *groupServiceImpl) Get(ctx context.Context, groupID string) (*Group, error) {
	var group Group
	req := s.rest.R().SetContext(ctx)
	if err := execute(req, http.MethodGet, "/groups/"+groupID, &group); err != nil {
		return nil, err
	}
	return &group, nil
}
