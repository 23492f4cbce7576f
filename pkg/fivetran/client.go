package fivetran

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the fixed Fivetran REST API endpoint.
	DefaultBaseURL = "https://api.fivetran.com/v1"

	defaultTimeout = 30 * time.Second
)

// Client manages the Fivetran API session and services. Credentials live in
// memory for the lifetime of the client and are sent as HTTP Basic Auth on
// every request. The client never retries: reads are safe to reissue by the
// caller, mutations trigger remote work each time they are sent.
type Client struct {
	rest *resty.Client

	Connectors ConnectorService
	Schemas    SchemaService
	Groups     GroupService
}

type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// Option customizes client construction.
type Option func(*clientOptions)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) { o.baseURL = baseURL }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) { o.timeout = timeout }
}

// WithHTTPClient supplies the underlying HTTP client, preserving its
// transport. Used by tests to intercept requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// NewClient creates a new Fivetran client with all services. Credentials are
// not validated here; validation happens on the first call, or explicitly via
// Groups.List as a connectivity check.
func NewClient(apiKey, apiSecret string, opts ...Option) (*Client, error) {
	if apiKey == "" || apiSecret == "" {
		return nil, errMissingCredentials()
	}

	options := clientOptions{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&options)
	}

	var rest *resty.Client
	if options.httpClient != nil {
		rest = resty.NewWithClient(options.httpClient)
	} else {
		rest = resty.New()
	}

	rest.
		SetBaseURL(options.baseURL).
		SetBasicAuth(apiKey, apiSecret).
		SetTimeout(options.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	client := &Client{rest: rest}

	// Initialize services
	client.Connectors = newConnectorService(rest)
	client.Schemas = newSchemaService(rest)
	client.Groups = newGroupService(rest)

	return client, nil
}
