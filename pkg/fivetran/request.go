package fivetran

import (
	"encoding/json"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// execute issues a single request and decodes the enveloped payload into out.
// Every operation funnels through here so that failure classification is in
// one place. There are no retries at this layer.
func execute(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return wrapTransportError(err)
	}
	return decodeResponse(resp, out)
}

// decodeResponse peels the {code, message, data} envelope from a response and
// unmarshals data into out. A nil out skips payload decoding but still
// requires a well-formed envelope.
func decodeResponse(resp *resty.Response, out any) error {
	body := resp.Body()

	if resp.IsError() {
		return wrapRemoteError(resp.StatusCode(), body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return wrapDecodeError(err)
	}

	if out == nil {
		return nil
	}

	if len(env.Data) == 0 {
		return &APIError{
			Kind:    KindMalformedResponse,
			Message: "response is missing the data payload",
		}
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return wrapDecodeError(err)
	}

	return nil
}

// collectPages walks a paginated collection endpoint, following next_cursor
// until the remote reports no further pages. An empty remote collection
// yields an empty slice, not an error.
func collectPages[T any](req func() *resty.Request, path string) ([]T, error) {
	items := []T{}
	cursor := ""

	for {
		r := req()
		if cursor != "" {
			r.SetQueryParam("cursor", cursor)
		}

		var p page[T]
		if err := execute(r, http.MethodGet, path, &p); err != nil {
			return nil, err
		}

		items = append(items, p.Items...)
		if p.NextCursor == "" {
			return items, nil
		}
		cursor = p.NextCursor
	}
}
