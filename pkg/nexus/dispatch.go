package nexus

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/gonxm/gonxm/internal/common/httpclient"
)

// dispatch performs one API call and maps the raw outcome onto the error
// taxonomy. The rate-limit metadata is refreshed from the response headers
// on every call, before any status judgment is made, so callers can
// inspect it after failures as well as successes.
func (c *Client) dispatch(method, endpoint string, query, form, headers map[string]string) (any, error) {
	raw, err := c.http.Do(httpclient.RequestOptions{
		Method:  method,
		Path:    endpoint,
		Query:   query,
		Form:    form,
		Headers: headers,
	})
	if err != nil {
		return nil, ErrRequestFailed.MsgErr("request could not be completed", err)
	}

	c.refreshMetadata(raw.Header)

	log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", raw.StatusCode).
		Msg("nexus api call")

	switch raw.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var decoded any
		if err := json.Unmarshal(raw.Body, &decoded); err != nil {
			return nil, ErrRequestFailed.MsgErr("could not decode response body", err)
		}
		return decoded, nil
	case http.StatusTooManyRequests:
		return nil, ErrLimitReached
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		// The service is down; the body may not be JSON at all.
		return nil, ErrRequestFailed.Msg(
			fmt.Sprintf("Status Code %d - %s", raw.StatusCode, raw.Reason))
	default:
		return nil, errorFromBody(raw)
	}
}

// errorFromBody extracts a human-readable message from a non-2xx response
// body: the "message" field when present, the "error" field otherwise.
// Bodies carrying neither are reported as unparseable rather than mapped
// to an empty message.
func errorFromBody(raw *httpclient.RawResponse) error {
	msg := gjson.GetBytes(raw.Body, "message")
	if !msg.Exists() {
		msg = gjson.GetBytes(raw.Body, "error")
	}
	if !msg.Exists() {
		return ErrMalformedErrorBody.Msg(
			fmt.Sprintf("Status Code %d - could not parse error body", raw.StatusCode))
	}
	return ErrRequestFailed.Msg(
		fmt.Sprintf("Status Code %d - %s", raw.StatusCode, msg.String()))
}

// refreshMetadata keeps the response headers whose names contain "X-"
// (case-sensitive) and discards everything else.
func (c *Client) refreshMetadata(header http.Header) {
	meta := make(map[string]string)
	for name, values := range header {
		if strings.Contains(name, "X-") && len(values) > 0 {
			meta[name] = values[0]
		}
	}
	c.metadata = meta
}
