package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/labelsync/pkg/errors"
)

// DecodeResponse reads the response body, verifies the status code, and
// decodes the JSON payload into target. A nil target skips decoding.
func DecodeResponse(resp *http.Response, target any, wantStatus int) error {
	body, err := readBody(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode != wantStatus {
		return apiError(resp, body)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}

// ExpectStatus drains the response body and verifies the status code.
// Used for operations whose success response carries no payload.
func ExpectStatus(resp *http.Response, wantStatus int) error {
	body, err := readBody(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode != wantStatus {
		return apiError(resp, body)
	}

	return nil
}

// readBody consumes and closes the response body. Reading to completion
// lets the HTTP client reuse the connection.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close() //nolint:errcheck // read error is reported below

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}
	return body, nil
}

// apiError builds an APIError from an unexpected response.
func apiError(resp *http.Response, body []byte) error {
	apiErr := &errors.APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
	if resp.Request != nil && resp.Request.URL != nil {
		apiErr.Host = resp.Request.URL.Host
		apiErr.Endpoint = resp.Request.URL.Path
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
