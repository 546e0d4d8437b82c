package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"RedeemVault/internal/fault"
)

// codes maps the node's error codes back to fault kinds.
var codes = map[string]error{
	"authorization":      fault.ErrAuthorization,
	"not_found":          fault.ErrNotFound,
	"state_conflict":     fault.ErrStateConflict,
	"malformed_input":    fault.ErrMalformedInput,
	"resource_exhausted": fault.ErrResourceExhausted,
	"supply_exceeded":    fault.ErrSupplyExceeded,
	"invalid_policy":     fault.ErrInvalidPolicy,
}

// APIError is a rejected request. It unwraps to the fault kind named by Code.
type APIError struct {
	Status  int    // Status is the HTTP status
	Code    string // Code is the node's error code
	Message string // Message is the node's diagnostic
}

// Error returns the diagnostic message.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d, %s)", e.Message, e.Status, e.Code)
}

// Unwrap exposes the fault kind to errors.Is.
func (e *APIError) Unwrap() error {
	return codes[e.Code]
}

// submit sends an envelope to the node via POST /v1/actions.
func (c *Client) submit(env []byte) error {
	resp, err := c.http.Post(c.url("/v1/actions"), "application/octet-stream", bytes.NewReader(env))
	if err != nil {
		return fmt.Errorf("post action:\n%w", err)
	}
	defer func() { io.Copy(io.Discard, resp.Body); resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	return nil
}

// get performs a GET request and decodes the JSON response.
func (c *Client) get(path string, result any) error {
	resp, err := c.http.Get(c.url(path))
	if err != nil {
		return fmt.Errorf("GET %s:\n%w", path, err)
	}
	defer func() { io.Copy(io.Discard, resp.Body); resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// getRaw performs a GET request and returns the body.
func (c *Client) getRaw(path string) ([]byte, error) {
	resp, err := c.http.Get(c.url(path))
	if err != nil {
		return nil, fmt.Errorf("GET %s:\n%w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	return io.ReadAll(resp.Body)
}

// decodeError builds an APIError from an error response.
func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		body.Error = http.StatusText(resp.StatusCode)
	}

	return &APIError{Status: resp.StatusCode, Code: body.Code, Message: body.Error}
}
