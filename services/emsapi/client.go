// Package emsapi provides the HTTP clients used to call the EMS backend.
// Every outgoing request is decorated with the resolved tenant domain
// (X-Tenant-Domain header plus a `tenant` query parameter) so the backend
// can isolate data per institution; the authenticated client additionally
// attaches a bearer token when one is available.
package emsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ihsanems/portal/core"
)

type (
	// TokenSource yields the current bearer token, or "" when logged out.
	TokenSource interface {
		Token() string
	}

	// TenantResolver yields the tenant domain for an outgoing request.
	TenantResolver interface {
		Resolve(ctx context.Context) string
	}

	Client struct {
		base     string
		http     *http.Client
		resolver TenantResolver
		tokens   TokenSource // nil on the public client
	}
)

// No client-side timeout: a hung backend call stays pending until the
// caller's context is done, matching the backend-owned request lifecycle.
var defaultHTTPClient = &http.Client{}

// New returns the anonymous client: tenant decoration, no credentials.
func New(conf *core.Config, resolver TenantResolver) *Client {
	return &Client{
		base:     conf.APIBaseURL,
		http:     defaultHTTPClient,
		resolver: resolver,
	}
}

// NewAuth returns the bearer-authenticated client. tokens may yield ""
// (no token yet); the Authorization header is then omitted.
func NewAuth(conf *core.Config, resolver TenantResolver, tokens TokenSource) *Client {
	c := New(conf, resolver)
	c.tokens = tokens
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u, err := url.Parse(c.base + path)
	if err != nil {
		return errors.Wrapf(err, "parsing URL %s%s", c.base, path)
	}

	q := u.Query()
	for key, vals := range query {
		for _, val := range vals {
			q.Add(key, val)
		}
	}

	host := ""
	if c.resolver != nil {
		host = core.CleanString(c.resolver.Resolve(ctx), true /* lower */)
	}
	// some backend routes read the tenant from the query string during
	// local development rather than from headers; attach both
	if host != "" && q.Get("tenant") == "" {
		q.Set("tenant", host)
	}
	u.RawQuery = q.Encode()

	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "marshalling %s %s body", method, path)
		}
		payload = bytes.NewBuffer(data)
	} else {
		payload = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return errors.Wrapf(err, "building %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if host != "" {
		req.Header.Set("X-Tenant-Domain", host)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// transport failures propagate unchanged
		return err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s %s response", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}
	return nil
}

func newAPIError(method, path string, status int, body []byte) *core.APIError {
	apiErr := &core.APIError{
		StatusCode: status,
		Method:     method,
		Path:       path,
	}
	var parsed struct {
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Message = parsed.Message
		apiErr.ErrMessage = parsed.Error
		apiErr.Fields = parsed.Errors
	}
	return apiErr
}

// DecodeEntity unmarshals a single-item response into out. Show endpoints
// are inconsistent across resources: some return the bare object, others
// wrap it as {"data": {...}} (action endpoints add {"message", "data"}).
// Both shapes are accepted here so callers never see the ambiguity.
func DecodeEntity(raw json.RawMessage, out interface{}) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return errors.New("empty response body")
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if data := bytes.TrimSpace(envelope.Data); len(data) > 0 && !bytes.Equal(data, []byte("null")) {
			return errors.Wrap(json.Unmarshal(data, out), "decoding enveloped entity")
		}
	}
	return errors.Wrap(json.Unmarshal(raw, out), "decoding entity")
}
