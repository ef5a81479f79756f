// Package api is the client for the upstream company, confirmation statement,
// transaction and payment services. Every failure, including a status of 400
// or above and an undecodable body, is returned as an *httpx.RemoteError.
package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/mbolis/confirmation-statement/log"
	"github.com/pkg/errors"
)

// HeaderPaymentRequired carries the payment session URL when a closed
// transaction has fees to pay.
const HeaderPaymentRequired = "X-Payment-Required"

type Client struct {
	baseUrl string
	apiKey  string
	http    *http.Client
}

// New builds a client for the service at baseUrl. A nil httpClient uses
// http.DefaultClient; no timeout beyond the request context is added.
func New(baseUrl, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	_, err := c.do(ctx, op, http.MethodGet, path, nil, out)
	return err
}

// do sends body as JSON and decodes the response into out, if not nil.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &httpx.RemoteError{Op: op, Err: errors.Wrap(err, "encode request")}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reader)
	if err != nil {
		return nil, &httpx.RemoteError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	log.Debugf("%s: %s %s", op, method, req.URL)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &httpx.RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return resp, &httpx.RemoteError{Op: op, StatusCode: resp.StatusCode, Body: raw, Err: errors.New(msg)}
	}
	if out == nil {
		return resp, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp, &httpx.RemoteError{Op: op, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "decode response")}
	}
	return resp, nil
}

func escape(segments ...string) []any {
	escaped := make([]any, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return escaped
}
