package api

import (
	"bytes"
	"context"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"nodeclient-adapter/types"
)

// Dispatch sends req to the first endpoint and fails over to the next one on
// error. It never returns a Go error; inspect the Result instead.
func (c *Client) Dispatch(ctx context.Context, req types.Request) types.Result {
	return c.DispatchFrom(ctx, req, 0)
}

// DispatchFrom is Dispatch starting at the endpoint with index start.
// Endpoints are tried one at a time in configured order until one answers
// 200; the failure of the last one tried is reported when none does.
func (c *Client) DispatchFrom(ctx context.Context, req types.Request, start int) types.Result {
	if start < 0 {
		start = 0
	}

	var lastErr error
	for i := start; i < len(c.endpoints); i++ {
		endpoint := c.endpoints[i]
		body, err := c.attempt(ctx, endpoint, req)
		if err == nil {
			return types.Success(body)
		}
		lastErr = err
		c.log.Warn().
			Err(err).
			Str("endpoint", endpoint).
			Str("method", req.Method.String()).
			Str("path", req.Path).
			Int("index", i).
			Msg("node request failed")
	}

	if lastErr == nil {
		lastErr = errors.Wrapf(types.ErrUnknown, "no endpoint at index %d", start)
	}
	c.log.Error().
		Err(lastErr).
		Str("method", req.Method.String()).
		Str("path", req.Path).
		Msg("all node endpoints failed")
	return types.Failure(lastErr)
}

func (c *Client) attempt(ctx context.Context, endpoint string, req types.Request) (body []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(types.ErrUnknown, "request panicked: %v", r)
		}
	}()

	if !req.Method.Valid() {
		return nil, errors.Errorf("unsupported method %s", req.Method)
	}
	payload, err := req.Body()
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), endpoint+req.Path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	httpReq.Header.Set("Authorization", "Basic "+c.token)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	status, body, err := c.transport.Do(httpReq)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, errors.Wrapf(types.ErrUnknown, "%s %s returned status %d", req.Method, req.Path, status)
	}
	return body, nil
}
