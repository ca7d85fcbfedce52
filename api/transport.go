package api

import (
	"github.com/pkg/errors"
	"io"
	"net/http"
)

// Transport performs one HTTP exchange and reports the status code and the
// full response body. A non-nil error means no usable response was read.
type Transport interface {
	Do(req *http.Request) (status int, body []byte, err error)
}

type TransportFunc func(req *http.Request) (int, []byte, error)

func (f TransportFunc) Do(req *http.Request) (int, []byte, error) {
	return f(req)
}

type HTTPTransport struct {
	Client *http.Client
}

func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{Client: &http.Client{Timeout: defaultTimeout}}
}

func (t *HTTPTransport) Do(req *http.Request) (int, []byte, error) {
	hc := t.Client
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "failed to read response")
	}
	return resp.StatusCode, body, nil
}
