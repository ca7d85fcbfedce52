package types

import (
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
)

type Method int

const (
	GET Method = iota
	POST
)

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

func (m Method) Valid() bool {
	return m == GET || m == POST
}

// Payload is the JSON object sent as a request body.
type Payload map[string]interface{}

// Request describes a single call against a node, relative to an endpoint.
// It is built fresh for every call.
type Request struct {
	Path    string
	Method  Method
	Payload Payload
}

func NewRequest(method Method, path string, payload Payload) Request {
	return Request{Path: path, Method: method, Payload: payload}
}

// RPC builds the node's JSON-RPC style request, POSTed to the root path.
func RPC(method string, params ...interface{}) Request {
	if params == nil {
		params = []interface{}{}
	}
	return Request{
		Path:    "/",
		Method:  POST,
		Payload: Payload{"method": method, "params": params},
	}
}

//body returns nil for an empty payload
func (r Request) Body() ([]byte, error) {
	if len(r.Payload) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(r.Payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode payload for %s %s", r.Method, r.Path)
	}
	return b, nil
}
