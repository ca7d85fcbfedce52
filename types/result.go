package types

import (
	"bytes"
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrUnknown is reported when every endpoint failed without a transport
// error, for instance because each answered with a non-200 status.
var ErrUnknown = errors.New("unknown error")

// Result is the outcome of a dispatched request. A Result is either a
// success carrying the response body or a failure carrying an error; build
// it with Success or Failure.
type Result struct {
	ok   bool
	body json.RawMessage
	err  error
}

func Success(body []byte) Result {
	return Result{ok: true, body: json.RawMessage(body)}
}

func Failure(err error) Result {
	if err == nil {
		err = ErrUnknown
	}
	return Result{err: err}
}

func (r Result) OK() bool {
	return r.ok
}

// Body returns the raw response body, or nil for a failure.
func (r Result) Body() json.RawMessage {
	if !r.ok {
		return nil
	}
	return r.body
}

// Err returns the failure, or nil for a success.
func (r Result) Err() error {
	if r.ok {
		return nil
	}
	return r.err
}

func (r Result) Decode(v interface{}) error {
	if !r.ok {
		return errors.Wrap(r.err, "cannot decode failed result")
	}
	if err := json.Unmarshal(r.body, v); err != nil {
		return errors.Wrap(err, "failed to decode result body")
	}
	return nil
}

// Get looks up a gjson path in the body. A failure yields an empty result.
func (r Result) Get(path string) gjson.Result {
	if !r.ok {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.body, path)
}

// Truthy reports whether the result succeeded with a body that is not
// null, false, zero or an empty string.
func (r Result) Truthy() bool {
	if !r.ok || len(bytes.TrimSpace(r.body)) == 0 {
		return false
	}
	//plain text bodies count as content
	if !gjson.ValidBytes(r.body) {
		return true
	}
	v := gjson.ParseBytes(r.body)
	switch v.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return true
	}
}
