package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request wraps *http.Request with helpers for a JSON API.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// Bind decodes the JSON request body into v.
func (req *Request) Bind(v any) error {
	return req.decode(v)
}

// BindAny decodes the JSON request body into an untyped value, preserving
// whatever top-level shape the caller sent — object, array, string, number.
// An empty or undecodable body is an error.
func (req *Request) BindAny() (any, error) {
	var v any
	if err := req.decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (req *Request) decode(v any) error {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(req.raw.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty request body")
	}
	return json.Unmarshal(body, v)
}

// ContentType returns the Content-Type header.
func (req *Request) ContentType() string {
	return req.raw.Header.Get("Content-Type")
}

// IsJSON reports whether the client sent or expects JSON.
func (req *Request) IsJSON() bool {
	return strings.Contains(req.ContentType(), "application/json") ||
		strings.Contains(req.raw.Header.Get("Accept"), "application/json")
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// Method returns the HTTP method.
func (req *Request) Method() string { return req.raw.Method }

// Path returns the request path.
func (req *Request) Path() string { return req.raw.URL.Path }

// IP returns the remote address (chi's RealIP middleware rewrites it from
// proxy headers when present).
func (req *Request) IP() string { return req.raw.RemoteAddr }
