// Package http provides request and response helpers for the service's JSON
// API. The codec is json-iterator in its stdlib-compatible configuration.
//
// # Request
//
// Request wraps *http.Request with a small fluent API.
//
//	req := gohttp.NewRequest(r)
//
//	// Bind JSON body into a struct
//	var body struct {
//	    Rule map[string]any `json:"rule"`
//	}
//	if err := req.Bind(&body); err != nil { ... }
//
//	// Or keep the top-level shape the caller sent
//	payload, err := req.BindAny()
//
//	// Type checks and headers
//	req.IsJSON()
//	req.Header("X-Request-Id")
//	req.Method(), req.Path(), req.IP()
//
// # Response
//
// Response wraps http.ResponseWriter and always emits the service's
// {message, status, data} envelope.
//
//	res := gohttp.NewResponse(w)
//
//	res.Success("field age successfully validated.", data) // 200, status success
//	res.Fail("field age failed validation.", data)         // 400, status error
//	res.Error(400, "rule is required.")                    // 400, data null
//	res.NotFound()                                         // 404
//	res.ServerError()                                      // 500
package http
