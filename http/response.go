package http

import "net/http"

// Response wraps http.ResponseWriter with helpers for the API's fixed
// {message, status, data} envelope.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// envelope is the wire shape of every response the service sends.
type envelope struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    any    `json:"data"`
}

// JSON sends a raw JSON response.
func (res *Response) JSON(status int, v any) {
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_ = json.NewEncoder(res.w).Encode(v)
}

// Success sends 200 {"message": ..., "status": "success", "data": ...}.
func (res *Response) Success(message string, data any) {
	res.JSON(http.StatusOK, envelope{Message: message, Status: "success", Data: data})
}

// Fail sends 400 with an error envelope that still carries data — used when
// the request was well formed but the check it asked for did not hold.
func (res *Response) Fail(message string, data any) {
	res.JSON(http.StatusBadRequest, envelope{Message: message, Status: "error", Data: data})
}

// Error sends an error envelope with null data.
//
//	res.Error(http.StatusBadRequest, "rule is required.")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{Message: message, Status: "error"})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// MethodNotAllowed sends 405.
func (res *Response) MethodNotAllowed(message ...string) {
	res.Error(http.StatusMethodNotAllowed, first(message, "Method not allowed."))
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	res.Error(http.StatusInternalServerError, first(message, "Server Error."))
}

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
