package response

import "net/http"

// DefaultMessage is used when a handler returns a result without a message
const DefaultMessage = "Request processed successfully"

// Envelope is the body of every successful response produced from a Result
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Result is what a route handler returns on success
type Result struct {
	Status  int
	Message string
	Data    any
}

// OK returns a 200 result carrying data
func OK(data any) *Result {
	return &Result{Status: http.StatusOK, Data: data}
}

// Created returns a 201 result with a message
func Created(message string, data any) *Result {
	return &Result{Status: http.StatusCreated, Message: message, Data: data}
}

// WithMessage returns a 200 result with a message
func WithMessage(message string, data any) *Result {
	return &Result{Status: http.StatusOK, Message: message, Data: data}
}

// StatusCode returns the HTTP status, defaulting to 200
func (r *Result) StatusCode() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}

// Envelope renders the result. Success is always true.
func (r *Result) Envelope() Envelope {
	message := r.Message
	if message == "" {
		message = DefaultMessage
	}
	return Envelope{
		Success: true,
		Message: message,
		Data:    r.Data,
	}
}

// ErrorBody is the body written by the global error handler. Clients of the
// existing API read the always-null "date" key, so it keeps that name.
type ErrorBody struct {
	Message    string `json:"message"`
	Success    bool   `json:"success"`
	Date       any    `json:"date"`
	TraceStack string `json:"traceStack,omitempty"`
}
