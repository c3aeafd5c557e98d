package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// CloudError codes
const (
	CloudErrorCodeInternalServerError = "InternalServerError"
	CloudErrorCodeMalformedOutput     = "MalformedOutput"
	CloudErrorCodeNotFound            = "NotFound"
)

// CloudError represents a complete error response from the generator.
type CloudError struct {
	// The HTTP status code
	StatusCode int `json:"-"`

	// The response body to be converted to JSON
	*CloudErrorBody `json:"error,omitempty"`
}

func (err *CloudError) Error() string {
	var body string

	if err.CloudErrorBody != nil {
		body = ": " + err.CloudErrorBody.String()
	}

	return fmt.Sprintf("%d%s", err.StatusCode, body)
}

// CloudErrorBody represents the structure of the response body for an error.
// See https://github.com/cloud-and-ai-microsoft/resource-provider-contract/blob/master/v1.0/common-api-details.md#error-response-content
type CloudErrorBody struct {
	// An identifier for the error. Codes are invariant and are intended to be consumed programmatically.
	Code string `json:"code,omitempty"`

	// A message describing the error, intended to be suitable for display in a user interface.
	Message string `json:"message,omitempty"`

	// The target of the particular error. For example, the name of the query parameter in error.
	Target string `json:"target,omitempty"`

	// A list of additional details about the error.
	Details []CloudErrorBody `json:"details,omitempty"`
}

func (body *CloudErrorBody) String() string {
	var b strings.Builder

	b.WriteString(body.Code + ": ")
	if len(body.Target) > 0 {
		b.WriteString(body.Target + ": ")
	}
	b.WriteString(body.Message)

	if len(body.Details) > 0 {
		b.WriteString(" Details: ")
		for i, innerErr := range body.Details {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(innerErr.String())
		}
	}

	return b.String()
}

// NewCloudError returns a new CloudError
func NewCloudError(statusCode int, code, target, format string, a ...interface{}) *CloudError {
	return &CloudError{
		StatusCode: statusCode,
		CloudErrorBody: &CloudErrorBody{
			Code:    code,
			Message: fmt.Sprintf(format, a...),
			Target:  target,
		},
	}
}

// NewNotFoundError returns a CloudError for a path no function is bound to.
func NewNotFoundError(path string) *CloudError {
	return NewCloudError(
		http.StatusNotFound,
		CloudErrorCodeNotFound, path,
		"The requested path could not be found.")
}

// WriteError constructs and writes a CloudError to the given ResponseWriter
func WriteError(w http.ResponseWriter, statusCode int, code, target, format string, a ...interface{}) {
	WriteCloudError(w, NewCloudError(statusCode, code, target, format, a...))
}

// WriteCloudError writes a CloudError to the given ResponseWriter
func WriteCloudError(w http.ResponseWriter, err *CloudError) {
	w.Header().Set(HeaderNameContentType, ContentTypeJSON)
	w.Header().Set(HeaderNameErrorCode, err.Code)
	w.WriteHeader(err.StatusCode)
	encoder := json.NewEncoder(w)
	encoder.SetIndent(prefix, indent)
	_ = encoder.Encode(err)
}

// WriteInternalServerError writes an internal server error to the given ResponseWriter
func WriteInternalServerError(w http.ResponseWriter) {
	WriteError(
		w, http.StatusInternalServerError,
		CloudErrorCodeInternalServerError, "",
		"Internal server error.")
}
