package arm

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudErrorBody_String(t *testing.T) {
	tests := []struct {
		name     string
		body     *CloudErrorBody
		expected string
	}{
		{
			name: "No target",
			body: &CloudErrorBody{
				Code:    CloudErrorCodeMalformedOutput,
				Message: "rendered template is not valid JSON",
			},
			expected: "MalformedOutput: rendered template is not valid JSON",
		},
		{
			name: "Two details",
			body: &CloudErrorBody{
				Code:    "code",
				Message: "message",
				Target:  "target",
				Details: []CloudErrorBody{
					{
						Code:    "innercode",
						Message: "innermessage",
						Target:  "principal_id",
					},
					{
						Code:    "innercode2",
						Message: "innermessage2",
						Target:  "role_id",
					},
				},
			},
			expected: "code: target: message Details: innercode: principal_id: innermessage, innercode2: role_id: innermessage2",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.body.String())
		})
	}
}

func TestWriteCloudError(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteCloudError(recorder, NewNotFoundError("/api/unknown"))

	result := recorder.Result()
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Equal(t, ContentTypeJSON, result.Header.Get(HeaderNameContentType))
	assert.Equal(t, CloudErrorCodeNotFound, result.Header.Get(HeaderNameErrorCode))

	var got CloudError
	require.NoError(t, json.NewDecoder(result.Body).Decode(&got))
	require.NotNil(t, got.CloudErrorBody)
	assert.Equal(t, CloudErrorCodeNotFound, got.Code)
	assert.Equal(t, "/api/unknown", got.Target)
}

func TestCloudErrorError(t *testing.T) {
	err := NewCloudError(http.StatusInternalServerError, CloudErrorCodeInternalServerError, "", "Internal server error.")
	assert.Equal(t, "500: InternalServerError: Internal server error.", err.Error())

	assert.Equal(t, "404", (&CloudError{StatusCode: http.StatusNotFound}).Error())
}
