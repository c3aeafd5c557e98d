// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frontend

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

func TestMiddlewareCorrelation(t *testing.T) {
	const (
		testClientRequestID      = "22222222-2222-2222-2222-222222222222"
		testCorrelationRequestID = "33333333-3333-3333-3333-333333333333"
	)

	tests := []struct {
		name    string
		headers http.Header

		expectClientRequestIDHeader bool
		expectedCorrelationID       string
		expectedClientRequestID     string
	}{
		{
			name:    "request id only",
			headers: http.Header{},
		},
		{
			name: "client request id returned when asked for",
			headers: http.Header{
				arm.HeaderNameClientRequestID:       []string{testClientRequestID},
				arm.HeaderNameCorrelationRequestID:  []string{testCorrelationRequestID},
				arm.HeaderNameReturnClientRequestID: []string{"True"},
			},
			expectClientRequestIDHeader: true,
			expectedCorrelationID:       testCorrelationRequestID,
			expectedClientRequestID:     testClientRequestID,
		},
		{
			name: "client request id not returned when declined",
			headers: http.Header{
				arm.HeaderNameClientRequestID:       []string{testClientRequestID},
				arm.HeaderNameCorrelationRequestID:  []string{testCorrelationRequestID},
				arm.HeaderNameReturnClientRequestID: []string{"false"},
			},
			expectedCorrelationID:   testCorrelationRequestID,
			expectedClientRequestID: testClientRequestID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				buf    bytes.Buffer
				data   *arm.CorrelationData
				writer = httptest.NewRecorder()
				req    = httptest.NewRequest(http.MethodGet, "/api/rbacgenerator", nil)
			)
			req.Header = tt.headers
			req = req.WithContext(utils.ContextWithLogger(req.Context(), utils.NewLogger(&buf, slog.LevelInfo)))

			next := func(w http.ResponseWriter, r *http.Request) {
				var err error
				data, err = CorrelationDataFromContext(r.Context())
				assert.NoError(t, err)

				// Emit a log message to check that it includes the correlation attributes.
				utils.LoggerFromContext(r.Context()).Info("test")
				w.WriteHeader(http.StatusOK)
			}

			MiddlewareCorrelationData(writer, req, next)

			require.NotNil(t, data)
			assert.Equal(t, data.RequestID.String(), writer.Header().Get(arm.HeaderNameRequestID))
			if tt.expectClientRequestIDHeader {
				assert.Equal(t, tt.expectedClientRequestID, writer.Header().Get(arm.HeaderNameClientRequestID))
			} else {
				assert.Empty(t, writer.Header().Get(arm.HeaderNameClientRequestID))
			}
			assert.Equal(t, tt.expectedCorrelationID, data.CorrelationRequestID)
			assert.Equal(t, tt.expectedClientRequestID, data.ClientRequestID)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, data.RequestID.String(), line["request_id"])
			if tt.expectedCorrelationID != "" {
				assert.Equal(t, tt.expectedCorrelationID, line["correlation_request_id"])
			} else {
				assert.NotContains(t, line, "correlation_request_id")
			}
			if tt.expectedClientRequestID != "" {
				assert.Equal(t, tt.expectedClientRequestID, line["client_request_id"])
			} else {
				assert.NotContains(t, line, "client_request_id")
			}
		})
	}
}
