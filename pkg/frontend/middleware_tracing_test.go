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
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/baggage"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
)

func TestMiddlewareTracing(t *testing.T) {
	var (
		testRequestID            = uuid.MustParse("11111111-1111-1111-1111-111111111111")
		testClientRequestID      = "22222222-2222-2222-2222-222222222222"
		testCorrelationRequestID = "33333333-3333-3333-3333-333333333333"
	)
	for _, tc := range []struct {
		name string
		data *arm.CorrelationData

		expectedAttrs map[string]string
	}{
		{
			name: "empty correlation data",
			data: &arm.CorrelationData{},
			expectedAttrs: map[string]string{
				"rbac.request_id": "00000000-0000-0000-0000-000000000000",
			},
		},
		{
			name: "with correlation data",
			data: &arm.CorrelationData{
				RequestID:            testRequestID,
				ClientRequestID:      testClientRequestID,
				CorrelationRequestID: testCorrelationRequestID,
			},
			expectedAttrs: map[string]string{
				"rbac.request_id":        testRequestID.String(),
				"rbac.client.request_id": testClientRequestID,
				"rbac.correlation_id":    testCorrelationRequestID,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Setup the testing tracer.
			sr := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

			var (
				ctx = context.Background()
				b   baggage.Baggage
			)
			ctx = ContextWithCorrelationData(ctx, tc.data)
			req, err := http.NewRequestWithContext(ctx, "GET", "http://example.com", nil)
			assert.NoError(t, err)

			next := func(w http.ResponseWriter, r *http.Request) {
				// Capture the baggage to check it later.
				b = baggage.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			writer := httptest.NewRecorder()
			middlewareTracing(writer, req, next, otelhttp.WithTracerProvider(tp))

			ss := sr.Ended()

			assert.Len(t, ss, 1)
			span := ss[0]
			containSpanAttributes(t, span, tc.expectedAttrs)

			// The baggage carries the same values as the span.
			assert.Len(t, b.Members(), len(tc.expectedAttrs))
			for k, v := range tc.expectedAttrs {
				assert.Equal(t, v, b.Member(k).Value())
			}
		})
	}
}

func TestMiddlewareTracingWithoutCorrelationData(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	var called bool
	next := func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/rbacgenerator", nil)
	middlewareTracing(httptest.NewRecorder(), req, next, otelhttp.WithTracerProvider(tp))

	assert.True(t, called)
	ss := sr.Ended()
	assert.Len(t, ss, 1)
	assert.NotEmpty(t, ss[0].Events(), "expected the missing correlation data to be recorded")
}

// containSpanAttributes ensures that all the key/value pairs of the map are
// found in the span's attributes.
func containSpanAttributes(t *testing.T, span sdktrace.ReadOnlySpan, expected map[string]string) {
	t.Helper()

	for k, v := range expected {
		var found bool
		for _, attr := range span.Attributes() {
			if string(attr.Key) == k {
				assert.Equal(t, v, attr.Value.AsString(), "span attribute %q", k)
				found = true
			}
		}

		if !found {
			t.Errorf("expected span attribute %q but found none", k)
		}
	}
}
