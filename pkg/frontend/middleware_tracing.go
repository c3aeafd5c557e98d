package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/baggage"
	"go.opentelemetry.io/otel/trace"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/tracing"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

// MiddlewareTracing starts an OpenTelemetry span wrapping all incoming HTTP
// requests. Other middlewares or actual request handlers can extend its
// metadata or create their own associated spans.
// The middleware expects that the trace provider is initialized and configured
// in advance.
func MiddlewareTracing(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	middlewareTracing(w, r, next)
}

func middlewareTracing(w http.ResponseWriter, r *http.Request, next http.HandlerFunc, opts ...otelhttp.Option) {
	otelhttp.NewHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			ctx    = r.Context()
			logger = utils.LoggerFromContext(ctx)
		)

		data, err := CorrelationDataFromContext(ctx)
		if err != nil {
			span := trace.SpanFromContext(ctx)
			span.RecordError(err)
			logger.Error(err, "failed to find correlation data in context")
			next(w, r)
			return
		}

		r = r.WithContext(
			addCorrelationDataToSpanContext(ctx, data),
		)

		next(w, r)
	}), fmt.Sprintf("HTTP %s", r.Method), opts...).ServeHTTP(w, r)
}

// addCorrelationDataToSpanContext adds the correlation data as attributes to
// the propagated span. It also adds correlation data to the span's baggage. If
// the context does not maintain a span, the function has no effect.
func addCorrelationDataToSpanContext(ctx context.Context, data *arm.CorrelationData) context.Context {
	var (
		logger = utils.LoggerFromContext(ctx)
		span   = trace.SpanFromContext(ctx)
	)

	// Calling New() without any member never returns an error.
	bag, _ := baggage.New()
	for _, e := range []struct {
		key   attribute.Key
		value string
	}{
		{
			key:   tracing.CorrelationIDKey,
			value: data.CorrelationRequestID,
		},
		{
			key:   tracing.ClientRequestIDKey,
			value: data.ClientRequestID,
		},
		{
			key:   tracing.RequestIDKey,
			value: data.RequestID.String(),
		},
	} {
		if e.value == "" {
			continue
		}

		span.SetAttributes(e.key.String(e.value))

		m, err := baggage.NewMemberRaw(string(e.key), e.value)
		if err != nil {
			msg := fmt.Sprintf("unable to create baggage member %q", e.key)
			span.RecordError(fmt.Errorf("%s: %w", msg, err))
			logger.Error(err, msg)

			continue
		}

		// SetMember will only return an error if m is uninitialized.
		bag, _ = bag.SetMember(m)
	}

	return baggage.ContextWithBaggage(ctx, bag)
}
