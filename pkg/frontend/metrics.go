package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/metrics"
)

// patternRe is used to strip the METHOD string from the [ServerMux] pattern string.
var patternRe = regexp.MustCompile(`^[^\s]*\s+`)

type MetricsMiddleware struct {
	metrics.Emitter
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code sent to the client.
func (mrw *metricsResponseWriter) WriteHeader(code int) {
	mrw.statusCode = code
	mrw.ResponseWriter.WriteHeader(code)
}

// Metrics middleware to capture response time and status code
func (mm MetricsMiddleware) Metrics() MiddlewareFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		startTime := time.Now()

		mrw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next(mrw, r) // Process the request

		duration := time.Since(startTime).Seconds()

		// Get the route pattern that matched
		var routePattern string
		if patt := PatternFromContext(r.Context()); patt != nil {
			routePattern = patternRe.ReplaceAllString(*patt, "")
		}

		labels := map[string]string{
			"verb":  r.Method,
			"code":  strconv.Itoa(mrw.statusCode),
			"route": routePattern,
		}
		mm.Emitter.AddCounter(metricRequestsTotal, 1.0, labels)
		mm.Emitter.EmitGauge(metricRequestDuration, duration, labels)
	}
}
