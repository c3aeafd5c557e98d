package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/http"
	"path"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/errorutils"
)

// PatternFunctions is the path prefix the Functions host forwards HTTP
// triggers under.
const PatternFunctions = "api"

// MuxPattern forms a URL pattern suitable for passing to http.ServeMux.
func MuxPattern(method string, segments ...string) string {
	return fmt.Sprintf("%s /%s", method, path.Join(segments...))
}

func (f *Frontend) routes() *MiddlewareMux {
	metricsMiddleware := MetricsMiddleware{Emitter: f.metrics}

	mux := NewMiddlewareMux(
		MiddlewarePanic,
		MiddlewareLogging,
		MiddlewareCorrelationData,
		MiddlewareTracing,
		metricsMiddleware.Metrics(),
	)

	mux.HandleFunc("/", f.NotFound)
	mux.HandleFunc(MuxPattern(http.MethodGet, "healthz"), f.Healthz)
	mux.Handle(MuxPattern(http.MethodGet, "metrics"), promhttp.HandlerFor(f.gatherer, promhttp.HandlerOpts{}))

	postMuxMiddleware := NewMiddleware(
		MiddlewareLoggingPostMux(f.functionName))
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		mux.Handle(
			MuxPattern(method, PatternFunctions, f.functionName),
			postMuxMiddleware.HandlerFunc(errorutils.ReportError(f.RoleAssignmentTemplate)))
	}

	return mux
}
