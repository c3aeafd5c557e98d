package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/tracing"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

type LoggingReadCloser struct {
	io.ReadCloser
	bytesRead int
}

func (rc *LoggingReadCloser) Read(b []byte) (int, error) {
	n, err := rc.ReadCloser.Read(b)
	rc.bytesRead += n
	return n, err
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (w *LoggingResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

func (w *LoggingResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.statusCode = statusCode
}

// MiddlewareLogging logs the HTTP request and response.
func MiddlewareLogging(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	ctx := r.Context()
	logger := utils.LoggerFromContext(ctx)

	// Capture the request and response data for logging.
	body := &LoggingReadCloser{ReadCloser: r.Body}
	if r.Body == nil {
		body.ReadCloser = http.NoBody
	}
	r.Body = body
	lrw := &LoggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	startTime := time.Now()

	logger = logger.WithValues(
		"request_method", r.Method,
		"request_path", r.URL.Path,
		"request_proto", r.Proto,
		"request_query", r.URL.RawQuery,
		"request_referer", r.Referer(),
		"request_remote_addr", r.RemoteAddr,
		"request_user_agent", r.UserAgent())
	r = r.WithContext(utils.ContextWithLogger(ctx, logger))

	logger.Info("read request")

	next(lrw, r)

	logger.Info("send response",
		"body_read_bytes", body.bytesRead,
		"body_written_bytes", lrw.bytesWritten,
		"response_status_code", lrw.statusCode,
		"duration", time.Since(startTime).Seconds())
}

// MiddlewareLoggingPostMux extends the contextual logger and the current
// span with the name of the function the request was routed to.
func MiddlewareLoggingPostMux(functionName string) MiddlewareFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		ctx := r.Context()
		logger := utils.LoggerFromContext(ctx)

		trace.SpanFromContext(ctx).SetAttributes(tracing.FunctionNameKey.String(functionName))
		logger = logger.WithValues(utils.LogValues{}.AddFunctionName(functionName)...)
		r = r.WithContext(utils.ContextWithLogger(ctx, logger))

		next(w, r)
	}
}
