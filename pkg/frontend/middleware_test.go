package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddlewareOrder(t *testing.T) {
	var calls []string
	record := func(name string) MiddlewareFunc {
		return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
			calls = append(calls, name+" before")
			next(w, r)
			calls = append(calls, name+" after")
		}
	}

	handler := NewMiddleware(record("first"), record("second")).HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "handler")
		})
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{
		"first before",
		"second before",
		"handler",
		"second after",
		"first after",
	}, calls)
}

func TestMiddlewareMuxPattern(t *testing.T) {
	var pattern string
	capture := func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		next(w, r)
		pattern = *PatternFromContext(r.Context())
	}

	mux := NewMiddlewareMux(capture)
	mux.HandleFunc(MuxPattern(http.MethodGet, "api", "fn"), func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/fn?x=1", nil))
	assert.Equal(t, "GET /api/fn", pattern)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/fn", nil))
	assert.Equal(t, "/", pattern)
}

func TestMiddlewarePanic(t *testing.T) {
	writer := httptest.NewRecorder()
	MiddlewarePanic(writer, httptest.NewRequest(http.MethodGet, "/", nil), func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, writer.Code)
	assert.Contains(t, writer.Body.String(), "InternalServerError")
}
