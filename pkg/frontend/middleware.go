package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
)

// MiddlewareFunc specifies the call signature for middleware functions.
// At some point during normal execution, the middleware function must call
// the "next" handler function to invoke the next layer of request handling.
type MiddlewareFunc func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc)

// Middleware is an ordered list of middleware functions to execute before
// invoking an http.Handler.
type Middleware struct {
	functions []MiddlewareFunc
}

// NewMiddleware allocates and returns a new Middleware.
func NewMiddleware(functions ...MiddlewareFunc) *Middleware {
	return &Middleware{functions: functions}
}

// chain returns the function that the middleware function at index i
// receives as its "next" argument.
func (m *Middleware) chain(i int, handler http.Handler) http.HandlerFunc {
	if i < len(m.functions) {
		return func(w http.ResponseWriter, r *http.Request) {
			m.functions[i](w, r, m.chain(i+1, handler))
		}
	}
	return handler.ServeHTTP
}

// Handler returns an http.Handler that invokes the list of middleware
// functions before invoking the given HTTP handler. Pass the returned
// http.Handler to http.ServeMux.Handle to add middleware functions that
// execute after pattern-based multiplexing occurs.
func (m *Middleware) Handler(handler http.Handler) http.Handler {
	return m.chain(0, handler)
}

// HandlerFunc is Handler for a plain handler function.
func (m *Middleware) HandlerFunc(handler func(http.ResponseWriter, *http.Request)) http.Handler {
	return m.Handler(http.HandlerFunc(handler))
}

// MiddlewareMux is an http.ServeMux with middleware functions that execute
// before pattern-based multiplexing occurs.
type MiddlewareMux struct {
	http.ServeMux
	middleware Middleware
}

// NewMiddlewareMux allocates and returns a new MiddlewareMux.
func NewMiddlewareMux(functions ...MiddlewareFunc) *MiddlewareMux {
	return &MiddlewareMux{middleware: Middleware{functions: functions}}
}

// ServeHTTP dispatches the request to each middleware function, and then to
// the handler whose pattern most closely matches the request URL.
func (mux *MiddlewareMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Middlewares running before the ServeMux cannot read r.Pattern since
	// the request they hold is never the one the ServeMux matched. They read
	// the matched pattern through this pointer once next returns.
	patt := new(string)
	r = r.WithContext(ContextWithPattern(r.Context(), patt))

	mainHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeMux.ServeHTTP(w, r)
		*patt = r.Pattern
	})

	mux.middleware.Handler(mainHandler).ServeHTTP(w, r)
}
