package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/metrics"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/rbac"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

// Frontend hosts the generator behind the HTTP interface of an Azure
// Functions custom handler.
type Frontend struct {
	logger       logr.Logger
	listener     net.Listener
	server       http.Server
	ready        atomic.Bool
	done         chan struct{}
	err          error
	metrics      metrics.Emitter
	gatherer     prometheus.Gatherer
	generator    *rbac.Generator
	functionName string
}

func NewFrontend(
	logger logr.Logger,
	listener net.Listener,
	emitter metrics.Emitter,
	gatherer prometheus.Gatherer,
	generator *rbac.Generator,
	functionName string,
) *Frontend {
	f := &Frontend{
		logger:   logger,
		listener: listener,
		server: http.Server{
			BaseContext: func(net.Listener) context.Context {
				return utils.ContextWithLogger(context.Background(), logger)
			},
		},
		done:         make(chan struct{}),
		metrics:      emitter,
		gatherer:     gatherer,
		generator:    generator,
		functionName: functionName,
	}

	f.server.Handler = f.routes()

	return f
}

// Run serves requests until stop is closed, then shuts the server down
// within the bounds of ctx.
func (f *Frontend) Run(ctx context.Context, stop <-chan struct{}) {
	defer close(f.done)

	if stop != nil {
		go func() {
			<-stop
			f.ready.Store(false)
			_ = f.server.Shutdown(ctx)
		}()
	}

	f.logger.Info(fmt.Sprintf("listening on %s", f.listener.Addr().String()))

	f.ready.Store(true)

	err := f.server.Serve(f.listener)
	if !errors.Is(err, http.ErrServerClosed) {
		f.logger.Error(err, "server stopped unexpectedly")
		f.err = err
	}
}

// Join waits for Run to return and reports why the server stopped, if it
// was not a requested shutdown.
func (f *Frontend) Join() error {
	<-f.done
	return f.err
}

func (f *Frontend) CheckReady() bool {
	return f.ready.Load()
}

func (f *Frontend) NotFound(writer http.ResponseWriter, request *http.Request) {
	arm.WriteCloudError(writer, arm.NewNotFoundError(request.URL.Path))
}

func (f *Frontend) Healthz(writer http.ResponseWriter, request *http.Request) {
	var healthStatus float64
	if f.CheckReady() {
		writer.WriteHeader(http.StatusOK)
		healthStatus = 1.0
	} else {
		writer.WriteHeader(http.StatusInternalServerError)
		healthStatus = 0.0
	}

	f.metrics.EmitGauge(metricHealth, healthStatus, map[string]string{
		"endpoint": "/healthz",
	})
}
