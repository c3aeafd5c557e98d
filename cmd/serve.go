package cmd

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/metrics"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/version"
	"github.com/Azure/ARO-HCP/rbacgenerator/pkg/frontend"
)

const (
	// envCustomHandlerPort is set by the Azure Functions host to the port a
	// custom handler must listen on.
	envCustomHandlerPort = "FUNCTIONS_CUSTOMHANDLER_PORT"
	envFunctionName      = "RBACGENERATOR_FUNCTION_NAME"

	defaultPort = 8080
)

func DefaultServeOptions() *RawServeOptions {
	functionName := os.Getenv(envFunctionName)
	if functionName == "" {
		functionName = frontend.DefaultFunctionName
	}
	return &RawServeOptions{
		GeneratorOptions: DefaultGeneratorOptions(),
		Port:             os.Getenv(envCustomHandlerPort),
		FunctionName:     functionName,
	}
}

func BindServeOptions(opts *RawServeOptions, cmd *cobra.Command) {
	BindGeneratorOptions(opts.GeneratorOptions, cmd)
	cmd.Flags().StringVar(&opts.Port, "port", opts.Port,
		fmt.Sprintf("port to listen on (default $%s, else %d)", envCustomHandlerPort, defaultPort))
	cmd.Flags().StringVar(&opts.FunctionName, "function-name", opts.FunctionName,
		fmt.Sprintf("function name the trigger is served under, /api/<name> (env %s)", envFunctionName))
}

// RawServeOptions holds input values.
type RawServeOptions struct {
	GeneratorOptions *RawGeneratorOptions
	Port             string
	FunctionName     string
}

// validatedServeOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedServeOptions struct {
	*ValidatedGeneratorOptions
	port         int
	functionName string
}

type ValidatedServeOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedServeOptions
}

// completedServeOptions is a private wrapper that enforces a call of Complete() before the server can be run.
type completedServeOptions struct {
	*GeneratorOptions
	Listener     net.Listener
	FunctionName string
}

type ServeOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedServeOptions
}

func (o *RawServeOptions) Validate() (*ValidatedServeOptions, error) {
	generatorOptions, err := o.GeneratorOptions.Validate()
	if err != nil {
		return nil, err
	}

	port := defaultPort
	if o.Port != "" {
		port, err = strconv.Atoi(o.Port)
		if err != nil || port < 0 || port > 65535 {
			return nil, fmt.Errorf("invalid --port %q: must be a number between 0 and 65535", o.Port)
		}
	}

	if o.FunctionName == "" {
		return nil, errors.New("--function-name must not be empty")
	}

	return &ValidatedServeOptions{
		validatedServeOptions: &validatedServeOptions{
			ValidatedGeneratorOptions: generatorOptions,
			port:                      port,
			functionName:              o.FunctionName,
		},
	}, nil
}

func (o *ValidatedServeOptions) Complete() (*ServeOptions, error) {
	generatorOptions, err := o.ValidatedGeneratorOptions.Complete()
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", o.port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", o.port, err)
	}

	return &ServeOptions{
		completedServeOptions: &completedServeOptions{
			GeneratorOptions: generatorOptions,
			Listener:         listener,
			FunctionName:     o.functionName,
		},
	}, nil
}

func newServeCommand() *cobra.Command {
	opts := DefaultServeOptions()
	cmd := &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "Serve the generator as an Azure Functions custom handler",
		Long: `Serve the generator as an Azure Functions custom handler

	The trigger is served at GET|POST /api/<function-name>, together with
	/healthz and /metrics. Tracing is configured from the OTEL_* environment
	variables and is a no-op when none are set.

	# Serve locally and request a template
	./rbacgenerator serve --port 8080
	curl 'http://localhost:8080/api/rbacgenerator?subscription_id=sub1&resource_group=rg1&role_id=role&principal_id=user1'
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			validated, err := opts.Validate()
			if err != nil {
				return err
			}
			completed, err := validated.Complete()
			if err != nil {
				return err
			}
			return completed.Run(cmd.Context(), utils.DefaultLogger())
		},
	}
	BindServeOptions(opts, cmd)
	return cmd
}

func (opts *ServeOptions) Run(ctx context.Context, logger logr.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Info(fmt.Sprintf("%s (%s) started", frontend.ProgramName, version.CommitSHA),
		utils.LogValues{}.
			AddFunctionName(opts.FunctionName).
			AddRenderMode(opts.Generator.RenderMode().String())...)

	otelShutdown, err := frontend.ConfigureOpenTelemetryTracer(ctx, logger)
	if err != nil {
		return fmt.Errorf("could not initialize opentelemetry sdk: %w", err)
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			logger.Error(err, "failed to shut down the OpenTelemetry tracer")
		}
	}()

	prometheusEmitter := metrics.NewPrometheusEmitter(prometheus.DefaultRegisterer)

	f := frontend.NewFrontend(logger, opts.Listener, prometheusEmitter, prometheus.DefaultGatherer, opts.Generator, opts.FunctionName)

	stop := make(chan struct{})
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChannel)
	go f.Run(ctx, stop)

	joined := make(chan error, 1)
	go func() {
		joined <- f.Join()
	}()

	select {
	case sig := <-signalChannel:
		logger.Info(fmt.Sprintf("caught %s signal", sig))
	case <-ctx.Done():
		logger.Info("context canceled")
	case err := <-joined:
		// The server stopped on its own.
		return err
	}
	close(stop)

	err = <-joined
	logger.Info(fmt.Sprintf("%s (%s) stopped", frontend.ProgramName, version.CommitSHA))

	return err
}
