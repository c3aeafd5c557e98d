package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	ProgramName = "RBAC Role Assignment Generator"

	// DefaultFunctionName is the function the trigger route is bound to
	// unless configured otherwise.
	DefaultFunctionName = "rbacgenerator"

	// Prometheus metric names
	metricRequestsTotal   = "rbacgenerator_requests_total"
	metricRequestDuration = "rbacgenerator_request_duration_seconds"
	metricHealth          = "rbacgenerator_health"
)
