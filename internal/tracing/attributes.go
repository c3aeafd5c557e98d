package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	// CorrelationIDKey is the span's attribute Key reporting the correlation
	// ID from the originating request.
	CorrelationIDKey = attribute.Key("rbac.correlation_id")

	// ClientRequestIDKey is the span's attribute Key reporting the client
	// request ID from the originating request.
	ClientRequestIDKey = attribute.Key("rbac.client.request_id")

	// RequestIDKey is the span's attribute Key reporting the unique request ID
	// assigned by the function host.
	RequestIDKey = attribute.Key("rbac.request_id")

	// FunctionNameKey is the span's attribute Key reporting the name of the
	// invoked function.
	FunctionNameKey = attribute.Key("rbac.function.name")

	// RenderModeKey is the span's attribute Key reporting how the template
	// was rendered.
	RenderModeKey = attribute.Key("rbac.render_mode")

	// SubscriptionIDKey is the span's attribute Key reporting the subscription
	// of the assignment scope.
	SubscriptionIDKey = attribute.Key("rbac.subscription.id")

	// ResourceGroupNameKey is the span's attribute Key reporting the resource
	// group of the assignment scope.
	ResourceGroupNameKey = attribute.Key("rbac.resource_group.name")

	// PrincipalIDKey is the span's attribute Key reporting the principal the
	// role is assigned to.
	PrincipalIDKey = attribute.Key("rbac.principal.id")

	// RoleDefinitionIDKey is the span's attribute Key reporting the assigned
	// role definition.
	RoleDefinitionIDKey = attribute.Key("rbac.role_definition.id")

	// AssignmentNameKey is the span's attribute Key reporting the derived
	// role assignment name.
	AssignmentNameKey = attribute.Key("rbac.assignment.name")
)

// RoleAssignment holds the values SetRoleAssignmentAttributes reports.
type RoleAssignment struct {
	SubscriptionID   string
	ResourceGroup    string
	PrincipalID      string
	RoleDefinitionID string
	AssignmentName   string
}

// SetRoleAssignmentAttributes sets attributes on the span to identify the
// generated role assignment. Empty values are skipped.
func SetRoleAssignmentAttributes(span trace.Span, ra RoleAssignment) {
	addAttributeIfPresent(span, SubscriptionIDKey, ra.SubscriptionID)
	addAttributeIfPresent(span, ResourceGroupNameKey, ra.ResourceGroup)
	addAttributeIfPresent(span, PrincipalIDKey, ra.PrincipalID)
	addAttributeIfPresent(span, RoleDefinitionIDKey, ra.RoleDefinitionID)
	addAttributeIfPresent(span, AssignmentNameKey, ra.AssignmentName)
}

func addAttributeIfPresent(span trace.Span, key attribute.Key, v string) {
	if v != "" {
		span.SetAttributes(key.String(v))
	}
}
