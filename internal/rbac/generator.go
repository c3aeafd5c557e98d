// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rbac

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/tracing"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

// Result is the response of a successful generation. The body is written
// to the caller exactly as is.
type Result struct {
	Body        []byte
	StatusCode  int
	ContentType string
	Raw         bool
}

// Generator turns role assignment requests into deployment templates. It
// holds no mutable state and is safe for concurrent use.
type Generator struct {
	namer AssignmentNamer
	mode  RenderMode
}

// NewGenerator returns a Generator. A nil namer selects the URL namespace
// namer.
func NewGenerator(namer AssignmentNamer, mode RenderMode) *Generator {
	if namer == nil {
		namer = NewURLNamespaceNamer()
	}
	return &Generator{
		namer: namer,
		mode:  mode,
	}
}

// RenderMode returns the mode the generator renders with.
func (g *Generator) RenderMode() RenderMode {
	return g.mode
}

// Generate produces the template response for req.
func (g *Generator) Generate(ctx context.Context, req RoleAssignmentRequest) (*Result, error) {
	_, body, err := g.GenerateTemplate(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Result{
		Body:        body,
		StatusCode:  http.StatusOK,
		ContentType: arm.ContentTypeJSON,
		Raw:         true,
	}, nil
}

// GenerateTemplate produces the parsed template for req along with its
// compact encoding. The rendered text is logged before it is checked.
func (g *Generator) GenerateTemplate(ctx context.Context, req RoleAssignmentRequest) (*arm.DeploymentTemplate, []byte, error) {
	scope := req.Scope()
	name := g.namer.AssignmentName(req.PrincipalID)

	logger := utils.LoggerFromContext(ctx).WithValues(
		req.LogValues().
			AddAssignmentName(name).
			AddRenderMode(g.mode.String())...)

	tracing.SetRoleAssignmentAttributes(trace.SpanFromContext(ctx), tracing.RoleAssignment{
		SubscriptionID:   req.SubscriptionID,
		ResourceGroup:    req.ResourceGroup,
		PrincipalID:      req.PrincipalID,
		RoleDefinitionID: req.RoleDefinitionID,
		AssignmentName:   name,
	})

	raw, err := render(g.mode, name, req.RoleDefinitionID, req.PrincipalID, scope)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render template: %w", err)
	}
	logger.Info("rendered template", "template", string(raw))

	template, body, err := selfCheck(raw)
	if err != nil {
		return nil, nil, err
	}
	return template, body, nil
}
