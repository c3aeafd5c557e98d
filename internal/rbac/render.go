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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
)

// RenderMode selects how a template document is produced before it is
// self-checked.
type RenderMode string

const (
	// RenderModeStructured encodes typed values, escaping every input.
	RenderModeStructured RenderMode = "structured"

	// RenderModeLegacy splices inputs into a text template without
	// escaping. Inputs containing quotes, backslashes or control characters
	// produce text that fails the self-check.
	RenderModeLegacy RenderMode = "legacy"
)

// RenderModes lists the accepted modes in flag help order.
var RenderModes = []RenderMode{RenderModeStructured, RenderModeLegacy}

func (m RenderMode) String() string {
	return string(m)
}

// ParseRenderMode accepts a mode name case-insensitively. The empty string
// selects RenderModeStructured.
func ParseRenderMode(s string) (RenderMode, error) {
	switch RenderMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RenderModeStructured:
		return RenderModeStructured, nil
	case RenderModeLegacy:
		return RenderModeLegacy, nil
	}
	return "", fmt.Errorf("unknown render mode %q, expected one of %v", s, RenderModes)
}

// render produces the template text for a single role assignment.
func render(mode RenderMode, name, roleDefinitionID, principalID, scope string) ([]byte, error) {
	switch mode {
	case RenderModeStructured:
		return arm.MarshalCompact(arm.NewRoleAssignmentTemplate(name, roleDefinitionID, principalID, scope))
	case RenderModeLegacy:
		return []byte(renderLegacy(name, roleDefinitionID, principalID, scope)), nil
	}
	return nil, fmt.Errorf("unknown render mode %q", mode)
}

func renderLegacy(name, roleDefinitionID, principalID, scope string) string {
	entry := `{
        "apiVersion": "` + arm.RoleAssignmentAPIVersion + `",
        "type": "` + arm.RoleAssignmentResourceType + `",
        "name": "` + name + `",
        "properties": {
            "roleDefinitionId": "` + roleDefinitionID + `",
            "principalId": "` + principalID + `",
            "scope": "` + scope + `"
        }
    }`

	return `{
        "$schema": "` + arm.DeploymentTemplateSchema + `",
        "contentVersion": "` + arm.DeploymentTemplateContentVersion + `",
        "parameters": {},
        "variables": {},
        "resources": [ ` + entry + `]
    }`
}

// selfCheck parses rendered text into a DeploymentTemplate and returns the
// template together with its compact encoding. Keys outside the template
// shape and trailing data are rejected.
func selfCheck(raw []byte) (*arm.DeploymentTemplate, []byte, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	var template arm.DeploymentTemplate
	if err := decoder.Decode(&template); err != nil {
		return nil, nil, &MalformedOutputError{Raw: string(raw), Err: err}
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, nil, &MalformedOutputError{Raw: string(raw), Err: err}
	}

	body, err := arm.MarshalCompact(&template)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode template: %w", err)
	}
	return &template, body, nil
}
