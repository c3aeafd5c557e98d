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

package arm

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

const (
	// DeploymentTemplateSchema is the 2015-01-01 deployment template schema.
	DeploymentTemplateSchema = "https://schema.management.azure.com/schemas/2015-01-01/deploymentTemplate.json#"

	// DeploymentTemplateContentVersion is the fixed content version of
	// every generated template.
	DeploymentTemplateContentVersion = "1.0.0.0"
)

// DeploymentTemplate is a minimal ARM deployment template. Field order
// matches the order ARM documents conventionally use and is preserved by
// the encoder.
type DeploymentTemplate struct {
	Schema         string                   `json:"$schema"`
	ContentVersion string                   `json:"contentVersion"`
	Parameters     map[string]any           `json:"parameters"`
	Variables      map[string]any           `json:"variables"`
	Resources      []RoleAssignmentResource `json:"resources"`
}

// NewDeploymentTemplate returns an envelope with empty parameters and
// variables wrapping the given resources.
func NewDeploymentTemplate(resources ...RoleAssignmentResource) *DeploymentTemplate {
	if resources == nil {
		resources = []RoleAssignmentResource{}
	}
	return &DeploymentTemplate{
		Schema:         DeploymentTemplateSchema,
		ContentVersion: DeploymentTemplateContentVersion,
		Parameters:     map[string]any{},
		Variables:      map[string]any{},
		Resources:      resources,
	}
}

// Deployment wraps the template into the request body of an incremental
// resource group deployment, the shape accepted by
// armresources.DeploymentsClient.BeginCreateOrUpdate.
func (t *DeploymentTemplate) Deployment() armresources.Deployment {
	return armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Mode:       to.Ptr(armresources.DeploymentModeIncremental),
			Template:   t,
			Parameters: map[string]any{},
		},
	}
}
