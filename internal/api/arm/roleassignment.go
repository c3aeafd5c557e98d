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
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armauthorization "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v3"
)

const (
	// RoleAssignmentAPIVersion is the API version written into generated
	// role assignment resources.
	RoleAssignmentAPIVersion = "2014-07-01-preview"

	// RoleAssignmentResourceType is the fully qualified ARM type of a role
	// assignment.
	RoleAssignmentResourceType = "Microsoft.Authorization/roleAssignments"
)

// RoleAssignmentResource binds a principal to a role definition within a
// scope.
type RoleAssignmentResource struct {
	APIVersion string                   `json:"apiVersion"`
	Type       string                   `json:"type"`
	Name       string                   `json:"name"`
	Properties RoleAssignmentProperties `json:"properties"`
}

// RoleAssignmentProperties are copied verbatim from the generator input.
type RoleAssignmentProperties struct {
	RoleDefinitionID string `json:"roleDefinitionId"`
	PrincipalID      string `json:"principalId"`
	Scope            string `json:"scope"`
}

// NewRoleAssignmentResource returns a role assignment resource with the
// fixed API version and type.
func NewRoleAssignmentResource(name, roleDefinitionID, principalID, scope string) RoleAssignmentResource {
	return RoleAssignmentResource{
		APIVersion: RoleAssignmentAPIVersion,
		Type:       RoleAssignmentResourceType,
		Name:       name,
		Properties: RoleAssignmentProperties{
			RoleDefinitionID: roleDefinitionID,
			PrincipalID:      principalID,
			Scope:            scope,
		},
	}
}

// NewRoleAssignmentTemplate returns a deployment template containing
// exactly one role assignment resource.
func NewRoleAssignmentTemplate(name, roleDefinitionID, principalID, scope string) *DeploymentTemplate {
	return NewDeploymentTemplate(NewRoleAssignmentResource(name, roleDefinitionID, principalID, scope))
}

// ResourcePath is the ARM path of the role assignment below its scope.
func (r *RoleAssignmentResource) ResourcePath() string {
	return r.Properties.Scope + "/providers/" + RoleAssignmentResourceType + "/" + r.Name
}

// CreateParameters returns the role assignment as the request body the
// role assignments API accepts. Scope is read-only in that body; it is
// carried by the request path instead.
func (r *RoleAssignmentResource) CreateParameters() armauthorization.RoleAssignmentCreateParameters {
	return armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			RoleDefinitionID: to.Ptr(r.Properties.RoleDefinitionID),
			PrincipalID:      to.Ptr(r.Properties.PrincipalID),
		},
	}
}

// RESTRequest describes the single PUT that would create the role
// assignment directly, without a template deployment.
type RESTRequest struct {
	Method string                                          `json:"method"`
	URL    string                                          `json:"url"`
	Body   armauthorization.RoleAssignmentCreateParameters `json:"body"`
}

// RESTRequest returns the direct-PUT equivalent of the resource.
func (r *RoleAssignmentResource) RESTRequest() RESTRequest {
	query := url.Values{}
	query.Set("api-version", r.APIVersion)

	return RESTRequest{
		Method: http.MethodPut,
		URL:    r.ResourcePath() + "?" + query.Encode(),
		Body:   r.CreateParameters(),
	}
}
