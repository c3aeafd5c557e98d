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
	"net/url"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

// Query parameter names accepted by the generator.
const (
	QueryParamSubscriptionID   = "subscription_id"
	QueryParamResourceGroup    = "resource_group"
	QueryParamRoleDefinitionID = "role_id"
	QueryParamVMName           = "vm_name"
	QueryParamPrincipalID      = "principal_id"
)

// RoleAssignmentRequest carries the inputs of a single generation. Missing
// values are empty strings and are never rejected.
type RoleAssignmentRequest struct {
	SubscriptionID   string
	ResourceGroup    string
	RoleDefinitionID string
	PrincipalID      string

	// VMName is accepted for compatibility with existing callers and
	// does not influence the generated template.
	VMName string
}

// RequestFromQuery reads a RoleAssignmentRequest from URL query values.
// Only the first value of a repeated parameter is used.
func RequestFromQuery(query url.Values) RoleAssignmentRequest {
	return RoleAssignmentRequest{
		SubscriptionID:   query.Get(QueryParamSubscriptionID),
		ResourceGroup:    query.Get(QueryParamResourceGroup),
		RoleDefinitionID: query.Get(QueryParamRoleDefinitionID),
		PrincipalID:      query.Get(QueryParamPrincipalID),
		VMName:           query.Get(QueryParamVMName),
	}
}

// Scope is the resource group scope of the assignment. The segments are
// concatenated as given, so empty inputs yield "/subscriptions//resourceGroups/".
func (r RoleAssignmentRequest) Scope() string {
	return "/subscriptions/" + r.SubscriptionID + "/resourceGroups/" + r.ResourceGroup
}

// LogValues returns the request fields as structured log values.
func (r RoleAssignmentRequest) LogValues() utils.LogValues {
	return utils.LogValues{}.
		AddPrincipalID(r.PrincipalID).
		AddRoleDefinitionID(r.RoleDefinitionID).
		AddVMName(r.VMName).
		AddLogValuesForScope(r.Scope())
}
