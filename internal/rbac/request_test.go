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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRequestFromQuery(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expected      RoleAssignmentRequest
		expectedScope string
	}{
		{
			name:  "all parameters",
			query: "subscription_id=sub1&resource_group=rg1&role_id=role&vm_name=vm1&principal_id=user1",
			expected: RoleAssignmentRequest{
				SubscriptionID:   "sub1",
				ResourceGroup:    "rg1",
				RoleDefinitionID: "role",
				PrincipalID:      "user1",
				VMName:           "vm1",
			},
			expectedScope: "/subscriptions/sub1/resourceGroups/rg1",
		},
		{
			name:          "no parameters",
			query:         "",
			expected:      RoleAssignmentRequest{},
			expectedScope: "/subscriptions//resourceGroups/",
		},
		{
			name:  "repeated parameter uses first value",
			query: "principal_id=a&principal_id=b",
			expected: RoleAssignmentRequest{
				PrincipalID: "a",
			},
			expectedScope: "/subscriptions//resourceGroups/",
		},
		{
			name:  "escaped values are decoded",
			query: "principal_id=a%22b&resource_group=my%20rg",
			expected: RoleAssignmentRequest{
				ResourceGroup: "my rg",
				PrincipalID:   `a"b`,
			},
			expectedScope: "/subscriptions//resourceGroups/my rg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			got := RequestFromQuery(query)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("unexpected request (-want, +got): %s", diff)
			}
			assert.Equal(t, tt.expectedScope, got.Scope())
		})
	}
}
