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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestURLNamespaceNamer(t *testing.T) {
	tests := []struct {
		name        string
		principalID string
		expected    string
	}{
		{
			name:        "principal",
			principalID: "user1",
			expected:    "f101b6c8-d6ed-5610-b53a-0ab0180a6998",
		},
		{
			name:        "other principal",
			principalID: "user2",
			expected:    "6dabb0f8-ecb5-5d80-a240-c05018b58dc5",
		},
		{
			name:        "empty principal",
			principalID: "",
			expected:    "1b4db7eb-4057-5ddf-91e0-36dec72071f5",
		},
		{
			name:        "principal with quote",
			principalID: `a"b`,
			expected:    "a42b3c0d-6363-513e-883b-2406e31696d7",
		},
	}
	namer := NewURLNamespaceNamer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := namer.AssignmentName(tt.principalID)
			assert.Equal(t, tt.expected, got)

			parsed, err := uuid.Parse(got)
			assert.NoError(t, err)
			assert.Equal(t, uuid.Version(5), parsed.Version())
			assert.Equal(t, uuid.RFC4122, parsed.Variant())
		})
	}
}

func TestNamespaceNamer(t *testing.T) {
	namer := NewNamespaceNamer(uuid.NameSpaceDNS)
	assert.Equal(t, "e063bb16-cc76-558b-9f94-afe212747cda", namer.AssignmentName("user1"))
	assert.NotEqual(t, NewURLNamespaceNamer().AssignmentName("user1"), namer.AssignmentName("user1"))
}

func TestNamerIsDeterministic(t *testing.T) {
	first := NewURLNamespaceNamer().AssignmentName("user1")
	for range 10 {
		assert.Equal(t, first, NewURLNamespaceNamer().AssignmentName("user1"))
	}
}
