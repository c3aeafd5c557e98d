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

//go:generate $MOCKGEN -typed -source=namer.go -destination=mock_namer.go -package rbac AssignmentNamer

import (
	"github.com/google/uuid"
)

// AssignmentNamer derives the name of a role assignment from the principal
// it is granted to. Implementations must be deterministic so repeated
// deployments address the same assignment.
type AssignmentNamer interface {
	AssignmentName(principalID string) string
}

type namespaceNamer struct {
	namespace uuid.UUID
}

var _ AssignmentNamer = namespaceNamer{}

// NewURLNamespaceNamer returns a namer producing version 5 UUIDs in the
// RFC 4122 URL namespace.
func NewURLNamespaceNamer() AssignmentNamer {
	return NewNamespaceNamer(uuid.NameSpaceURL)
}

// NewNamespaceNamer returns a namer producing version 5 UUIDs in the given
// namespace.
func NewNamespaceNamer(namespace uuid.UUID) AssignmentNamer {
	return namespaceNamer{namespace: namespace}
}

// AssignmentName hashes the UTF-8 bytes of principalID. An empty principal
// is hashed as the empty name.
func (n namespaceNamer) AssignmentName(principalID string) string {
	return uuid.NewSHA1(n.namespace, []byte(principalID)).String()
}
