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

package utils

import (
	"context"
	"strings"

	"github.com/go-logr/logr"

	azcorearm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

func ContextWithLogger(ctx context.Context, logger logr.Logger) context.Context {
	return logr.NewContext(ctx, logger)
}

func LoggerFromContext(ctx context.Context) logr.Logger {
	logger, err := logr.FromContext(ctx)
	if err != nil {
		// Return the default logger as a fail-safe, but log
		// the failure to obtain the logger from the context.
		logger = DefaultLogger()
		logger.Error(err, "failed to get logger from context")
	}
	return logger
}

// LogValues is a slice of key/value pairs for use with logger.WithValues.
// It supports method chaining for a fluent API:
//
//	logger.WithValues(
//	    utils.LogValues{}.
//	        AddPrincipalID(val).
//	        AddRoleDefinitionID(val).
//	        AddScope(val)...)
//
// Keeping the keys in one place keeps log queries stable across the
// HTTP and CLI entry points.
type LogValues []any

func (lv LogValues) AddRequestID(value string) LogValues {
	return append(lv, "request_id", value)
}

// AddClientRequestID adds the "client_request_id" key.
func (lv LogValues) AddClientRequestID(value string) LogValues {
	return append(lv, "client_request_id", value)
}

// AddCorrelationRequestID adds the "correlation_request_id" key.
func (lv LogValues) AddCorrelationRequestID(value string) LogValues {
	return append(lv, "correlation_request_id", value)
}

// AddCloudErrorCode adds the "cloud_error_code" key with the lowercased value.
func (lv LogValues) AddCloudErrorCode(value string) LogValues {
	return append(lv, "cloud_error_code", strings.ToLower(value))
}

// AddFunctionName adds the "function_name" key with the lowercased value.
func (lv LogValues) AddFunctionName(value string) LogValues {
	return append(lv, "function_name", strings.ToLower(value))
}

// AddRenderMode adds the "render_mode" key.
func (lv LogValues) AddRenderMode(value string) LogValues {
	return append(lv, "render_mode", value)
}

// AddPrincipalID adds the "principal_id" key. Principal IDs are object IDs
// and are logged as given.
func (lv LogValues) AddPrincipalID(value string) LogValues {
	return append(lv, "principal_id", value)
}

// AddRoleDefinitionID adds the "role_definition_id" key with the lowercased value.
func (lv LogValues) AddRoleDefinitionID(value string) LogValues {
	return append(lv, "role_definition_id", strings.ToLower(value))
}

// AddAssignmentName adds the "assignment_name" key.
func (lv LogValues) AddAssignmentName(value string) LogValues {
	return append(lv, "assignment_name", value)
}

// AddScope adds the "scope" key with the lowercased value.
func (lv LogValues) AddScope(value string) LogValues {
	return append(lv, "scope", strings.ToLower(value))
}

// AddSubscriptionID adds the "subscription_id" key with the lowercased value.
func (lv LogValues) AddSubscriptionID(value string) LogValues {
	return append(lv, "subscription_id", strings.ToLower(value))
}

// AddResourceGroup adds the "resource_group" key with the lowercased value.
func (lv LogValues) AddResourceGroup(value string) LogValues {
	return append(lv, "resource_group", strings.ToLower(value))
}

// AddVMName adds the "vm_name" key with the lowercased value.
func (lv LogValues) AddVMName(value string) LogValues {
	return append(lv, "vm_name", strings.ToLower(value))
}

// AddLogValuesForScope adds subscription_id and resource_group when the
// scope parses as an ARM resource ID, and the raw scope otherwise.
func (lv LogValues) AddLogValuesForScope(scope string) LogValues {
	lv = lv.AddScope(scope)

	resourceID, err := azcorearm.ParseResourceID(scope)
	if err != nil {
		return lv
	}
	if resourceID.SubscriptionID != "" {
		lv = lv.AddSubscriptionID(resourceID.SubscriptionID)
	}
	if resourceID.ResourceGroupName != "" {
		lv = lv.AddResourceGroup(resourceID.ResourceGroupName)
	}
	return lv
}
