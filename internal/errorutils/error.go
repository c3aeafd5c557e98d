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

package errorutils

import (
	"context"
	"errors"
	"net/http"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/rbac"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

// ErroringHTTPHandlerFunc is an http handler that leaves error reporting to
// a higher layer. The handler returns errors instead of writing them, which
// keeps logging and response codes consistent across handlers.
type ErroringHTTPHandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ReportError allows an http handler to have an error handling flow that is "normal" where encountered errors are
// returned.  If the error is non-nil, then the standard error reporting (special cases baked in for known types of errors)
// are logged and then reported to a client with an appropriate http code.
func ReportError(delegate ErroringHTTPHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := delegate(w, r)
		if err == nil {
			return
		}

		ctx := r.Context()
		_ = writeError(ctx, w, err) // return is always nil
	}
}

// ToCloudError converts err into the CloudError reported to the caller.
// Errors of unknown type are internal errors.
func ToCloudError(err error) *arm.CloudError {
	var cloudErr *arm.CloudError
	if errors.As(err, &cloudErr) && cloudErr != nil {
		return cloudErr
	}

	var malformedErr *rbac.MalformedOutputError
	if errors.As(err, &malformedErr) {
		return arm.NewCloudError(
			http.StatusInternalServerError,
			arm.CloudErrorCodeMalformedOutput, "",
			"The generated template is not valid JSON.")
	}

	return arm.NewCloudError(
		http.StatusInternalServerError,
		arm.CloudErrorCodeInternalServerError, "",
		"Internal server error.")
}

// writeError logs err and writes the matching CloudError. The return value
// is always nil so the same handler function can return it directly.
func writeError(ctx context.Context, w http.ResponseWriter, err error) error {
	logger := utils.LoggerFromContext(ctx)

	cloudErr := ToCloudError(err)
	logger = logger.WithValues(utils.LogValues{}.AddCloudErrorCode(cloudErr.Code)...)

	switch {
	case cloudErr.StatusCode >= 400 && cloudErr.StatusCode < 500:
		logger.Info("caller request error", "err", err)
	default:
		logger.Error(err, "server request error")
	}

	arm.WriteCloudError(w, cloudErr)
	return nil
}
