package frontend

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/rbac"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

// RoleAssignmentTemplate answers a trigger invocation with a deployment
// template granting the requested role. Query parameters are read as given;
// missing ones are empty.
func (f *Frontend) RoleAssignmentTemplate(writer http.ResponseWriter, request *http.Request) error {
	ctx := request.Context()
	logger := utils.LoggerFromContext(ctx)

	result, err := f.generator.Generate(ctx, rbac.RequestFromQuery(request.URL.Query()))
	if err != nil {
		return err
	}

	if _, err := arm.WriteJSONResponse(writer, result.StatusCode, result.Body); err != nil {
		// Headers are already sent, so only the log can tell.
		logger.Error(err, "failed to write response")
	}
	return nil
}
