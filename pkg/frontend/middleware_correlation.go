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

package frontend

import (
	"net/http"
	"strings"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

// MiddlewareCorrelationData reads the correlation data from the incoming
// request, extends the contextual logger with correlation attributes and adds
// the x-ms-request-id header (and optionally x-ms-client-request-id) to the
// HTTP response.
func MiddlewareCorrelationData(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	var (
		ctx    = r.Context()
		logger = utils.LoggerFromContext(ctx)
	)

	correlationData := arm.NewCorrelationData(r)
	ctx = ContextWithCorrelationData(ctx, correlationData)

	values := utils.LogValues{}.AddRequestID(correlationData.RequestID.String())
	if correlationData.ClientRequestID != "" {
		values = values.AddClientRequestID(correlationData.ClientRequestID)
	}
	if correlationData.CorrelationRequestID != "" {
		values = values.AddCorrelationRequestID(correlationData.CorrelationRequestID)
	}
	ctx = utils.ContextWithLogger(ctx, logger.WithValues(values...))
	r = r.WithContext(ctx)

	w.Header().Set(arm.HeaderNameRequestID, correlationData.RequestID.String())
	returnClientRequestID := r.Header.Get(arm.HeaderNameReturnClientRequestID)
	if strings.EqualFold(returnClientRequestID, "true") {
		w.Header().Set(arm.HeaderNameClientRequestID, correlationData.ClientRequestID)
	}

	next(w, r)
}
