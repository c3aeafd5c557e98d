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
	"io"
	"log/slog"
	"os"

	"github.com/go-logr/logr"
)

const TracerName = "github.com/Azure/ARO-HCP/rbacgenerator"

// DefaultLogger writes JSON lines to stderr. Function hosts capture stderr
// into the invocation log, so stdout stays free for generated documents.
func DefaultLogger() logr.Logger {
	return NewLogger(os.Stderr, slog.LevelInfo)
}

// NewLogger returns a JSON logger writing to w at the given minimum level.
func NewLogger(w io.Writer, level slog.Level) logr.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	})
	return logr.FromSlogHandler(handler)
}
