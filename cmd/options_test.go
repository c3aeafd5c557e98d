package cmd

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/rbac"
)

func TestGeneratorOptionsValidate(t *testing.T) {
	tests := []struct {
		name         string
		opts         RawGeneratorOptions
		expectedMode rbac.RenderMode
		expectError  string
	}{
		{
			name:         "defaults",
			expectedMode: rbac.RenderModeStructured,
		},
		{
			name:         "legacy with namespace",
			opts:         RawGeneratorOptions{RenderMode: "legacy", Namespace: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
			expectedMode: rbac.RenderModeLegacy,
		},
		{
			name:        "unknown render mode",
			opts:        RawGeneratorOptions{RenderMode: "fancy"},
			expectError: "invalid --render-mode",
		},
		{
			name:        "invalid namespace",
			opts:        RawGeneratorOptions{Namespace: "not-a-uuid"},
			expectError: "invalid --namespace",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := tt.opts.Validate()
			if tt.expectError != "" {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)

			completed, err := validated.Complete()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMode, completed.Generator.RenderMode())
		})
	}
}

func TestServeOptionsValidate(t *testing.T) {
	tests := []struct {
		name         string
		port         string
		functionName string
		expectedPort int
		expectError  bool
	}{
		{
			name:         "default port",
			functionName: "rbacgenerator",
			expectedPort: defaultPort,
		},
		{
			name:         "explicit port",
			port:         "7071",
			functionName: "rbacgenerator",
			expectedPort: 7071,
		},
		{
			name:         "port out of range",
			port:         "70000",
			functionName: "rbacgenerator",
			expectError:  true,
		},
		{
			name:         "port not a number",
			port:         "http",
			functionName: "rbacgenerator",
			expectError:  true,
		},
		{
			name:        "empty function name",
			expectError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &RawServeOptions{
				GeneratorOptions: &RawGeneratorOptions{},
				Port:             tt.port,
				FunctionName:     tt.functionName,
			}

			validated, err := opts.Validate()
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPort, validated.port)
		})
	}
}

func TestDefaultServeOptionsFromEnvironment(t *testing.T) {
	t.Setenv(envCustomHandlerPort, "7071")
	t.Setenv(envFunctionName, "grant")
	t.Setenv(envRenderMode, "legacy")

	opts := DefaultServeOptions()
	assert.Equal(t, "7071", opts.Port)
	assert.Equal(t, "grant", opts.FunctionName)
	assert.Equal(t, "legacy", opts.GeneratorOptions.RenderMode)
}
