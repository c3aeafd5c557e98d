package cmd

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/rbac"
)

const envRenderMode = "RBACGENERATOR_RENDER_MODE"

func DefaultGeneratorOptions() *RawGeneratorOptions {
	return &RawGeneratorOptions{
		RenderMode: os.Getenv(envRenderMode),
	}
}

func BindGeneratorOptions(opts *RawGeneratorOptions, cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.RenderMode, "render-mode", opts.RenderMode,
		fmt.Sprintf("how templates are rendered, one of %v (default %q, env %s)", rbac.RenderModes, rbac.RenderModeStructured, envRenderMode))
	cmd.Flags().StringVar(&opts.Namespace, "namespace", opts.Namespace,
		"UUID namespace role assignment names are derived in (default the RFC 4122 URL namespace)")
}

// RawGeneratorOptions holds input values.
type RawGeneratorOptions struct {
	RenderMode string
	Namespace  string
}

// validatedGeneratorOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedGeneratorOptions struct {
	renderMode rbac.RenderMode
	namespace  uuid.UUID
}

type ValidatedGeneratorOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedGeneratorOptions
}

// completedGeneratorOptions is a private wrapper that enforces a call of Complete() before the generator can be used.
type completedGeneratorOptions struct {
	Generator *rbac.Generator
}

type GeneratorOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedGeneratorOptions
}

func (o *RawGeneratorOptions) Validate() (*ValidatedGeneratorOptions, error) {
	renderMode, err := rbac.ParseRenderMode(o.RenderMode)
	if err != nil {
		return nil, fmt.Errorf("invalid --render-mode: %w", err)
	}

	namespace := uuid.NameSpaceURL
	if o.Namespace != "" {
		namespace, err = uuid.Parse(o.Namespace)
		if err != nil {
			return nil, fmt.Errorf("invalid --namespace %q: %w", o.Namespace, err)
		}
	}

	return &ValidatedGeneratorOptions{
		validatedGeneratorOptions: &validatedGeneratorOptions{
			renderMode: renderMode,
			namespace:  namespace,
		},
	}, nil
}

func (o *ValidatedGeneratorOptions) Complete() (*GeneratorOptions, error) {
	return &GeneratorOptions{
		completedGeneratorOptions: &completedGeneratorOptions{
			Generator: rbac.NewGenerator(rbac.NewNamespaceNamer(o.namespace), o.renderMode),
		},
	}, nil
}
