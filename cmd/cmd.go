package cmd

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/version"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rbacgenerator",
		Short:        "Generate ARM role assignment templates",
		Version:      version.CommitSHA,
		SilenceUsage: true,
		Long: `Generate ARM role assignment templates

	Produces an ARM deployment template with a single role assignment
	granting a role on a resource group to a principal. The assignment name
	is a version 5 UUID derived from the principal ID, so repeated
	deployments address the same assignment.
`,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}
