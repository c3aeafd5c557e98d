package cmd

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/rbacgenerator/internal/api/arm"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/rbac"
	"github.com/Azure/ARO-HCP/rbacgenerator/internal/utils"
)

// Output formats of the generate command.
const (
	OutputTemplate   = "template"
	OutputDeployment = "deployment"
	OutputREST       = "rest"
)

var outputFormats = []string{OutputTemplate, OutputDeployment, OutputREST}

// prettyIndent is the indentation of --pretty output.
const prettyIndent = "  "

func DefaultGenerateOptions() *RawGenerateOptions {
	return &RawGenerateOptions{
		GeneratorOptions: DefaultGeneratorOptions(),
		Output:           OutputTemplate,
	}
}

func BindGenerateOptions(opts *RawGenerateOptions, cmd *cobra.Command) error {
	BindGeneratorOptions(opts.GeneratorOptions, cmd)
	cmd.Flags().StringVar(&opts.SubscriptionID, "subscription-id", opts.SubscriptionID, "subscription of the role assignment scope")
	cmd.Flags().StringVar(&opts.ResourceGroup, "resource-group", opts.ResourceGroup, "resource group of the role assignment scope")
	cmd.Flags().StringVar(&opts.RoleDefinitionID, "role-id", opts.RoleDefinitionID, "role definition ID to assign")
	cmd.Flags().StringVar(&opts.PrincipalID, "principal-id", opts.PrincipalID, "object ID of the principal the role is assigned to")
	cmd.Flags().StringVar(&opts.VMName, "vm-name", opts.VMName, "name of the VM the principal belongs to (accepted for compatibility, not used)")
	cmd.Flags().StringVar(&opts.Output, "output", opts.Output, fmt.Sprintf("output format, one of %v", outputFormats))
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", opts.Pretty, "indent the output")
	cmd.Flags().StringVar(&opts.OutputFile, "output-file", opts.OutputFile, "file to write the output to (default stdout)")

	if err := cmd.MarkFlagFilename("output-file"); err != nil {
		return fmt.Errorf("failed to mark flag %q as a file: %w", "output-file", err)
	}
	return nil
}

// RawGenerateOptions holds input values.
type RawGenerateOptions struct {
	GeneratorOptions *RawGeneratorOptions

	SubscriptionID   string
	ResourceGroup    string
	RoleDefinitionID string
	PrincipalID      string
	VMName           string

	Output     string
	Pretty     bool
	OutputFile string
}

// validatedGenerateOptions is a private wrapper that enforces a call of Validate() before Complete() can be invoked.
type validatedGenerateOptions struct {
	*RawGenerateOptions
	*ValidatedGeneratorOptions
}

type ValidatedGenerateOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*validatedGenerateOptions
}

// completedGenerateOptions is a private wrapper that enforces a call of Complete() before generation can be invoked.
type completedGenerateOptions struct {
	*GeneratorOptions
	Request rbac.RoleAssignmentRequest
	Output  string
	Pretty  bool

	// OutputFile is empty when writing to the command's standard output.
	OutputFile string
}

type GenerateOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package.
	*completedGenerateOptions
}

func (o *RawGenerateOptions) Validate() (*ValidatedGenerateOptions, error) {
	generatorOptions, err := o.GeneratorOptions.Validate()
	if err != nil {
		return nil, err
	}

	if !slices.Contains(outputFormats, o.Output) {
		return nil, fmt.Errorf("invalid --output %q, expected one of %v", o.Output, outputFormats)
	}

	return &ValidatedGenerateOptions{
		validatedGenerateOptions: &validatedGenerateOptions{
			RawGenerateOptions:        o,
			ValidatedGeneratorOptions: generatorOptions,
		},
	}, nil
}

func (o *ValidatedGenerateOptions) Complete() (*GenerateOptions, error) {
	generatorOptions, err := o.ValidatedGeneratorOptions.Complete()
	if err != nil {
		return nil, err
	}

	return &GenerateOptions{
		completedGenerateOptions: &completedGenerateOptions{
			GeneratorOptions: generatorOptions,
			Request: rbac.RoleAssignmentRequest{
				SubscriptionID:   o.SubscriptionID,
				ResourceGroup:    o.ResourceGroup,
				RoleDefinitionID: o.RoleDefinitionID,
				PrincipalID:      o.PrincipalID,
				VMName:           o.VMName,
			},
			Output:     o.Output,
			Pretty:     o.Pretty,
			OutputFile: o.OutputFile,
		},
	}, nil
}

func newGenerateCommand() *cobra.Command {
	opts := DefaultGenerateOptions()
	cmd := &cobra.Command{
		Use:   "generate",
		Args:  cobra.NoArgs,
		Short: "Generate a role assignment template",
		Long: `Generate a role assignment template

	Writes the same document the served trigger answers with. The deployment
	output wraps it into the body of an incremental resource group deployment,
	the rest output describes the equivalent role assignment PUT.

	# Generate a template granting a role on a resource group
	./rbacgenerator generate --subscription-id sub1 --resource-group rg1 \
		--role-id /subscriptions/sub1/providers/Microsoft.Authorization/roleDefinitions/b24988ac-6180-42a0-ab88-20f7382dd24c \
		--principal-id user1 --pretty
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			validated, err := opts.Validate()
			if err != nil {
				return err
			}
			completed, err := validated.Complete()
			if err != nil {
				return err
			}
			return completed.Run(cmd.Context(), utils.DefaultLogger(), cmd.OutOrStdout())
		},
	}
	if err := BindGenerateOptions(opts, cmd); err != nil {
		panic(err)
	}
	return cmd
}

// Run generates the document and writes it to the output file, or to
// stdout when none is set.
func (opts *GenerateOptions) Run(ctx context.Context, logger logr.Logger, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = utils.ContextWithLogger(ctx, logger)

	template, body, err := opts.Generator.GenerateTemplate(ctx, opts.Request)
	if err != nil {
		return fmt.Errorf("failed to generate template: %w", err)
	}

	var document any
	switch opts.Output {
	case OutputTemplate:
		document = template
	case OutputDeployment:
		document = template.Deployment()
	case OutputREST:
		document = template.Resources[0].RESTRequest()
	}

	var data []byte
	switch {
	case opts.Pretty:
		data, err = arm.MarshalIndent(document, prettyIndent)
	case opts.Output == OutputTemplate:
		data = body
	default:
		data, err = arm.MarshalCompact(document)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s output: %w", opts.Output, err)
	}
	data = append(data, '\n')

	if opts.OutputFile == "" {
		_, err = stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.OutputFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory for %s: %w", opts.OutputFile, err)
	}
	if err := os.WriteFile(opts.OutputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", opts.OutputFile, err)
	}
	return nil
}
