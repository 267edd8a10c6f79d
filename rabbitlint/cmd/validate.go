// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rabbitlint/rabbitlint/pkg/constants"
	"github.com/rabbitlint/rabbitlint/pkg/loader"
	"github.com/rabbitlint/rabbitlint/pkg/report"
	"github.com/rabbitlint/rabbitlint/pkg/sarif"
	"github.com/rabbitlint/rabbitlint/pkg/schema"
)

var validateFormat string

func init() {
	validatecmd.Flags().StringVarP(&validateFormat, "format", "o", "text", "Output format: text, markdown, or sarif")

	// Bind flags to viper
	mustBindPFlag("format", validatecmd.Flags().Lookup("format"))
}

func Validate() *cobra.Command {
	validatecmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path := constants.DefaultConfigFilename
		if len(args) > 0 {
			path = args[0]
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}

		code, err := runValidate(os.Stdout, path, validateFormat)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	}

	return validatecmd
}

var validatecmd = &cobra.Command{
	Use:   "validate [path]",
	Short: fmt.Sprintf("Validate a CodeRabbit config file (default: %s)", constants.DefaultConfigFilename),
	Long: fmt.Sprintf(`Validate a CodeRabbit configuration file against the expected schema.

Checks the reviews section, in particular reviews.labeling_instructions:
each entry must be an object with a string 'label' and a string
'instructions' of at most %d characters.

Exits 0 when the configuration is valid and 1 on any validation or load
failure.`, constants.MaxInstructionChars),
	Args: cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		// Update from viper (this gets env vars + flags)
		validateFormat = viper.GetString("format")
	},
}

// runValidate performs one load-validate-present pass and returns the
// process exit code. For SARIF output the banner and fatal messages go to
// stderr so stdout stays machine-readable.
func runValidate(stdout io.Writer, path, format string) (int, error) {
	switch format {
	case "text", "markdown", "sarif":
	default:
		return 0, fmt.Errorf("unknown format %q (expected text, markdown, or sarif)", format)
	}

	infoW := stdout
	if format == "sarif" {
		infoW = os.Stderr
	}
	report.Banner(infoW, path)

	doc, err := loader.Load(path)
	if err != nil {
		return report.Fatal(infoW, err), nil
	}

	errs := schema.Validate(doc)

	switch format {
	case "sarif":
		out, err := sarif.ConvertToSARIF(path, errs)
		if err != nil {
			return 0, err
		}
		fmt.Fprint(stdout, out)
		fmt.Fprintln(stdout)
	case "markdown":
		fmt.Fprint(stdout, report.RenderMarkdown(report.BuildMarkdown(path, errs)))
	default:
		return report.Present(stdout, errs), nil
	}

	if len(errs) > 0 {
		return 1, nil
	}
	return 0, nil
}
