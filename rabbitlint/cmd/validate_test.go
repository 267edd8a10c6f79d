// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".coderabbit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestValidateEmptyReviews(t *testing.T) {
	path := writeConfig(t, "reviews: {}\n")
	var out bytes.Buffer

	code, err := runValidate(&out, path, "text")
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "Validating CodeRabbit configuration: "+path)
	require.Contains(t, out.String(), "✅ CodeRabbit YAML configuration is valid")
}

func TestValidateStringInstruction(t *testing.T) {
	path := writeConfig(t, "reviews:\n  labeling_instructions:\n    - bug\n")
	var out bytes.Buffer

	code, err := runValidate(&out, path, "text")
	require.NoError(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(),
		`  - Expected object, received string at "reviews.labeling_instructions[0]"`)
}

func TestValidateWellFormedInstruction(t *testing.T) {
	path := writeConfig(t, `
reviews:
  labeling_instructions:
    - label: bug
      instructions: x
`)
	var out bytes.Buffer

	code, err := runValidate(&out, path, "text")
	require.NoError(t, err)
	require.Equal(t, 0, code)
}

func TestValidateMistypedInstruction(t *testing.T) {
	path := writeConfig(t, "reviews:\n  labeling_instructions:\n    - instructions: 5\n")
	var out bytes.Buffer

	code, err := runValidate(&out, path, "text")
	require.NoError(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), `  - Missing 'label' field at "reviews.labeling_instructions[0]"`)
	require.Contains(t, out.String(), `  - 'instructions' must be a string at "reviews.labeling_instructions[0]"`)
}

func TestValidateMissingReviews(t *testing.T) {
	path := writeConfig(t, "language: en\n")
	var out bytes.Buffer

	code, err := runValidate(&out, path, "text")
	require.NoError(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "  - Missing 'reviews' section\n")
}

func TestValidateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".coderabbit.yaml")
	var out bytes.Buffer

	code, err := runValidate(&out, path, "text")
	require.NoError(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "file not found")
}

func TestValidateUnknownFormat(t *testing.T) {
	path := writeConfig(t, "reviews: {}\n")
	var out bytes.Buffer

	_, err := runValidate(&out, path, "xml")
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestValidateSarifOutput(t *testing.T) {
	path := writeConfig(t, "reviews:\n  labeling_instructions:\n    - bug\n")
	var out bytes.Buffer

	code, err := runValidate(&out, path, "sarif")
	require.NoError(t, err)
	require.Equal(t, 1, code)

	// stdout must be clean SARIF JSON, no banner mixed in.
	require.True(t, strings.HasPrefix(out.String(), "{"))
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	require.Equal(t, "2.1.0", payload["version"])
}

func TestValidateMarkdownOutput(t *testing.T) {
	path := writeConfig(t, "language: en\n")
	var out bytes.Buffer

	code, err := runValidate(&out, path, "markdown")
	require.NoError(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, out.String(), "Validation failed with 1 error(s)")
}
