// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package constants

const (
	// DefaultConfigFilename is the config file validated when no path is given
	DefaultConfigFilename = ".coderabbit.yaml"

	// MaxInstructionChars is the character limit CodeRabbit enforces on the
	// free-text guidance of a labeling instruction
	MaxInstructionChars = 3000

	// ProjectURL is the rabbitlint project home, referenced from SARIF output
	ProjectURL = "https://github.com/rabbitlint/rabbitlint"
)
