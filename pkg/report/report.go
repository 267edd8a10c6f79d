// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rabbitlint/rabbitlint/pkg/schema"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// Banner prints the validation banner naming the resolved file path. It is
// printed before loading, so it also precedes fatal load failures.
func Banner(w io.Writer, path string) {
	fmt.Fprintf(w, "Validating CodeRabbit configuration: %s\n", path)
}

// Present prints the validation outcome and returns the process exit code:
// 0 when there are no violations, 1 otherwise. Errors are printed one per
// bullet, in the order the validator produced them.
func Present(w io.Writer, errs []schema.Error) int {
	if len(errs) == 0 {
		green.Fprintln(w, "✅ CodeRabbit YAML configuration is valid")
		return 0
	}

	red.Fprintln(w, "\n❌ Validation failed with the following errors:")
	for _, e := range errs {
		fmt.Fprintf(w, "  - %s\n", e.Text)
	}
	return 1
}

// Fatal prints a loader failure. These bypass schema validation entirely and
// always exit non-zero.
func Fatal(w io.Writer, err error) int {
	red.Fprintf(w, "❌ %v\n", err)
	return 1
}
