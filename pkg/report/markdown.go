// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/rabbitlint/rabbitlint/pkg/schema"
)

// BuildMarkdown renders the validation outcome as a markdown report.
func BuildMarkdown(path string, errs []schema.Error) string {
	var b strings.Builder

	b.WriteString("# CodeRabbit configuration report\n\n")
	fmt.Fprintf(&b, "**File:** `%s`\n\n", path)

	if len(errs) == 0 {
		b.WriteString("✅ Configuration is valid.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "❌ Validation failed with %d error(s):\n\n", len(errs))
	for _, e := range errs {
		fmt.Fprintf(&b, "- %s\n", e.Text)
	}
	return b.String()
}

// RenderMarkdown renders a markdown report for the terminal. When the
// renderer cannot be set up or fails, the raw markdown is returned so the
// report is never lost.
func RenderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}

	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return rendered
}
