// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"unicode/utf8"

	"github.com/apex/log"

	"github.com/rabbitlint/rabbitlint/pkg/constants"
)

// Error is a single schema violation. Text carries the full human-readable
// message, including the locator where the rule names one; Path carries the
// locator on its own for machine renderings such as SARIF.
type Error struct {
	Path string
	Text string
}

func (e Error) String() string {
	return e.Text
}

// Validate checks a parsed CodeRabbit configuration document against the
// expected shape of the reviews section and returns every violation found,
// in rule order. The document is never mutated; violations are returned as
// data, never as a Go error.
//
// The only checks that stop the pass early are the document-level ones: a
// missing reviews section, or a reviews value that is not a mapping. Every
// other rule accumulates independently.
func Validate(doc map[string]interface{}) []Error {
	var errs []Error

	reviewsVal, ok := doc["reviews"]
	if !ok {
		return append(errs, Error{Text: "Missing 'reviews' section"})
	}

	reviews := classify(reviewsVal)
	if reviews.kind != kindMapping {
		return append(errs, Error{Text: "'reviews' must be a mapping"})
	}

	// labeling_instructions is optional; only check it when present.
	if instructionsVal, ok := reviews.mapping["labeling_instructions"]; ok {
		instructions := classify(instructionsVal)
		if instructions.kind != kindSequence {
			errs = append(errs, Error{Text: "'reviews.labeling_instructions' must be a list"})
		} else {
			for i, item := range instructions.sequence {
				path := fmt.Sprintf("reviews.labeling_instructions[%d]", i)
				errs = append(errs, checkInstruction(path, classify(item))...)
			}
		}
	}

	// Additional validations can be added here, e.g. auto_review structure.

	log.Debugf("schema validation finished with %d violation(s)", len(errs))
	return errs
}

// checkInstruction validates one element of labeling_instructions.
func checkInstruction(path string, n node) []Error {
	switch n.kind {
	case kindString:
		// A bare string is the most common authoring mistake, so it gets a
		// more specific message than other invalid element types.
		return []Error{{
			Path: path,
			Text: fmt.Sprintf("Expected object, received string at %q", path),
		}}

	case kindMapping:
		var errs []Error

		if label, ok := n.mapping["label"]; !ok {
			errs = append(errs, Error{
				Path: path,
				Text: fmt.Sprintf("Missing 'label' field at %q", path),
			})
		} else if classify(label).kind != kindString {
			errs = append(errs, Error{
				Path: path,
				Text: fmt.Sprintf("'label' must be a string at %q", path),
			})
		}

		guidance, ok := n.mapping["instructions"]
		if !ok {
			errs = append(errs, Error{
				Path: path,
				Text: fmt.Sprintf("Missing 'instructions' field at %q", path),
			})
			return errs
		}
		g := classify(guidance)
		switch {
		case g.kind != kindString:
			errs = append(errs, Error{
				Path: path,
				Text: fmt.Sprintf("'instructions' must be a string at %q", path),
			})
		case utf8.RuneCountInString(g.str) > constants.MaxInstructionChars:
			errs = append(errs, Error{
				Path: path,
				Text: fmt.Sprintf("'instructions' exceeds %d character limit at %q",
					constants.MaxInstructionChars, path),
			})
		}
		return errs

	default: // kindSequence, kindScalar
		return []Error{{
			Path: path,
			Text: fmt.Sprintf("Invalid type at %q: expected object, got %s", path, n.typeName),
		}}
	}
}
