// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// NotFoundError reports that the configuration file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// ParseError reports that the file content is not a valid YAML mapping.
// It wraps the underlying yaml.v3 error.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("YAML syntax error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a configuration file and decodes it into an untyped document
// tree. The two failure kinds are distinguishable by type: *NotFoundError
// when the path does not exist, *ParseError when the content cannot be
// decoded as a mapping. Both are fatal to the caller and never reach the
// schema validator.
//
// An empty file yields a nil map, which the validator treats as a document
// with no keys.
func Load(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	log.Debugf("loaded %s (%d bytes, %d top-level keys)", path, len(data), len(doc))
	return doc, nil
}
