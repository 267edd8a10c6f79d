// Copyright (c) rabbitlint contributors
// SPDX-License-Identifier: MIT

package schema

import "fmt"

// kind tags a decoded YAML value with its shape so rules can dispatch on an
// explicit variant instead of re-probing types at every check site.
type kind int

const (
	kindString kind = iota
	kindMapping
	kindSequence
	kindScalar // numbers, booleans, null, anything else
)

// node is a decoded YAML value paired with its kind tag. Exactly one of the
// payload fields is meaningful for a given kind; typeName is always set to
// the friendly name used in error messages.
type node struct {
	kind     kind
	str      string
	mapping  map[string]interface{}
	sequence []interface{}
	typeName string
}

// classify wraps a value decoded by yaml.v3 in a tagged node.
func classify(v interface{}) node {
	switch t := v.(type) {
	case string:
		return node{kind: kindString, str: t, typeName: "string"}
	case map[string]interface{}:
		return node{kind: kindMapping, mapping: t, typeName: "object"}
	case []interface{}:
		return node{kind: kindSequence, sequence: t, typeName: "list"}
	case nil:
		return node{kind: kindScalar, typeName: "null"}
	case bool:
		return node{kind: kindScalar, typeName: "bool"}
	case int, int64, uint64:
		return node{kind: kindScalar, typeName: "int"}
	case float64:
		return node{kind: kindScalar, typeName: "float"}
	default:
		return node{kind: kindScalar, typeName: fmt.Sprintf("%T", v)}
	}
}
