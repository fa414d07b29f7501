// SPDX-License-Identifier: MIT

// Package matrix - YAML codec.
//
// A Matrix encodes as a sequence of H rows, each a flow sequence of W cells:
//
//	- [1, 2]
//	- [3, 4]
//
// Decoding checks the document against the static shape; any other row or
// column count is rejected with ErrDimensionMismatch. Cells decode with
// yaml.v3's rules for T's underlying kind, so F64 and unit types accept plain
// numbers.

package matrix

import (
	"gopkg.in/yaml.v3"
)

// Compile-time assertions for yaml.v3 codec conformance.
var (
	_ yaml.Marshaler   = Matrix[F64, D2, D2]{}
	_ yaml.Unmarshaler = (*Matrix[F64, D2, D2])(nil)
)

// MarshalYAML implements yaml.Marshaler.
func (m Matrix[T, W, H]) MarshalYAML() (interface{}, error) {
	rows := m.Rows()
	node := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		var r yaml.Node
		if err := r.Encode(row); err != nil {
			return nil, err
		}
		r.Style = yaml.FlowStyle
		node.Content = append(node.Content, &r)
	}

	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with the UnmarshalYAML op tag) on a wrong shape.
//   - yaml.v3 type errors for cells that do not decode into T.
func (m *Matrix[T, W, H]) UnmarshalYAML(value *yaml.Node) error {
	var rows [][]T
	if err := value.Decode(&rows); err != nil {
		return matrixErrorf(opYAML, err)
	}
	out, err := FromRows[T, W, H](rows)
	if err != nil {
		return matrixErrorf(opYAML, err)
	}
	*m = out

	return nil
}
