// Copyright 2024 The vibin Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vibin

import "fmt"

// VarRec is one node of the variable-length record tree that underlies a
// VS_VERSIONINFO blob. A node owns its value buffer and its children;
// parent is a non-owning back reference used only for structural checks
// and is nil for the root.
type VarRec struct {
	dialect  Dialect
	name     string
	dataType DataType
	value    []byte
	children []*VarRec
	parent   *VarRec

	// wLength holds the record length last read by readVarRec or
	// computed by WriteTo.
	wLength uint16
}

func newVarRec(dialect Dialect, name string, dataType DataType, parent *VarRec) *VarRec {
	return &VarRec{
		dialect:  dialect,
		name:     name,
		dataType: dataType,
		parent:   parent,
	}
}

// Dialect returns the dialect of the tree this node belongs to.
func (n *VarRec) Dialect() Dialect { return n.dialect }

// Name returns the node's key.
func (n *VarRec) Name() string { return n.name }

// SetName renames the node.
func (n *VarRec) SetName(name string) { n.name = name }

// DataType returns Binary or Text.
func (n *VarRec) DataType() DataType { return n.dataType }

// SetDataType changes the node's data type.
func (n *VarRec) SetDataType(dt DataType) { n.dataType = dt }

// Value returns the node's raw value payload, or nil if it has none.
func (n *VarRec) Value() []byte { return n.value }

// SetValue replaces the node's value payload.
func (n *VarRec) SetValue(v []byte) { n.value = v }

// Parent returns the node's parent, or nil for the root.
func (n *VarRec) Parent() *VarRec { return n.parent }

// ChildCount returns the number of direct children.
func (n *VarRec) ChildCount() int { return len(n.children) }

// ChildAt returns the i-th child.
func (n *VarRec) ChildAt(i int) (*VarRec, error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("child %d of %q: %w", i, n.name, ErrIndexOutOfBounds)
	}
	return n.children[i], nil
}

// FindChild returns the first direct child whose name case-insensitively
// (ASCII fold) matches name.
func (n *VarRec) FindChild(name string) (*VarRec, bool) {
	for _, c := range n.children {
		if asciiEqualFold(c.name, name) {
			return c, true
		}
	}
	return nil, false
}

// IndexOfChild returns the index of the first direct child whose name
// case-insensitively matches name, or -1 if none does.
func (n *VarRec) IndexOfChild(name string) int {
	for i, c := range n.children {
		if asciiEqualFold(c.name, name) {
			return i
		}
	}
	return -1
}

// AddChild appends a new child with the given name and data type,
// inheriting this node's dialect, and returns it. Wire order equals
// insertion order.
func (n *VarRec) AddChild(name string, dataType DataType) *VarRec {
	c := newVarRec(n.dialect, name, dataType, n)
	n.children = append(n.children, c)
	return c
}

// findOrCreateChild returns the existing child matching name, creating an
// empty one (with the given data type) if none exists.
func (n *VarRec) findOrCreateChild(name string, dataType DataType) *VarRec {
	if c, ok := n.FindChild(name); ok {
		return c
	}
	return n.AddChild(name, dataType)
}

// RemoveChildAt unlinks and drops the i-th child.
func (n *VarRec) RemoveChildAt(i int) error {
	if i < 0 || i >= len(n.children) {
		return fmt.Errorf("child %d of %q: %w", i, n.name, ErrIndexOutOfBounds)
	}
	n.children[i].parent = nil
	n.children = append(n.children[:i], n.children[i+1:]...)
	return nil
}
