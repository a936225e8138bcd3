// Package blueprint models declarative component-specification documents.
// A document is a tree of nodes; every node names a constructible target
// and carries the parameters its constructor expects. Nested mappings are
// themselves component specifications, built before their parent.
package blueprint

import (
	"strings"
)

// TargetKey is the mapping key naming the constructible type of a node.
const TargetKey = "_target_"

// Node is one component specification: a target name plus an ordered
// parameter list. Parameter order from the source document is preserved
// so re-serialization is stable.
type Node struct {
	Target string
	Params []Param
}

// Param is a single named parameter of a component specification.
type Param struct {
	Name  string
	Value Value
}

// ValueKind discriminates the three parameter value shapes.
type ValueKind string

const (
	KindScalar ValueKind = "scalar"
	KindList   ValueKind = "list"
	KindSpec   ValueKind = "component"
)

// Value is a parameter value: a Scalar leaf, a List of scalars, or a
// nested *Node component specification.
type Value interface {
	Kind() ValueKind
}

// Scalar is a leaf parameter value. Holds the value as resolved by the
// YAML parser: string, bool, int, or float64.
type Scalar struct {
	Value any
}

func (Scalar) Kind() ValueKind { return KindScalar }

// Bool returns the scalar as a bool when it holds one.
func (s Scalar) Bool() (bool, bool) {
	b, ok := s.Value.(bool)
	return b, ok
}

// Int returns the scalar as an int when it holds an integer.
func (s Scalar) Int() (int, bool) {
	switch v := s.Value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

// Float returns the scalar as a float64. Integers widen.
func (s Scalar) Float() (float64, bool) {
	switch v := s.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// List is a sequence parameter value. Elements are always scalars;
// nesting specs inside lists is a structural error at parse time.
type List []Scalar

func (List) Kind() ValueKind { return KindList }

func (*Node) Kind() ValueKind { return KindSpec }

// Param returns the named parameter value.
func (n *Node) Param(name string) (Value, bool) {
	for _, p := range n.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Child returns the named parameter when it is a nested component
// specification.
func (n *Node) Child(name string) (*Node, bool) {
	v, ok := n.Param(name)
	if !ok {
		return nil, false
	}
	child, ok := v.(*Node)
	return child, ok
}

// Scalar returns the named parameter when it is a scalar leaf.
func (n *Node) Scalar(name string) (Scalar, bool) {
	v, ok := n.Param(name)
	if !ok {
		return Scalar{}, false
	}
	s, ok := v.(Scalar)
	return s, ok
}

// Lookup walks a dot-separated path of parameter names, for example
// "image_module.backbone", and returns the value found at its end.
func (n *Node) Lookup(path string) (Value, bool) {
	if path == "" {
		return n, true
	}
	node := n
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		v, ok := node.Param(segment)
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		node, ok = v.(*Node)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// Equal reports whether two specification trees are identical: same
// targets, same parameters in the same order, same values.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Target != o.Target || len(n.Params) != len(o.Params) {
		return false
	}
	for i, p := range n.Params {
		q := o.Params[i]
		if p.Name != q.Name || !equalValue(p.Value, q.Value) {
			return false
		}
	}
	return true
}

func equalValue(a, b Value) bool {
	switch av := a.(type) {
	case Scalar:
		bv, ok := b.(Scalar)
		return ok && av.Value == bv.Value
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Value != bv[i].Value {
				return false
			}
		}
		return true
	case *Node:
		bv, ok := b.(*Node)
		return ok && av.Equal(bv)
	}
	return false
}

func describePath(path string) string {
	if path == "" {
		return "the root component"
	}
	return `"` + path + `"`
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
