// Package assembly instantiates object graphs from component
// specification trees. A Registry maps target names to build functions;
// Assemble walks a tree depth first, building children before the
// component that contains them.
package assembly

import (
	"fmt"

	"github.com/SheLesTT/open-place-recognition/pkg/blueprint"
)

// Children holds the already-instantiated nested components of a node,
// keyed by parameter name.
type Children map[string]any

// Component returns the named child. The second result is false when
// the node had no nested specification under that name.
func (c Children) Component(name string) (any, bool) {
	v, ok := c[name]
	return v, ok
}

// BuildFunc constructs one component. Scalar and list parameters are
// read from the node; nested specifications arrive pre-built in
// children.
type BuildFunc func(node *blueprint.Node, children Children) (any, error)

// Registry maps target names to build functions. The zero value is not
// usable; construct with NewRegistry.
type Registry struct {
	builders map[string]BuildFunc
}

func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]BuildFunc)}
}

// Register adds a build function for a target name. Registering the
// same name twice is an error so a later registration cannot silently
// shadow an earlier one.
func (r *Registry) Register(target string, fn BuildFunc) error {
	if target == "" {
		return fmt.Errorf("target name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("build function for target %q must not be nil", target)
	}
	if _, exists := r.builders[target]; exists {
		return fmt.Errorf("target %q is already registered", target)
	}
	r.builders[target] = fn
	return nil
}

// MustRegister is Register for package-level wiring of a known-good
// target set.
func (r *Registry) MustRegister(target string, fn BuildFunc) {
	if err := r.Register(target, fn); err != nil {
		panic(err)
	}
}

// Resolve returns the build function for a target name.
func (r *Registry) Resolve(target string) (BuildFunc, error) {
	fn, ok := r.builders[target]
	if !ok {
		return nil, UnknownTargetError{Target: target}
	}
	return fn, nil
}

// Targets returns the registered target names in no particular order.
func (r *Registry) Targets() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}

// Assemble builds the object graph described by a specification tree.
// Every target in the tree is resolved before any component is
// constructed, so a resolution failure never leaves a partially built
// graph behind. Construction is all-or-nothing: the first builder
// error aborts the whole assembly.
func (r *Registry) Assemble(root *blueprint.Node) (any, error) {
	if root == nil {
		return nil, fmt.Errorf("no specification to assemble")
	}
	if err := r.resolveAll(root, ""); err != nil {
		return nil, err
	}
	return r.build(root, "")
}

func (r *Registry) resolveAll(node *blueprint.Node, path string) error {
	if _, err := r.Resolve(node.Target); err != nil {
		var unknown UnknownTargetError
		if asUnknownTarget(err, &unknown) {
			unknown.Path = path
			return unknown
		}
		return err
	}
	for _, p := range node.Params {
		child, ok := p.Value.(*blueprint.Node)
		if !ok {
			continue
		}
		if err := r.resolveAll(child, childPath(path, p.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) build(node *blueprint.Node, path string) (any, error) {
	children := make(Children)
	for _, p := range node.Params {
		childNode, ok := p.Value.(*blueprint.Node)
		if !ok {
			continue
		}
		child, err := r.build(childNode, childPath(path, p.Name))
		if err != nil {
			return nil, err
		}
		children[p.Name] = child
	}

	fn, err := r.Resolve(node.Target)
	if err != nil {
		return nil, err
	}

	component, err := fn(node, children)
	if err != nil {
		return nil, ParameterError{Path: path, Target: node.Target, Err: err}
	}
	return component, nil
}

func childPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
