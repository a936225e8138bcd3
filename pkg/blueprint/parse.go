package blueprint

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// maxNestingDepth bounds specification trees. The document format has no
// references, so a depth bound is the acyclicity guard.
const maxNestingDepth = 32

// Parse decodes an indentation-nested YAML mapping into a specification
// tree. Structural problems surface here, before any instantiation:
// non-mapping nodes where a specification is expected, missing or
// non-string targets, duplicate parameters, and YAML anchors, aliases,
// or merge keys, which the format rejects outright.
func Parse(r io.Reader) (*Node, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}

	var document yaml.Node
	if err := yaml.Unmarshal(buf, &document); err != nil {
		return nil, fmt.Errorf("malformed configuration document: %w", err)
	}
	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, errors.New("configuration document is empty")
	}

	return parseNode(document.Content[0], "", 0)
}

func parseNode(node *yaml.Node, path string, depth int) (*Node, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("specification nesting at %s exceeds %d levels", describePath(path), maxNestingDepth)
	}
	if node.Kind == yaml.AliasNode || node.Anchor != "" {
		return nil, aliasError(path)
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected %s to be a mapping", describePath(path))
	}

	spec := new(Node)
	seen := make(map[string]struct{}, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Value == "<<" || keyNode.Tag == "!!merge" {
			return nil, fmt.Errorf("merge keys are not allowed in specification documents (found at %s)", describePath(path))
		}
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parameter names at %s must be plain strings", describePath(path))
		}
		name := keyNode.Value

		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate parameter %q at %s", name, describePath(path))
		}
		seen[name] = struct{}{}

		if name == TargetKey {
			if valueNode.Kind != yaml.ScalarNode || valueNode.Tag != "!!str" {
				return nil, fmt.Errorf("target at %s must be a string", describePath(path))
			}
			if valueNode.Value == "" {
				return nil, fmt.Errorf("target at %s is empty", describePath(path))
			}
			spec.Target = valueNode.Value
			continue
		}

		value, err := parseValue(valueNode, childPath(path, name), depth)
		if err != nil {
			return nil, err
		}
		spec.Params = append(spec.Params, Param{Name: name, Value: value})
	}

	if spec.Target == "" {
		return nil, fmt.Errorf("missing %q at %s", TargetKey, describePath(path))
	}

	return spec, nil
}

func parseValue(node *yaml.Node, path string, depth int) (Value, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return parseNode(node, path, depth+1)
	case yaml.SequenceNode:
		list := make(List, 0, len(node.Content))
		for _, element := range node.Content {
			if element.Kind == yaml.AliasNode {
				return nil, aliasError(path)
			}
			if element.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("list parameter at %s may contain only scalars", describePath(path))
			}
			scalar, err := parseScalar(element, path)
			if err != nil {
				return nil, err
			}
			list = append(list, scalar)
		}
		return list, nil
	case yaml.ScalarNode:
		return parseScalar(node, path)
	case yaml.AliasNode:
		return nil, aliasError(path)
	default:
		return nil, fmt.Errorf("unsupported value at %s", describePath(path))
	}
}

func parseScalar(node *yaml.Node, path string) (Scalar, error) {
	var value any
	if err := node.Decode(&value); err != nil {
		return Scalar{}, fmt.Errorf("unable to decode scalar at %s: %w", describePath(path), err)
	}
	if value == nil {
		return Scalar{}, fmt.Errorf("parameter at %s has no value", describePath(path))
	}
	return Scalar{Value: value}, nil
}

func aliasError(path string) error {
	return fmt.Errorf("anchors and aliases are not allowed in specification documents (found at %s)", describePath(path))
}
