package blueprint

import (
	"fmt"
)

// Validate checks the structural invariants of a specification tree and
// accumulates every problem found rather than stopping at the first.
// Trees produced by Parse already hold these invariants; Validate also
// covers trees assembled in code.
func Validate(root *Node) []error {
	var result []error
	validateNode(root, "", 0, &result)
	if len(result) > 0 {
		return result
	}
	return nil
}

func validateNode(n *Node, path string, depth int, result *[]error) {
	if n == nil {
		*result = append(*result, fmt.Errorf("%s is nil", describePath(path)))
		return
	}
	if depth > maxNestingDepth {
		*result = append(*result, fmt.Errorf("specification nesting at %s exceeds %d levels", describePath(path), maxNestingDepth))
		return
	}
	if n.Target == "" {
		*result = append(*result, fmt.Errorf("missing %q at %s", TargetKey, describePath(path)))
	}

	seen := make(map[string]struct{}, len(n.Params))
	for _, p := range n.Params {
		if p.Name == "" {
			*result = append(*result, fmt.Errorf("parameter with empty name at %s", describePath(path)))
			continue
		}
		if _, dup := seen[p.Name]; dup {
			*result = append(*result, fmt.Errorf("duplicate parameter %q at %s", p.Name, describePath(path)))
			continue
		}
		seen[p.Name] = struct{}{}

		switch value := p.Value.(type) {
		case Scalar:
			if value.Value == nil {
				*result = append(*result, fmt.Errorf("parameter at %s has no value", describePath(childPath(path, p.Name))))
			}
		case List:
			for _, element := range value {
				if element.Value == nil {
					*result = append(*result, fmt.Errorf("list parameter at %s contains an empty element", describePath(childPath(path, p.Name))))
					break
				}
			}
		case *Node:
			validateNode(value, childPath(path, p.Name), depth+1, result)
		default:
			*result = append(*result, fmt.Errorf("parameter at %s has an unsupported value", describePath(childPath(path, p.Name))))
		}
	}
}
