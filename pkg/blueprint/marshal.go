package blueprint

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML re-serializes a specification tree. The target key is
// always emitted first, then parameters in their original order, so
// Parse followed by Marshal followed by Parse yields an identical tree.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode()
}

func (n *Node) yamlNode() (*yaml.Node, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	out.Content = append(out.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: TargetKey},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Target},
	)
	for _, p := range n.Params {
		valueNode, err := yamlValue(p.Value)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal parameter %q: %w", p.Name, err)
		}
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name},
			valueNode,
		)
	}
	return out, nil
}

func yamlValue(v Value) (*yaml.Node, error) {
	switch value := v.(type) {
	case Scalar:
		return yamlScalar(value)
	case List:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, element := range value {
			node, err := yamlScalar(element)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, node)
		}
		return out, nil
	case *Node:
		return value.yamlNode()
	default:
		return nil, fmt.Errorf("unsupported value kind %T", v)
	}
}

func yamlScalar(s Scalar) (*yaml.Node, error) {
	var node yaml.Node
	if err := node.Encode(s.Value); err != nil {
		return nil, err
	}
	return &node, nil
}
