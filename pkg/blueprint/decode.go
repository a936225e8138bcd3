package blueprint

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// DecodeParams decodes the node's scalar and list parameters into a
// typed struct. Nested component specifications are skipped; they are
// instantiated separately and handed to the constructor as children.
// Parameters with no matching field in out are an error, so constructor
// parameter sets stay closed.
func (n *Node) DecodeParams(out any) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range n.Params {
		if _, nested := p.Value.(*Node); nested {
			continue
		}
		valueNode, err := yamlValue(p.Value)
		if err != nil {
			return err
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Name},
			valueNode,
		)
	}

	buf, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(buf))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}
