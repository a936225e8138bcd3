// Package report renders a model card for an assembled model: one
// markdown document describing the component tree, descriptor widths,
// pinned pretrained checkpoints, and the configuration revision it was
// built from.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/SheLesTT/open-place-recognition/pkg/blueprint"
	"github.com/SheLesTT/open-place-recognition/pkg/weights"
)

type Data struct {
	GeneratedAt time.Time
	ConfigPath  string
	ConfigSHA   string

	ImageDescriptorDim int
	CloudDescriptorDim int
	DescriptorDim      int

	Components  []Component
	Checkpoints []weights.CheckpointLock
}

// Component is one node of the model tree, flattened for rendering.
type Component struct {
	Path   string
	Target string
	Params []ParamValue
}

type ParamValue struct {
	Name  string
	Value string
}

func (data Data) WriteModelCard() (string, error) {
	cardTemplate, err := DefaultTemplateFunctions(template.New("")).Parse(DefaultTemplate())
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Describe flattens a model tree into components in document order.
// Nested component parameters become their own entries; only scalar and
// list parameters stay on the node that declares them.
func Describe(root *blueprint.Node) []Component {
	var components []Component
	describeNode(root, "model", &components)
	return components
}

func describeNode(n *blueprint.Node, path string, components *[]Component) {
	component := Component{Path: path, Target: n.Target}
	for _, param := range n.Params {
		switch v := param.Value.(type) {
		case blueprint.Scalar:
			component.Params = append(component.Params, ParamValue{Name: param.Name, Value: renderScalar(v)})
		case blueprint.List:
			component.Params = append(component.Params, ParamValue{Name: param.Name, Value: renderList(v)})
		}
	}
	*components = append(*components, component)

	for _, param := range n.Params {
		if child, ok := param.Value.(*blueprint.Node); ok {
			describeNode(child, path+"."+param.Name, components)
		}
	}
}

func renderScalar(s blueprint.Scalar) string {
	out, err := yaml.Marshal(s.Value)
	if err != nil {
		return fmt.Sprintf("%v", s.Value)
	}
	return strings.TrimRight(string(out), "\n")
}

func renderList(list blueprint.List) string {
	elements := make([]string, 0, len(list))
	for _, s := range list {
		elements = append(elements, renderScalar(s))
	}
	return "[" + strings.Join(elements, ", ") + "]"
}
