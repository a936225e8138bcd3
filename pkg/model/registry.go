package model

import (
	"fmt"

	"github.com/SheLesTT/open-place-recognition/pkg/assembly"
	"github.com/SheLesTT/open-place-recognition/pkg/blueprint"
	"github.com/SheLesTT/open-place-recognition/pkg/dataset"
)

// NewRegistry returns an assembly registry populated with every
// constructible component this library ships. The registry stays open:
// callers may register additional targets next to the shipped set.
func NewRegistry() *assembly.Registry {
	registry := assembly.NewRegistry()

	registry.MustRegister("ResNet18FPNExtractor", buildResNet18FPNExtractor)
	registry.MustRegister("MinkResNetFPNExtractor", buildMinkResNetFPNExtractor)
	registry.MustRegister("GeM", buildGeM)
	registry.MustRegister("MinkGeM", buildMinkGeM)
	registry.MustRegister("Concat", buildConcat)
	registry.MustRegister("ImageModule", buildImageModule)
	registry.MustRegister("CloudModule", buildCloudModule)
	registry.MustRegister("ComposedModel", buildComposedModel)
	registry.MustRegister("PhystechCampus", buildPhystechCampus)

	return registry
}

func buildResNet18FPNExtractor(node *blueprint.Node, children assembly.Children) (any, error) {
	if err := rejectChildren(children); err != nil {
		return nil, err
	}
	var extractor ResNet18FPNExtractor
	if err := node.DecodeParams(&extractor); err != nil {
		return nil, err
	}
	if err := extractor.Validate(); err != nil {
		return nil, err
	}
	return extractor, nil
}

func buildMinkResNetFPNExtractor(node *blueprint.Node, children assembly.Children) (any, error) {
	if err := rejectChildren(children); err != nil {
		return nil, err
	}
	var extractor MinkResNetFPNExtractor
	if err := node.DecodeParams(&extractor); err != nil {
		return nil, err
	}
	if err := extractor.Validate(); err != nil {
		return nil, err
	}
	return extractor, nil
}

func buildGeM(node *blueprint.Node, children assembly.Children) (any, error) {
	if err := rejectChildren(children); err != nil {
		return nil, err
	}
	var params struct {
		P   float64 `yaml:"p"`
		Eps float64 `yaml:"eps"`
	}
	if err := node.DecodeParams(&params); err != nil {
		return nil, err
	}
	head := NewGeM(params.P, params.Eps)
	if err := head.Validate(); err != nil {
		return nil, err
	}
	return head, nil
}

func buildMinkGeM(node *blueprint.Node, children assembly.Children) (any, error) {
	if err := rejectChildren(children); err != nil {
		return nil, err
	}
	var params struct {
		P   float64 `yaml:"p"`
		Eps float64 `yaml:"eps"`
	}
	if err := node.DecodeParams(&params); err != nil {
		return nil, err
	}
	head := NewMinkGeM(params.P, params.Eps)
	if err := head.Validate(); err != nil {
		return nil, err
	}
	return head, nil
}

func buildConcat(node *blueprint.Node, children assembly.Children) (any, error) {
	if len(node.Params) > 0 {
		return nil, fmt.Errorf("Concat takes no parameters, got %q", node.Params[0].Name)
	}
	_ = children
	return Concat{}, nil
}

func buildImageModule(node *blueprint.Node, children assembly.Children) (any, error) {
	if err := node.DecodeParams(&struct{}{}); err != nil {
		return nil, err
	}
	backbone, err := childAs[ImageBackbone](children, "backbone")
	if err != nil {
		return nil, err
	}
	head, err := childAs[ImageHead](children, "head")
	if err != nil {
		return nil, err
	}
	return NewImageModule(backbone, head)
}

func buildCloudModule(node *blueprint.Node, children assembly.Children) (any, error) {
	if err := node.DecodeParams(&struct{}{}); err != nil {
		return nil, err
	}
	backbone, err := childAs[CloudBackbone](children, "backbone")
	if err != nil {
		return nil, err
	}
	head, err := childAs[CloudHead](children, "head")
	if err != nil {
		return nil, err
	}
	return NewCloudModule(backbone, head)
}

func buildComposedModel(node *blueprint.Node, children assembly.Children) (any, error) {
	if err := node.DecodeParams(&struct{}{}); err != nil {
		return nil, err
	}
	image, err := childAs[*ImageModule](children, "image_module")
	if err != nil {
		return nil, err
	}
	cloud, err := childAs[*CloudModule](children, "cloud_module")
	if err != nil {
		return nil, err
	}
	fusion, err := childAs[Fusion](children, "fusion_module")
	if err != nil {
		return nil, err
	}
	return NewComposedModel(image, cloud, fusion)
}

func buildPhystechCampus(node *blueprint.Node, children assembly.Children) (any, error) {
	if err := rejectChildren(children); err != nil {
		return nil, err
	}
	var config dataset.Config
	if err := node.DecodeParams(&config); err != nil {
		return nil, err
	}
	config.ApplyDefaults()
	if errs := config.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}
	return config, nil
}

func rejectChildren(children assembly.Children) error {
	for name := range children {
		return fmt.Errorf("unexpected nested component %q", name)
	}
	return nil
}

func childAs[T any](children assembly.Children, name string) (T, error) {
	var zero T
	component, ok := children.Component(name)
	if !ok {
		return zero, fmt.Errorf("missing required component %q", name)
	}
	typed, ok := component.(T)
	if !ok {
		return zero, fmt.Errorf("component %q is a %T, which cannot serve as %s", name, component, componentRole(name))
	}
	return typed, nil
}

func componentRole(name string) string {
	switch name {
	case "backbone":
		return "a backbone for this modality"
	case "head":
		return "a pooling head for this modality"
	case "image_module", "cloud_module":
		return "a modality branch"
	case "fusion_module":
		return "a fusion step"
	}
	return "this component"
}
