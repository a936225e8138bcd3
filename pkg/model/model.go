// Package model declares the constructible components of a multimodal
// place-recognition network and the descriptor-width algebra that ties
// them together. The numerical layers themselves live in the model
// library that consumes an assembled graph; components here carry
// configuration only.
package model

import (
	"errors"
	"fmt"
)

// DenseComponent and SparseComponent are modality markers. Image and
// cloud interfaces would otherwise be structurally identical, and a
// sparse pooling head could silently be mounted on the dense branch.
type (
	DenseComponent interface{ DenseModality() }

	SparseComponent interface{ SparseModality() }
)

// ImageBackbone extracts dense features from 2D imagery.
type ImageBackbone interface {
	DenseComponent

	// OutputDim is the channel width of the extracted feature map.
	OutputDim() int
}

// CloudBackbone extracts sparse features from 3D point clouds.
type CloudBackbone interface {
	SparseComponent
	OutputDim() int
}

// ImageHead pools a dense feature map into a fixed-length descriptor.
type ImageHead interface {
	DenseComponent

	// DescriptorDim is the descriptor width produced from a feature map
	// with the given channel count.
	DescriptorDim(channels int) int
}

// CloudHead pools a sparse feature tensor into a fixed-length descriptor.
type CloudHead interface {
	SparseComponent
	DescriptorDim(channels int) int
}

// Fusion combines the two modality descriptors into one.
type Fusion interface {
	DescriptorDim(imageDim, cloudDim int) int
	Name() string
}

// PretrainedLoader is implemented by components that initialize from
// externally supplied weights rather than random initialization. The
// returned name keys into the checkpoint lock.
type PretrainedLoader interface {
	PretrainedCheckpoint() (name string, ok bool)
}

// ImageModule is the 2D branch: a backbone feeding a pooling head.
type ImageModule struct {
	Backbone ImageBackbone
	Head     ImageHead
}

func NewImageModule(backbone ImageBackbone, head ImageHead) (*ImageModule, error) {
	if backbone == nil {
		return nil, errors.New("image module requires a backbone")
	}
	if head == nil {
		return nil, errors.New("image module requires a head")
	}
	return &ImageModule{Backbone: backbone, Head: head}, nil
}

func (m *ImageModule) DescriptorDim() int {
	return m.Head.DescriptorDim(m.Backbone.OutputDim())
}

// CloudModule is the 3D branch: a sparse backbone feeding a pooling head.
type CloudModule struct {
	Backbone CloudBackbone
	Head     CloudHead
}

func NewCloudModule(backbone CloudBackbone, head CloudHead) (*CloudModule, error) {
	if backbone == nil {
		return nil, errors.New("cloud module requires a backbone")
	}
	if head == nil {
		return nil, errors.New("cloud module requires a head")
	}
	return &CloudModule{Backbone: backbone, Head: head}, nil
}

func (m *CloudModule) DescriptorDim() int {
	return m.Head.DescriptorDim(m.Backbone.OutputDim())
}

// ComposedModel is the full network: one branch per modality and a
// fusion step joining their descriptors.
type ComposedModel struct {
	Image  *ImageModule
	Cloud  *CloudModule
	Fusion Fusion
}

func NewComposedModel(image *ImageModule, cloud *CloudModule, fusion Fusion) (*ComposedModel, error) {
	if image == nil {
		return nil, errors.New("composed model requires an image_module")
	}
	if cloud == nil {
		return nil, errors.New("composed model requires a cloud_module")
	}
	if fusion == nil {
		return nil, errors.New("composed model requires a fusion_module")
	}
	return &ComposedModel{Image: image, Cloud: cloud, Fusion: fusion}, nil
}

// DescriptorDim is the width of the joint descriptor.
func (m *ComposedModel) DescriptorDim() int {
	return m.Fusion.DescriptorDim(m.Image.DescriptorDim(), m.Cloud.DescriptorDim())
}

// PretrainedCheckpoints lists the checkpoint names the model's
// components expect to initialize from.
func (m *ComposedModel) PretrainedCheckpoints() []string {
	var names []string
	for _, component := range []any{m.Image.Backbone, m.Image.Head, m.Cloud.Backbone, m.Cloud.Head, m.Fusion} {
		loader, ok := component.(PretrainedLoader)
		if !ok {
			continue
		}
		if name, ok := loader.PretrainedCheckpoint(); ok {
			names = append(names, name)
		}
	}
	return names
}

func positive(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, value)
	}
	return nil
}

func nonNegative(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must not be negative, got %d", name, value)
	}
	return nil
}
