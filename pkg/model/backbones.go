package model

import (
	"fmt"
)

// CheckpointResNet18ImageNet names the pretrained weights the image
// backbone loads when its pretrained parameter is set.
const CheckpointResNet18ImageNet = "resnet18-imagenet"

// ResNet18FPNExtractor configures a ResNet-18 based feature-pyramid
// extractor for the image branch.
type ResNet18FPNExtractor struct {
	// LateralDim is the channel width of the pyramid's lateral merge path.
	LateralDim int `yaml:"lateral_dim"`

	// NumBottomUp is how many bottom-up stages of the base network are kept.
	NumBottomUp int `yaml:"fh_num_bottom_up"`

	// NumTopDown is how many top-down upsampling stages are added on top.
	NumTopDown int `yaml:"fh_num_top_down"`

	// Pretrained selects ImageNet initialization over random weights.
	Pretrained bool `yaml:"pretrained"`
}

// resNet18StageCount is the number of residual stages in ResNet-18.
const resNet18StageCount = 4

func (e ResNet18FPNExtractor) Validate() error {
	if err := positive("lateral_dim", e.LateralDim); err != nil {
		return err
	}
	if err := nonNegative("fh_num_bottom_up", e.NumBottomUp); err != nil {
		return err
	}
	if e.NumBottomUp > resNet18StageCount {
		return fmt.Errorf("fh_num_bottom_up must not exceed %d, got %d", resNet18StageCount, e.NumBottomUp)
	}
	if err := nonNegative("fh_num_top_down", e.NumTopDown); err != nil {
		return err
	}
	if e.NumTopDown > e.NumBottomUp {
		return fmt.Errorf("fh_num_top_down (%d) must not exceed fh_num_bottom_up (%d)", e.NumTopDown, e.NumBottomUp)
	}
	return nil
}

func (e ResNet18FPNExtractor) OutputDim() int { return e.LateralDim }

func (e ResNet18FPNExtractor) PretrainedCheckpoint() (string, bool) {
	if !e.Pretrained {
		return "", false
	}
	return CheckpointResNet18ImageNet, true
}

// ResidualBlockKind selects the per-stage building block of the sparse
// backbone.
type ResidualBlockKind string

const (
	BasicBlock    ResidualBlockKind = "BasicBlock"
	Bottleneck    ResidualBlockKind = "Bottleneck"
	ECABasicBlock ResidualBlockKind = "ECABasicBlock"
)

func (kind ResidualBlockKind) Validate() error {
	switch kind {
	case BasicBlock, Bottleneck, ECABasicBlock:
		return nil
	}
	return fmt.Errorf("unknown residual block kind %q", string(kind))
}

// MinkResNetFPNExtractor configures a sparse-convolution feature-pyramid
// extractor for the point-cloud branch.
type MinkResNetFPNExtractor struct {
	// OutChannels is the feature width of the extractor output.
	OutChannels int `yaml:"out_channels"`

	// NumTopDown is how many top-down merge stages the pyramid has.
	NumTopDown int `yaml:"num_top_down"`

	// Conv0KernelSize is the receptive field of the first sparse convolution.
	Conv0KernelSize int `yaml:"conv0_kernel_size"`

	// Block is the residual block variant used in every stage.
	Block ResidualBlockKind `yaml:"block"`

	// Layers is the residual block count per stage; its length is the
	// stage count and must match Planes.
	Layers []int `yaml:"layers"`

	// Planes is the channel width per stage.
	Planes []int `yaml:"planes"`
}

func (e MinkResNetFPNExtractor) Validate() error {
	if err := positive("out_channels", e.OutChannels); err != nil {
		return err
	}
	if err := nonNegative("num_top_down", e.NumTopDown); err != nil {
		return err
	}
	if err := positive("conv0_kernel_size", e.Conv0KernelSize); err != nil {
		return err
	}
	if err := e.Block.Validate(); err != nil {
		return err
	}
	if len(e.Layers) == 0 {
		return fmt.Errorf("layers must name at least one stage")
	}
	if len(e.Layers) != len(e.Planes) {
		return fmt.Errorf("layers and planes must have the same length, got %d and %d", len(e.Layers), len(e.Planes))
	}
	for i, count := range e.Layers {
		if count <= 0 {
			return fmt.Errorf("layers[%d] must be positive, got %d", i, count)
		}
	}
	for i, width := range e.Planes {
		if width <= 0 {
			return fmt.Errorf("planes[%d] must be positive, got %d", i, width)
		}
	}
	if e.NumTopDown > len(e.Layers) {
		return fmt.Errorf("num_top_down (%d) must not exceed the stage count (%d)", e.NumTopDown, len(e.Layers))
	}
	return nil
}

func (e MinkResNetFPNExtractor) OutputDim() int { return e.OutChannels }

// StageCount is the number of residual stages.
func (e MinkResNetFPNExtractor) StageCount() int { return len(e.Layers) }

func (ResNet18FPNExtractor) DenseModality() {}

func (MinkResNetFPNExtractor) SparseModality() {}
