// Package dataset reads track datasets laid out the way the Phystech
// Campus recordings are: per-track directories of camera frames and
// lidar sweeps under one root, indexed by per-subset CSV files.
package dataset

import (
	"fmt"
	"slices"
)

const (
	SubsetTrain = "train"
	SubsetVal   = "val"
	SubsetTest  = "test"

	ModalityImage    = "image"
	ModalityCloud    = "cloud"
	ModalitySemantic = "semantic"
)

var (
	validSubsets    = []string{SubsetTrain, SubsetVal, SubsetTest}
	validModalities = []string{ModalityImage, ModalityCloud, ModalitySemantic}
)

// cloudsSubdir is where lidar sweeps live inside a track directory.
const cloudsSubdir = "lidar"

// Config selects what to load from a dataset root.
type Config struct {
	DatasetRoot string   `yaml:"dataset_root"`
	Subset      string   `yaml:"subset"`
	Modalities  []string `yaml:"modalities"`

	ImagesSubdir        string `yaml:"images_subdir"`
	SemanticFrontSubdir string `yaml:"semantic_front_subdir"`
	SemanticBackSubdir  string `yaml:"semantic_back_subdir"`

	// MinkQuantizationSize is the voxel edge length, in meters, used to
	// quantize point clouds for the sparse backbone.
	MinkQuantizationSize float64 `yaml:"mink_quantization_size"`
}

// ApplyDefaults fills unset fields with the conventional values.
func (c *Config) ApplyDefaults() {
	if c.Subset == "" {
		c.Subset = SubsetTest
	}
	if len(c.Modalities) == 0 {
		c.Modalities = []string{ModalityImage, ModalityCloud}
	}
	if c.ImagesSubdir == "" && slices.Contains(c.Modalities, ModalityImage) {
		c.ImagesSubdir = "front_cam"
	}
	if slices.Contains(c.Modalities, ModalitySemantic) {
		if c.SemanticFrontSubdir == "" {
			c.SemanticFrontSubdir = "labels/front_cam"
		}
		if c.SemanticBackSubdir == "" {
			c.SemanticBackSubdir = "labels/back_cam"
		}
	}
	if c.MinkQuantizationSize == 0 {
		c.MinkQuantizationSize = 0.5
	}
}

// Validate accumulates configuration problems.
func (c Config) Validate() []error {
	var result []error
	if c.DatasetRoot == "" {
		result = append(result, fmt.Errorf("dataset_root must be set"))
	}
	if !slices.Contains(validSubsets, c.Subset) {
		result = append(result, fmt.Errorf("unknown subset %q, expected one of %v", c.Subset, validSubsets))
	}
	for _, modality := range c.Modalities {
		if !slices.Contains(validModalities, modality) {
			result = append(result, fmt.Errorf("unknown modality %q, expected one of %v", modality, validModalities))
		}
	}
	if slices.Contains(c.Modalities, ModalityImage) && c.ImagesSubdir == "" {
		result = append(result, fmt.Errorf("modality %q requires images_subdir to be set", ModalityImage))
	}
	if c.MinkQuantizationSize < 0 {
		result = append(result, fmt.Errorf("mink_quantization_size must not be negative, got %v", c.MinkQuantizationSize))
	}
	return result
}

// HasModality reports whether the config asks for a modality.
func (c Config) HasModality(name string) bool {
	return slices.Contains(c.Modalities, name)
}
