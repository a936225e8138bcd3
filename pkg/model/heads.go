package model

import (
	"fmt"
)

const (
	defaultGeMPower   = 3
	defaultGeMEpsilon = 1e-6
)

// GeM configures generalized-mean pooling over dense feature maps. The
// exponent interpolates between average pooling at p=1 and max pooling
// as p grows; eps floors activations before exponentiation.
type GeM struct {
	P   float64 `yaml:"p"`
	Eps float64 `yaml:"eps"`
}

// NewGeM applies the conventional defaults (p=3, eps=1e-6) to unset
// fields.
func NewGeM(p, eps float64) GeM {
	if p == 0 {
		p = defaultGeMPower
	}
	if eps == 0 {
		eps = defaultGeMEpsilon
	}
	return GeM{P: p, Eps: eps}
}

func (g GeM) Validate() error {
	if g.P <= 0 {
		return fmt.Errorf("p must be positive, got %v", g.P)
	}
	if g.Eps <= 0 {
		return fmt.Errorf("eps must be positive, got %v", g.Eps)
	}
	return nil
}

// DescriptorDim is the identity: pooling preserves channel count.
func (g GeM) DescriptorDim(channels int) int { return channels }

// MinkGeM is generalized-mean pooling specialized for sparse feature
// tensors. The parameter contract matches GeM; the distinct type keeps
// a sparse head off a dense branch.
type MinkGeM struct {
	P   float64 `yaml:"p"`
	Eps float64 `yaml:"eps"`
}

func NewMinkGeM(p, eps float64) MinkGeM {
	dense := NewGeM(p, eps)
	return MinkGeM{P: dense.P, Eps: dense.Eps}
}

func (g MinkGeM) Validate() error {
	return GeM(g).Validate()
}

func (g MinkGeM) DescriptorDim(channels int) int { return channels }

func (GeM) DenseModality() {}

func (MinkGeM) SparseModality() {}
