package model

// Concat joins the two modality descriptors along the feature
// dimension. It has no parameters and learns nothing; both branches
// must emit descriptors for the same batch, which is a precondition of
// the consuming model library rather than something checked here.
type Concat struct{}

func (Concat) Name() string { return "Concat" }

func (Concat) DescriptorDim(imageDim, cloudDim int) int {
	return imageDim + cloudDim
}
