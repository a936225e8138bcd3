package blueprint_test

import (
	"bytes"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/SheLesTT/open-place-recognition/pkg/blueprint"
)

var _ = Describe("Parse", func() {
	var root *blueprint.Node

	BeforeEach(func() {
		f, err := os.Open("testdata/place_recognition.yml")
		defer closeAndIgnoreError(f)
		Expect(err).NotTo(HaveOccurred())

		root, err = blueprint.Parse(f)
		Expect(err).NotTo(HaveOccurred())
	})

	It("parses a composed model specification", func() {
		Expect(root.Target).To(Equal("ComposedModel"))
		Expect(root.Params).To(HaveLen(3))
		Expect(root.Params[0].Name).To(Equal("image_module"))
		Expect(root.Params[1].Name).To(Equal("cloud_module"))
		Expect(root.Params[2].Name).To(Equal("fusion_module"))
	})

	It("parses nested specifications depth first", func() {
		imageModule, ok := root.Child("image_module")
		Expect(ok).To(BeTrue())
		Expect(imageModule.Target).To(Equal("ImageModule"))

		backbone, ok := imageModule.Child("backbone")
		Expect(ok).To(BeTrue())
		Expect(backbone.Target).To(Equal("ResNet18FPNExtractor"))

		lateralDim, ok := backbone.Scalar("lateral_dim")
		Expect(ok).To(BeTrue())
		Expect(lateralDim.Value).To(Equal(128))

		pretrained, ok := backbone.Scalar("pretrained")
		Expect(ok).To(BeTrue())
		Expect(pretrained.Value).To(Equal(true))
	})

	It("resolves scalar types from the document", func() {
		eps, ok := root.Lookup("image_module.head.eps")
		Expect(ok).To(BeTrue())
		value, ok := eps.(blueprint.Scalar).Float()
		Expect(ok).To(BeTrue())
		Expect(value).To(BeNumerically("~", 1e-6, 1e-12))

		p, ok := root.Lookup("cloud_module.head.p")
		Expect(ok).To(BeTrue())
		Expect(p.(blueprint.Scalar).Value).To(Equal(3))
	})

	It("parses list parameters as scalar sequences", func() {
		value, ok := root.Lookup("cloud_module.backbone.layers")
		Expect(ok).To(BeTrue())
		layers, ok := value.(blueprint.List)
		Expect(ok).To(BeTrue())
		Expect(layers).To(Equal(blueprint.List{{Value: 1}, {Value: 1}, {Value: 1}}))

		value, ok = root.Lookup("cloud_module.backbone.planes")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(blueprint.List{{Value: 32}, {Value: 64}, {Value: 64}}))
	})

	It("keeps parameterless specifications empty", func() {
		fusion, ok := root.Child("fusion_module")
		Expect(ok).To(BeTrue())
		Expect(fusion.Target).To(Equal("Concat"))
		Expect(fusion.Params).To(BeEmpty())
	})

	It("round-trips through serialization", func() {
		document, err := yaml.Marshal(root)
		Expect(err).NotTo(HaveOccurred())

		Expect(strings.Split(string(document), "\n")[0]).To(Equal("_target_: ComposedModel"),
			"the target key is always emitted first")

		reparsed, err := blueprint.Parse(bytes.NewReader(document))
		Expect(err).NotTo(HaveOccurred())
		Expect(reparsed.Equal(root)).To(BeTrue())
	})

	Describe("structural failures", func() {
		DescribeTable("rejects malformed documents",
			func(document, wantSubstring string) {
				_, err := blueprint.Parse(strings.NewReader(document))
				Expect(err).To(MatchError(ContainSubstring(wantSubstring)))
			},
			Entry("empty document", "", "empty"),
			Entry("non-mapping root", "- a\n- b\n", "expected the root component to be a mapping"),
			Entry("missing target", "head:\n  _target_: GeM\n", `missing "_target_" at the root component`),
			Entry("missing nested target", "_target_: ImageModule\nhead:\n  p: 3\n", `missing "_target_" at "head"`),
			Entry("non-string target", "_target_: 12\n", "target at the root component must be a string"),
			Entry("empty target", `_target_: ""`+"\n", "target at the root component is empty"),
			Entry("duplicate parameter", "_target_: GeM\np: 3\np: 4\n", `duplicate parameter "p"`),
			Entry("null parameter", "_target_: GeM\np:\n", `parameter at "p" has no value`),
			Entry("nested value inside a list", "_target_: M\nlayers:\n- a: b\n", `list parameter at "layers" may contain only scalars`),
			Entry("anchor and alias", "_target_: M\na: &x 1\nb: *x\n", "anchors and aliases are not allowed"),
			Entry("merge key", "_target_: M\nbase: &b\n  _target_: GeM\nhead:\n  <<: *b\n", "anchors and aliases are not allowed"),
			Entry("unparseable yaml", "_target_: [\n", "malformed configuration document"),
		)
	})
})
