package assembly_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SheLesTT/open-place-recognition/pkg/assembly"
	"github.com/SheLesTT/open-place-recognition/pkg/blueprint"
)

func parseSpec(t *testing.T, document string) *blueprint.Node {
	t.Helper()
	node, err := blueprint.Parse(strings.NewReader(document))
	require.NoError(t, err)
	return node
}

func TestRegistry_Register(t *testing.T) {
	t.Run("duplicate registration", func(t *testing.T) {
		registry := assembly.NewRegistry()
		require.NoError(t, registry.Register("GeM", func(*blueprint.Node, assembly.Children) (any, error) {
			return nil, nil
		}))
		err := registry.Register("GeM", func(*blueprint.Node, assembly.Children) (any, error) {
			return nil, nil
		})
		assert.EqualError(t, err, `target "GeM" is already registered`)
	})

	t.Run("empty target name", func(t *testing.T) {
		registry := assembly.NewRegistry()
		err := registry.Register("", func(*blueprint.Node, assembly.Children) (any, error) {
			return nil, nil
		})
		assert.Error(t, err)
	})

	t.Run("nil build function", func(t *testing.T) {
		registry := assembly.NewRegistry()
		assert.Error(t, registry.Register("GeM", nil))
	})
}

func TestRegistry_Assemble(t *testing.T) {
	type pair struct {
		left, right any
	}
	type leaf struct {
		name string
	}

	newRegistry := func(t *testing.T) *assembly.Registry {
		t.Helper()
		registry := assembly.NewRegistry()
		require.NoError(t, registry.Register("Leaf", func(node *blueprint.Node, _ assembly.Children) (any, error) {
			name, ok := node.Scalar("name")
			if !ok {
				return nil, errors.New("missing parameter name")
			}
			return leaf{name: name.Value.(string)}, nil
		}))
		require.NoError(t, registry.Register("Pair", func(_ *blueprint.Node, children assembly.Children) (any, error) {
			left, ok := children.Component("left")
			if !ok {
				return nil, errors.New("missing component left")
			}
			right, ok := children.Component("right")
			if !ok {
				return nil, errors.New("missing component right")
			}
			return pair{left: left, right: right}, nil
		}))
		return registry
	}

	t.Run("children are built before parents", func(t *testing.T) {
		registry := newRegistry(t)
		root := parseSpec(t, `
_target_: Pair
left:
  _target_: Leaf
  name: image
right:
  _target_: Leaf
  name: cloud
`)

		result, err := registry.Assemble(root)
		require.NoError(t, err)
		assert.Equal(t, pair{left: leaf{name: "image"}, right: leaf{name: "cloud"}}, result)
	})

	t.Run("unknown targets are found before anything is built", func(t *testing.T) {
		registry := newRegistry(t)
		var built int
		require.NoError(t, registry.Register("Counter", func(*blueprint.Node, assembly.Children) (any, error) {
			built++
			return built, nil
		}))
		root := parseSpec(t, `
_target_: Pair
left:
  _target_: Counter
right:
  _target_: Mystery
`)

		_, err := registry.Assemble(root)

		var unknown assembly.UnknownTargetError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Mystery", unknown.Target)
		assert.Equal(t, "right", unknown.Path)
		assert.Zero(t, built, "no component should be constructed when resolution fails")
	})

	t.Run("builder errors carry the path and target", func(t *testing.T) {
		registry := newRegistry(t)
		root := parseSpec(t, `
_target_: Pair
left:
  _target_: Leaf
right:
  _target_: Leaf
  name: cloud
`)

		_, err := registry.Assemble(root)

		var parameterErr assembly.ParameterError
		require.ErrorAs(t, err, &parameterErr)
		assert.Equal(t, "left", parameterErr.Path)
		assert.Equal(t, "Leaf", parameterErr.Target)
		assert.EqualError(t, err, `failed to construct "Leaf" at "left": missing parameter name`)
	})

	t.Run("the first builder error aborts assembly", func(t *testing.T) {
		registry := assembly.NewRegistry()
		var built []string
		register := func(target string, err error) {
			require.NoError(t, registry.Register(target, func(*blueprint.Node, assembly.Children) (any, error) {
				if err != nil {
					return nil, err
				}
				built = append(built, target)
				return target, nil
			}))
		}
		register("Pair", nil)
		register("Broken", errors.New("boom"))

		root := parseSpec(t, `
_target_: Pair
left:
  _target_: Broken
right:
  _target_: Pair
`)

		_, err := registry.Assemble(root)
		require.Error(t, err)
		assert.Empty(t, built)
	})

	t.Run("nil root", func(t *testing.T) {
		registry := newRegistry(t)
		_, err := registry.Assemble(nil)
		assert.Error(t, err)
	})
}
