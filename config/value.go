package config

import (
	"fmt"

	"github.com/plus3/tween/anim"
	"github.com/plus3/tween/curve"
	"gopkg.in/yaml.v3"
)

// Value is an animation endpoint written either as a scalar or as [x, y, z].
type Value struct {
	Scalar float64
	Vector anim.Vec3
	IsVec  bool
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Value{}
		return node.Decode(&v.Scalar)
	case yaml.SequenceNode:
		var xyz []float64
		if err := node.Decode(&xyz); err != nil {
			return err
		}
		if len(xyz) != 3 {
			return fmt.Errorf("%w: vector needs 3 components, got %d at line %d", ErrInvalidValue, len(xyz), node.Line)
		}
		*v = Value{Vector: anim.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, IsVec: true}
		return nil
	}
	return fmt.Errorf("%w: line %d", ErrInvalidValue, node.Line)
}

func (v Value) MarshalYAML() (any, error) {
	if v.IsVec {
		node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, c := range []float64{v.Vector.X, v.Vector.Y, v.Vector.Z} {
			item := &yaml.Node{}
			if err := item.Encode(c); err != nil {
				return nil, err
			}
			node.Content = append(node.Content, item)
		}
		return node, nil
	}
	return v.Scalar, nil
}

// EasingRef names a curve or spells one out inline as four handle values.
type EasingRef struct {
	Name   string
	Inline *curve.Curve
}

func (e *EasingRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*e = EasingRef{Name: node.Value}
		return nil
	}
	c := &curve.Curve{}
	if err := node.Decode(c); err != nil {
		return err
	}
	*e = EasingRef{Inline: c}
	return nil
}

func (e EasingRef) MarshalYAML() (any, error) {
	if e.Inline != nil {
		return e.Inline.MarshalYAML()
	}
	return e.Name, nil
}

// IsZero lets omitempty drop an unset reference.
func (e EasingRef) IsZero() bool {
	return e.Name == "" && e.Inline == nil
}
