package curve

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes only the four handle values; the sample table is derived.
func (c *Curve) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
	}
	for _, v := range c.Handles() {
		item := &yaml.Node{}
		if err := item.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, item)
	}
	return node, nil
}

// UnmarshalYAML reads four handle values and rebuilds the sample table.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	var h []float64
	if err := value.Decode(&h); err != nil {
		return fmt.Errorf("decode curve handles: %w", err)
	}
	if len(h) != 4 {
		return fmt.Errorf("%w: got %d at line %d", ErrHandleCount, len(h), value.Line)
	}
	c.SetHandles(Vec2{X: h[0], Y: h[1]}, Vec2{X: h[2], Y: h[3]})
	return nil
}

// Handles returns the persisted form of the curve: x1, y1, x2, y2.
func (c *Curve) Handles() [4]float64 {
	return [4]float64{c.Handle1.X, c.Handle1.Y, c.Handle2.X, c.Handle2.Y}
}
