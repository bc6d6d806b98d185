package kinematics

import (
	"math"

	"go.viam.com/kinchain/spatialmath"
)

// ChainConfig is a serializable snapshot of a chain, for JSON or YAML output.
type ChainConfig struct {
	Root *FrameConfig `json:"root" yaml:"root"`
}

// FrameConfig is the serializable form of a Frame.
type FrameConfig struct {
	Name     string         `json:"name" yaml:"name"`
	Joint    JointConfig    `json:"joint" yaml:"joint"`
	Link     LinkConfig     `json:"link" yaml:"link"`
	Children []*FrameConfig `json:"children,omitempty" yaml:"children,omitempty"`
}

// JointConfig is the serializable form of a Joint. Infinite limits are omitted.
type JointConfig struct {
	Name   string      `json:"name,omitempty" yaml:"name,omitempty"`
	Type   string      `json:"type" yaml:"type"`
	Offset PoseConfig  `json:"offset" yaml:"offset"`
	Axis   *[3]float64 `json:"axis,omitempty" yaml:"axis,omitempty"`
	Min    *float64    `json:"min,omitempty" yaml:"min,omitempty"`
	Max    *float64    `json:"max,omitempty" yaml:"max,omitempty"`
}

// LinkConfig is the serializable form of a Link.
type LinkConfig struct {
	Name    string         `json:"name" yaml:"name"`
	Offset  PoseConfig     `json:"offset" yaml:"offset"`
	Visuals []VisualConfig `json:"visuals,omitempty" yaml:"visuals,omitempty"`
}

// VisualConfig is the serializable form of a Visual. Only the parameters of its kind are set.
type VisualConfig struct {
	Offset   PoseConfig  `json:"offset" yaml:"offset"`
	Kind     string      `json:"kind" yaml:"kind"`
	Filename string      `json:"filename,omitempty" yaml:"filename,omitempty"`
	Radius   float64     `json:"radius,omitempty" yaml:"radius,omitempty"`
	Length   float64     `json:"length,omitempty" yaml:"length,omitempty"`
	Size     *[3]float64 `json:"size,omitempty" yaml:"size,omitempty"`
}

// PoseConfig holds a translation and a w x y z quaternion.
type PoseConfig struct {
	Translation [3]float64 `json:"translation" yaml:"translation,flow"`
	Quaternion  [4]float64 `json:"quaternion" yaml:"quaternion,flow"`
}

// NewPoseConfig converts a pose into its serializable form.
func NewPoseConfig(p spatialmath.Pose) PoseConfig {
	pt := p.Point()
	q := p.Orientation().Quaternion()
	return PoseConfig{
		Translation: [3]float64{pt.X, pt.Y, pt.Z},
		Quaternion:  [4]float64{q.Real, q.Imag, q.Jmag, q.Kmag},
	}
}

// Config returns a serializable snapshot of the chain.
func (c *Chain) Config() *ChainConfig {
	return &ChainConfig{Root: newFrameConfig(c.root)}
}

func newFrameConfig(f *Frame) *FrameConfig {
	cfg := &FrameConfig{
		Name:  f.name,
		Joint: newJointConfig(f.joint),
		Link: LinkConfig{
			Name:   f.link.Name(),
			Offset: NewPoseConfig(f.link.Offset()),
		},
	}
	for _, v := range f.link.visuals {
		cfg.Link.Visuals = append(cfg.Link.Visuals, newVisualConfig(v))
	}
	for _, child := range f.children {
		cfg.Children = append(cfg.Children, newFrameConfig(child))
	}
	return cfg
}

func newJointConfig(j *Joint) JointConfig {
	cfg := JointConfig{
		Name:   j.name,
		Type:   j.jointType.String(),
		Offset: NewPoseConfig(j.offset),
	}
	if j.jointType == FixedJoint {
		return cfg
	}
	cfg.Axis = &[3]float64{j.axis.X, j.axis.Y, j.axis.Z}
	if !math.IsInf(j.limit.Min, 0) {
		lower := j.limit.Min
		cfg.Min = &lower
	}
	if !math.IsInf(j.limit.Max, 0) {
		upper := j.limit.Max
		cfg.Max = &upper
	}
	return cfg
}

func newVisualConfig(v Visual) VisualConfig {
	cfg := VisualConfig{Offset: NewPoseConfig(v.offset), Kind: v.geometry.Kind().String()}
	switch g := v.geometry.(type) {
	case MeshGeometry:
		cfg.Filename = g.Filename
	case CylinderGeometry:
		cfg.Radius, cfg.Length = g.Radius, g.Length
	case BoxGeometry:
		cfg.Size = &[3]float64{g.Size.X, g.Size.Y, g.Size.Z}
	case SphereGeometry:
		cfg.Radius = g.Radius
	}
	return cfg
}
