package kinematics

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Chain is a complete kinematic tree of frames, rooted at the frame carrying the root link.
type Chain struct {
	root *Frame
}

// NewChain creates a chain owning the given root frame.
func NewChain(root *Frame) *Chain {
	return &Chain{root: root}
}

// Root returns the root frame.
func (c *Chain) Root() *Frame {
	return c.root
}

// Walk visits every frame depth first, parents before children and siblings in description order, passing the
// depth of the frame below the root. Returning false from fn stops the walk.
func (c *Chain) Walk(fn func(frame *Frame, depth int) bool) {
	c.root.walk(0, fn)
}

// Frames returns every frame of the chain in the order Walk visits them.
func (c *Chain) Frames() []*Frame {
	var frames []*Frame
	c.Walk(func(f *Frame, _ int) bool {
		frames = append(frames, f)
		return true
	})
	return frames
}

// FindFrame returns the frame with the given name.
func (c *Chain) FindFrame(name string) (*Frame, bool) {
	var found *Frame
	c.Walk(func(f *Frame, _ int) bool {
		if f.name == name {
			found = f
			return false
		}
		return true
	})
	return found, found != nil
}

// JointParameterNames returns the names of the movable joints in the order Walk visits them. This is the order
// ForwardKinematicsInputs expects positions in.
func (c *Chain) JointParameterNames() []string {
	return lo.FilterMap(c.Frames(), func(f *Frame, _ int) (string, bool) {
		return f.joint.Name(), f.joint.Type() != FixedJoint
	})
}

// VisualsMap maps each link name to the link's visuals.
func (c *Chain) VisualsMap() map[string][]Visual {
	visuals := map[string][]Visual{}
	c.Walk(func(f *Frame, _ int) bool {
		visuals[f.link.Name()] = f.link.Visuals()
		return true
	})
	return visuals
}

// String returns an indented listing of the frame tree.
func (c *Chain) String() string {
	var sb strings.Builder
	c.Walk(func(f *Frame, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(f.name)
		if f.joint.Name() != "" {
			fmt.Fprintf(&sb, " [%s: %s]", f.joint.Name(), f.joint.Type())
		}
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}
