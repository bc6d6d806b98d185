// Package kinematics builds kinematic chains, trees of frames joined by joints, out of robot descriptions and
// computes forward kinematics over them.
package kinematics

const frameSuffix = "_frame"

// Frame is a node of a kinematic chain: the joint connecting it to its parent, the link it carries and its
// child frames.
type Frame struct {
	name     string
	joint    *Joint
	link     *Link
	children []*Frame
}

// NewFrame creates a fully initialized frame. Frames are not modified after construction.
func NewFrame(name string, joint *Joint, link *Link, children []*Frame) *Frame {
	return &Frame{
		name:     name,
		joint:    joint,
		link:     link,
		children: append([]*Frame(nil), children...),
	}
}

// FrameName returns the frame name used for a link.
func FrameName(linkName string) string {
	return linkName + frameSuffix
}

// Name returns the frame's name.
func (f *Frame) Name() string {
	return f.name
}

// Joint returns the joint attaching this frame to its parent.
func (f *Frame) Joint() *Joint {
	return f.joint
}

// Link returns the link carried by this frame.
func (f *Frame) Link() *Link {
	return f.link
}

// Children returns a copy of the frame's children in description order.
func (f *Frame) Children() []*Frame {
	return append([]*Frame(nil), f.children...)
}

// walk visits f and its descendants depth first, parents before children. It stops early when fn returns false
// and reports whether the walk ran to completion.
func (f *Frame) walk(depth int, fn func(*Frame, int) bool) bool {
	if !fn(f, depth) {
		return false
	}
	for _, child := range f.children {
		if !child.walk(depth+1, fn) {
			return false
		}
	}
	return true
}
