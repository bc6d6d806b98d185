package kinematics

import (
	"go.viam.com/kinchain/spatialmath"
)

// Visual is a piece of geometry placed relative to the link that owns it.
type Visual struct {
	offset   spatialmath.Pose
	geometry Geometry
}

// NewVisual creates a visual. A nil geometry is stored as UnknownGeometry.
func NewVisual(offset spatialmath.Pose, geometry Geometry) Visual {
	if offset == nil {
		offset = spatialmath.NewZeroPose()
	}
	if geometry == nil {
		geometry = UnknownGeometry{}
	}
	return Visual{offset: offset, geometry: geometry}
}

// Offset returns the pose of the visual relative to its link.
func (v Visual) Offset() spatialmath.Pose {
	return v.offset
}

// Geometry returns the visual's shape.
func (v Visual) Geometry() Geometry {
	return v.geometry
}

// Link is a rigid body carried by a frame.
type Link struct {
	name    string
	offset  spatialmath.Pose
	visuals []Visual
}

// NewLink creates a link. offset is the pose of the link body relative to its frame.
func NewLink(name string, offset spatialmath.Pose, visuals []Visual) *Link {
	if offset == nil {
		offset = spatialmath.NewZeroPose()
	}
	return &Link{name: name, offset: offset, visuals: append([]Visual(nil), visuals...)}
}

// Name returns the link's name.
func (l *Link) Name() string {
	return l.name
}

// Offset returns the pose of the link body relative to its frame.
func (l *Link) Offset() spatialmath.Pose {
	return l.offset
}

// Visuals returns a copy of the link's visuals in description order.
func (l *Link) Visuals() []Visual {
	return append([]Visual(nil), l.visuals...)
}
