package kinematics

import (
	"github.com/golang/geo/r3"
)

// GeometryKind discriminates the canonical geometry variants.
type GeometryKind int

// The canonical geometry kinds. Anything a description holds that is not one of these is UnknownKind.
const (
	UnknownKind GeometryKind = iota
	MeshKind
	CylinderKind
	BoxKind
	SphereKind
)

func (k GeometryKind) String() string {
	switch k {
	case MeshKind:
		return "mesh"
	case CylinderKind:
		return "cylinder"
	case BoxKind:
		return "box"
	case SphereKind:
		return "sphere"
	case UnknownKind:
		return "unknown"
	default:
		return "unknown"
	}
}

// Geometry is the canonical shape of a visual element.
type Geometry interface {
	Kind() GeometryKind
}

// MeshGeometry references a mesh file.
type MeshGeometry struct {
	Filename string
}

// CylinderGeometry is a cylinder of the given radius and length.
type CylinderGeometry struct {
	Radius float64
	Length float64
}

// BoxGeometry is a box with the given edge lengths.
type BoxGeometry struct {
	Size r3.Vector
}

// SphereGeometry is a sphere of the given radius.
type SphereGeometry struct {
	Radius float64
}

// UnknownGeometry stands in for shapes without a canonical form. It has no parameters.
type UnknownGeometry struct{}

// Kind returns MeshKind.
func (MeshGeometry) Kind() GeometryKind { return MeshKind }

// Kind returns CylinderKind.
func (CylinderGeometry) Kind() GeometryKind { return CylinderKind }

// Kind returns BoxKind.
func (BoxGeometry) Kind() GeometryKind { return BoxKind }

// Kind returns SphereKind.
func (SphereGeometry) Kind() GeometryKind { return SphereKind }

// Kind returns UnknownKind.
func (UnknownGeometry) Kind() GeometryKind { return UnknownKind }
