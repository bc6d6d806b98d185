package description

import "github.com/golang/geo/r3"

// Geometry is the raw shape of a visual element. The set of implementations is closed to this package.
type Geometry interface {
	geometry()
}

// Mesh is a shape loaded from a file.
type Mesh struct {
	Filename string
	Scale    r3.Vector
}

// Cylinder is a cylinder centered on its origin, aligned with its local Z axis.
type Cylinder struct {
	Radius float64
	Length float64
}

// Box is a rectangular prism centered on its origin.
type Box struct {
	Size r3.Vector
}

// Sphere is a sphere centered on its origin.
type Sphere struct {
	Radius float64
}

// Capsule is a cylinder capped with two hemispheres.
type Capsule struct {
	Radius float64
	Length float64
}

// Plane is an infinite or bounded plane.
type Plane struct {
	Normal r3.Vector
	Size   []float64
}

// Unsupported records a geometry element the parsers do not understand.
type Unsupported struct {
	Kind string
}

func (*Mesh) geometry()        {}
func (*Cylinder) geometry()    {}
func (*Box) geometry()         {}
func (*Sphere) geometry()      {}
func (*Capsule) geometry()     {}
func (*Plane) geometry()       {}
func (*Unsupported) geometry() {}
