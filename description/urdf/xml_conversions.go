package urdf

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/kinchain/description"
)

// origin is a URDF <origin> element, translation in meters and rotation as fixed axis roll, pitch, yaw in radians.
type origin struct {
	XYZ string `xml:"xyz,attr"`
	RPY string `xml:"rpy,attr"`
}

type geometry struct {
	Box *struct {
		Size string `xml:"size,attr"`
	} `xml:"box"`
	Cylinder *struct {
		Radius float64 `xml:"radius,attr"`
		Length float64 `xml:"length,attr"`
	} `xml:"cylinder"`
	Sphere *struct {
		Radius float64 `xml:"radius,attr"`
	} `xml:"sphere"`
	Mesh *struct {
		Filename string `xml:"filename,attr"`
		Scale    string `xml:"scale,attr"`
	} `xml:"mesh"`
	Capsule *struct {
		Radius float64 `xml:"radius,attr"`
		Length float64 `xml:"length,attr"`
	} `xml:"capsule"`
}

// toRawPose converts an origin into a six value pose. Missing attributes are zero; a missing origin is nil.
func (o *origin) toRawPose() (description.RawPose, error) {
	if o == nil {
		return nil, nil
	}
	var xyz, rpy r3.Vector
	var err error
	if o.XYZ != "" {
		if xyz, err = description.ParseVector(o.XYZ); err != nil {
			return nil, errors.Wrap(err, "xyz")
		}
	}
	if o.RPY != "" {
		if rpy, err = description.ParseVector(o.RPY); err != nil {
			return nil, errors.Wrap(err, "rpy")
		}
	}
	return description.RawPose{xyz.X, xyz.Y, xyz.Z, rpy.X, rpy.Y, rpy.Z}, nil
}

func (g *geometry) toDescription() (description.Geometry, error) {
	switch {
	case g.Box != nil:
		size, err := description.ParseVector(g.Box.Size)
		if err != nil {
			return nil, err
		}
		return &description.Box{Size: size}, nil
	case g.Cylinder != nil:
		return &description.Cylinder{Radius: g.Cylinder.Radius, Length: g.Cylinder.Length}, nil
	case g.Sphere != nil:
		return &description.Sphere{Radius: g.Sphere.Radius}, nil
	case g.Mesh != nil:
		m := &description.Mesh{Filename: g.Mesh.Filename, Scale: r3.Vector{X: 1, Y: 1, Z: 1}}
		if g.Mesh.Scale != "" {
			scale, err := description.ParseVector(g.Mesh.Scale)
			if err != nil {
				return nil, err
			}
			m.Scale = scale
		}
		return m, nil
	case g.Capsule != nil:
		return &description.Capsule{Radius: g.Capsule.Radius, Length: g.Capsule.Length}, nil
	default:
		return &description.Unsupported{}, nil
	}
}
