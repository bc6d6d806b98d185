package sdf

import (
	"encoding/xml"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/kinchain/description"
	"go.viam.com/kinchain/utils"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

const (
	rotationFormatEuler = "euler_rpy"
	rotationFormatQuat  = "quat_xyzw"
)

// pose is the text of an SDF <pose> element: "x y z roll pitch yaw" by default. Poses are always taken relative to
// the element's default frame; relative_to is not resolved.
type pose struct {
	Text           string `xml:",chardata"`
	Degrees        bool   `xml:"degrees,attr"`
	RotationFormat string `xml:"rotation_format,attr"`
}

type geometry struct {
	Box *struct {
		Size string `xml:"size"` // "x y z" format, in meters
	} `xml:"box"`
	Cylinder *cylinder `xml:"cylinder"`
	Capsule  *cylinder `xml:"capsule"`
	Sphere   *struct {
		Radius float64 `xml:"radius"`
	} `xml:"sphere"`
	Mesh *struct {
		URI   string `xml:"uri"`
		Scale string `xml:"scale"`
	} `xml:"mesh"`
	Plane *struct {
		Normal string `xml:"normal"`
		Size   string `xml:"size"`
	} `xml:"plane"`
	Other []struct {
		XMLName xml.Name
	} `xml:",any"`
}

type cylinder struct {
	Radius float64 `xml:"radius"`
	Length float64 `xml:"length"`
}

// toRawPose converts the pose text. An absent or empty pose is returned as nil.
func (p *pose) toRawPose() (description.RawPose, error) {
	if p == nil {
		return nil, nil
	}
	values, err := description.ParseFloats(p.Text)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	switch p.RotationFormat {
	case "", rotationFormatEuler:
		if len(values) != 6 {
			return nil, errors.Errorf("expected 6 values for %s pose, got %d", rotationFormatEuler, len(values))
		}
		if p.Degrees {
			for i := 3; i < 6; i++ {
				values[i] = utils.DegToRad(values[i])
			}
		}
		return values, nil
	case rotationFormatQuat:
		if len(values) != 7 {
			return nil, errors.Errorf("expected 7 values for %s pose, got %d", rotationFormatQuat, len(values))
		}
		// reorder x y z qx qy qz qw into x y z qw qx qy qz
		return description.RawPose{values[0], values[1], values[2], values[6], values[3], values[4], values[5]}, nil
	default:
		return nil, errors.Errorf("unsupported pose rotation_format %q", p.RotationFormat)
	}
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
	case g.Capsule != nil:
		return &description.Capsule{Radius: g.Capsule.Radius, Length: g.Capsule.Length}, nil
	case g.Sphere != nil:
		return &description.Sphere{Radius: g.Sphere.Radius}, nil
	case g.Mesh != nil:
		m := &description.Mesh{Filename: g.Mesh.URI, Scale: r3.Vector{X: 1, Y: 1, Z: 1}}
		if g.Mesh.Scale != "" {
			scale, err := description.ParseVector(g.Mesh.Scale)
			if err != nil {
				return nil, err
			}
			m.Scale = scale
		}
		return m, nil
	case g.Plane != nil:
		p := &description.Plane{Normal: r3.Vector{Z: 1}}
		var err error
		if g.Plane.Normal != "" {
			p.Normal, err = description.ParseVector(g.Plane.Normal)
		}
		if g.Plane.Size != "" {
			var sizeErr error
			p.Size, sizeErr = description.ParseFloats(g.Plane.Size)
			err = multierr.Append(err, sizeErr)
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	case len(g.Other) > 0:
		return &description.Unsupported{Kind: g.Other[0].XMLName.Local}, nil
	default:
		return &description.Unsupported{}, nil
	}
}

// appendError wraps err with the element it came from and appends it to errs.
func appendError(errs *error, err error, format string, args ...interface{}) {
	if err == nil {
		return
	}
	multierr.AppendInto(errs, errors.Wrapf(err, format, args...))
}
