package kinematics

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/kinchain/description"
	"go.viam.com/kinchain/spatialmath"
)

// cylinderCorrection turns a cylinder authored along Z to lie along the Y axis renderers expect.
var cylinderCorrection = spatialmath.NewPoseFromOrientation(&spatialmath.EulerAngles{Roll: math.Pi / 2})

// poseFromRaw converts a raw description pose. An absent pose is the identity.
func poseFromRaw(p description.RawPose) (spatialmath.Pose, error) {
	switch len(p) {
	case 0:
		return spatialmath.NewZeroPose(), nil
	case 6:
		return spatialmath.NewPose(
			r3.Vector{X: p[0], Y: p[1], Z: p[2]},
			&spatialmath.EulerAngles{Roll: p[3], Pitch: p[4], Yaw: p[5]},
		), nil
	case 7:
		return spatialmath.NewPose(
			r3.Vector{X: p[0], Y: p[1], Z: p[2]},
			spatialmath.QuaternionOrientation(quat.Number{Real: p[3], Imag: p[4], Jmag: p[5], Kmag: p[6]}),
		), nil
	default:
		return nil, NewBadPoseLengthError(len(p))
	}
}

// normalizeGeometry maps a raw description geometry to its canonical form. The returned pose, when not nil, has
// to be composed onto the right of the visual's own pose.
func normalizeGeometry(raw description.Geometry) (Geometry, spatialmath.Pose) {
	switch g := raw.(type) {
	case *description.Mesh:
		return MeshGeometry{Filename: g.Filename}, nil
	case *description.Cylinder:
		return CylinderGeometry{Radius: g.Radius, Length: g.Length}, cylinderCorrection
	case *description.Box:
		return BoxGeometry{Size: g.Size}, nil
	case *description.Sphere:
		return SphereGeometry{Radius: g.Radius}, nil
	default:
		return UnknownGeometry{}, nil
	}
}

// convertVisuals converts every visual of a link, keeping their order.
func convertVisuals(link *description.Link, logger golog.Logger) ([]Visual, error) {
	visuals := make([]Visual, 0, len(link.Visuals))
	for _, v := range link.Visuals {
		offset, err := poseFromRaw(v.Pose)
		if err != nil {
			return nil, errors.Wrapf(err, "link %q visual %q", link.Name, v.Name)
		}
		geometry, extra := normalizeGeometry(v.Geometry)
		if extra != nil {
			offset = spatialmath.Compose(offset, extra)
		}
		if geometry.Kind() == UnknownKind {
			logger.Warnw("visual geometry has no canonical form, keeping it as unknown",
				"link", link.Name, "visual", v.Name, "geometry", rawGeometryName(v.Geometry))
		}
		visuals = append(visuals, NewVisual(offset, geometry))
	}
	return visuals, nil
}

func rawGeometryName(g description.Geometry) string {
	switch g := g.(type) {
	case *description.Capsule:
		return "capsule"
	case *description.Plane:
		return "plane"
	case *description.Unsupported:
		if g.Kind != "" {
			return g.Kind
		}
	}
	return "none"
}
