// Package spatialmath defines spatial mathematical operations: orientations in several
// parameterizations and rigid 6dof poses that compose.
package spatialmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/kinchain/utils"
)

const poseEpsilon = 1e-8

// Pose represents a 6dof pose, position and orientation, with respect to the origin.
// Poses are immutable once constructed.
type Pose interface {
	Point() r3.Vector
	Orientation() Orientation
}

// pose stores the translation exactly as given and the rotation as a unit quaternion.
type pose struct {
	point       r3.Vector
	orientation quat.Number
}

// NewZeroPose returns a pose at (0,0,0) with no rotation.
func NewZeroPose() Pose {
	return &pose{orientation: quat.Number{Real: 1}}
}

// NewPose takes in a position and orientation and returns a Pose.
// A nil orientation is treated as no rotation.
func NewPose(p r3.Vector, o Orientation) Pose {
	if o == nil {
		return NewPoseFromPoint(p)
	}
	return &pose{point: p, orientation: Normalize(o.Quaternion())}
}

// NewPoseFromPoint takes in a cartesian (x,y,z) and stores it as a vector.
// It will have the same orientation as the frame it is in.
func NewPoseFromPoint(point r3.Vector) Pose {
	return &pose{point: point, orientation: quat.Number{Real: 1}}
}

// NewPoseFromOrientation returns a pose at the origin with the given orientation.
func NewPoseFromOrientation(o Orientation) Pose {
	return NewPose(r3.Vector{}, o)
}

// Point returns the position of the pose.
func (p *pose) Point() r3.Vector {
	return p.point
}

// Orientation returns the orientation of the pose.
func (p *pose) Orientation() Orientation {
	q := quaternion(p.orientation)
	return &q
}

// String returns a human readable representation of the pose.
func (p *pose) String() string {
	return PoseToString(p)
}

// Compose treats Poses as functions A(x) and B(x), and produces a new function C(x) = A(B(x)).
// It converts the poses to dual quaternions and multiplies them together, normalizes the transform and returns it.
// Compose is associative but not commutative.
func Compose(a, b Pose) Pose {
	return newDualQuaternionFromPose(a).compose(newDualQuaternionFromPose(b)).toPose()
}

// PoseInverse will return the inverse of a pose. So if a given pose p is the pose of A relative to B, PoseInverse(p)
// will give the pose of B relative to A.
func PoseInverse(p Pose) Pose {
	inv := quat.Conj(Normalize(p.Orientation().Quaternion()))
	pt := RotatePoint(QuaternionOrientation(inv), p.Point()).Mul(-1)
	return &pose{point: pt, orientation: inv}
}

// PoseBetween returns the difference between two poses, i.e. the pose d such that Compose(a, d) == b.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// PoseAlmostEqual will return a bool describing whether 2 poses are approximately the same.
func PoseAlmostEqual(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, poseEpsilon)
}

// PoseAlmostEqualEps will return a bool describing whether 2 poses are approximately the same,
// comparing translations within epsilon.
func PoseAlmostEqualEps(a, b Pose, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Point(), b.Point(), epsilon) && OrientationAlmostEqual(a.Orientation(), b.Orientation())
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return utils.Float64AlmostEqual(a.X, b.X, epsilon) &&
		utils.Float64AlmostEqual(a.Y, b.Y, epsilon) &&
		utils.Float64AlmostEqual(a.Z, b.Z, epsilon)
}

// PoseToMat4 converts a pose into a column major homogeneous transform as used by renderers.
func PoseToMat4(p Pose) mgl64.Mat4 {
	q := Normalize(p.Orientation().Quaternion())
	rot := mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}.Mat4()
	pt := p.Point()
	return mgl64.Translate3D(pt.X, pt.Y, pt.Z).Mul4(rot)
}

// PoseToString formats a pose as its translation followed by roll, pitch and yaw in radians.
func PoseToString(p Pose) string {
	pt := p.Point()
	ea := p.Orientation().EulerAngles()
	return fmt.Sprintf("xyz: [%.6g %.6g %.6g] rpy: [%.6g %.6g %.6g]", pt.X, pt.Y, pt.Z, ea.Roll, ea.Pitch, ea.Yaw)
}
